package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// PageParams holds the from/size query parameters shared by list endpoints.
type PageParams struct {
	From int `form:"from,default=0" binding:"min=0"`
	Size int `form:"size,default=20" binding:"min=1"`
}

// Page converts the query parameters to an offset/limit pair.
func (p PageParams) Page() Page {
	return Page{Offset: p.From, Limit: p.Size}
}

// Page is an already validated offset/limit window.
type Page struct {
	Offset int
	Limit  int
}

// DefaultPage is used when a caller does not paginate.
var DefaultPage = Page{Offset: 0, Limit: 20}

// InvalidPageMessage is returned when from/size fail validation.
const InvalidPageMessage = "Page must be from>=0 and size>=1"
