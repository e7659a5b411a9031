package itemrequest

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("Request not found")
	ErrDescriptionRequired = apperror.InvalidArgument("Description is required")
)

// ItemRequest records demand for an item nobody lists yet.
// Owners answer it by creating an item with its id.
type ItemRequest struct {
	ID          int64
	Description string
	AuthorID    int64
	CreatedAt   time.Time
	Items       []*item.Item
}

// Filter defines parameters for listing item requests.
type Filter struct {
	AuthorID        int64
	ExcludeAuthorID int64
	Offset          int
	Limit           int
}
