package http

import (
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func NewResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

// BookingTag is a booking as shown on the owner's item card.
type BookingTag struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type CommentResponse struct {
	ID         int64            `json:"id"`
	Text       string           `json:"text"`
	AuthorName string           `json:"authorName"`
	Created    request.DateTime `json:"created"`
}

func NewCommentResponse(c *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    request.NewDateTime(c.CreatedAt),
	}
}

// ItemViewResponse is the body of GET /items and GET /items/:id.
type ItemViewResponse struct {
	ItemResponse
	LastBooking *BookingTag       `json:"lastBooking"`
	NextBooking *BookingTag       `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

func NewViewResponse(v *item.View) ItemViewResponse {
	resp := ItemViewResponse{
		ItemResponse: NewResponse(v.Item),
		LastBooking:  newBookingTag(v.LastBooking),
		NextBooking:  newBookingTag(v.NextBooking),
		Comments:     make([]CommentResponse, 0, len(v.Comments)),
	}
	for _, c := range v.Comments {
		resp.Comments = append(resp.Comments, NewCommentResponse(c))
	}
	return resp
}

func newBookingTag(b *item.BookingBrief) *BookingTag {
	if b == nil {
		return nil
	}
	return &BookingTag{ID: b.ID, BookerID: b.BookerID}
}

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,min=1"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

type SearchItemsRequest struct {
	request.PageParams
	Text string `form:"text"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,notblank"`
}
