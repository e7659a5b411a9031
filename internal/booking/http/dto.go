package http

import (
	"github.com/nekogravitycat/shareit-backend/internal/booking"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
)

type ItemTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookerTag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID     int64            `json:"id"`
	Start  request.DateTime `json:"start"`
	End    request.DateTime `json:"end"`
	Status booking.Status   `json:"status"`
	Item   ItemTag          `json:"item"`
	Booker BookerTag        `json:"booker"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  request.NewDateTime(b.Start),
		End:    request.NewDateTime(b.End),
		Status: b.Status,
		Item:   ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker: BookerTag{ID: b.BookerID, Name: b.BookerName, Email: b.BookerEmail},
	}
}

// CreateBookingRequest is the body of POST /bookings.
type CreateBookingRequest struct {
	ItemID int64             `json:"itemId" binding:"required,min=1"`
	Start  *request.DateTime `json:"start" binding:"required,futureorpresent"`
	End    *request.DateTime `json:"end" binding:"required,future,after_field=Start"`
}

type ApproveBookingRequest struct {
	Approved *bool `form:"approved" binding:"required"`
}

type ListBookingsRequest struct {
	request.PageParams
	State string `form:"state,default=ALL"`
}
