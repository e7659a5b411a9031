package item

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.NotFound("Item not found")
	ErrRequestNotFound   = apperror.NotFound("Request not found")
	ErrNotOwner          = apperror.Forbidden("You can't change item")
	ErrNameRequired      = apperror.InvalidArgument("Name is required")
	ErrDescRequired      = apperror.InvalidArgument("Description is required")
	ErrAvailableRequired = apperror.InvalidArgument("Available is required")
	ErrTextRequired      = apperror.InvalidArgument("Text is required")
	ErrNotRented         = apperror.InvalidArgument("You have to rent item, before comment")
)

// Item represents a thing a user lends to others.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64 // set when the item answers an item request
}

// Comment is feedback left by a user who has rented the item.
type Comment struct {
	ID         int64
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

// BookingBrief is the slice of a booking shown on an item card.
type BookingBrief struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// View is an item together with the data shown on GET /items.
// LastBooking and NextBooking are only filled for the owner.
type View struct {
	Item        *Item
	LastBooking *BookingBrief
	NextBooking *BookingBrief
	Comments    []*Comment
}

// Filter defines parameters for listing items.
type Filter struct {
	OwnerID    int64
	Text       string // matches name or description, case-insensitive
	OnlyActive bool   // restrict to available items
	RequestIDs []int64
	Offset     int
	Limit      int
}
