package booking

import (
	"slices"
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.NotFound("Booking not found")
	ErrItemUnavailable = apperror.InvalidArgument("Item not available")
	ErrAlreadyBooked   = apperror.InvalidArgument("Already booked for this time")
	// ErrOwnItem is reported as NotFound for compatibility with existing clients.
	ErrOwnItem         = apperror.NotFound("You can't book your item")
	ErrNotItemOwner    = apperror.Forbidden("You can't change this booking")
	ErrAlreadyApproved = apperror.InvalidArgument("Already approved")
	ErrNotParticipant  = apperror.Forbidden("You can't get this booking")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking is a reservation of an item by a user for [Start, End).
// Item and booker fields are resolved from their tables on read.
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status Status

	ItemID      int64
	ItemName    string
	ItemOwnerID int64

	BookerID    int64
	BookerName  string
	BookerEmail string
}

// Filter is the predicate used to query stored bookings.
// Zero values mean "no constraint". Time bounds are strict.
type Filter struct {
	BookerID int64
	OwnerID  int64 // owner of the booked item
	ItemID   int64

	StartBefore *time.Time
	StartAfter  *time.Time
	EndBefore   *time.Time
	EndAfter    *time.Time

	Statuses        []Status // keep only these
	ExcludeStatuses []Status

	Offset int
	Limit  int
}

// Match reports whether b satisfies the filter, ignoring pagination.
func (f Filter) Match(b *Booking) bool {
	if f.BookerID != 0 && b.BookerID != f.BookerID {
		return false
	}
	if f.OwnerID != 0 && b.ItemOwnerID != f.OwnerID {
		return false
	}
	if f.ItemID != 0 && b.ItemID != f.ItemID {
		return false
	}
	if f.StartBefore != nil && !b.Start.Before(*f.StartBefore) {
		return false
	}
	if f.StartAfter != nil && !b.Start.After(*f.StartAfter) {
		return false
	}
	if f.EndBefore != nil && !b.End.Before(*f.EndBefore) {
		return false
	}
	if f.EndAfter != nil && !b.End.After(*f.EndAfter) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, b.Status) {
		return false
	}
	if slices.Contains(f.ExcludeStatuses, b.Status) {
		return false
	}
	return true
}
