package booking

import (
	"context"
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
)

// itemHistory exposes approved bookings to the item module.
type itemHistory struct {
	repo Repository
}

func NewItemHistory(repo Repository) item.BookingHistory {
	return &itemHistory{repo: repo}
}

func (h *itemHistory) ApprovedByItem(ctx context.Context, itemID int64) ([]item.BookingBrief, error) {
	bookings, err := h.repo.FindByItem(ctx, itemID, true)
	if err != nil {
		return nil, err
	}

	briefs := make([]item.BookingBrief, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != StatusApproved {
			continue
		}
		briefs = append(briefs, item.BookingBrief{
			ID:       b.ID,
			BookerID: b.BookerID,
			Start:    b.Start,
			End:      b.End,
		})
	}
	return briefs, nil
}

func (h *itemHistory) CountApprovedPast(ctx context.Context, bookerID, itemID int64, asOf time.Time) (int, error) {
	return h.repo.CountApprovedPast(ctx, bookerID, itemID, asOf)
}
