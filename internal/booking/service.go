package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/metrics"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

// CreateRequest holds an already validated booking request; Start is before End.
type CreateRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type Service interface {
	Create(ctx context.Context, requesterID int64, req CreateRequest) (*Booking, error)
	Approve(ctx context.Context, id int64, requesterID int64, approved bool) (*Booking, error)
	GetByID(ctx context.Context, id int64, requesterID int64) (*Booking, error)
	ListByBooker(ctx context.Context, requesterID int64, state State, page request.Page) ([]*Booking, error)
	ListByOwner(ctx context.Context, requesterID int64, state State, page request.Page) ([]*Booking, error)
}

type service struct {
	repo        Repository
	itemService item.Service
	userService user.Service
	now         func() time.Time
}

func NewService(repo Repository, itemService item.Service, userService user.Service) Service {
	return &service{
		repo:        repo,
		itemService: itemService,
		userService: userService,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, requesterID int64, req CreateRequest) (*Booking, error) {
	it, err := s.itemService.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available {
		return nil, ErrItemUnavailable
	}

	booker, err := s.userService.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		Start:       req.Start,
		End:         req.End,
		Status:      StatusWaiting,
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    booker.ID,
		BookerName:  booker.Name,
		BookerEmail: booker.Email,
	}

	// Availability check and insert happen under the item lock.
	err = s.repo.WithItemLock(ctx, it.ID, func(repo Repository) error {
		existing, err := repo.FindByItem(ctx, it.ID, true)
		if err != nil {
			return err
		}
		if !IsFree(existing, req.Start, req.End) {
			metrics.IncBookingConflict()
			return ErrAlreadyBooked
		}
		if it.OwnerID == requesterID {
			return ErrOwnItem
		}
		return repo.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	slog.InfoContext(ctx, "booking created", "booking_id", b.ID, "item_id", b.ItemID, "booker_id", b.BookerID)
	return b, nil
}

// Approve sets the final status of a waiting booking. Only the item owner may decide.
func (s *service) Approve(ctx context.Context, id int64, requesterID int64, approved bool) (*Booking, error) {
	if _, err := s.userService.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.ItemOwnerID != requesterID {
		return nil, ErrNotItemOwner
	}
	if b.Status != StatusWaiting {
		return nil, ErrAlreadyApproved
	}

	next, decision := StatusRejected, "rejected"
	if approved {
		next, decision = StatusApproved, "approved"
	}
	if err := s.repo.UpdateStatus(ctx, b.ID, StatusWaiting, next); err != nil {
		return nil, err
	}
	b.Status = next

	metrics.IncBookingDecision(decision)
	slog.InfoContext(ctx, "booking decided", "booking_id", b.ID, "status", b.Status)
	return b, nil
}

// GetByID is allowed for the booker and the item owner.
func (s *service) GetByID(ctx context.Context, id int64, requesterID int64) (*Booking, error) {
	if _, err := s.userService.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.BookerID != requesterID && b.ItemOwnerID != requesterID {
		return nil, ErrNotParticipant
	}
	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, requesterID int64, state State, page request.Page) ([]*Booking, error) {
	return s.list(ctx, requesterID, Filter{BookerID: requesterID}, state, page)
}

// ListByOwner returns bookings of items owned by requesterID.
func (s *service) ListByOwner(ctx context.Context, requesterID int64, state State, page request.Page) ([]*Booking, error) {
	return s.list(ctx, requesterID, Filter{OwnerID: requesterID}, state, page)
}

func (s *service) list(ctx context.Context, requesterID int64, base Filter, state State, page request.Page) ([]*Booking, error) {
	if _, err := s.userService.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	filter := state.Apply(base, s.now())
	filter.Offset = page.Offset
	filter.Limit = page.Limit
	return s.repo.List(ctx, filter)
}
