package item

import (
	"context"
	"strings"
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

// BookingHistory is what the item module needs to know about bookings.
// The booking module provides the implementation.
type BookingHistory interface {
	// ApprovedByItem returns approved bookings of the item ordered by start ascending.
	ApprovedByItem(ctx context.Context, itemID int64) ([]BookingBrief, error)
	// CountApprovedPast counts approved bookings of the item by booker that started before asOf.
	CountApprovedPast(ctx context.Context, bookerID, itemID int64, asOf time.Time) (int, error)
}

type CreateRequest struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *int64
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	GetView(ctx context.Context, id int64, viewerID int64) (*View, error)
	ListByOwner(ctx context.Context, ownerID int64, page request.Page) ([]*View, error)
	ListByRequests(ctx context.Context, requestIDs []int64) ([]*Item, error)
	Search(ctx context.Context, text string, page request.Page) ([]*Item, error)
	Update(ctx context.Context, id int64, userID int64, req UpdateRequest) (*Item, error)
	Delete(ctx context.Context, id int64, userID int64) error
	AddComment(ctx context.Context, itemID int64, authorID int64, text string) (*Comment, error)
}

type service struct {
	repo        Repository
	userService user.Service
	history     BookingHistory
	now         func() time.Time
}

func NewService(repo Repository, userService user.Service, history BookingHistory) Service {
	return &service{
		repo:        repo,
		userService: userService,
		history:     history,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrDescRequired
	}
	if req.Available == nil {
		return nil, ErrAvailableRequired
	}

	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

// GetView returns the item card. viewerID 0 means an anonymous viewer.
func (s *service) GetView(ctx context.Context, id int64, viewerID int64) (*View, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	withBookings := false
	if viewerID != 0 {
		if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
			return nil, err
		}
		withBookings = it.OwnerID == viewerID
	}

	return s.buildView(ctx, it, withBookings, s.now())
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, page request.Page) ([]*View, error) {
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, Filter{OwnerID: ownerID, Offset: page.Offset, Limit: page.Limit})
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]*View, 0, len(items))
	for _, it := range items {
		v, err := s.buildView(ctx, it, true, now)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *service) ListByRequests(ctx context.Context, requestIDs []int64) ([]*Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	return s.repo.List(ctx, Filter{RequestIDs: requestIDs})
}

// Search matches available items by name or description. Blank text matches nothing.
func (s *service) Search(ctx context.Context, text string, page request.Page) ([]*Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*Item{}, nil
	}
	return s.repo.List(ctx, Filter{
		Text:       text,
		OnlyActive: true,
		Offset:     page.Offset,
		Limit:      page.Limit,
	})
}

func (s *service) Update(ctx context.Context, id int64, userID int64, req UpdateRequest) (*Item, error) {
	it, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		it.Name = *req.Name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, ErrDescRequired
		}
		it.Description = *req.Description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Delete(ctx context.Context, id int64, userID int64) error {
	if _, err := s.ownedItem(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AddComment requires the author to have an approved booking of the item that has already started.
func (s *service) AddComment(ctx context.Context, itemID int64, authorID int64, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	author, err := s.userService.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	count, err := s.history.CountApprovedPast(ctx, authorID, itemID, s.now())
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, ErrNotRented
	}

	c := &Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       text,
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ownedItem loads the item and checks that userID owns it and exists.
func (s *service) ownedItem(ctx context.Context, id int64, userID int64) (*Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != userID {
		return nil, ErrNotOwner
	}
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) buildView(ctx context.Context, it *Item, withBookings bool, now time.Time) (*View, error) {
	comments, err := s.repo.ListComments(ctx, it.ID)
	if err != nil {
		return nil, err
	}

	v := &View{Item: it, Comments: comments}
	if !withBookings {
		return v, nil
	}

	bookings, err := s.history.ApprovedByItem(ctx, it.ID)
	if err != nil {
		return nil, err
	}
	v.LastBooking, v.NextBooking = lastAndNext(bookings, now)
	return v, nil
}

// lastAndNext picks the latest booking started before now and the earliest
// one starting after now. bookings must be ordered by start ascending.
func lastAndNext(bookings []BookingBrief, now time.Time) (last, next *BookingBrief) {
	for i := range bookings {
		b := bookings[i]
		switch {
		case b.Start.Before(now):
			last = &b
		case b.Start.After(now):
			if next == nil {
				next = &b
			}
		}
	}
	return last, next
}
