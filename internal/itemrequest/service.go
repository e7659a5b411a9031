package itemrequest

import (
	"context"
	"strings"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type Service interface {
	Create(ctx context.Context, authorID int64, description string) (*ItemRequest, error)
	// ListOwn returns the author's requests with the items answering them.
	ListOwn(ctx context.Context, authorID int64) ([]*ItemRequest, error)
	// ListOthers returns requests of everyone except userID.
	ListOthers(ctx context.Context, userID int64, page request.Page) ([]*ItemRequest, error)
	GetByID(ctx context.Context, id int64, userID int64) (*ItemRequest, error)
}

type service struct {
	repo        Repository
	userService user.Service
	itemService item.Service
}

func NewService(repo Repository, userService user.Service, itemService item.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
		itemService: itemService,
	}
}

func (s *service) Create(ctx context.Context, authorID int64, description string) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}
	if _, err := s.userService.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	req := &ItemRequest{
		Description: description,
		AuthorID:    authorID,
		Items:       []*item.Item{},
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) ListOwn(ctx context.Context, authorID int64) ([]*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	reqs, err := s.repo.List(ctx, Filter{AuthorID: authorID})
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *service) ListOthers(ctx context.Context, userID int64, page request.Page) ([]*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	reqs, err := s.repo.List(ctx, Filter{
		ExcludeAuthorID: userID,
		Offset:          page.Offset,
		Limit:           page.Limit,
	})
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *service) GetByID(ctx context.Context, id int64, userID int64) (*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, []*ItemRequest{req}); err != nil {
		return nil, err
	}
	return req, nil
}

// attachItems loads the answering items of all reqs in one call.
func (s *service) attachItems(ctx context.Context, reqs []*ItemRequest) error {
	if len(reqs) == 0 {
		return nil
	}

	ids := make([]int64, len(reqs))
	byID := make(map[int64]*ItemRequest, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
		r.Items = []*item.Item{}
		byID[r.ID] = r
	}

	items, err := s.itemService.ListByRequests(ctx, ids)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		if r, ok := byID[*it.RequestID]; ok {
			r.Items = append(r.Items, it)
		}
	}
	return nil
}
