package itemrequest

import (
	"context"
	"net/http"
	"slices"
	"testing"
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	nextID int64
	clock  time.Time
	reqs   []*ItemRequest
}

func (r *memRepository) Create(_ context.Context, req *ItemRequest) error {
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	req.ID, req.CreatedAt = r.nextID, r.clock
	stored := *req
	r.reqs = append(r.reqs, &stored)
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id int64) (*ItemRequest, error) {
	for _, req := range r.reqs {
		if req.ID == id {
			out := *req
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepository) List(_ context.Context, f Filter) ([]*ItemRequest, error) {
	out := []*ItemRequest{}
	for _, req := range slices.Backward(r.reqs) {
		if f.AuthorID != 0 && req.AuthorID != f.AuthorID {
			continue
		}
		if f.ExcludeAuthorID != 0 && req.AuthorID == f.ExcludeAuthorID {
			continue
		}
		cp := *req
		out = append(out, &cp)
	}
	lo := min(f.Offset, len(out))
	hi := len(out)
	if f.Limit > 0 {
		hi = min(lo+f.Limit, hi)
	}
	return out[lo:hi], nil
}

type fakeUsers struct {
	user.Service
}

func (fakeUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	if id > 3 {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: id}, nil
}

type fakeItems struct {
	item.Service
	items []*item.Item
}

func (f *fakeItems) ListByRequests(_ context.Context, ids []int64) ([]*item.Item, error) {
	var out []*item.Item
	for _, it := range f.items {
		if it.RequestID != nil && slices.Contains(ids, *it.RequestID) {
			out = append(out, it)
		}
	}
	return out, nil
}

func newTestService() (*service, *fakeItems) {
	items := &fakeItems{}
	repo := &memRepository{clock: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewService(repo, fakeUsers{}, items).(*service), items
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	req, err := svc.Create(ctx, 1, "Need a ladder")
	require.NoError(t, err)
	assert.NotZero(t, req.ID)
	assert.False(t, req.CreatedAt.IsZero())
	assert.Empty(t, req.Items)

	_, err = svc.Create(ctx, 1, "   ")
	assert.ErrorIs(t, err, ErrDescriptionRequired)

	_, err = svc.Create(ctx, 9, "Need a drill")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestListOwnAndOthers(t *testing.T) {
	ctx := context.Background()
	svc, items := newTestService()

	first, _ := svc.Create(ctx, 1, "ladder")
	second, _ := svc.Create(ctx, 1, "drill")
	other, _ := svc.Create(ctx, 2, "tent")

	requestID := first.ID
	items.items = []*item.Item{{ID: 10, Name: "Ladder", OwnerID: 2, RequestID: &requestID}}

	own, err := svc.ListOwn(ctx, 1)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, second.ID, own[0].ID, "newest first")
	assert.Empty(t, own[0].Items)
	require.Len(t, own[1].Items, 1)
	assert.Equal(t, int64(10), own[1].Items[0].ID)

	others, err := svc.ListOthers(ctx, 1, request.DefaultPage)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, other.ID, others[0].ID)

	paged, err := svc.ListOthers(ctx, 3, request.Page{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, second.ID, paged[0].ID)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	created, _ := svc.Create(ctx, 1, "ladder")

	got, err := svc.GetByID(ctx, created.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "ladder", got.Description)

	_, err = svc.GetByID(ctx, 404, 2)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Request not found", appErr.Message)

	_, err = svc.GetByID(ctx, created.ID, 9)
	assert.ErrorIs(t, err, user.ErrNotFound)
}
