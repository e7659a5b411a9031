package booking

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

// memRepository is an in-memory Repository interpreting Filter with Match.
type memRepository struct {
	mu       sync.Mutex
	lock     sync.Mutex
	nextID   int64
	bookings map[int64]*Booking
}

func newMemRepository() *memRepository {
	return &memRepository{bookings: map[int64]*Booking{}}
}

func (r *memRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id int64) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *b
	return &out, nil
}

func (r *memRepository) FindByItem(_ context.Context, itemID int64, excludeRejected bool) ([]*Booking, error) {
	f := Filter{ItemID: itemID}
	if excludeRejected {
		f.ExcludeStatuses = []Status{StatusRejected}
	}
	found := r.match(f)
	slices.SortFunc(found, func(a, b *Booking) int { return a.Start.Compare(b.Start) })
	return found, nil
}

func (r *memRepository) CountApprovedPast(_ context.Context, bookerID, itemID int64, asOf time.Time) (int, error) {
	return len(r.match(Filter{
		BookerID:    bookerID,
		ItemID:      itemID,
		StartBefore: &asOf,
		Statuses:    []Status{StatusApproved},
	})), nil
}

func (r *memRepository) List(_ context.Context, f Filter) ([]*Booking, error) {
	found := r.match(f)
	slices.SortFunc(found, func(a, b *Booking) int { return b.Start.Compare(a.Start) })

	lo := min(f.Offset, len(found))
	hi := len(found)
	if f.Limit > 0 {
		hi = min(lo+f.Limit, len(found))
	}
	return found[lo:hi], nil
}

func (r *memRepository) UpdateStatus(_ context.Context, id int64, from, to Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return ErrAlreadyApproved
	}
	b.Status = to
	return nil
}

func (r *memRepository) WithItemLock(_ context.Context, _ int64, fn func(repo Repository) error) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return fn(r)
}

func (r *memRepository) match(f Filter) []*Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := []*Booking{}
	for _, b := range r.bookings {
		if f.Match(b) {
			out := *b
			found = append(found, &out)
		}
	}
	slices.SortFunc(found, func(a, b *Booking) int { return cmp.Compare(a.ID, b.ID) })
	return found
}

// seed stores b as is, bypassing the lifecycle checks.
func (r *memRepository) seed(b Booking) *Booking {
	_ = r.Create(context.Background(), &b)
	return &b
}

type fakeItems struct {
	item.Service
	items map[int64]*item.Item
}

func (f *fakeItems) GetByID(_ context.Context, id int64) (*item.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, item.ErrNotFound
	}
	return it, nil
}

type fakeUsers struct {
	user.Service
	users map[int64]*user.User
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}
