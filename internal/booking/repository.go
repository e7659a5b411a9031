package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nekogravitycat/shareit-backend/internal/db"
	"github.com/nekogravitycat/shareit-backend/internal/item"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	// GetByID returns the booking with its item and booker resolved.
	GetByID(ctx context.Context, id int64) (*Booking, error)
	// FindByItem returns bookings of the item ordered by start ascending.
	FindByItem(ctx context.Context, itemID int64, excludeRejected bool) ([]*Booking, error)
	CountApprovedPast(ctx context.Context, bookerID, itemID int64, asOf time.Time) (int, error)
	// List returns the bookings matching filter ordered by start descending.
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	// UpdateStatus moves a booking from one status to another.
	// It returns ErrAlreadyApproved when the booking is no longer in status from.
	UpdateStatus(ctx context.Context, id int64, from, to Status) error

	// WithItemLock runs fn in a transaction holding a row lock on the item.
	// Bookings of one item are created one at a time.
	WithItemLock(ctx context.Context, itemID int64, fn func(repo Repository) error) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
	q    db.Querier
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool, q: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var bookingColumns = []string{
	"b.id", "b.start_time", "b.end_time", "b.status",
	"i.id", "i.name", "i.owner_id",
	"u.id", "u.name", "u.email",
}

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(bookingColumns...).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.ItemID, &b.ItemName, &b.ItemOwnerID,
		&b.BookerID, &b.BookerName, &b.BookerEmail,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("public.bookings").
		Columns("start_time", "end_time", "item_id", "booker_id", "status").
		Values(b.Start, b.End, b.ItemID, b.BookerID, b.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.q.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) FindByItem(ctx context.Context, itemID int64, excludeRejected bool) ([]*Booking, error) {
	query := selectBookings().Where(squirrel.Eq{"b.item_id": itemID})
	if excludeRejected {
		query = query.Where(squirrel.NotEq{"b.status": StatusRejected})
	}
	return r.queryBookings(ctx, query.OrderBy("b.start_time ASC"))
}

func (r *pgxRepository) CountApprovedPast(ctx context.Context, bookerID, itemID int64, asOf time.Time) (int, error) {
	query, args, err := psql.Select("count(*)").
		From("public.bookings").
		Where(squirrel.Eq{
			"booker_id": bookerID,
			"item_id":   itemID,
			"status":    StatusApproved,
		}).
		Where(squirrel.Lt{"start_time": asOf}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count bookings query failed: %w", err)
	}

	var count int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bookings failed: %w", err)
	}
	return count, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	query := applyFilter(selectBookings(), filter).OrderBy("b.start_time DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	return r.queryBookings(ctx, query)
}

// applyFilter translates the filter into WHERE clauses.
func applyFilter(query squirrel.SelectBuilder, f Filter) squirrel.SelectBuilder {
	if f.BookerID != 0 {
		query = query.Where(squirrel.Eq{"b.booker_id": f.BookerID})
	}
	if f.OwnerID != 0 {
		query = query.Where(squirrel.Eq{"i.owner_id": f.OwnerID})
	}
	if f.ItemID != 0 {
		query = query.Where(squirrel.Eq{"b.item_id": f.ItemID})
	}
	if f.StartBefore != nil {
		query = query.Where(squirrel.Lt{"b.start_time": *f.StartBefore})
	}
	if f.StartAfter != nil {
		query = query.Where(squirrel.Gt{"b.start_time": *f.StartAfter})
	}
	if f.EndBefore != nil {
		query = query.Where(squirrel.Lt{"b.end_time": *f.EndBefore})
	}
	if f.EndAfter != nil {
		query = query.Where(squirrel.Gt{"b.end_time": *f.EndAfter})
	}
	if len(f.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"b.status": f.Statuses})
	}
	if len(f.ExcludeStatuses) > 0 {
		query = query.Where(squirrel.NotEq{"b.status": f.ExcludeStatuses})
	}
	return query
}

func (r *pgxRepository) queryBookings(ctx context.Context, query squirrel.SelectBuilder) ([]*Booking, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	bookings := []*Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, from, to Status) error {
	query, args, err := psql.Update("public.bookings").
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrAlreadyApproved
	}
	return nil
}

func (r *pgxRepository) WithItemLock(ctx context.Context, itemID int64, fn func(repo Repository) error) error {
	if r.pool == nil {
		// Already inside a transaction.
		return fn(r)
	}

	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		query, args, err := psql.Select("id").
			From("public.items").
			Where(squirrel.Eq{"id": itemID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("build lock item query failed: %w", err)
		}

		var locked int64
		if err := tx.QueryRow(ctx, query, args...).Scan(&locked); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return item.ErrNotFound
			}
			return fmt.Errorf("lock item failed: %w", err)
		}

		return fn(&pgxRepository{q: tx})
	})
}
