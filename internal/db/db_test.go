package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx   *fakeTx
	opts pgx.TxOptions
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	b.opts = opts
	b.tx = &fakeTx{}
	return b.tx, nil
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		b := &fakeBeginner{}
		require.NoError(t, WithTx(ctx, b, func(pgx.Tx) error { return nil }))
		assert.Equal(t, pgx.ReadCommitted, b.opts.IsoLevel)
		assert.True(t, b.tx.committed)
		assert.False(t, b.tx.rolledBack)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		b := &fakeBeginner{}
		boom := errors.New("boom")
		err := WithTx(ctx, b, func(pgx.Tx) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, b.tx.committed)
		assert.True(t, b.tx.rolledBack)
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		b := &fakeBeginner{}
		assert.Panics(t, func() {
			_ = WithTx(ctx, b, func(pgx.Tx) error { panic("boom") })
		})
		assert.False(t, b.tx.committed)
		assert.True(t, b.tx.rolledBack)
	})
}
