package postgres

import (
	"context"
	"fmt"
	"time"
)

// TxManager runs callbacks inside a transaction carried by the context.
// Nested RunInTx calls join the outer transaction.
type TxManager struct {
	db          Beginner
	lockTimeout time.Duration
}

// TxOption customizes a TxManager.
type TxOption func(*TxManager)

// WithLockTimeout makes every transaction give up waiting for a row lock after d.
// A timed-out lock surfaces as lock_not_available, which MapError turns into
// domain.ErrConflict.
func WithLockTimeout(d time.Duration) TxOption {
	return func(m *TxManager) { m.lockTimeout = d }
}

// NewTxManager creates a new TxManager.
func NewTxManager(db Beginner, opts ...TxOption) *TxManager {
	m := &TxManager{db: db}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx executes fn within a Read Committed transaction. It commits when fn
// returns nil, rolls back on error, and rolls back and re-panics on panic.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if m.lockTimeout > 0 {
		// SET does not accept bind parameters.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return rollback(ctx, tx, fmt.Errorf("set lock timeout: %w", err))
		}
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		return rollback(ctx, tx, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

type rollbacker interface {
	Rollback(ctx context.Context) error
}

func rollback(ctx context.Context, tx rollbacker, cause error) error {
	if rbErr := tx.Rollback(ctx); rbErr != nil {
		return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, cause)
	}
	return cause
}
