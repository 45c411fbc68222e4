// Package txmanager runs functions inside database transactions, exposing
// the transaction to nested repository calls through the context (see
// pkg/dbwrap).
package txmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stayforge/booking-service/pkg/dbwrap"
)

// Manager starts transactions on the wrapped database.
type Manager struct {
	db dbwrap.TxBeginner
}

// NewManager creates a transaction manager over db.
func NewManager(db dbwrap.TxBeginner) *Manager {
	return &Manager{db: db}
}

// Do runs fn in a transaction with the default isolation level.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn in a SERIALIZABLE transaction. Used where reads
// and a subsequent write must observe a consistent snapshot, e.g. the
// availability re-check before inserting a booking.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly runs fn in a read-only transaction.
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin: %w", err)
	}

	if err := fn(dbwrap.WithExecutor(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}

	return nil
}
