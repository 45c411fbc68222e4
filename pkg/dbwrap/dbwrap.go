// Package dbwrap defines the database executor interfaces shared by
// repositories and the transaction manager, plus an *sql.DB wrapper that
// reports query timings to a metrics recorder.
//
// Repositories resolve their executor through GetExecutor, so a call that
// runs inside a transaction (started by pkg/txmanager) transparently uses
// the transaction's executor carried in the context.
package dbwrap

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor is the minimal query surface repositories depend on.
// Satisfied by *sql.DB, *sql.Tx, *DB and *Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// TxBeginner starts transactions. Satisfied by *DB; *sql.DB is adapted
// via SQLBeginner.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}

type ctxKey struct{}

// WithExecutor returns a context carrying the given executor. Used by the
// transaction manager to make repository calls join an open transaction.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, exec)
}

// GetExecutor returns the executor carried in ctx, or fallback when the
// context holds none.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(ctxKey{}).(DBExecutor); ok {
		return exec
	}
	return fallback
}

// QueryRecorder receives one observation per executed statement.
type QueryRecorder interface {
	ObserveQuery(op string, duration time.Duration, err error)
}

// SQLBeginner adapts a bare *sql.DB to the TxBeginner interface.
type SQLBeginner struct {
	DB *sql.DB
}

func (b SQLBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	return b.DB.BeginTx(ctx, opts)
}

// DB wraps *sql.DB and reports per-statement timings to rec.
type DB struct {
	db  *sql.DB
	rec QueryRecorder
}

// Wrap returns a metrics-reporting wrapper around db.
func Wrap(db *sql.DB, rec QueryRecorder) *DB {
	return &DB{db: db, rec: rec}
}

func (d *DB) observe(op string, start time.Time, err error) {
	if d.rec != nil {
		d.rec.ObserveQuery(op, time.Since(start), err)
	}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// BeginTx starts a transaction whose statements are observed with the same recorder.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, rec: d.rec}, nil
}

// Tx is a metrics-reporting wrapper around *sql.Tx.
type Tx struct {
	tx  *sql.Tx
	rec QueryRecorder
}

func (t *Tx) observe(op string, start time.Time, err error) {
	if t.rec != nil {
		t.rec.ObserveQuery(op, time.Since(start), err)
	}
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.observe("tx_exec", start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.observe("tx_query", start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.observe("tx_query_row", start, nil)
	return row
}

func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.observe("commit", start, err)
	return err
}

func (t *Tx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	t.observe("rollback", start, err)
	return err
}
