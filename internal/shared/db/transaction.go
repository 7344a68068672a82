// Package db provides database utilities including transaction management
// with bounded retry on store-detected conflicts.
package db

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
)

// DefaultMaxAttempts bounds transparent retries of a conflicting transaction.
const DefaultMaxAttempts = 3

// txKey is the context key for storing transaction.
type txKey struct{}

// TransactionManager manages database transactions.
type TransactionManager struct {
	db          *gorm.DB
	maxAttempts int
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db, maxAttempts: DefaultMaxAttempts}
}

// NewTransactionManagerWithRetry creates a TransactionManager with a custom
// retry bound for RunWithRetry.
func NewTransactionManagerWithRetry(db *gorm.DB, maxAttempts int) *TransactionManager {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &TransactionManager{db: db, maxAttempts: maxAttempts}
}

// RunInTransaction executes the given function within a database transaction.
// If the function returns an error, the transaction will be rolled back.
// If the function completes successfully, the transaction will be committed.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// RunWithRetry executes fn in a transaction and transparently retries the
// whole body when the store reports a serialization conflict (deadlock, lock
// wait timeout). The caller sees a single logical attempt. Retries are
// bounded; exhaustion surfaces as an internal error so callers never hang on
// contended keys. fn must therefore be free of non-idempotent side effects.
func (tm *TransactionManager) RunWithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= tm.maxAttempts; attempt++ {
		lastErr = tm.RunInTransaction(ctx, fn)
		if lastErr == nil || !IsRetryableConflict(lastErr) {
			return lastErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return errors.NewInternalError(
		"transaction retry limit reached",
		lastErr.Error(),
	)
}

// GetTx returns the transaction from context if available, otherwise returns the default DB.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return tm.db.WithContext(ctx)
}

// GetTxFromContext returns the transaction from context if available.
// This is a standalone function for use in repositories.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}

// ForUpdate adds a FOR UPDATE locking clause to the query. Conflict checks
// inside a transaction must use locking reads: under MySQL's REPEATABLE READ
// a plain SELECT is a non-locking snapshot read, so two racing transactions
// can both see "free" and both commit. FOR UPDATE makes the loser block or
// deadlock (error 1213), which RunWithRetry turns into a re-read that sees
// the winner's row. sqlite has a single writer and no FOR UPDATE syntax, so
// the clause is omitted there.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// IsRetryableConflict reports whether err is a store-level write conflict
// worth retrying: MySQL deadlock (1213), lock wait timeout (1205), or a
// locked sqlite database in tests.
func IsRetryableConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Error 1213") ||
		strings.Contains(msg, "Deadlock found") ||
		strings.Contains(msg, "Error 1205") ||
		strings.Contains(msg, "Lock wait timeout") ||
		strings.Contains(msg, "database is locked")
}
