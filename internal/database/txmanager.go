package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mantonx/streambase/internal/logger"
)

// TransactionManager handles database transactions
type TransactionManager struct {
	db *gorm.DB
}

// TransactionContext wraps a transaction for safe handling
type TransactionContext struct {
	tx      *gorm.DB
	started time.Time
	id      string
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// BeginTransaction starts a new database transaction
func (tm *TransactionManager) BeginTransaction(ctx context.Context) (*TransactionContext, error) {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	txCtx := &TransactionContext{
		tx:      tx,
		started: time.Now(),
		id:      fmt.Sprintf("tx_%d", time.Now().UnixNano()),
	}

	logger.Debug("Started transaction", logger.String("tx", txCtx.id))
	return txCtx, nil
}

// Commit commits the transaction
func (tc *TransactionContext) Commit() error {
	if tc.tx == nil {
		return fmt.Errorf("transaction context is nil")
	}
	if err := tc.tx.Commit().Error; err != nil {
		logger.Error("Failed to commit transaction", logger.String("tx", tc.id), logger.Err("error", err))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Debug("Committed transaction",
		logger.String("tx", tc.id),
		logger.Duration("duration", time.Since(tc.started)))

	// Clear the transaction to prevent reuse
	tc.tx = nil
	return nil
}

// Rollback rolls back the transaction
func (tc *TransactionContext) Rollback() error {
	if tc.tx == nil {
		return fmt.Errorf("transaction context is nil")
	}
	if err := tc.tx.Rollback().Error; err != nil {
		logger.Error("Failed to rollback transaction", logger.String("tx", tc.id), logger.Err("error", err))
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	logger.Debug("Rolled back transaction",
		logger.String("tx", tc.id),
		logger.Duration("duration", time.Since(tc.started)))

	tc.tx = nil
	return nil
}

// DB returns the transaction database instance
func (tc *TransactionContext) DB() *gorm.DB {
	return tc.tx
}

// IsActive checks if the transaction is still active
func (tc *TransactionContext) IsActive() bool {
	return tc.tx != nil
}

// WithTransaction executes fn inside a transaction. The transaction is
// committed if fn returns nil and rolled back otherwise, so multi-row
// writes are all-or-nothing.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(*gorm.DB) error) error {
	txCtx, err := tm.BeginTransaction(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if txCtx.IsActive() {
			// Still active means fn panicked or a commit never ran
			txCtx.Rollback()
		}
	}()

	if err := fn(txCtx.DB()); err != nil {
		if rollbackErr := txCtx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction after error", logger.Err("error", rollbackErr))
		}
		return err
	}

	return txCtx.Commit()
}
