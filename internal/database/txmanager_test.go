package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "content" SET views`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(tx *gorm.DB) error {
		return tx.Exec(`UPDATE "content" SET views = views + 1 WHERE id = $1`, 1).Error
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("nested write failed")
	err := tm.WithTransaction(context.Background(), func(tx *gorm.DB) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollsBackOnExecError(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "seasons"`).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := tm.WithTransaction(context.Background(), func(tx *gorm.DB) error {
		return tx.Exec(`INSERT INTO "seasons" (content_id) VALUES (1)`).Error
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionContext_Lifecycle(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	txCtx, err := tm.BeginTransaction(context.Background())
	require.NoError(t, err)
	assert.True(t, txCtx.IsActive())
	assert.NotNil(t, txCtx.DB())

	require.NoError(t, txCtx.Commit())
	assert.False(t, txCtx.IsActive())

	// Commit and rollback are both rejected once the transaction is closed
	assert.Error(t, txCtx.Commit())
	assert.Error(t, txCtx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
