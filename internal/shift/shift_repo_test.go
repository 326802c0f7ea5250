package shift_test

import (
	"context"
	"testing"
	"time"

	"go-shiftplan/internal/shift"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestRepository_WithTx(t *testing.T) {
	ctx := context.Background()
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("success - writes run on the caller transaction", func(t *testing.T) {
		baseGorm, baseMock := newGormMock(t)
		repo := shift.NewRepository(baseGorm)

		txDB, txMock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { txDB.Close() })

		txMock.ExpectBegin()
		txMock.ExpectExec(`UPDATE "shifts" SET "deleted_at"`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		txMock.ExpectCommit()

		tx, err := txDB.Begin()
		require.NoError(t, err)

		err = repo.WithTx(tx).DeleteByIDs(ctx, "rest-1", []string{"shift-a", "shift-b"})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.NoError(t, txMock.ExpectationsWereMet())
		// the base connection must see nothing; a statement there would
		// commit outside the caller's transaction
		assert.NoError(t, baseMock.ExpectationsWereMet())
	})

	t.Run("negative - lost version race surfaces inside the transaction", func(t *testing.T) {
		baseGorm, baseMock := newGormMock(t)
		repo := shift.NewRepository(baseGorm)

		txDB, txMock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { txDB.Close() })

		txMock.ExpectBegin()
		txMock.ExpectQuery(`INSERT INTO week_schedules`).
			WillReturnRows(sqlmock.NewRows([]string{"version"}))
		txMock.ExpectRollback()

		tx, err := txDB.Begin()
		require.NoError(t, err)

		_, err = repo.WithTx(tx).StampWeekVersion(ctx, "rest-1", "emp-1", weekStart, 4)
		assert.ErrorIs(t, err, shift.ErrVersionConflict)
		require.NoError(t, tx.Rollback())

		assert.NoError(t, txMock.ExpectationsWereMet())
		assert.NoError(t, baseMock.ExpectationsWereMet())
	})
}
