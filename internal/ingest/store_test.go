package ingest

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

func TestReplaceCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM dg_capacity`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectPrepare(`INSERT INTO dg_capacity`)
	mock.ExpectExec(`INSERT INTO dg_capacity`).
		WithArgs("CEMIG", "RESIDENCIAL", "MG", SolarSourceLabel, 1.5).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	store := NewStore(db)
	err = store.ReplaceCapacity([]models.CapacityRecord{
		{Utility: "CEMIG", Class: "RESIDENCIAL", StateCode: "MG", Source: SolarSourceLabel, CapacityMW: 1.5},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceLoadWindow(t *testing.T) {
	t.Run("Clears The Covered Window First", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		first := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
		last := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM operator_load WHERE subsystem = \? AND time >= \? AND time <= \?`).
			WithArgs("SUDESTE/CENTRO-OESTE", first.Unix(), last.Unix()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectPrepare(`INSERT INTO operator_load`)
		mock.ExpectExec(`INSERT INTO operator_load`).
			WithArgs(first.Unix(), "SUDESTE/CENTRO-OESTE", 40000.0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO operator_load`).
			WithArgs(last.Unix(), "SUDESTE/CENTRO-OESTE", 42000.0).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		store := NewStore(db)
		err = store.ReplaceLoadWindow([]models.LoadSample{
			{Timestamp: first, Region: "SUDESTE/CENTRO-OESTE", LoadMW: 40000},
			{Timestamp: last, Region: "SUDESTE/CENTRO-OESTE", LoadMW: 42000},
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls Back On Insert Failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ts := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM operator_load`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectPrepare(`INSERT INTO operator_load`)
		mock.ExpectExec(`INSERT INTO operator_load`).WillReturnError(errors.New("constraint failed"))
		mock.ExpectRollback()

		store := NewStore(db)
		err = store.ReplaceLoadWindow([]models.LoadSample{
			{Timestamp: ts, Region: "SUDESTE", LoadMW: 40000},
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Batch Is A No-Op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := NewStore(db)
		require.NoError(t, store.ReplaceLoadWindow(nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
