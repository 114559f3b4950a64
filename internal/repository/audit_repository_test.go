package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

func TestLatestAudit(t *testing.T) {
	cols := []string{"inspection_date", "latitude", "longitude", "utility", "ai_class", "fraud_kw", "official_kw", "status"}

	t.Run("Returns Most Recent Record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		inspected := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`(?s)SELECT inspection_date.*ORDER BY inspection_date DESC.*LIMIT 1`).
			WithArgs("%CEMIG%").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(inspected.Unix(), -19.92, -43.94, "CEMIG DISTRIBUICAO S.A", "Rooftop Solar", 85.5, 10.0, models.AuditStatusAlert))

		repo := NewAuditRepository(db)
		rec, err := repo.LatestAudit("cemig")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, inspected, rec.InspectionDate)
		assert.Equal(t, "Rooftop Solar", rec.AIClass)
		assert.Equal(t, 85.5, rec.FraudKW)
		assert.Equal(t, models.AuditStatusAlert, rec.Status)
	})

	t.Run("Missing AI Class Defaults To Unclassified", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT inspection_date`).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(time.Now().Unix(), -19.92, -43.94, "CEMIG", nil, 85.5, 10.0, models.AuditStatusClear))

		repo := NewAuditRepository(db)
		rec, err := repo.LatestAudit("")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, models.UnclassifiedAIClass, rec.AIClass)
	})

	t.Run("No Match Returns Nil Without Error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT inspection_date`).
			WillReturnRows(sqlmock.NewRows(cols))

		repo := NewAuditRepository(db)
		rec, err := repo.LatestAudit("NOBODY")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})
}
