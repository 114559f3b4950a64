package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

// AuditRepository handles read queries against the visual-audit store.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// LatestAudit retrieves the most recent audit record matching the optional
// utility filter, or nil when no record matches.
func (r *AuditRepository) LatestAudit(filter string) (*models.AuditRecord, error) {
	clause, args := utilityClause(filter)
	query := `SELECT inspection_date, latitude, longitude, utility, ai_class, fraud_kw, official_kw, status
		FROM visual_audit` + clause + `
		ORDER BY inspection_date DESC
		LIMIT 1`

	var rec models.AuditRecord
	var ts int64
	var aiClass sql.NullString
	err := r.db.QueryRow(query, args...).Scan(
		&ts,
		&rec.Latitude,
		&rec.Longitude,
		&rec.Utility,
		&aiClass,
		&rec.FraudKW,
		&rec.OfficialKW,
		&rec.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest audit: %w", err)
	}

	rec.InspectionDate = time.Unix(ts, 0).UTC()
	rec.AIClass = models.UnclassifiedAIClass
	if aiClass.Valid && aiClass.String != "" {
		rec.AIClass = aiClass.String
	}

	return &rec, nil
}
