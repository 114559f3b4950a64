package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

// LoadRepository handles read queries against the operator load store and
// its hour-truncated join with the weather store.
type LoadRepository struct {
	db *sql.DB
}

// NewLoadRepository creates a new load repository
func NewLoadRepository(db *sql.DB) *LoadRepository {
	return &LoadRepository{db: db}
}

// RecentLoadWithIrradiance retrieves the most recent windowHours load samples
// for a region together with the matching irradiance reading for the same
// hour. The join is LEFT: hours without a weather row carry 0 irradiance.
// Region matching is a case-insensitive substring match on the operator's
// subsystem label; the weather store is keyed by the canonical region name.
// Rows come back newest-first, the store's native order.
func (r *LoadRepository) RecentLoadWithIrradiance(region string, windowHours int) ([]models.LoadIrradianceRow, error) {
	query := `SELECT l.time, l.load_mw, COALESCE(w.irradiance_wm2, 0)
		FROM operator_load l
		LEFT JOIN weather_observed w
			ON (l.time / 3600) = (w.time / 3600)
			AND w.subsystem = ?
		WHERE UPPER(l.subsystem) LIKE ?
		ORDER BY l.time DESC
		LIMIT ?`

	rows, err := r.db.Query(query, region, "%"+region+"%", windowHours)
	if err != nil {
		return nil, fmt.Errorf("failed to query load window: %w", err)
	}
	defer rows.Close()

	var result []models.LoadIrradianceRow
	for rows.Next() {
		var ts int64
		var row models.LoadIrradianceRow
		if err := rows.Scan(&ts, &row.LoadMW, &row.IrradianceWM2); err != nil {
			return nil, fmt.Errorf("failed to scan load row: %w", err)
		}
		row.Timestamp = time.Unix(ts, 0).UTC()
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate load rows: %w", err)
	}

	return result, nil
}
