package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

// CapacityRepository handles read queries against the distributed-generation
// capacity registry.
type CapacityRepository struct {
	db *sql.DB
}

// NewCapacityRepository creates a new capacity repository
func NewCapacityRepository(db *sql.DB) *CapacityRepository {
	return &CapacityRepository{db: db}
}

// utilityClause builds the WHERE clause for the optional case-insensitive
// utility substring filter. Only two shapes exist: no filter, or one LIKE
// predicate; filters are never interpolated into the SQL text.
func utilityClause(filter string) (string, []interface{}) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return "", nil
	}
	return " WHERE UPPER(utility) LIKE ?", []interface{}{"%" + strings.ToUpper(filter) + "%"}
}

// SumCapacityMW sums installed capacity across records matching the optional
// utility filter. The ok result is false when no matching rows exist.
func (r *CapacityRepository) SumCapacityMW(filter string) (float64, bool, error) {
	clause, args := utilityClause(filter)
	query := "SELECT SUM(capacity_mw) FROM dg_capacity" + clause

	var total sql.NullFloat64
	if err := r.db.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, false, fmt.Errorf("failed to sum capacity: %w", err)
	}
	if !total.Valid {
		return 0, false, nil
	}
	return total.Float64, true, nil
}

// ClassCapacities sums capacity per consumption class, largest first.
func (r *CapacityRepository) ClassCapacities(filter string) ([]models.ClassCapacity, error) {
	clause, args := utilityClause(filter)
	query := `SELECT class, SUM(capacity_mw) AS total_mw
		FROM dg_capacity` + clause + `
		GROUP BY class
		ORDER BY total_mw DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query class capacities: %w", err)
	}
	defer rows.Close()

	var result []models.ClassCapacity
	for rows.Next() {
		var cc models.ClassCapacity
		var total sql.NullFloat64
		if err := rows.Scan(&cc.Class, &total); err != nil {
			return nil, fmt.Errorf("failed to scan class capacity: %w", err)
		}
		cc.MW = total.Float64
		result = append(result, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate class capacities: %w", err)
	}

	return result, nil
}

// ListUtilities returns utility names ordered by total installed capacity
// descending, at most limit entries.
func (r *CapacityRepository) ListUtilities(limit int) ([]string, error) {
	query := `SELECT utility
		FROM dg_capacity
		GROUP BY utility
		ORDER BY SUM(capacity_mw) DESC
		LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query utilities: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan utility name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate utilities: %w", err)
	}

	return names, nil
}
