package repository

import (
	"database/sql"
	"fmt"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

// PlantRepository handles read queries against the plant registry.
type PlantRepository struct {
	db *sql.DB
}

// NewPlantRepository creates a new plant repository
func NewPlantRepository(db *sql.DB) *PlantRepository {
	return &PlantRepository{db: db}
}

// ListPlants retrieves up to limit registered plants with coordinates,
// largest capacity first.
func (r *PlantRepository) ListPlants(limit int) ([]models.Plant, error) {
	query := `SELECT name, source, capacity_kw, latitude, longitude
		FROM plant_registry
		ORDER BY capacity_kw DESC
		LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query plants: %w", err)
	}
	defer rows.Close()

	var plants []models.Plant
	for rows.Next() {
		var p models.Plant
		if err := rows.Scan(&p.Name, &p.Source, &p.CapacityKW, &p.Latitude, &p.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan plant: %w", err)
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plants: %w", err)
	}

	return plants, nil
}
