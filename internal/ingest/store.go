package ingest

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/suellenlima/energy-netload-monitor/internal/database"
	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

// Store writes parsed rows into the backing store. Each Replace method runs
// in a single transaction: the affected window or table is cleared and the
// new rows inserted, so readers never observe a half-loaded batch.
type Store struct {
	db *sql.DB
}

// NewStore creates a new ingest store
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ReplaceLoadWindow deletes per-region time windows covered by the samples
// and inserts the new rows.
func (s *Store) ReplaceLoadWindow(samples []models.LoadSample) error {
	if len(samples) == 0 {
		log.Printf("load ingest: no rows to load")
		return nil
	}

	return database.Transaction(s.db, func(tx *sql.Tx) error {
		for region, window := range windowsByRegion(samples) {
			_, err := tx.Exec(
				"DELETE FROM operator_load WHERE subsystem = ? AND time >= ? AND time <= ?",
				region, window.start, window.end,
			)
			if err != nil {
				return fmt.Errorf("failed to clear load window: %w", err)
			}
		}

		stmt, err := tx.Prepare("INSERT INTO operator_load (time, subsystem, load_mw) VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare load insert: %w", err)
		}
		defer stmt.Close()

		for _, sample := range samples {
			if _, err := stmt.Exec(sample.Timestamp.Unix(), sample.Region, sample.LoadMW); err != nil {
				return fmt.Errorf("failed to insert load sample: %w", err)
			}
		}
		return nil
	})
}

// ReplaceWeatherWindow deletes per-region time windows covered by the
// samples and inserts the new rows.
func (s *Store) ReplaceWeatherWindow(samples []models.IrradianceSample) error {
	if len(samples) == 0 {
		log.Printf("weather ingest: no rows to load")
		return nil
	}

	regions := make(map[string]window)
	for _, sample := range samples {
		extendWindow(regions, sample.Region, sample.Timestamp.Unix())
	}

	return database.Transaction(s.db, func(tx *sql.Tx) error {
		for region, w := range regions {
			_, err := tx.Exec(
				"DELETE FROM weather_observed WHERE subsystem = ? AND time >= ? AND time <= ?",
				region, w.start, w.end,
			)
			if err != nil {
				return fmt.Errorf("failed to clear weather window: %w", err)
			}
		}

		stmt, err := tx.Prepare("INSERT INTO weather_observed (time, subsystem, irradiance_wm2, temperature_c) VALUES (?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare weather insert: %w", err)
		}
		defer stmt.Close()

		for _, sample := range samples {
			var temp interface{}
			if sample.TemperatureC != nil {
				temp = *sample.TemperatureC
			}
			if _, err := stmt.Exec(sample.Timestamp.Unix(), sample.Region, sample.IrradianceWM2, temp); err != nil {
				return fmt.Errorf("failed to insert weather sample: %w", err)
			}
		}
		return nil
	})
}

// ReplaceCapacity refreshes the whole DG capacity table.
func (s *Store) ReplaceCapacity(records []models.CapacityRecord) error {
	return database.Transaction(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM dg_capacity"); err != nil {
			return fmt.Errorf("failed to clear capacity table: %w", err)
		}

		stmt, err := tx.Prepare("INSERT INTO dg_capacity (utility, class, state_code, source, capacity_mw) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare capacity insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			if _, err := stmt.Exec(rec.Utility, rec.Class, rec.StateCode, rec.Source, rec.CapacityMW); err != nil {
				return fmt.Errorf("failed to insert capacity record: %w", err)
			}
		}
		return nil
	})
}

// ReplacePlants refreshes the whole plant registry table.
func (s *Store) ReplacePlants(plants []models.Plant) error {
	return database.Transaction(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM plant_registry"); err != nil {
			return fmt.Errorf("failed to clear plant registry: %w", err)
		}

		stmt, err := tx.Prepare("INSERT INTO plant_registry (name, source, capacity_kw, latitude, longitude) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare plant insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range plants {
			if _, err := stmt.Exec(p.Name, p.Source, p.CapacityKW, p.Latitude, p.Longitude); err != nil {
				return fmt.Errorf("failed to insert plant: %w", err)
			}
		}
		return nil
	})
}

type window struct {
	start int64
	end   int64
}

func extendWindow(regions map[string]window, region string, ts int64) {
	w, ok := regions[region]
	if !ok {
		regions[region] = window{start: ts, end: ts}
		return
	}
	if ts < w.start {
		w.start = ts
	}
	if ts > w.end {
		w.end = ts
	}
	regions[region] = w
}

func windowsByRegion(samples []models.LoadSample) map[string]window {
	regions := make(map[string]window)
	for _, sample := range samples {
		extendWindow(regions, sample.Region, sample.Timestamp.Unix())
	}
	return regions
}
