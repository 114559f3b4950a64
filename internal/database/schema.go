package database

import (
	"database/sql"
	"fmt"
)

// Schema bootstrap for the four read stores. Full migration tooling is out
// of scope; the DDL is idempotent and applied at startup and before ingest.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS operator_load (
		time INTEGER NOT NULL,
		subsystem TEXT NOT NULL,
		load_mw REAL NOT NULL,
		UNIQUE (time, subsystem)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_operator_load_time ON operator_load (time)`,
	`CREATE TABLE IF NOT EXISTS weather_observed (
		time INTEGER NOT NULL,
		subsystem TEXT NOT NULL,
		irradiance_wm2 REAL,
		temperature_c REAL,
		UNIQUE (time, subsystem)
	)`,
	`CREATE TABLE IF NOT EXISTS dg_capacity (
		utility TEXT NOT NULL,
		class TEXT NOT NULL,
		state_code TEXT NOT NULL,
		source TEXT NOT NULL,
		capacity_mw REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_dg_capacity_utility ON dg_capacity (utility)`,
	`CREATE TABLE IF NOT EXISTS visual_audit (
		inspection_date INTEGER NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		utility TEXT NOT NULL,
		ai_class TEXT,
		fraud_kw REAL NOT NULL,
		official_kw REAL NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS plant_registry (
		name TEXT NOT NULL,
		source TEXT NOT NULL,
		capacity_kw REAL NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL
	)`,
}

// EnsureSchema creates any missing tables and indexes.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
