package models

import "time"

// LoadSample is one hourly load reading from the grid operator feed.
// The feed returns rows newest-first; consumers re-sort ascending before use.
type LoadSample struct {
	Timestamp time.Time `json:"timestamp" db:"time"`
	Region    string    `json:"region" db:"subsystem"`
	LoadMW    float64   `json:"load_mw" db:"load_mw"`
}

// IrradianceSample is one hourly weather reading for a region.
type IrradianceSample struct {
	Timestamp     time.Time `json:"timestamp" db:"time"`
	Region        string    `json:"region" db:"subsystem"`
	IrradianceWM2 float64   `json:"irradiance_wm2" db:"irradiance_wm2"`
	TemperatureC  *float64  `json:"temperature_c,omitempty" db:"temperature_c"`
}

// LoadIrradianceRow is the hour-truncated left join of a load sample with its
// matching irradiance reading. Irradiance is 0 when no weather row exists for
// that hour.
type LoadIrradianceRow struct {
	Timestamp     time.Time
	LoadMW        float64
	IrradianceWM2 float64
}

// HiddenLoadPoint is the estimator output for one hour: the observed load
// plus the modeled behind-the-meter solar generation that the operator
// cannot see.
type HiddenLoadPoint struct {
	Timestamp        time.Time `json:"timestamp"`
	ObservedLoadMW   float64   `json:"observed_load_mw"`
	RawIrradiance    float64   `json:"raw_irradiance_wm2"`
	FilledIrradiance float64   `json:"filled_irradiance_wm2"`
	SolarMW          float64   `json:"estimated_solar_mw"`
	TrueLoadMW       float64   `json:"estimated_true_load_mw"`
}
