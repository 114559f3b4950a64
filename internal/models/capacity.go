package models

// CapacityRecord is one registered distributed-generation entry, already
// aggregated by (utility, class, state) during ingestion.
type CapacityRecord struct {
	Utility    string  `json:"utility" db:"utility"`
	Class      string  `json:"class" db:"class"`
	StateCode  string  `json:"state_code" db:"state_code"`
	Source     string  `json:"source" db:"source"`
	CapacityMW float64 `json:"capacity_mw" db:"capacity_mw"`
}

// ResolvedCapacity is the installed solar capacity used by the estimator.
// Assumed marks the fallback constant substituted when the registry has no
// plausible data for the query; consumers must not present it as telemetry.
type ResolvedCapacity struct {
	MW      float64 `json:"mw"`
	Assumed bool    `json:"assumed"`
}

// ClassCapacity is the summed capacity for one consumption class.
type ClassCapacity struct {
	Class string  `json:"class"`
	MW    float64 `json:"mw"`
}
