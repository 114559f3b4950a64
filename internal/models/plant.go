package models

// Plant is one registered generation plant from the regulator's registry,
// with its geographic position.
type Plant struct {
	Name       string  `json:"name" db:"name"`
	Source     string  `json:"source" db:"source"`
	CapacityKW float64 `json:"capacity_kw" db:"capacity_kw"`
	Latitude   float64 `json:"latitude" db:"latitude"`
	Longitude  float64 `json:"longitude" db:"longitude"`
}

// PlantDistance is a plant annotated with its distance from a query point.
type PlantDistance struct {
	Plant
	DistanceKM float64 `json:"distance_km"`
}
