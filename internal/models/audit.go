package models

import "time"

// Audit status values as stored by the visual-audit pipeline.
const (
	AuditStatusAlert = "ALERT"
	AuditStatusClear = "CLEAR"
)

// UnclassifiedAIClass is the sentinel used when the audit row carries no
// AI-estimated class.
const UnclassifiedAIClass = "Unclassified"

// AuditRecord is one visual-audit inspection of a suspected installation.
type AuditRecord struct {
	InspectionDate time.Time `json:"inspection_date" db:"inspection_date"`
	Latitude       float64   `json:"latitude" db:"latitude"`
	Longitude      float64   `json:"longitude" db:"longitude"`
	Utility        string    `json:"utility" db:"utility"`
	AIClass        string    `json:"ai_class" db:"ai_class"`
	FraudKW        float64   `json:"fraud_kw" db:"fraud_kw"`
	OfficialKW     float64   `json:"official_kw" db:"official_kw"`
	Status         string    `json:"status" db:"status"`
}
