package service

import "github.com/suellenlima/energy-netload-monitor/internal/models"

// AuditStore is the read interface over the visual-audit store.
type AuditStore interface {
	LatestAudit(filter string) (*models.AuditRecord, error)
}

// AuditService selects fraud signals from visual audits.
type AuditService struct {
	audits AuditStore
}

// NewAuditService creates a new audit service
func NewAuditService(audits AuditStore) *AuditService {
	return &AuditService{audits: audits}
}

// LatestFraudAlert returns the most recent audit record for the optional
// utility filter, or nil when nothing matches.
func (s *AuditService) LatestFraudAlert(utilityFilter string) (*models.AuditRecord, error) {
	return s.audits.LatestAudit(utilityFilter)
}
