package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/suellenlima/energy-netload-monitor/internal/service"
	"github.com/suellenlima/energy-netload-monitor/pkg/response"
)

// AuditHandler handles HTTP requests for fraud signals
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// GetFraudAlert handles GET /api/v1/analysis/fraud-alert
func (h *AuditHandler) GetFraudAlert(c *gin.Context) {
	utility := c.Query("utility")

	record, err := h.auditService.LatestFraudAlert(utility)
	if err != nil {
		log.Printf("fraud alert lookup failed: %v", err)
		response.InternalError(c, "failed to fetch fraud alert")
		return
	}
	if record == nil {
		response.Success(c, gin.H{})
		return
	}

	response.Success(c, record)
}
