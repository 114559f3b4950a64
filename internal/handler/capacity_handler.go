package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/suellenlima/energy-netload-monitor/internal/service"
	"github.com/suellenlima/energy-netload-monitor/pkg/response"
)

// CapacityHandler handles HTTP requests for capacity aggregations
type CapacityHandler struct {
	capacityService *service.CapacityService
}

// NewCapacityHandler creates a new capacity handler
func NewCapacityHandler(capacityService *service.CapacityService) *CapacityHandler {
	return &CapacityHandler{
		capacityService: capacityService,
	}
}

// GetConsumptionClasses handles GET /api/v1/analysis/consumption-classes
func (h *CapacityHandler) GetConsumptionClasses(c *gin.Context) {
	utility := c.Query("utility")

	classes, err := h.capacityService.ClassCapacities(utility)
	if err != nil {
		log.Printf("consumption class aggregation failed: %v", err)
		response.InternalError(c, "failed to aggregate consumption classes")
		return
	}

	response.Success(c, classes)
}

// GetUtilities handles GET /api/v1/utilities
func (h *CapacityHandler) GetUtilities(c *gin.Context) {
	utilities, err := h.capacityService.Utilities()
	if err != nil {
		log.Printf("utility listing failed: %v", err)
		response.InternalError(c, "failed to list utilities")
		return
	}

	response.Success(c, utilities)
}
