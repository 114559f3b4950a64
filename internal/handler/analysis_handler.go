package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/suellenlima/energy-netload-monitor/internal/service"
	"github.com/suellenlima/energy-netload-monitor/pkg/response"
)

// AnalysisHandler handles HTTP requests for hidden-load estimation
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// GetHiddenLoad handles GET /api/v1/analysis/hidden-load
//
// Store failures surface as a 500 with a generic message; an empty window is
// a successful response with an empty series. The two must stay
// distinguishable for the consuming dashboard.
func (h *AnalysisHandler) GetHiddenLoad(c *gin.Context) {
	region := c.DefaultQuery("region", "SUDESTE")
	utility := c.Query("utility")

	points, err := h.analysisService.EstimateHiddenLoad(region, utility)
	if err != nil {
		log.Printf("hidden-load estimation failed: %v", err)
		response.InternalError(c, "failed to estimate hidden load")
		return
	}

	response.Success(c, points)
}

// GetCapacity handles GET /api/v1/analysis/capacity
func (h *AnalysisHandler) GetCapacity(c *gin.Context) {
	utility := c.Query("utility")

	resolved, err := h.analysisService.ResolveCapacity(utility)
	if err != nil {
		log.Printf("capacity resolution failed: %v", err)
		response.InternalError(c, "failed to resolve capacity")
		return
	}

	response.Success(c, resolved)
}
