package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suellenlima/energy-netload-monitor/internal/service"
	"github.com/suellenlima/energy-netload-monitor/pkg/response"
)

// PlantHandler handles HTTP requests for registered-plant geodata
type PlantHandler struct {
	plantService *service.PlantService
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler(plantService *service.PlantService) *PlantHandler {
	return &PlantHandler{
		plantService: plantService,
	}
}

// GetPlantsGeoJSON handles GET /api/v1/plants/geo
func (h *PlantHandler) GetPlantsGeoJSON(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "100")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	fc, err := h.plantService.PlantsGeoJSON(limit)
	if err != nil {
		log.Printf("plant geodata lookup failed: %v", err)
		response.InternalError(c, "failed to fetch plant geodata")
		return
	}

	// GeoJSON consumers expect a bare FeatureCollection, not the envelope.
	c.JSON(http.StatusOK, fc)
}

// GetPlantsNear handles GET /api/v1/plants/near
func (h *PlantHandler) GetPlantsNear(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lat parameter")
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lon parameter")
		return
	}
	radiusKM, err := strconv.ParseFloat(c.DefaultQuery("radius_km", "50"), 64)
	if err != nil || radiusKM <= 0 {
		response.BadRequest(c, "Invalid radius_km parameter")
		return
	}

	plants, err := h.plantService.PlantsNear(lat, lon, radiusKM)
	if err != nil {
		log.Printf("plant proximity lookup failed: %v", err)
		response.InternalError(c, "failed to fetch nearby plants")
		return
	}

	response.Success(c, plants)
}
