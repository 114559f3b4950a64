package handler

import (
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/suellenlima/energy-netload-monitor/internal/ingest"
	"github.com/suellenlima/energy-netload-monitor/pkg/response"
)

// DemoSeedDays is the window regenerated by the demo seeder.
const DemoSeedDays = 3

// AdminHandler handles privileged maintenance requests
type AdminHandler struct {
	db *sql.DB
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *sql.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// SeedDemo handles POST /api/v1/admin/seed-demo
func (h *AdminHandler) SeedDemo(c *gin.Context) {
	if err := ingest.SeedDemo(h.db, DemoSeedDays); err != nil {
		log.Printf("demo seeding failed: %v", err)
		response.InternalError(c, "failed to seed demo data")
		return
	}

	response.Success(c, gin.H{"seeded_days": DemoSeedDays})
}
