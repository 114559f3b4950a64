package handler

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process and store health
type HealthHandler struct {
	db      *sql.DB
	initErr error
}

// NewHealthHandler creates a new health handler. initErr carries a startup
// configuration failure; when set, probes report it instead of a store
// status so operators can tell bad configuration from a transient fault.
func NewHealthHandler(db *sql.DB, initErr error) *HealthHandler {
	return &HealthHandler{db: db, initErr: initErr}
}

// GetRoot handles GET /
func (h *HealthHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Energy Netload Monitor API is running"})
}

// GetHealth handles GET /health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	if h.initErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"detail": h.initErr.Error(),
		})
		return
	}

	var one int
	if err := h.db.QueryRow("SELECT 1").Scan(&one); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"detail": "store unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db_response": one})
}
