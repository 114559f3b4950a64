package main

import (
	"errors"
	"log"

	"github.com/suellenlima/energy-netload-monitor/internal/api"
	"github.com/suellenlima/energy-netload-monitor/internal/config"
	"github.com/suellenlima/energy-netload-monitor/internal/database"
	"github.com/suellenlima/energy-netload-monitor/internal/handler"
	"github.com/suellenlima/energy-netload-monitor/internal/repository"
	"github.com/suellenlima/energy-netload-monitor/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	handlers := &api.Handlers{}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		// Keep serving so the health probe can report the misconfiguration.
		log.Printf("WARNING: starting degraded, data routes disabled: %v", err)
		handlers.Health = handler.NewHealthHandler(nil, err)
	case err != nil:
		log.Fatal("Failed to open database:", err)
	default:
		defer db.Close()

		if err := database.EnsureSchema(db); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}

		loadRepo := repository.NewLoadRepository(db)
		capacityRepo := repository.NewCapacityRepository(db)
		auditRepo := repository.NewAuditRepository(db)
		plantRepo := repository.NewPlantRepository(db)

		handlers.Health = handler.NewHealthHandler(db, nil)
		handlers.Analysis = handler.NewAnalysisHandler(service.NewAnalysisService(loadRepo, capacityRepo))
		handlers.Capacity = handler.NewCapacityHandler(service.NewCapacityService(capacityRepo))
		handlers.Audit = handler.NewAuditHandler(service.NewAuditService(auditRepo))
		handlers.Plant = handler.NewPlantHandler(service.NewPlantService(plantRepo))
		handlers.Admin = handler.NewAdminHandler(db)
	}

	router := api.SetupRouter(cfg, handlers)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
