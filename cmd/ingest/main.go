package main

import (
	"flag"
	"log"
	"os"

	"github.com/suellenlima/energy-netload-monitor/internal/config"
	"github.com/suellenlima/energy-netload-monitor/internal/database"
	"github.com/suellenlima/energy-netload-monitor/internal/ingest"
)

func main() {
	onsPath := flag.String("ons", "", "operator load CSV to ingest")
	capacityPath := flag.String("capacity", "", "DG capacity registry CSV to ingest")
	weatherPath := flag.String("weather", "", "hourly weather CSV to ingest")
	plantsPath := flag.String("plants", "", "plant registry CSV to ingest")
	demo := flag.Bool("demo", false, "seed synthetic demo load and weather")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	store := ingest.NewStore(db)
	ran := false

	if *onsPath != "" {
		ran = true
		f, err := os.Open(*onsPath)
		if err != nil {
			log.Fatal("Failed to open load CSV:", err)
		}
		samples, parseErr := ingest.ParseLoadCSV(f)
		f.Close()
		if parseErr != nil && samples == nil {
			log.Fatal("Failed to parse load CSV:", parseErr)
		}
		if parseErr != nil {
			log.Printf("load CSV: skipped rows: %v", parseErr)
		}
		if err := store.ReplaceLoadWindow(samples); err != nil {
			log.Fatal("Failed to load operator load rows:", err)
		}
		log.Printf("Ingested %d load samples", len(samples))
	}

	if *weatherPath != "" {
		ran = true
		f, err := os.Open(*weatherPath)
		if err != nil {
			log.Fatal("Failed to open weather CSV:", err)
		}
		samples, parseErr := ingest.ParseWeatherCSV(f)
		f.Close()
		if parseErr != nil && samples == nil {
			log.Fatal("Failed to parse weather CSV:", parseErr)
		}
		if parseErr != nil {
			log.Printf("weather CSV: skipped rows: %v", parseErr)
		}
		if err := store.ReplaceWeatherWindow(samples); err != nil {
			log.Fatal("Failed to load weather rows:", err)
		}
		log.Printf("Ingested %d weather samples", len(samples))
	}

	if *capacityPath != "" {
		ran = true
		f, err := os.Open(*capacityPath)
		if err != nil {
			log.Fatal("Failed to open capacity CSV:", err)
		}
		records, parseErr := ingest.ParseCapacityCSV(f)
		f.Close()
		if parseErr != nil && records == nil {
			log.Fatal("Failed to parse capacity CSV:", parseErr)
		}
		if parseErr != nil {
			log.Printf("capacity CSV: skipped rows: %v", parseErr)
		}
		if err := store.ReplaceCapacity(records); err != nil {
			log.Fatal("Failed to load capacity rows:", err)
		}
		log.Printf("Ingested %d capacity records", len(records))
	}

	if *plantsPath != "" {
		ran = true
		f, err := os.Open(*plantsPath)
		if err != nil {
			log.Fatal("Failed to open plant CSV:", err)
		}
		plants, parseErr := ingest.ParsePlantsCSV(f)
		f.Close()
		if parseErr != nil && plants == nil {
			log.Fatal("Failed to parse plant CSV:", parseErr)
		}
		if parseErr != nil {
			log.Printf("plant CSV: skipped rows: %v", parseErr)
		}
		if err := store.ReplacePlants(plants); err != nil {
			log.Fatal("Failed to load plant rows:", err)
		}
		log.Printf("Ingested %d plants", len(plants))
	}

	if *demo {
		ran = true
		if err := ingest.SeedDemo(db, 3); err != nil {
			log.Fatal("Failed to seed demo data:", err)
		}
	}

	if !ran {
		flag.Usage()
		os.Exit(2)
	}
}
