package ingest

import (
	"database/sql"
	"log"
	"math/rand"
	"time"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
	"github.com/suellenlima/energy-netload-monitor/internal/service"
	"github.com/suellenlima/energy-netload-monitor/internal/solar"
)

// DemoRegionLabel is the operator's official label for the southeast
// subsystem, as it appears in the load feed.
const DemoRegionLabel = "SUDESTE/CENTRO-OESTE"

const demoBaseLoadMW = 35000.0

// demoLoadFactor shapes the synthetic day: low overnight, afternoon ramp,
// evening peak.
func demoLoadFactor(hour int) float64 {
	switch {
	case hour < 6:
		return 0.8
	case hour < 12:
		return 1.0
	case hour < 18:
		return 1.1
	default:
		return 1.2
	}
}

// SeedDemo replaces the last `days` of load and weather data for the demo
// region with a plausible synthetic dataset: a typical daily load shape with
// noise, and a clear-sky irradiance curve. It exists so the dashboard renders
// something sensible before real feeds are ingested.
func SeedDemo(db *sql.DB, days int) error {
	now := time.Now().UTC().Truncate(time.Hour)
	start := now.Add(-time.Duration(days) * 24 * time.Hour)

	var loads []models.LoadSample
	var weather []models.IrradianceSample
	for ts := start; !ts.After(now); ts = ts.Add(time.Hour) {
		hour := ts.Hour()
		noise := rand.Float64()*1000 - 500
		loads = append(loads, models.LoadSample{
			Timestamp: ts,
			Region:    DemoRegionLabel,
			LoadMW:    demoBaseLoadMW*demoLoadFactor(hour) + noise,
		})
		// Clear-sky curve: the gap filler with a zeroed reading produces
		// exactly the daylight profile we want, and 0 overnight.
		weather = append(weather, models.IrradianceSample{
			Timestamp:     ts,
			Region:        service.CanonicalRegion(DemoRegionLabel),
			IrradianceWM2: solar.FillIrradiance(hour, 0),
		})
	}

	store := NewStore(db)
	if err := store.ReplaceLoadWindow(loads); err != nil {
		return err
	}
	if err := store.ReplaceWeatherWindow(weather); err != nil {
		return err
	}

	log.Printf("Seeded %d demo hours for %s", len(loads), DemoRegionLabel)
	return nil
}
