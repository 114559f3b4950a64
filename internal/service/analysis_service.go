package service

import (
	"sort"
	"strings"

	"github.com/suellenlima/energy-netload-monitor/internal/metrics"
	"github.com/suellenlima/energy-netload-monitor/internal/models"
	"github.com/suellenlima/energy-netload-monitor/internal/solar"
)

const (
	// MinPlausibleCapacityMW is the floor below which a measured capacity sum
	// is treated as missing registry data.
	MinPlausibleCapacityMW = 10.0

	// Fallback capacities substituted when the registry has no plausible
	// data. Deliberate demo-robustness constants, always flagged as assumed.
	AssumedUtilityCapacityMW  = 3000.0
	AssumedRegionalCapacityMW = 15000.0

	// DefaultWindowHours is the estimation window.
	DefaultWindowHours = 24
)

// LoadStore is the read interface over the operator load feed joined with
// the weather feed.
type LoadStore interface {
	RecentLoadWithIrradiance(region string, windowHours int) ([]models.LoadIrradianceRow, error)
}

// CapacityStore is the read interface over the DG capacity registry.
type CapacityStore interface {
	SumCapacityMW(filter string) (float64, bool, error)
	ClassCapacities(filter string) ([]models.ClassCapacity, error)
	ListUtilities(limit int) ([]string, error)
}

// AnalysisService estimates the load hidden behind distributed generation.
type AnalysisService struct {
	loads      LoadStore
	capacities CapacityStore
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(loads LoadStore, capacities CapacityStore) *AnalysisService {
	return &AnalysisService{loads: loads, capacities: capacities}
}

// CanonicalRegion maps an operator region label to the canonical name used
// by the weather store. Any label containing "SUDESTE" collapses to
// "SUDESTE"; everything else passes through uppercased.
func CanonicalRegion(region string) string {
	upper := strings.ToUpper(strings.TrimSpace(region))
	if strings.Contains(upper, "SUDESTE") {
		return "SUDESTE"
	}
	return upper
}

// ResolveCapacity resolves installed solar capacity for the optional utility
// filter. When the registry sum is missing or below the plausibility floor,
// a fixed fallback is substituted and flagged so consumers can tell assumed
// capacity from measured capacity. Storage failures propagate.
func (s *AnalysisService) ResolveCapacity(utilityFilter string) (models.ResolvedCapacity, error) {
	sum, ok, err := s.capacities.SumCapacityMW(utilityFilter)
	if err != nil {
		return models.ResolvedCapacity{}, err
	}

	if !ok || sum < MinPlausibleCapacityMW {
		mw := AssumedRegionalCapacityMW
		if strings.TrimSpace(utilityFilter) != "" {
			mw = AssumedUtilityCapacityMW
		}
		return models.ResolvedCapacity{MW: mw, Assumed: true}, nil
	}

	return models.ResolvedCapacity{MW: sum}, nil
}

// EstimateHiddenLoad reconciles the observed load curve with the modeled
// output of behind-the-meter solar for the most recent window. An empty
// load window yields an empty result, not an error; store failures
// propagate so the caller can surface them instead of rendering them as
// "no data".
func (s *AnalysisService) EstimateHiddenLoad(region, utilityFilter string) ([]models.HiddenLoadPoint, error) {
	cap, err := s.ResolveCapacity(utilityFilter)
	if err != nil {
		return nil, err
	}

	origin := "measured"
	if cap.Assumed {
		origin = "assumed"
	}
	metrics.Estimations.WithLabelValues(origin).Inc()

	canonical := CanonicalRegion(region)
	rows, err := s.loads.RecentLoadWithIrradiance(canonical, DefaultWindowHours)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []models.HiddenLoadPoint{}, nil
	}

	// The feed returns newest-first; charting wants ascending time.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})

	points := make([]models.HiddenLoadPoint, 0, len(rows))
	for _, row := range rows {
		filled := solar.FillIrradiance(row.Timestamp.Hour(), row.IrradianceWM2)
		solarMW := solar.GenerationMW(cap.MW, filled)
		points = append(points, models.HiddenLoadPoint{
			Timestamp:        row.Timestamp,
			ObservedLoadMW:   row.LoadMW,
			RawIrradiance:    row.IrradianceWM2,
			FilledIrradiance: filled,
			SolarMW:          solarMW,
			TrueLoadMW:       row.LoadMW + solarMW,
		})
	}

	return points, nil
}
