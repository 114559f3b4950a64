package service

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
	"github.com/suellenlima/energy-netload-monitor/internal/spatial"
)

// DefaultPlantLimit bounds the GeoJSON payload size.
const DefaultPlantLimit = 100

// PlantStore is the read interface over the plant registry.
type PlantStore interface {
	ListPlants(limit int) ([]models.Plant, error)
}

// PlantService serves registered-plant geodata.
type PlantService struct {
	plants PlantStore
}

// NewPlantService creates a new plant service
func NewPlantService(plants PlantStore) *PlantService {
	return &PlantService{plants: plants}
}

// PlantsGeoJSON returns up to limit registered plants as a GeoJSON
// FeatureCollection of points.
func (s *PlantService) PlantsGeoJSON(limit int) (*geojson.FeatureCollection, error) {
	if limit <= 0 {
		limit = DefaultPlantLimit
	}

	plants, err := s.plants.ListPlants(limit)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, p := range plants {
		f := geojson.NewFeature(orb.Point{p.Longitude, p.Latitude})
		f.Properties["name"] = p.Name
		f.Properties["source"] = p.Source
		f.Properties["capacity_kw"] = p.CapacityKW
		fc.Append(f)
	}

	return fc, nil
}

// PlantsNear returns registered plants within radiusKM of a point, nearest
// first. Used to cross-check audit sites against the official registry.
func (s *PlantService) PlantsNear(lat, lon, radiusKM float64) ([]models.PlantDistance, error) {
	plants, err := s.plants.ListPlants(DefaultPlantLimit * 10)
	if err != nil {
		return nil, err
	}

	result := make([]models.PlantDistance, 0)
	for _, p := range plants {
		d := spatial.DistanceKM(lat, lon, p.Latitude, p.Longitude)
		if d <= radiusKM {
			result = append(result, models.PlantDistance{Plant: p, DistanceKM: d})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceKM < result[j].DistanceKM
	})

	return result, nil
}
