package service

import (
	"math"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

// UtilityListLimit caps the utility dropdown size.
const UtilityListLimit = 50

// CapacityService exposes registry aggregations for the presentation layer.
type CapacityService struct {
	capacities CapacityStore
}

// NewCapacityService creates a new capacity service
func NewCapacityService(capacities CapacityStore) *CapacityService {
	return &CapacityService{capacities: capacities}
}

// ClassCapacities sums registered capacity by consumption class, largest
// first, rounded to 2 decimals for display.
func (s *CapacityService) ClassCapacities(utilityFilter string) ([]models.ClassCapacity, error) {
	classes, err := s.capacities.ClassCapacities(utilityFilter)
	if err != nil {
		return nil, err
	}

	for i := range classes {
		classes[i].MW = math.Round(classes[i].MW*100) / 100
	}
	return classes, nil
}

// Utilities lists utility names by installed capacity descending, prefixed
// with an empty entry meaning "no selection" in the consuming dropdown.
func (s *CapacityService) Utilities() ([]string, error) {
	names, err := s.capacities.ListUtilities(UtilityListLimit)
	if err != nil {
		return nil, err
	}
	return append([]string{""}, names...), nil
}
