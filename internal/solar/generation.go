package solar

// SystemEfficiency folds panel and inverter losses into a single factor
// applied to the irradiance-scaled capacity. Fixed model parameter.
const SystemEfficiency = 0.85

// ReferenceIrradiance is the standard test condition irradiance (W/m²) at
// which installed capacity is rated.
const ReferenceIrradiance = 1000.0

// GenerationMW estimates the solar output of capacityMW of installed panels
// under the given irradiance. The result is clamped to be non-negative.
func GenerationMW(capacityMW, irradianceWM2 float64) float64 {
	mw := capacityMW * (irradianceWM2 / ReferenceIrradiance) * SystemEfficiency
	if mw < 0 {
		return 0
	}
	return mw
}
