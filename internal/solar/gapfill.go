package solar

import "math"

const (
	// DaylightStartHour and DaylightEndHour bound the window (inclusive) in
	// which a degenerate sensor reading is replaced by the synthetic curve.
	DaylightStartHour = 6
	DaylightEndHour   = 18

	// DegenerateIrradiance is the threshold below which a daytime reading is
	// treated as a sensor/feed gap rather than real weather.
	DegenerateIrradiance = 10.0

	// PeakIrradiance is the amplitude of the synthetic clear-sky curve (W/m²),
	// reached at solar noon.
	PeakIrradiance = 800.0
)

// FillIrradiance returns a plausible irradiance value for the given hour of
// day. When the raw reading falls inside the daylight window but below the
// degenerate threshold, a half-sine clear-sky curve is substituted so that a
// weather-feed gap does not zero out the daytime solar estimate. All other
// readings pass through unchanged, including correct nighttime zeros.
//
// The synthetic curve is a heuristic, not a measurement; outputs built from
// it must be labeled as modeled values.
func FillIrradiance(hour int, raw float64) float64 {
	if hour >= DaylightStartHour && hour <= DaylightEndHour && raw < DegenerateIrradiance {
		return PeakIrradiance * math.Sin(math.Pi*float64(hour-DaylightStartHour)/12)
	}
	return raw
}
