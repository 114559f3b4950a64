package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

type fakeCapacityStore struct {
	sum        float64
	ok         bool
	err        error
	gotFilter  string
	classes    []models.ClassCapacity
	classesErr error
	utilities  []string
}

func (f *fakeCapacityStore) SumCapacityMW(filter string) (float64, bool, error) {
	f.gotFilter = filter
	return f.sum, f.ok, f.err
}

func (f *fakeCapacityStore) ClassCapacities(filter string) ([]models.ClassCapacity, error) {
	return f.classes, f.classesErr
}

func (f *fakeCapacityStore) ListUtilities(limit int) ([]string, error) {
	return f.utilities, nil
}

type fakeLoadStore struct {
	rows      []models.LoadIrradianceRow
	err       error
	gotRegion string
	gotWindow int
}

func (f *fakeLoadStore) RecentLoadWithIrradiance(region string, windowHours int) ([]models.LoadIrradianceRow, error) {
	f.gotRegion = region
	f.gotWindow = windowHours
	return f.rows, f.err
}

func hourUTC(day, hour int) time.Time {
	return time.Date(2026, 8, day, hour, 0, 0, 0, time.UTC)
}

func TestCanonicalRegion(t *testing.T) {
	assert.Equal(t, "SUDESTE", CanonicalRegion("SUDESTE/CENTRO-OESTE"))
	assert.Equal(t, "SUDESTE", CanonicalRegion("sudeste"))
	assert.Equal(t, "SUL", CanonicalRegion("  sul "))
	assert.Equal(t, "NORDESTE", CanonicalRegion("Nordeste"))
}

func TestResolveCapacity(t *testing.T) {
	t.Run("Fallback With Utility Filter", func(t *testing.T) {
		caps := &fakeCapacityStore{sum: 5, ok: true}
		svc := NewAnalysisService(&fakeLoadStore{}, caps)

		resolved, err := svc.ResolveCapacity("ACME")
		require.NoError(t, err)
		assert.Equal(t, 3000.0, resolved.MW)
		assert.True(t, resolved.Assumed)
	})

	t.Run("Fallback Without Filter", func(t *testing.T) {
		caps := &fakeCapacityStore{sum: 5, ok: true}
		svc := NewAnalysisService(&fakeLoadStore{}, caps)

		resolved, err := svc.ResolveCapacity("")
		require.NoError(t, err)
		assert.Equal(t, 15000.0, resolved.MW)
		assert.True(t, resolved.Assumed)
	})

	t.Run("Fallback When Registry Empty", func(t *testing.T) {
		caps := &fakeCapacityStore{ok: false}
		svc := NewAnalysisService(&fakeLoadStore{}, caps)

		resolved, err := svc.ResolveCapacity("  ")
		require.NoError(t, err)
		assert.Equal(t, 15000.0, resolved.MW)
		assert.True(t, resolved.Assumed)
	})

	t.Run("Measured Pass Through", func(t *testing.T) {
		caps := &fakeCapacityStore{sum: 50, ok: true}
		svc := NewAnalysisService(&fakeLoadStore{}, caps)

		resolved, err := svc.ResolveCapacity("ACME")
		require.NoError(t, err)
		assert.Equal(t, 50.0, resolved.MW)
		assert.False(t, resolved.Assumed)
	})

	t.Run("Store Failure Propagates", func(t *testing.T) {
		caps := &fakeCapacityStore{err: errors.New("connection refused")}
		svc := NewAnalysisService(&fakeLoadStore{}, caps)

		_, err := svc.ResolveCapacity("ACME")
		assert.Error(t, err)
	})
}

func TestEstimateHiddenLoad(t *testing.T) {
	t.Run("Empty Window Is Not An Error", func(t *testing.T) {
		svc := NewAnalysisService(&fakeLoadStore{}, &fakeCapacityStore{sum: 200, ok: true})

		points, err := svc.EstimateHiddenLoad("SUDESTE", "")
		require.NoError(t, err)
		assert.Empty(t, points)
		assert.NotNil(t, points)
	})

	t.Run("Load Store Failure Propagates", func(t *testing.T) {
		loads := &fakeLoadStore{err: errors.New("query timeout")}
		svc := NewAnalysisService(loads, &fakeCapacityStore{sum: 200, ok: true})

		_, err := svc.EstimateHiddenLoad("SUDESTE", "")
		assert.Error(t, err)
	})

	t.Run("Capacity Failure Propagates", func(t *testing.T) {
		svc := NewAnalysisService(&fakeLoadStore{}, &fakeCapacityStore{err: errors.New("down")})

		_, err := svc.EstimateHiddenLoad("SUDESTE", "")
		assert.Error(t, err)
	})

	t.Run("Sorts Ascending Regardless Of Store Order", func(t *testing.T) {
		loads := &fakeLoadStore{rows: []models.LoadIrradianceRow{
			{Timestamp: hourUTC(29, 14), LoadMW: 900},
			{Timestamp: hourUTC(29, 10), LoadMW: 800},
			{Timestamp: hourUTC(29, 12), LoadMW: 850},
			{Timestamp: hourUTC(28, 23), LoadMW: 700},
		}}
		svc := NewAnalysisService(loads, &fakeCapacityStore{sum: 200, ok: true})

		points, err := svc.EstimateHiddenLoad("SUDESTE", "")
		require.NoError(t, err)
		require.Len(t, points, 4)
		for i := 1; i < len(points); i++ {
			assert.True(t, points[i].Timestamp.After(points[i-1].Timestamp))
		}
	})

	t.Run("Reconciliation Identity And Non Negativity", func(t *testing.T) {
		loads := &fakeLoadStore{rows: []models.LoadIrradianceRow{
			{Timestamp: hourUTC(29, 3), LoadMW: 600, IrradianceWM2: 0},
			{Timestamp: hourUTC(29, 9), LoadMW: 700, IrradianceWM2: 320},
			{Timestamp: hourUTC(29, 13), LoadMW: 750, IrradianceWM2: 0},
			{Timestamp: hourUTC(29, 21), LoadMW: 950, IrradianceWM2: -20},
		}}
		svc := NewAnalysisService(loads, &fakeCapacityStore{sum: 120, ok: true})

		points, err := svc.EstimateHiddenLoad("SUDESTE", "")
		require.NoError(t, err)
		for _, p := range points {
			assert.GreaterOrEqual(t, p.SolarMW, 0.0)
			assert.Equal(t, p.ObservedLoadMW+p.SolarMW, p.TrueLoadMW)
		}
	})

	t.Run("Canonical Region Reaches The Store", func(t *testing.T) {
		loads := &fakeLoadStore{}
		svc := NewAnalysisService(loads, &fakeCapacityStore{sum: 200, ok: true})

		_, err := svc.EstimateHiddenLoad("sudeste/centro-oeste", "")
		require.NoError(t, err)
		assert.Equal(t, "SUDESTE", loads.gotRegion)
		assert.Equal(t, DefaultWindowHours, loads.gotWindow)
	})

	t.Run("Southeast Day Scenario", func(t *testing.T) {
		// 06:00 gap-filled to 0, 12:00 gap-filled to 800, 18:00 real 500
		// passes through. Capacity measured at 200 MW.
		loads := &fakeLoadStore{rows: []models.LoadIrradianceRow{
			{Timestamp: hourUTC(29, 6), LoadMW: 1000, IrradianceWM2: 0},
			{Timestamp: hourUTC(29, 12), LoadMW: 1000, IrradianceWM2: 0},
			{Timestamp: hourUTC(29, 18), LoadMW: 1000, IrradianceWM2: 500},
		}}
		svc := NewAnalysisService(loads, &fakeCapacityStore{sum: 200, ok: true})

		points, err := svc.EstimateHiddenLoad("SUDESTE", "")
		require.NoError(t, err)
		require.Len(t, points, 3)

		assert.InDelta(t, 0.0, points[0].SolarMW, 1e-9)
		assert.InDelta(t, 136.0, points[1].SolarMW, 1e-9)
		assert.InDelta(t, 85.0, points[2].SolarMW, 1e-9)

		assert.InDelta(t, 1000.0, points[0].TrueLoadMW, 1e-9)
		assert.InDelta(t, 1136.0, points[1].TrueLoadMW, 1e-9)
		assert.InDelta(t, 1085.0, points[2].TrueLoadMW, 1e-9)

		assert.Equal(t, 800.0, points[1].FilledIrradiance)
		assert.Equal(t, 0.0, points[1].RawIrradiance)
		assert.Equal(t, 500.0, points[2].FilledIrradiance)
	})
}
