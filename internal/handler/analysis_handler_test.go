package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
	"github.com/suellenlima/energy-netload-monitor/internal/service"
	"github.com/suellenlima/energy-netload-monitor/pkg/response"
)

type stubLoadStore struct {
	rows []models.LoadIrradianceRow
	err  error
}

func (s *stubLoadStore) RecentLoadWithIrradiance(region string, windowHours int) ([]models.LoadIrradianceRow, error) {
	return s.rows, s.err
}

type stubCapacityStore struct {
	sum float64
	ok  bool
	err error
}

func (s *stubCapacityStore) SumCapacityMW(filter string) (float64, bool, error) {
	return s.sum, s.ok, s.err
}

func (s *stubCapacityStore) ClassCapacities(filter string) ([]models.ClassCapacity, error) {
	return nil, nil
}

func (s *stubCapacityStore) ListUtilities(limit int) ([]string, error) {
	return nil, nil
}

func performRequest(h *AnalysisHandler, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/analysis/hidden-load", h.GetHiddenLoad)
	r.GET("/api/v1/analysis/capacity", h.GetCapacity)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetHiddenLoad(t *testing.T) {
	t.Run("Empty Window Is 200 With Empty Series", func(t *testing.T) {
		svc := service.NewAnalysisService(&stubLoadStore{}, &stubCapacityStore{sum: 200, ok: true})
		w := performRequest(NewAnalysisHandler(svc), "/api/v1/analysis/hidden-load?region=SUDESTE")

		require.Equal(t, http.StatusOK, w.Code)

		var body response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 0, body.Code)
		points, ok := body.Data.([]interface{})
		require.True(t, ok)
		assert.Empty(t, points)
	})

	t.Run("Store Failure Is 500 With Generic Message", func(t *testing.T) {
		svc := service.NewAnalysisService(
			&stubLoadStore{err: errors.New("dial tcp: connection refused")},
			&stubCapacityStore{sum: 200, ok: true},
		)
		w := performRequest(NewAnalysisHandler(svc), "/api/v1/analysis/hidden-load")

		require.Equal(t, http.StatusInternalServerError, w.Code)

		var body response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "failed to estimate hidden load", body.Message)
		// The raw store error never leaks to the client.
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestGetCapacity(t *testing.T) {
	svc := service.NewAnalysisService(&stubLoadStore{}, &stubCapacityStore{sum: 5, ok: true})
	w := performRequest(NewAnalysisHandler(svc), "/api/v1/analysis/capacity?utility=ACME")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.ResolvedCapacity `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3000.0, body.Data.MW)
	assert.True(t, body.Data.Assumed)
}
