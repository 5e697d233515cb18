package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoutingStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/geocode/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "ES", q.Get("boundary.country"))
		assert.True(t, strings.HasSuffix(q.Get("text"), ", España"))
		require.NotEmpty(t, q.Get("api_key"))

		lon, lat := -1.6440, 42.8125 // Pamplona
		if strings.HasPrefix(q.Get("text"), "Madrid") {
			lon, lat = -3.7038, 40.4168
		}
		fmt.Fprintf(w, `{"features":[{"geometry":{"coordinates":[%f,%f]}}]}`, lon, lat)
	})

	mux.HandleFunc("/v2/directions/driving-car", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/geo+json", r.Header.Get("Accept"))
		require.NotEmpty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.URL.Query().Get("start"))
		assert.NotEmpty(t, r.URL.Query().Get("end"))

		fmt.Fprint(w, `{"features":[{"properties":{"summary":{"distance":400000,"duration":14400}}}]}`)
	})

	return httptest.NewServer(mux)
}

func TestCarRoute(t *testing.T) {
	srv := newRoutingStub(t)
	defer srv.Close()

	client := NewRoutingClientWithBaseURL("test-key", srv.URL)
	baseline, err := client.CarRoute(context.Background(), "Pamplona", "Madrid")
	require.NoError(t, err)

	assert.Equal(t, 400.0, baseline.DistanceKm)
	assert.Equal(t, 240, baseline.DurationMin)
	assert.Equal(t, 42.9, baseline.CostEUR)
	assert.Equal(t, "EUR", baseline.Currency)
}

func TestCarRouteGeocodeMiss(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geocode/search", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"features":[]}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewRoutingClientWithBaseURL("test-key", srv.URL)
	_, err := client.CarRoute(context.Background(), "Nowhere", "Madrid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geocode")
}

func TestCarRouteHTTPError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geocode/search", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"features":[{"geometry":{"coordinates":[-3.7,40.4]}}]}`)
	})
	mux.HandleFunc("/v2/directions/driving-car", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewRoutingClientWithBaseURL("test-key", srv.URL)
	_, err := client.CarRoute(context.Background(), "Pamplona", "Madrid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directions HTTP 502")
}

func TestCarRouteUnconfiguredKey(t *testing.T) {
	client := NewRoutingClient("")
	_, err := client.CarRoute(context.Background(), "Pamplona", "Madrid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORS_API_KEY")
}

func TestEstimateCarCost(t *testing.T) {
	assert.Equal(t, 42.9, EstimateCarCost(400))
	assert.Equal(t, 0.0, EstimateCarCost(0))
	// rounded to cents
	assert.Equal(t, 13.13, EstimateCarCost(122.4))
}
