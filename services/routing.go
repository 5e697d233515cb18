package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"viaplan/domain"
)

// Simple running-cost model for the car baseline.
const (
	fuelLitersPer100Km = 6.5
	fuelEURPerLiter    = 1.65
)

// RoutingClient resolves city names to coordinates and computes driving
// routes via OpenRouteService. Geocoding is constrained to Spain.
type RoutingClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewRoutingClient builds a client for the public OpenRouteService API.
func NewRoutingClient(apiKey string) *RoutingClient {
	return &RoutingClient{
		apiKey:     apiKey,
		baseURL:    "https://api.openrouteservice.org",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewRoutingClientWithBaseURL is used by tests to point at a stub server.
func NewRoutingClientWithBaseURL(apiKey, baseURL string) *RoutingClient {
	c := NewRoutingClient(apiKey)
	c.baseURL = baseURL
	return c
}

type coords struct {
	lat float64
	lon float64
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // lon, lat
		} `json:"geometry"`
	} `json:"features"`
}

func (c *RoutingClient) geocode(ctx context.Context, place string) (coords, error) {
	if c.apiKey == "" {
		return coords{}, fmt.Errorf("ORS_API_KEY not configured")
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("text", place+", España")
	q.Set("boundary.country", "ES")
	q.Set("size", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/geocode/search?"+q.Encode(), nil)
	if err != nil {
		return coords{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return coords{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return coords{}, fmt.Errorf("geocode HTTP %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return coords{}, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(decoded.Features) == 0 || len(decoded.Features[0].Geometry.Coordinates) < 2 {
		return coords{}, fmt.Errorf("no geocode result for %q", place)
	}

	xy := decoded.Features[0].Geometry.Coordinates
	return coords{lat: xy[1], lon: xy[0]}, nil
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// CarRoute geocodes both cities concurrently and returns the driving
// baseline between them. Any geocoding or routing failure is returned as an
// error: the baseline gates the whole comparison and has no fallback.
func (c *RoutingClient) CarRoute(ctx context.Context, fromCity, toCity string) (domain.Baseline, error) {
	type geocodeResult struct {
		place string
		pt    coords
		err   error
	}

	resCh := make(chan geocodeResult, 2)
	for _, place := range []string{fromCity, toCity} {
		place := place
		go func() {
			pt, err := c.geocode(ctx, place)
			resCh <- geocodeResult{place: place, pt: pt, err: err}
		}()
	}

	points := make(map[string]coords, 2)
	for i := 0; i < 2; i++ {
		res := <-resCh
		if res.err != nil {
			return domain.Baseline{}, fmt.Errorf("geocode %q: %w", res.place, res.err)
		}
		points[res.place] = res.pt
	}
	origin, dest := points[fromCity], points[toCity]

	q := url.Values{}
	q.Set("start", fmt.Sprintf("%f,%f", origin.lon, origin.lat))
	q.Set("end", fmt.Sprintf("%f,%f", dest.lon, dest.lat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v2/directions/driving-car?"+q.Encode(), nil)
	if err != nil {
		return domain.Baseline{}, err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Baseline{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Baseline{}, fmt.Errorf("directions HTTP %d", resp.StatusCode)
	}

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Baseline{}, fmt.Errorf("failed to decode directions response: %w", err)
	}
	if len(decoded.Features) == 0 {
		return domain.Baseline{}, fmt.Errorf("no route between %q and %q", fromCity, toCity)
	}

	summary := decoded.Features[0].Properties.Summary
	km := math.Round(summary.Distance / 1000)
	durationMin := int(math.Round(summary.Duration / 60))

	return domain.Baseline{
		DistanceKm:  km,
		DurationMin: durationMin,
		CostEUR:     EstimateCarCost(km),
		Currency:    "EUR",
	}, nil
}

// EstimateCarCost applies the fuel-cost model to a distance, rounded to
// cents.
func EstimateCarCost(km float64) float64 {
	cost := km * (fuelLitersPer100Km / 100) * fuelEURPerLiter
	return math.Round(cost*100) / 100
}
