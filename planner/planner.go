// Package planner implements the itinerary aggregation and ranking engine:
// car baseline, admission threshold, airport cross-product flight fan-out,
// offer normalization, scoring and memoization.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"time"

	"viaplan/cache"
	"viaplan/domain"
	"viaplan/services"
)

const (
	// DefaultCacheTTL memoizes aggregated plans for six hours.
	DefaultCacheTTL = 6 * time.Hour

	// thresholdFactor bounds admissible flight durations relative to the
	// car baseline.
	thresholdFactor = 3

	maxOptions = 30
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// LocationResolver maps free-text input to a canonical city name.
type LocationResolver interface {
	Resolve(ctx context.Context, freeText string) string
}

// BaselineProvider computes the driving baseline between two cities.
type BaselineProvider interface {
	CarRoute(ctx context.Context, fromCity, toCity string) (domain.Baseline, error)
}

// AirportLocator returns ranked candidate airports for a city.
type AirportLocator interface {
	CityAirports(city string, limit int) []domain.Airport
}

// FlightSearcher runs one provider query for an airport pair and date.
type FlightSearcher interface {
	SearchFlightOffers(ctx context.Context, originIATA, destIATA, date string, adults int) (*services.FlightOffersResponse, error)
}

// StageError reports which pipeline stage a terminal failure happened in,
// so handlers can build a structured error response.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }
func (e *StageError) Unwrap() error { return e.Err }

// PlanRequest is the validated engine input.
type PlanRequest struct {
	From        string             `json:"from"`
	To          string             `json:"to"`
	Date        string             `json:"date"` // YYYY-MM-DD
	Adults      int                `json:"adults,omitempty"`
	Preferences domain.Preferences `json:"preferences,omitempty"`
}

// Dependency carries the collaborators of the engine; all of them are
// injected, the engine holds no globals.
type Dependency struct {
	Resolver        LocationResolver
	Baseline        BaselineProvider
	Airports        AirportLocator
	Flights         FlightSearcher
	Cache           cache.Store
	CacheTTL        time.Duration
	AirportsPerCity int
}

// Engine is the aggregation and ranking core.
type Engine struct {
	resolver        LocationResolver
	baseline        BaselineProvider
	airports        AirportLocator
	flights         FlightSearcher
	cache           cache.Store
	cacheTTL        time.Duration
	airportsPerCity int
}

// New builds an Engine from its dependencies.
func New(dep Dependency) *Engine {
	ttl := dep.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	perCity := dep.AirportsPerCity
	if perCity <= 0 {
		perCity = 2
	}
	return &Engine{
		resolver:        dep.Resolver,
		baseline:        dep.Baseline,
		airports:        dep.Airports,
		flights:         dep.Flights,
		cache:           dep.Cache,
		cacheTTL:        ttl,
		airportsPerCity: perCity,
	}
}

// planKey is the normalized request content the cache key derives from.
type planKey struct {
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	Date        string             `json:"date"`
	Adults      int                `json:"adults"`
	Preferences domain.Preferences `json:"preferences"`
}

// Plan runs the full aggregation pass for one request.
func (e *Engine) Plan(ctx context.Context, req PlanRequest) (*domain.Plan, error) {
	if err := validate(req); err != nil {
		return nil, &StageError{Stage: "validate", Err: err}
	}
	if req.Adults <= 0 {
		req.Adults = 1
	}

	fromNorm := e.resolver.Resolve(ctx, req.From)
	toNorm := e.resolver.Resolve(ctx, req.To)

	key, keyErr := cache.DeriveKey("plan", planKey{
		Origin:      fromNorm,
		Destination: toNorm,
		Date:        req.Date,
		Adults:      req.Adults,
		Preferences: req.Preferences,
	})
	if keyErr == nil {
		if raw, ok := e.cache.Get(ctx, key); ok {
			var stored domain.Plan
			if err := json.Unmarshal(raw, &stored); err == nil {
				// the cached flag lives on the wrapper, not in the payload
				stored.Cached = true
				return &stored, nil
			}
			log.Printf("⚠️  discarding undecodable cache entry %q", key)
		}
	}

	// the baseline call is network-bound; airport lookup runs alongside it
	type baselineResult struct {
		baseline domain.Baseline
		err      error
	}
	baselineCh := make(chan baselineResult, 1)
	go func() {
		b, err := e.baseline.CarRoute(ctx, fromNorm, toNorm)
		baselineCh <- baselineResult{baseline: b, err: err}
	}()

	originAirports := e.airports.CityAirports(fromNorm, e.airportsPerCity)
	destAirports := e.airports.CityAirports(toNorm, e.airportsPerCity)

	res := <-baselineCh
	if res.err != nil {
		return nil, &StageError{Stage: "baseline", Err: res.err}
	}
	baseline := res.baseline
	threshold := baseline.DurationMin * thresholdFactor

	var flightOffers []domain.Offer
	if !req.Preferences.Avoids(domain.ModeFlight) {
		flightOffers = e.searchAirportPairs(ctx, originAirports, destAirports, req.Date, req.Adults, threshold, req.Preferences.MaxTransfers)
	}

	options := make([]domain.Offer, 0, 1+len(flightOffers))
	options = append(options, groundOffer(baseline, fromNorm, toNorm))
	options = append(options, flightOffers...)
	for i := range options {
		options[i].Score = Score(options[i])
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})
	if len(options) > maxOptions {
		options = options[:maxOptions]
	}

	plan := &domain.Plan{
		Origin:                    fromNorm,
		Destination:               toNorm,
		Date:                      req.Date,
		Baseline:                  baseline,
		AdmissionThresholdMinutes: threshold,
		Options:                   options,
		Cached:                    false,
	}

	if keyErr == nil {
		if raw, err := json.Marshal(plan); err == nil {
			e.cache.Set(ctx, key, raw, e.cacheTTL)
		}
	}
	return plan, nil
}

// searchAirportPairs fans out one flight query per airport pair, waits for
// all of them to settle and keeps only the successes. Results are gathered
// back in pair order so identical inputs always yield identical offer order.
func (e *Engine) searchAirportPairs(ctx context.Context, origins, dests []domain.Airport, date string, adults, thresholdMin int, maxTransfers *int) []domain.Offer {
	type airportPair struct {
		origin domain.Airport
		dest   domain.Airport
	}
	var pairs []airportPair
	for _, o := range origins {
		for _, d := range dests {
			pairs = append(pairs, airportPair{origin: o, dest: d})
		}
	}
	if len(pairs) == 0 {
		return nil
	}

	type branchResult struct {
		idx  int
		resp *services.FlightOffersResponse
		err  error
	}
	resCh := make(chan branchResult, len(pairs))
	for i, p := range pairs {
		i, p := i, p
		go func() {
			resp, err := e.flights.SearchFlightOffers(ctx, p.origin.IATA, p.dest.IATA, date, adults)
			resCh <- branchResult{idx: i, resp: resp, err: err}
		}()
	}

	settled := make([]branchResult, len(pairs))
	for range pairs {
		res := <-resCh
		settled[res.idx] = res
	}

	var offers []domain.Offer
	for i, res := range settled {
		if res.err != nil {
			log.Printf("⚠️  flight search %s-%s failed: %v", pairs[i].origin.IATA, pairs[i].dest.IATA, res.err)
			continue
		}
		offers = append(offers, NormalizeOffers(res.resp, thresholdMin, maxTransfers)...)
	}
	return offers
}

// groundOffer builds the synthetic car offer. It is always admitted: it is
// the reference point the threshold derives from.
func groundOffer(baseline domain.Baseline, origin, destination string) domain.Offer {
	return domain.Offer{
		ID:              "car-baseline",
		Mode:            domain.ModeCar,
		Price:           baseline.CostEUR,
		Currency:        baseline.Currency,
		DurationMinutes: baseline.DurationMin,
		Stops:           0,
		Origin:          origin,
		Destination:     destination,
	}
}

func validate(req PlanRequest) error {
	if req.From == "" || req.To == "" || req.Date == "" {
		return fmt.Errorf("from, to and date are required (YYYY-MM-DD)")
	}
	if !dateRe.MatchString(req.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	return nil
}
