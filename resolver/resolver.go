// Package resolver normalizes free-text location input to a canonical
// Spanish city name. Strategies are tried in order and the first hit wins;
// input that no strategy recognizes passes through unchanged, since the
// airport lookup downstream has its own fallback.
package resolver

import (
	"context"
	"log"
	"strings"

	"viaplan/geo"
)

// Interpreter is the optional LLM fallback for input the local tables do not
// recognize.
type Interpreter interface {
	NormalizeLocation(ctx context.Context, input string) (string, error)
}

type strategy func(ctx context.Context, input string) (string, bool)

// Resolver applies the resolution chain: region capital, known airport city,
// LLM interpret, raw passthrough.
type Resolver struct {
	interpreter Interpreter
	strategies  []strategy
}

// New builds a Resolver. interpreter may be nil, in which case the LLM step
// is skipped.
func New(interpreter Interpreter) *Resolver {
	r := &Resolver{interpreter: interpreter}
	r.strategies = []strategy{r.regionCapital, r.knownAirportCity, r.interpret}
	return r
}

// Resolve returns the canonical city for the input. It never fails and never
// returns empty for non-empty input.
func (r *Resolver) Resolve(ctx context.Context, freeText string) string {
	input := strings.TrimSpace(freeText)
	if input == "" {
		return input
	}
	for _, try := range r.strategies {
		if city, ok := try(ctx, input); ok {
			return city
		}
	}
	return input
}

func (r *Resolver) regionCapital(_ context.Context, input string) (string, bool) {
	return geo.CapitalForRegion(input)
}

func (r *Resolver) knownAirportCity(_ context.Context, input string) (string, bool) {
	if geo.KnownCity(input) {
		return input, true
	}
	return "", false
}

func (r *Resolver) interpret(ctx context.Context, input string) (string, bool) {
	if r.interpreter == nil {
		return "", false
	}
	city, err := r.interpreter.NormalizeLocation(ctx, input)
	if err != nil {
		log.Printf("⚠️  interpret %q failed: %v", input, err)
		return "", false
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return "", false
	}
	return city, true
}
