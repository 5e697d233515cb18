package planner

import (
	"math"

	"viaplan/domain"
)

// Ranking weights. They must sum to 1.0.
const (
	priceWeight    = 0.40
	durationWeight = 0.35
	stopsWeight    = 0.15
	riskWeight     = 0.10
)

// Linear normalization caps. Values past the cap saturate at 1 (worst).
const (
	priceCapEUR    = 200.0
	durationCapMin = 300.0
	stopsCap       = 2.0
	riskCap        = 1.0
)

// Score ranks an offer on price, duration, stops and risk. Higher is better.
// The ground offer is scored with the same formula as flights so the two are
// directly comparable. The result is rounded to 4 decimal places and is
// reproducible bit-for-bit for identical input.
func Score(offer domain.Offer) float64 {
	p := clamp01(offer.Price / priceCapEUR)
	d := clamp01(float64(offer.DurationMinutes) / durationCapMin)
	s := clamp01(float64(offer.Stops) / stopsCap)
	r := clamp01(offer.Risk / riskCap)

	raw := 1 - (priceWeight*p + durationWeight*d + stopsWeight*s + riskWeight*r)
	return math.Round(raw*10000) / 10000
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
