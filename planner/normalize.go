package planner

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"viaplan/domain"
	"viaplan/services"
)

// NormalizeOffers maps one provider response into zero or more domain
// offers. Admission filtering happens here, before scoring: offers longer
// than thresholdMin or with more stops than maxTransfers never reach the
// ranking. A single malformed offer is skipped, its siblings survive.
func NormalizeOffers(resp *services.FlightOffersResponse, thresholdMin int, maxTransfers *int) []domain.Offer {
	if resp == nil {
		return nil
	}

	offers := make([]domain.Offer, 0, len(resp.Data))
	for _, raw := range resp.Data {
		offer, ok := normalizeOffer(raw)
		if !ok {
			continue
		}
		if offer.DurationMinutes > thresholdMin {
			continue
		}
		if maxTransfers != nil && offer.Stops > *maxTransfers {
			continue
		}
		offers = append(offers, offer)
	}
	return offers
}

func normalizeOffer(raw services.FlightOffer) (domain.Offer, bool) {
	if len(raw.Itineraries) == 0 {
		return domain.Offer{}, false
	}
	outbound := raw.Itineraries[0]
	if len(outbound.Segments) == 0 {
		return domain.Offer{}, false
	}

	price, err := strconv.ParseFloat(raw.Price.GrandTotal, 64)
	if err != nil || price <= 0 {
		return domain.Offer{}, false
	}

	id := raw.ID
	if id == "" {
		id = uuid.NewString()
	}

	outLeg := buildLeg(outbound)
	offer := domain.Offer{
		ID:              id,
		Mode:            domain.ModeFlight,
		Price:           price,
		Currency:        raw.Price.Currency,
		DurationMinutes: outLeg.DurationMinutes,
		Stops:           stops(outbound.Segments),
		Origin:          outbound.Segments[0].Departure.IataCode,
		Destination:     outbound.Segments[len(outbound.Segments)-1].Arrival.IataCode,
		Carriers:        carriers(raw),
		Outbound:        outLeg,
	}

	if len(raw.Itineraries) > 1 {
		inLeg := buildLeg(raw.Itineraries[1])
		offer.Inbound = inLeg
		offer.DurationMinutes += inLeg.DurationMinutes
		offer.Stops += stops(raw.Itineraries[1].Segments)
	}
	return offer, true
}

func buildLeg(it services.FlightItinerary) *domain.Leg {
	leg := &domain.Leg{
		DurationMinutes: ParseISODurationMinutes(it.Duration),
	}
	if len(it.Segments) > 0 {
		leg.Departure = it.Segments[0].Departure.At
		leg.Arrival = it.Segments[len(it.Segments)-1].Arrival.At
	}
	for _, seg := range it.Segments {
		leg.Segments = append(leg.Segments,
			seg.CarrierCode+seg.Number+" "+seg.Departure.IataCode+"-"+seg.Arrival.IataCode)
	}
	return leg
}

func stops(segments []services.FlightSegment) int {
	n := len(segments) - 1
	if n < 0 {
		return 0
	}
	return n
}

func carriers(raw services.FlightOffer) []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, it := range raw.Itineraries {
		for _, seg := range it.Segments {
			if seg.CarrierCode == "" {
				continue
			}
			if _, ok := seen[seg.CarrierCode]; ok {
				continue
			}
			seen[seg.CarrierCode] = struct{}{}
			codes = append(codes, seg.CarrierCode)
		}
	}
	if len(codes) == 0 {
		codes = append(codes, raw.ValidatingAirlineCodes...)
	}
	return codes
}

// ParseISODurationMinutes converts an ISO-8601 duration token like "PT2H10M"
// to integer minutes. Hours and minutes are parsed independently; a missing
// component counts as zero.
func ParseISODurationMinutes(iso string) int {
	s := strings.TrimPrefix(strings.TrimSpace(iso), "PT")
	if s == "" {
		return 0
	}

	total := 0
	if h := strings.Index(s, "H"); h >= 0 {
		if n, err := strconv.Atoi(s[:h]); err == nil {
			total += n * 60
		}
		s = s[h+1:]
	}
	if m := strings.Index(s, "M"); m >= 0 {
		if n, err := strconv.Atoi(s[:m]); err == nil {
			total += n
		}
	}
	return total
}
