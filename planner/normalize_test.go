package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viaplan/domain"
	"viaplan/services"
)

func TestParseISODurationMinutes(t *testing.T) {
	cases := map[string]int{
		"PT2H10M":  130,
		"PT45M":    45,
		"PT3H":     180,
		"PT13H20M": 800,
		"PT0H0M":   0,
		"":         0,
		"PT":       0,
	}
	for iso, want := range cases {
		assert.Equal(t, want, ParseISODurationMinutes(iso), "duration %q", iso)
	}
}

func offerFixture(id, grandTotal, duration string, segments ...services.FlightSegment) services.FlightOffer {
	return services.FlightOffer{
		ID:    id,
		Price: services.FlightPrice{GrandTotal: grandTotal, Currency: "EUR"},
		Itineraries: []services.FlightItinerary{
			{Duration: duration, Segments: segments},
		},
	}
}

func segment(carrier, number, from, to, dep, arr string) services.FlightSegment {
	return services.FlightSegment{
		Departure:   services.FlightEndpoint{IataCode: from, At: dep},
		Arrival:     services.FlightEndpoint{IataCode: to, At: arr},
		CarrierCode: carrier,
		Number:      number,
	}
}

func TestNormalizeOffers(t *testing.T) {
	resp := &services.FlightOffersResponse{
		Data: []services.FlightOffer{
			offerFixture("1", "85.00", "PT2H10M",
				segment("IB", "441", "PNA", "MAD", "2025-10-10T07:30:00", "2025-10-10T08:40:00"),
			),
			// connecting flight, endpoints from first/last segment
			offerFixture("2", "120.00", "PT4H30M",
				segment("VY", "120", "PNA", "BCN", "2025-10-10T06:00:00", "2025-10-10T07:00:00"),
				segment("VY", "850", "BCN", "MAD", "2025-10-10T09:00:00", "2025-10-10T10:30:00"),
			),
			// duration over threshold, dropped before scoring
			offerFixture("3", "40.00", "PT13H20M",
				segment("FR", "990", "PNA", "MAD", "2025-10-10T06:00:00", "2025-10-10T19:20:00"),
			),
			// unparseable price skips only this offer
			offerFixture("4", "n/a", "PT1H",
				segment("IB", "442", "PNA", "MAD", "2025-10-10T12:00:00", "2025-10-10T13:00:00"),
			),
			// no itineraries at all
			{ID: "5", Price: services.FlightPrice{GrandTotal: "10.00", Currency: "EUR"}},
		},
	}

	offers := NormalizeOffers(resp, 720, nil)
	require.Len(t, offers, 2)

	direct := offers[0]
	assert.Equal(t, "1", direct.ID)
	assert.Equal(t, domain.ModeFlight, direct.Mode)
	assert.Equal(t, 85.0, direct.Price)
	assert.Equal(t, "EUR", direct.Currency)
	assert.Equal(t, 130, direct.DurationMinutes)
	assert.Equal(t, 0, direct.Stops)
	assert.Equal(t, "PNA", direct.Origin)
	assert.Equal(t, "MAD", direct.Destination)
	assert.Equal(t, []string{"IB"}, direct.Carriers)
	require.NotNil(t, direct.Outbound)
	assert.Equal(t, "2025-10-10T07:30:00", direct.Outbound.Departure)
	assert.Equal(t, "2025-10-10T08:40:00", direct.Outbound.Arrival)

	connecting := offers[1]
	assert.Equal(t, 1, connecting.Stops)
	assert.Equal(t, "PNA", connecting.Origin)
	assert.Equal(t, "MAD", connecting.Destination)
	assert.Equal(t, 270, connecting.DurationMinutes)
}

func TestNormalizeOffersMaxTransfers(t *testing.T) {
	resp := &services.FlightOffersResponse{
		Data: []services.FlightOffer{
			offerFixture("1", "85.00", "PT2H10M",
				segment("IB", "441", "PNA", "MAD", "2025-10-10T07:30:00", "2025-10-10T08:40:00"),
			),
			offerFixture("2", "60.00", "PT4H30M",
				segment("VY", "120", "PNA", "BCN", "2025-10-10T06:00:00", "2025-10-10T07:00:00"),
				segment("VY", "850", "BCN", "MAD", "2025-10-10T09:00:00", "2025-10-10T10:30:00"),
			),
		},
	}

	nonstopOnly := 0
	offers := NormalizeOffers(resp, 720, &nonstopOnly)
	require.Len(t, offers, 1)
	assert.Equal(t, "1", offers[0].ID)
}

func TestNormalizeOffersRoundTrip(t *testing.T) {
	raw := offerFixture("9", "150.00", "PT2H",
		segment("IB", "100", "MAD", "BCN", "2025-10-10T08:00:00", "2025-10-10T10:00:00"),
	)
	raw.Itineraries = append(raw.Itineraries, services.FlightItinerary{
		Duration: "PT1H50M",
		Segments: []services.FlightSegment{
			segment("IB", "101", "BCN", "MAD", "2025-10-12T19:00:00", "2025-10-12T20:50:00"),
		},
	})

	offers := NormalizeOffers(&services.FlightOffersResponse{Data: []services.FlightOffer{raw}}, 720, nil)
	require.Len(t, offers, 1)
	assert.Equal(t, 230, offers[0].DurationMinutes)
	require.NotNil(t, offers[0].Inbound)
	assert.Equal(t, 110, offers[0].Inbound.DurationMinutes)
}

func TestNormalizeOffersNilAndEmpty(t *testing.T) {
	assert.Empty(t, NormalizeOffers(nil, 720, nil))
	assert.Empty(t, NormalizeOffers(&services.FlightOffersResponse{}, 720, nil))
}

func TestNormalizeOffersGeneratesIDWhenMissing(t *testing.T) {
	resp := &services.FlightOffersResponse{
		Data: []services.FlightOffer{
			offerFixture("", "85.00", "PT2H",
				segment("IB", "441", "PNA", "MAD", "2025-10-10T07:30:00", "2025-10-10T09:30:00"),
			),
		},
	}
	offers := NormalizeOffers(resp, 720, nil)
	require.Len(t, offers, 1)
	assert.NotEmpty(t, offers[0].ID)
}
