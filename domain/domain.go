package domain

// Mode is the transport mode of an Offer.
type Mode string

const (
	ModeCar    Mode = "car"
	ModeFlight Mode = "flight"
)

// Airport is immutable reference data owned by the geo package.
type Airport struct {
	IATA string  `json:"iata"`
	Name string  `json:"name"`
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Baseline is the car-travel reference trip between two cities.
type Baseline struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_minutes"`
	CostEUR     float64 `json:"cost_eur"`
	Currency    string  `json:"currency"`
}

// Leg is one direction of a flight offer.
type Leg struct {
	Departure       string   `json:"departure"`
	Arrival         string   `json:"arrival"`
	DurationMinutes int      `json:"duration_minutes"`
	Segments        []string `json:"segments,omitempty"`
}

// Offer is one normalized, comparable travel option (ground or flight).
type Offer struct {
	ID              string   `json:"id"`
	Mode            Mode     `json:"mode"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	DurationMinutes int      `json:"duration_minutes"`
	Stops           int      `json:"stops"`
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	Carriers        []string `json:"carriers,omitempty"`
	Outbound        *Leg     `json:"outbound,omitempty"`
	Inbound         *Leg     `json:"inbound,omitempty"`
	Risk            float64  `json:"risk,omitempty"`
	Score           float64  `json:"score"`
}

// Preferences are optional per-request tuning knobs.
type Preferences struct {
	AvoidModes   []Mode `json:"avoid_modes,omitempty"`
	MaxTransfers *int   `json:"max_transfers,omitempty"`
}

// Avoids reports whether the given mode is excluded by the preferences.
func (p Preferences) Avoids(mode Mode) bool {
	for _, m := range p.AvoidModes {
		if m == mode {
			return true
		}
	}
	return false
}

// Plan is the ranked comparison result for one origin/destination/date.
type Plan struct {
	Origin                    string   `json:"origin"`
	Destination               string   `json:"destination"`
	Date                      string   `json:"date"`
	Baseline                  Baseline `json:"baseline"`
	AdmissionThresholdMinutes int      `json:"admission_threshold_minutes"`
	Options                   []Offer  `json:"options"`
	Cached                    bool     `json:"cached"`
}
