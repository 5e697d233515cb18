// Package geo holds Spanish location reference data: the region-to-capital
// table and the airport dataset, with the lookup chain used to pick candidate
// airports for a city.
package geo

import (
	"strings"

	"viaplan/domain"
)

// DefaultAirportLimit is how many candidate airports a city resolves to.
const DefaultAirportLimit = 2

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
	"Ü", "u", "Ñ", "n",
)

func fold(s string) string {
	return accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// CapitalForRegion returns the capital city for a comunidad autónoma name.
// Matching is case- and accent-insensitive.
func CapitalForRegion(name string) (string, bool) {
	capital, ok := regionCapitals[fold(name)]
	return capital, ok
}

// CityAirports returns up to limit candidate airports for a city, trying in
// order: the preferred list, an exact city match, a substring match, and
// finally the head of the dataset so the caller always gets something to
// query.
func CityAirports(city string, limit int) []domain.Airport {
	if limit <= 0 {
		limit = DefaultAirportLimit
	}
	lower := fold(city)

	if pref, ok := preferredByCity[lower]; ok {
		found := make([]domain.Airport, 0, len(pref))
		for _, code := range pref {
			if a, ok := byIATA(code); ok {
				found = append(found, a)
			}
		}
		if len(found) > 0 {
			return clip(found, limit)
		}
	}

	var exact []domain.Airport
	for _, a := range airports {
		if fold(a.City) == lower {
			exact = append(exact, a)
		}
	}
	if len(exact) > 0 {
		return clip(exact, limit)
	}

	var partial []domain.Airport
	for _, a := range airports {
		if strings.Contains(fold(a.City), lower) {
			partial = append(partial, a)
		}
	}
	if len(partial) > 0 {
		return clip(partial, limit)
	}

	return clip(airports, limit)
}

// KnownCity reports whether the city maps to at least one airport without
// falling through to the dataset-head fallback.
func KnownCity(city string) bool {
	lower := fold(city)
	if _, ok := preferredByCity[lower]; ok {
		return true
	}
	for _, a := range airports {
		if fold(a.City) == lower {
			return true
		}
	}
	return false
}

// Locator adapts the package lookup to the planner's AirportLocator
// interface.
type Locator struct{}

func (Locator) CityAirports(city string, limit int) []domain.Airport {
	return CityAirports(city, limit)
}

func byIATA(code string) (domain.Airport, bool) {
	for _, a := range airports {
		if a.IATA == code {
			return a, true
		}
	}
	return domain.Airport{}, false
}

func clip(list []domain.Airport, limit int) []domain.Airport {
	if len(list) > limit {
		list = list[:limit]
	}
	out := make([]domain.Airport, len(list))
	copy(out, list)
	return out
}
