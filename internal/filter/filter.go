// Package filter applies the user's narrowing criteria to search results.
package filter

import "github.com/frankjstrike/restaurant-decider/internal/models"

// DefaultExcludedTypes lists place types that tag non-restaurant venues the
// Places API still returns under type=restaurant (mall food courts, gas
// station delis, hotel restaurants).
var DefaultExcludedTypes = []string{"shopping_mall", "gas_station", "lodging"}

// Criteria holds the optional narrowing filters. A nil field means the
// corresponding filter is off.
type Criteria struct {
	// PriceLevel keeps only places reporting exactly this level (1-4).
	PriceLevel *int
	// MinRating keeps only places whose rating is at least this value (1-5).
	MinRating *float64
	// ExcludedTypes drops any place tagged with one of these types.
	ExcludedTypes []string
}

// Apply returns the restaurants that pass all criteria, preserving order.
func (c Criteria) Apply(in []models.Restaurant) []models.Restaurant {
	var out []models.Restaurant
	for _, r := range in {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single restaurant passes all criteria. Places
// that do not report a price level or rating fail the respective filter when
// that filter is set.
func (c Criteria) Matches(r models.Restaurant) bool {
	for _, t := range r.Types {
		for _, excluded := range c.ExcludedTypes {
			if t == excluded {
				return false
			}
		}
	}
	if c.PriceLevel != nil {
		if r.PriceLevel == nil || *r.PriceLevel != *c.PriceLevel {
			return false
		}
	}
	if c.MinRating != nil {
		if r.Rating == nil || *r.Rating < *c.MinRating {
			return false
		}
	}
	return true
}
