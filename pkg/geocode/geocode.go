// Package geocode resolves free-form addresses and the machine's own public
// IP into geographical coordinates.
package geocode

import (
	"context"

	"github.com/frankjstrike/restaurant-decider/pkg/geo"
)

// Location holds the resolved place for a query.
type Location struct {
	Coordinates geo.Coordinates
	// FormattedAddress is the canonical address returned by the geocoder.
	FormattedAddress string
	// PostalCode is extracted from the address components when present.
	PostalCode string
	// Source names the service that produced the result, e.g. "google" or
	// "ipinfo".
	Source string
}

// Geocoder turns an address string into a Location.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Location, error)
}
