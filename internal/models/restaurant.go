package models

import (
	"fmt"

	"github.com/frankjstrike/restaurant-decider/pkg/geo"
	"github.com/frankjstrike/restaurant-decider/pkg/places"
)

// Restaurant is the tool's view of one candidate place. Rating and
// PriceLevel stay pointers so "not reported" is distinguishable from zero.
type Restaurant struct {
	PlaceID     string
	Name        string
	Address     string
	Rating      *float64
	PriceLevel  *int
	Types       []string
	Coordinates geo.Coordinates

	// DistanceMeters from the search origin, filled in by enrichment.
	DistanceMeters float64
	// Details are fetched only for the selected restaurant.
	Details *places.Details
}

// FromPlace converts an API search result into a Restaurant.
func FromPlace(p places.Place) Restaurant {
	return Restaurant{
		PlaceID:     p.PlaceID,
		Name:        p.Name,
		Address:     p.Vicinity,
		Rating:      p.Rating,
		PriceLevel:  p.PriceLevel,
		Types:       p.Types,
		Coordinates: p.Geometry.Location,
	}
}

// FromPlaces converts a slice of API results.
func FromPlaces(ps []places.Place) []Restaurant {
	out := make([]Restaurant, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPlace(p))
	}
	return out
}

// RatingLabel renders the rating as "4.5/5", or "N/A" when unreported.
func (r Restaurant) RatingLabel() string {
	if r.Rating == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/5", *r.Rating)
}

// PriceLabel renders the price level as "2/4", or "N/A" when unreported.
func (r Restaurant) PriceLabel() string {
	if r.PriceLevel == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d/4", *r.PriceLevel)
}

// DistanceLabel renders the distance from the origin in miles.
func (r Restaurant) DistanceLabel() string {
	if r.DistanceMeters == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f mi", geo.MetersToMiles(r.DistanceMeters))
}
