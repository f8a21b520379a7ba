// Package geo provides coordinate types and the small amount of spherical
// geometry the decider needs: unit conversion between miles and meters, and
// great-circle distance between two points.
package geo

import "math"

// MetersPerMile is the conversion factor used throughout the tool.
const MetersPerMile = 1609.34

// earthRadiusMeters is the mean Earth radius used for haversine.
const earthRadiusMeters = 6371000.0

// Coordinates represents a geographical point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MilesToMeters converts a distance in miles to whole meters, the unit the
// Places API expects for search radii.
func MilesToMeters(miles float64) int {
	return int(miles * MetersPerMile)
}

// MetersToMiles converts meters back to miles.
func MetersToMiles(meters float64) float64 {
	return meters / MetersPerMile
}

// Distance returns the great-circle distance in meters between two points
// using the haversine formula.
func Distance(a, b Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
