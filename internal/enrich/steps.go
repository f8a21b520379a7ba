package enrich

import (
	"context"
	"fmt"

	"github.com/frankjstrike/restaurant-decider/internal/models"
	"github.com/frankjstrike/restaurant-decider/pkg/geo"
	"github.com/frankjstrike/restaurant-decider/pkg/places"
)

// DetailsClient is the subset of the Places client used by DetailsStep.
type DetailsClient interface {
	PlaceDetails(ctx context.Context, placeID string) (*places.Details, error)
}

// DistanceStep fills in the restaurant's distance from the search origin.
func DistanceStep(origin geo.Coordinates) Step[models.Restaurant] {
	return func(_ context.Context, r *models.Restaurant) error {
		r.DistanceMeters = geo.Distance(origin, r.Coordinates)
		return nil
	}
}

// DetailsStep fetches phone and website details for a restaurant. It is only
// applied to the selected restaurant to keep API usage down.
func DetailsStep(client DetailsClient) Step[models.Restaurant] {
	return func(ctx context.Context, r *models.Restaurant) error {
		if r.PlaceID == "" {
			return fmt.Errorf("restaurant %q has no place ID", r.Name)
		}
		details, err := client.PlaceDetails(ctx, r.PlaceID)
		if err != nil {
			return err
		}
		r.Details = details
		return nil
	}
}
