// Package app wires geocoding, search, filtering, enrichment and selection
// into the single run the CLI performs.
package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/frankjstrike/restaurant-decider/internal/enrich"
	"github.com/frankjstrike/restaurant-decider/internal/filter"
	"github.com/frankjstrike/restaurant-decider/internal/models"
	"github.com/frankjstrike/restaurant-decider/internal/pick"
	"github.com/frankjstrike/restaurant-decider/internal/render"
	"github.com/frankjstrike/restaurant-decider/pkg/geo"
	"github.com/frankjstrike/restaurant-decider/pkg/geocode"
	"github.com/frankjstrike/restaurant-decider/pkg/places"
)

// Searcher is the subset of the Places client the app uses for searching.
type Searcher interface {
	NearbyRestaurants(ctx context.Context, req places.SearchRequest) ([]places.Place, error)
}

// Locator resolves the machine's own location when no address is given.
type Locator interface {
	Locate(ctx context.Context) (*geocode.Location, error)
}

// Options are the per-run settings, mostly mapped from CLI flags.
type Options struct {
	// Address to search around; empty means "use my current location".
	Address string
	// RadiusMiles is the search radius.
	RadiusMiles float64
	// Keyword optionally narrows the search, e.g. "tacos".
	Keyword string
	// PriceLevel filters to an exact price level (1-4) when non-nil.
	PriceLevel *int
	// MinRating filters to a minimum rating (1-5) when non-nil.
	MinRating *float64
	// List prints the full result table in addition to the pick.
	List bool
	// ExcludedTypes drops places tagged with any of these types.
	ExcludedTypes []string
}

// Validate checks flag ranges before any API call is made.
func (o Options) Validate() error {
	if o.RadiusMiles <= 0 {
		return fmt.Errorf("distance must be greater than zero, got %v", o.RadiusMiles)
	}
	if o.PriceLevel != nil && (*o.PriceLevel < 1 || *o.PriceLevel > 4) {
		return fmt.Errorf("price level must be between 1 and 4, got %d", *o.PriceLevel)
	}
	if o.MinRating != nil && (*o.MinRating < 1 || *o.MinRating > 5) {
		return fmt.Errorf("rating must be between 1 and 5, got %v", *o.MinRating)
	}
	return nil
}

// App holds the collaborators for one run.
type App struct {
	Geocoder geocode.Geocoder
	Locator  Locator
	Searcher Searcher
	Details  enrich.DetailsClient
	Picker   *pick.Picker
	Log      *zap.SugaredLogger
	Out      io.Writer
}

// Run performs the full decide flow: resolve the origin, search, filter,
// enrich, pick one at random and print it. Finding nothing is not an error.
func (a *App) Run(ctx context.Context, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	origin, err := a.resolveOrigin(ctx, opts.Address)
	if err != nil {
		return err
	}
	a.Log.Infof("Finding restaurants near: %s", origin.FormattedAddress)
	a.Log.Infof("Search radius: %.2f miles", opts.RadiusMiles)

	results, err := a.Searcher.NearbyRestaurants(ctx, places.SearchRequest{
		Origin:       origin.Coordinates,
		RadiusMeters: geo.MilesToMeters(opts.RadiusMiles),
		Keyword:      opts.Keyword,
		OpenNow:      true,
	})
	if err != nil {
		return fmt.Errorf("searching for restaurants: %w", err)
	}

	criteria := filter.Criteria{
		PriceLevel:    opts.PriceLevel,
		MinRating:     opts.MinRating,
		ExcludedTypes: opts.ExcludedTypes,
	}
	restaurants := criteria.Apply(models.FromPlaces(results))
	if len(restaurants) == 0 {
		a.Log.Info("No restaurants found")
		return nil
	}
	a.Log.Infof("Restaurants found: %d", len(restaurants))

	// Distance from the origin for every candidate; runs concurrently
	// across results.
	distances := enrich.NewPipeline(a.Log, enrich.NewStage(enrich.DistanceStep(origin.Coordinates)))
	distances.Run(ctx, asPointers(restaurants))

	a.Picker.Shuffle(restaurants)
	chosen, err := a.Picker.Choose(restaurants)
	if err != nil {
		return err
	}

	// Contact details only for the winner; a failed lookup still leaves a
	// printable pick.
	if a.Details != nil {
		details := enrich.NewPipeline(a.Log, enrich.NewStage(enrich.DetailsStep(a.Details)))
		details.Run(ctx, []*models.Restaurant{&chosen})
	}

	render.Pick(a.Out, chosen)
	if opts.List {
		render.Table(a.Out, restaurants)
	}
	return nil
}

func (a *App) resolveOrigin(ctx context.Context, address string) (*geocode.Location, error) {
	if address != "" {
		loc, err := a.Geocoder.Geocode(ctx, address)
		if err != nil {
			return nil, fmt.Errorf("converting address to coordinates: %w", err)
		}
		return loc, nil
	}

	a.Log.Info("No address given, using current location")
	loc, err := a.Locator.Locate(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting current location: %w", err)
	}
	return loc, nil
}

func asPointers(rs []models.Restaurant) []*models.Restaurant {
	out := make([]*models.Restaurant, len(rs))
	for i := range rs {
		out[i] = &rs[i]
	}
	return out
}
