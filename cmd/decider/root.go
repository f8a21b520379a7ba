package main

import (
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/frankjstrike/restaurant-decider/internal/app"
	"github.com/frankjstrike/restaurant-decider/internal/cache"
	"github.com/frankjstrike/restaurant-decider/internal/config"
	"github.com/frankjstrike/restaurant-decider/internal/pick"
	"github.com/frankjstrike/restaurant-decider/pkg/geocode"
	"github.com/frankjstrike/restaurant-decider/pkg/graceful"
	"github.com/frankjstrike/restaurant-decider/pkg/places"
)

type rootFlags struct {
	address    string
	distance   float64
	priceLevel int
	rating     float64
	keyword    string
	list       bool
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "decider",
		Short: "Help decide on a restaurant",
		Long: `decider geocodes an address, finds nearby restaurants that are open
right now, filters them by distance, price level and rating, and picks
one at random so you don't have to.

Without --address it uses your current location, resolved from your
public IP. Requires GOOGLE_MAPS_API_KEY in the environment or a .env
file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation shows help rather than silently searching
			// around the caller's IP.
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			return run(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.address, "address", "a", "", "address to search around (default: current location)")
	cmd.Flags().Float64VarP(&flags.distance, "distance", "d", 0, "distance in miles from the address (default 5)")
	cmd.Flags().IntVarP(&flags.priceLevel, "price", "p", 0, "price level to look for, 1 (cheapest) to 4 (most expensive)")
	cmd.Flags().Float64VarP(&flags.rating, "rating", "r", 0, "minimum rating to look for, 1 (lowest) to 5 (highest)")
	cmd.Flags().StringVarP(&flags.keyword, "keyword", "k", "", "narrow the search, e.g. \"tacos\"")
	cmd.Flags().BoolVarP(&flags.list, "list", "l", false, "list all restaurants found")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a YAML config file (default ~/.decider.yaml)")

	return cmd
}

func run(cmd *cobra.Command, flags *rootFlags) error {
	start := time.Now()

	// Missing .env is fine; environment variables may be set directly.
	_ = godotenv.Load()

	logger, err := newLogger(flags.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	ctx, cancel := graceful.Context(cmd.Context())
	defer cancel()

	var pageCache places.PageCache = cache.Noop{}
	if s3cfg, ok := cfg.CacheSettings(); ok {
		s3Cache, err := cache.NewS3Cache(ctx, s3cfg, log)
		if err != nil {
			log.Warnw("response cache unavailable, continuing without it", "error", err)
		} else {
			pageCache = s3Cache
		}
	}

	client := places.NewClient(cfg.APIKey, pageCache)

	opts := app.Options{
		Address:       flags.address,
		RadiusMiles:   cfg.DefaultRadiusMiles,
		Keyword:       flags.keyword,
		List:          flags.list,
		ExcludedTypes: cfg.ExcludedTypes,
	}
	if cmd.Flags().Changed("distance") {
		opts.RadiusMiles = flags.distance
	}
	if cmd.Flags().Changed("price") {
		opts.PriceLevel = &flags.priceLevel
	}
	if cmd.Flags().Changed("rating") {
		opts.MinRating = &flags.rating
	}

	a := &app.App{
		Geocoder: geocode.NewGoogleGeocoder(cfg.APIKey),
		Locator:  geocode.NewIPLocator(),
		Searcher: client,
		Details:  client,
		Picker:   pick.New(rand.NewSource(time.Now().UnixNano())),
		Log:      log,
		Out:      cmd.OutOrStdout(),
	}

	if err := a.Run(ctx, opts); err != nil {
		return err
	}

	log.Infof("Completed in: %s", time.Since(start).Round(time.Millisecond))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
