// Package places is a thin client for the Google Places web API, covering
// the two calls the decider makes: Nearby Search (with token pagination) and
// Place Details.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/frankjstrike/restaurant-decider/pkg/geo"
)

const (
	defaultNearbyURL  = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	defaultDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"

	// The API activates a next_page_token roughly two seconds after issuing
	// it; requests made earlier come back INVALID_REQUEST.
	defaultPageDelay = 2 * time.Second

	maxPageRetries = 3
)

// PageCache stores raw nearby-search response pages keyed by request
// parameters. Implementations live in internal/cache; a nil cache disables
// caching entirely.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Put(ctx context.Context, key string, page []byte)
}

// SearchRequest describes one nearby search.
type SearchRequest struct {
	Origin       geo.Coordinates
	RadiusMeters int
	// Keyword narrows results, e.g. "ramen". Optional.
	Keyword string
	// OpenNow restricts results to places open at request time.
	OpenNow bool
}

// Client calls the Places API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	nearbyURL  string
	detailsURL string
	pageDelay  time.Duration
	cache      PageCache
}

// NewClient returns a Places client authenticated with the given API key.
// cache may be nil.
func NewClient(apiKey string, cache PageCache) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		apiKey:     apiKey,
		nearbyURL:  defaultNearbyURL,
		detailsURL: defaultDetailsURL,
		pageDelay:  defaultPageDelay,
		cache:      cache,
	}
}

// NearbyRestaurants runs a nearby search for restaurants around the origin,
// following pagination until the API stops issuing page tokens. The Places
// API caps results at three pages of twenty.
func (c *Client) NearbyRestaurants(ctx context.Context, req SearchRequest) ([]Place, error) {
	var all []Place
	pageToken := ""

	for page := 0; ; page++ {
		if pageToken != "" {
			// Token activation delay; interruptible so Ctrl-C is not stuck
			// behind a sleep.
			if err := sleep(ctx, c.pageDelay); err != nil {
				return nil, err
			}
		}

		resp, err := c.fetchPage(ctx, req, pageToken)
		if err != nil {
			return nil, fmt.Errorf("nearby search page %d: %w", page+1, err)
		}

		all = append(all, resp.Results...)
		if resp.NextPageToken == "" {
			return all, nil
		}
		pageToken = resp.NextPageToken
	}
}

func (c *Client) fetchPage(ctx context.Context, req SearchRequest, pageToken string) (*nearbySearchResponse, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", req.Origin.Lat, req.Origin.Lng))
	params.Set("radius", fmt.Sprintf("%d", req.RadiusMeters))
	params.Set("type", "restaurant")
	params.Set("key", c.apiKey)
	if req.Keyword != "" {
		params.Set("keyword", req.Keyword)
	}
	if req.OpenNow {
		params.Set("opennow", "true")
	}
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	cacheKey := pageCacheKey(req, pageToken)
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, cacheKey); ok {
			var cached nearbySearchResponse
			if err := json.Unmarshal(body, &cached); err == nil && cached.Status == "OK" {
				return &cached, nil
			}
			// A corrupt cache entry falls through to a live request.
		}
	}

	var lastErr error
	for attempt := 0; attempt < maxPageRetries; attempt++ {
		body, err := c.get(ctx, c.nearbyURL, params)
		if err != nil {
			return nil, err
		}

		var decoded nearbySearchResponse
		if err := json.Unmarshal(body, &decoded); err != nil {
			return nil, fmt.Errorf("decoding nearby search response: %w", err)
		}

		switch decoded.Status {
		case "OK":
			if c.cache != nil {
				c.cache.Put(ctx, cacheKey, body)
			}
			return &decoded, nil
		case "ZERO_RESULTS":
			return &decoded, nil
		case "INVALID_REQUEST":
			// Page token not active yet; wait and try again.
			if pageToken != "" {
				lastErr = fmt.Errorf("page token not ready")
				if err := sleep(ctx, c.pageDelay); err != nil {
					return nil, err
				}
				continue
			}
			fallthrough
		default:
			if decoded.ErrorMessage != "" {
				return nil, fmt.Errorf("places API: %s (%s)", decoded.Status, decoded.ErrorMessage)
			}
			return nil, fmt.Errorf("places API: %s", decoded.Status)
		}
	}
	return nil, lastErr
}

// PlaceDetails fetches contact and address details for a single place.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*Details, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,formatted_address,formatted_phone_number,website,url")
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, c.detailsURL, params)
	if err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}

	var decoded detailsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding place details response: %w", err)
	}
	if decoded.Status != "OK" {
		return nil, fmt.Errorf("places API: %s", decoded.Status)
	}
	return &decoded.Result, nil
}

func (c *Client) get(ctx context.Context, base string, params url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s?%s", base, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// pageCacheKey is stable across runs for the same origin, radius and page.
func pageCacheKey(req SearchRequest, pageToken string) string {
	return fmt.Sprintf("nearby/%.4f,%.4f/r%d/open%t/k%s/p%s",
		req.Origin.Lat, req.Origin.Lng, req.RadiusMeters, req.OpenNow, req.Keyword, pageToken)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
