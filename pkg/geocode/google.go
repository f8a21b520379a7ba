package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/frankjstrike/restaurant-decider/pkg/geo"
)

const defaultGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// googleGeocodeResponse is shaped for the Geocoding API response.
type googleGeocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location geo.Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GoogleGeocoder resolves addresses through the Google Geocoding API.
type GoogleGeocoder struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewGoogleGeocoder returns a geocoder authenticated with the given API key.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		httpClient: http.DefaultClient,
		apiKey:     apiKey,
		baseURL:    defaultGeocodeURL,
	}
}

// Geocode looks up an address and returns its coordinates and postal code.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (*Location, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var decoded googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding geocode response: %w", err)
	}

	if decoded.Status != "OK" {
		if decoded.ErrorMessage != "" {
			return nil, fmt.Errorf("geocoding %q: %s (%s)", address, decoded.Status, decoded.ErrorMessage)
		}
		return nil, fmt.Errorf("geocoding %q: %s", address, decoded.Status)
	}
	if len(decoded.Results) == 0 {
		return nil, fmt.Errorf("no geocoding results for %q", address)
	}

	first := decoded.Results[0]
	loc := &Location{
		Coordinates:      first.Geometry.Location,
		FormattedAddress: first.FormattedAddress,
		Source:           "google",
	}
	// The postal code is found by component type rather than position; the
	// components come back in no guaranteed order.
	for _, comp := range first.AddressComponents {
		for _, t := range comp.Types {
			if t == "postal_code" {
				loc.PostalCode = comp.LongName
			}
		}
	}
	return loc, nil
}
