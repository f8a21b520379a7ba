package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/frankjstrike/restaurant-decider/pkg/geo"
)

const defaultIPInfoURL = "https://ipinfo.io/json"

// ipInfoResponse is shaped for the ipinfo.io response. Loc is a
// "lat,lng" pair in a single string.
type ipInfoResponse struct {
	IP       string `json:"ip"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Loc      string `json:"loc"`
	Postal   string `json:"postal"`
	Timezone string `json:"timezone"`
}

// IPLocator resolves the machine's approximate location from its public IP
// via ipinfo.io. Used when no address is supplied on the command line.
type IPLocator struct {
	httpClient *http.Client
	baseURL    string
}

func NewIPLocator() *IPLocator {
	return &IPLocator{
		httpClient: http.DefaultClient,
		baseURL:    defaultIPInfoURL,
	}
}

// Locate returns the current location based on the caller's IP address.
func (l *IPLocator) Locate(ctx context.Context) (*Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("current location request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var info ipInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding ipinfo response: %w", err)
	}

	coords, err := parseLoc(info.Loc)
	if err != nil {
		return nil, err
	}

	return &Location{
		Coordinates:      coords,
		FormattedAddress: strings.Join(nonEmpty(info.City, info.Region, info.Country), ", "),
		PostalCode:       info.Postal,
		Source:           "ipinfo",
	}, nil
}

func parseLoc(loc string) (geo.Coordinates, error) {
	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return geo.Coordinates{}, fmt.Errorf("malformed loc field %q", loc)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("malformed latitude in %q", loc)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("malformed longitude in %q", loc)
	}
	return geo.Coordinates{Lat: lat, Lng: lng}, nil
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
