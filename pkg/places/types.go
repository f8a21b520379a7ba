package places

import "github.com/frankjstrike/restaurant-decider/pkg/geo"

// nearbySearchResponse is shaped for the Places Nearby Search API response.
type nearbySearchResponse struct {
	Status           string   `json:"status"`
	ErrorMessage     string   `json:"error_message"`
	NextPageToken    string   `json:"next_page_token"`
	HTMLAttributions []string `json:"html_attributions"`
	Results          []Place  `json:"results"`
}

// Place is a single result from a nearby search. Rating and PriceLevel are
// pointers because the API omits them for places that have neither.
type Place struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Vicinity         string        `json:"vicinity"`
	BusinessStatus   string        `json:"business_status,omitempty"`
	Geometry         Geometry      `json:"geometry"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	UserRatingsTotal *int          `json:"user_ratings_total,omitempty"`
	PriceLevel       *int          `json:"price_level,omitempty"`
	Types            []string      `json:"types"`
}

type Geometry struct {
	Location geo.Coordinates `json:"location"`
}

type OpeningHours struct {
	OpenNow bool `json:"open_now"`
}

// detailsResponse is shaped for the Place Details API response.
type detailsResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
	Result       Details `json:"result"`
}

// Details carries the extra fields fetched for a single place.
type Details struct {
	Name                 string `json:"name"`
	FormattedAddress     string `json:"formatted_address"`
	FormattedPhoneNumber string `json:"formatted_phone_number"`
	Website              string `json:"website"`
	URL                  string `json:"url"`
}
