package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankjstrike/restaurant-decider/internal/models"
	"github.com/frankjstrike/restaurant-decider/pkg/places"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestTable(t *testing.T) {
	rs := []models.Restaurant{
		{Name: "First Wok", Address: "12 Main St", Rating: floatp(4.5), PriceLevel: intp(2), DistanceMeters: 1609.34},
		{Name: "A Very Long Restaurant Name Indeed", Address: "1500 South Congress Avenue", Rating: nil, PriceLevel: nil},
	}

	var buf bytes.Buffer
	Table(&buf, rs)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Blank line, title, blank line, header, separator, two rows.
	require.Len(t, lines, 7)

	header := lines[3]
	assert.Contains(t, header, "Name")
	assert.Contains(t, header, "Address")
	assert.Contains(t, header, "Rating")
	assert.Contains(t, header, "Price Level")
	assert.Contains(t, header, "Distance")

	separator := lines[4]
	assert.Equal(t, strings.Repeat("-", len(separator)), separator, "separator should be all dashes")

	assert.Contains(t, lines[5], "First Wok")
	assert.Contains(t, lines[5], "4.5/5")
	assert.Contains(t, lines[5], "2/4")
	assert.Contains(t, lines[5], "1.0 mi")

	assert.Contains(t, lines[6], "A Very Long Restaurant Name Indeed")
	assert.Contains(t, lines[6], "N/A")

	// Columns are aligned: the separator positions of both data rows match.
	assert.Equal(t, strings.Index(lines[5], " | "), strings.Index(lines[6], " | "))
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestPick(t *testing.T) {
	r := models.Restaurant{
		Name:       "First Wok",
		Address:    "12 Main St",
		Rating:     floatp(4.5),
		PriceLevel: intp(2),
		Details: &places.Details{
			FormattedPhoneNumber: "(512) 555-0148",
			Website:              "https://firstwok.example",
		},
	}

	var buf bytes.Buffer
	Pick(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "You should go to: First Wok")
	assert.Contains(t, out, "Address: 12 Main St")
	assert.Contains(t, out, "Rating: 4.5/5")
	assert.Contains(t, out, "Price Level: 2/4")
	assert.Contains(t, out, "Phone: (512) 555-0148")
	assert.Contains(t, out, "Website: https://firstwok.example")
}

func TestPick_MissingFields(t *testing.T) {
	var buf bytes.Buffer
	Pick(&buf, models.Restaurant{Name: "Mystery Diner", Address: "Unknown Rd"})
	out := buf.String()

	assert.Contains(t, out, "Rating: N/A")
	assert.Contains(t, out, "Price Level: N/A")
	assert.NotContains(t, out, "Phone:")
	assert.NotContains(t, out, "Website:")
	assert.NotContains(t, out, "Distance:")
}
