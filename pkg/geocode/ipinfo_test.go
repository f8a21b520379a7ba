package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPLocator_Locate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"ip": "203.0.113.9",
			"city": "Austin",
			"region": "Texas",
			"country": "US",
			"loc": "30.2672,-97.7431",
			"postal": "78701",
			"timezone": "America/Chicago"
		}`))
	}))
	defer srv.Close()

	l := NewIPLocator()
	l.baseURL = srv.URL

	loc, err := l.Locate(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 30.2672, loc.Coordinates.Lat, 1e-9)
	assert.InDelta(t, -97.7431, loc.Coordinates.Lng, 1e-9)
	assert.Equal(t, "Austin, Texas, US", loc.FormattedAddress)
	assert.Equal(t, "78701", loc.PostalCode)
	assert.Equal(t, "ipinfo", loc.Source)
}

func TestParseLoc(t *testing.T) {
	tests := []struct {
		name    string
		loc     string
		wantLat float64
		wantLng float64
		wantErr bool
	}{
		{name: "well formed", loc: "40.7128,-74.0060", wantLat: 40.7128, wantLng: -74.0060},
		{name: "spaces tolerated", loc: " 40.7128 , -74.0060 ", wantLat: 40.7128, wantLng: -74.0060},
		{name: "missing component", loc: "40.7128", wantErr: true},
		{name: "not numbers", loc: "north,south", wantErr: true},
		{name: "empty", loc: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLoc(tt.loc)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantLat, got.Lat, 1e-9)
			assert.InDelta(t, tt.wantLng, got.Lng, 1e-9)
		})
	}
}
