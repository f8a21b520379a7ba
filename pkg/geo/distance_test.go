package geo

import (
	"math"
	"testing"
)

func TestMilesToMeters(t *testing.T) {
	tests := []struct {
		name  string
		miles float64
		want  int
	}{
		{name: "one mile", miles: 1, want: 1609},
		{name: "default radius five miles", miles: 5, want: 8046},
		{name: "fractional", miles: 0.5, want: 804},
		{name: "zero", miles: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MilesToMeters(tt.miles); got != tt.want {
				t.Errorf("MilesToMeters(%v) = %d, want %d", tt.miles, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Coordinates
		wantMeters float64
		tolerance  float64
	}{
		{
			name:       "same point",
			a:          Coordinates{Lat: 40.7128, Lng: -74.0060},
			b:          Coordinates{Lat: 40.7128, Lng: -74.0060},
			wantMeters: 0,
			tolerance:  0.001,
		},
		{
			name:       "paris to london",
			a:          Coordinates{Lat: 48.8566, Lng: 2.3522},
			b:          Coordinates{Lat: 51.5074, Lng: -0.1278},
			wantMeters: 343556,
			tolerance:  2000,
		},
		{
			name:       "short hop across manhattan",
			a:          Coordinates{Lat: 40.7580, Lng: -73.9855},
			b:          Coordinates{Lat: 40.7484, Lng: -73.9857},
			wantMeters: 1068,
			tolerance:  20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.wantMeters) > tt.tolerance {
				t.Errorf("Distance() = %.1f m, want %.1f m (±%.1f)", got, tt.wantMeters, tt.tolerance)
			}
		})
	}
}
