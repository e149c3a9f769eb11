package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/timeline-export/internal/domain"
	"github.com/pkordes/timeline-export/internal/geo"
)

func TestResolver_Nearby_ExactPositionMatches(t *testing.T) {
	r := geo.NewDefaultResolver()

	for _, p := range domain.DefaultPlaces {
		got, ok := r.Nearby(p.Latitude, p.Longitude)
		require.True(t, ok, p.Name)
		assert.Equal(t, p.Name, got.Name)
	}
}

func TestResolver_Nearby_WithinTolerance(t *testing.T) {
	r := geo.NewResolver([]domain.NamedLocation{{Name: "Home", Latitude: 10, Longitude: 20}}, 0.002)

	got, ok := r.Nearby(10.0019, 19.9981)

	require.True(t, ok)
	assert.Equal(t, "Home", got.Name)
}

func TestResolver_Nearby_AtOrBeyondToleranceNeverMatches(t *testing.T) {
	// 0.5 is exactly representable so the boundary is tested without rounding noise.
	r := geo.NewResolver([]domain.NamedLocation{{Name: "Home", Latitude: 10, Longitude: 20}}, 0.5)

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"lat at boundary", 10.5, 20},
		{"lon at boundary", 10, 19.5},
		{"lat beyond", 11, 20},
		{"lon beyond", 10, 21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := r.Nearby(tc.lat, tc.lon)
			assert.False(t, ok)
		})
	}
}

func TestResolver_Nearby_FirstEntryWinsOnOverlap(t *testing.T) {
	r := geo.NewResolver([]domain.NamedLocation{
		{Name: "First", Latitude: 10, Longitude: 20},
		{Name: "Second", Latitude: 10.001, Longitude: 20.001},
	}, 0.002)

	got, ok := r.Nearby(10.001, 20.001)

	require.True(t, ok)
	assert.Equal(t, "First", got.Name, "table order decides, not distance")
}

func TestResolver_Nearby_EmptyTable(t *testing.T) {
	r := geo.NewResolver(nil, geo.DefaultTolerance)

	_, ok := r.Nearby(43.307546, 13.7294109)

	assert.False(t, ok)
}

func TestNewResolver_CopiesTable(t *testing.T) {
	places := []domain.NamedLocation{{Name: "Home", Latitude: 10, Longitude: 20}}
	r := geo.NewResolver(places, 0.002)

	places[0].Name = "Changed"
	got, ok := r.Nearby(10, 20)

	require.True(t, ok)
	assert.Equal(t, "Home", got.Name)
}
