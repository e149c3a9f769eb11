// Package geo resolves coordinates to human-readable names using a small
// table of known places.
package geo

import (
	"math"

	"github.com/pkordes/timeline-export/internal/domain"
)

// DefaultTolerance is the half-width of the match box in decimal degrees
// (roughly 220m at mid-latitudes).
const DefaultTolerance = 0.0020

// Resolver matches points against an ordered table of named locations.
type Resolver struct {
	places    []domain.NamedLocation
	tolerance float64
}

// NewResolver constructs a Resolver over a copy of places.
// Table order is preserved and decides ties between overlapping boxes.
func NewResolver(places []domain.NamedLocation, tolerance float64) *Resolver {
	return &Resolver{
		places:    append([]domain.NamedLocation(nil), places...),
		tolerance: tolerance,
	}
}

// NewDefaultResolver returns a Resolver over domain.DefaultPlaces.
func NewDefaultResolver() *Resolver {
	return NewResolver(domain.DefaultPlaces, DefaultTolerance)
}

// Nearby returns the first place whose latitude and longitude each differ
// from (lat, lon) by strictly less than the tolerance.
func (r *Resolver) Nearby(lat, lon float64) (domain.NamedLocation, bool) {
	for _, p := range r.places {
		if math.Abs(lat-p.Latitude) < r.tolerance && math.Abs(lon-p.Longitude) < r.tolerance {
			return p, true
		}
	}
	return domain.NamedLocation{}, false
}
