// Package normalize maps raw timeline items onto the unified row schema.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/timeline-export/internal/domain"
)

const (
	// UnknownActivity is used when a segment carries no activityType.
	UnknownActivity = "Unknown"
	// UnknownPlace is the placeholder name that triggers proximity lookup.
	UnknownPlace = "Unknown Place"
	// NoAddress is the address written for visits without one.
	NoAddress = "-"
)

// PlaceResolver finds a known place near a coordinate.
type PlaceResolver interface {
	Nearby(lat, lon float64) (domain.NamedLocation, bool)
}

// Normalizer converts timeline items into rows.
type Normalizer struct {
	places  PlaceResolver
	loc     *time.Location
	renames map[string]string
}

// New constructs a Normalizer. renames is keyed by lowercase name; it may be nil.
func New(places PlaceResolver, loc *time.Location, renames map[string]string) *Normalizer {
	return &Normalizer{places: places, loc: loc, renames: renames}
}

// Normalize decodes one raw item and returns its rows: two for a movement
// segment, one for a place visit, none for anything else.
// Errors wrap domain.ErrInvalidRecord.
func (n *Normalizer) Normalize(raw json.RawMessage) ([]domain.Row, error) {
	var obj domain.TimelineObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}
	switch {
	case obj.ActivitySegment != nil:
		return n.Segment(*obj.ActivitySegment)
	case obj.PlaceVisit != nil:
		row, err := n.Visit(*obj.PlaceVisit)
		if err != nil {
			return nil, err
		}
		return []domain.Row{row}, nil
	default:
		return nil, nil
	}
}

// Segment returns the Start and End rows of a movement segment.
// Both rows carry the UTC date of the start instant.
func (n *Normalizer) Segment(s domain.MovementSegment) ([]domain.Row, error) {
	if s.Duration == nil {
		return nil, missing("activitySegment.duration")
	}
	if s.Duration.StartTimestamp == nil {
		return nil, missing("activitySegment.duration.startTimestamp")
	}
	if s.Duration.EndTimestamp == nil {
		return nil, missing("activitySegment.duration.endTimestamp")
	}
	startTS, endTS := *s.Duration.StartTimestamp, *s.Duration.EndTimestamp

	startClock, err := LocalClock(startTS, n.loc)
	if err != nil {
		return nil, err
	}
	endClock, err := LocalClock(endTS, n.loc)
	if err != nil {
		return nil, err
	}
	startLat, startLon, err := coordinates(s.StartLocation, "activitySegment.startLocation")
	if err != nil {
		return nil, err
	}
	endLat, endLon, err := coordinates(s.EndLocation, "activitySegment.endLocation")
	if err != nil {
		return nil, err
	}

	activity := UnknownActivity
	if s.ActivityType != nil {
		activity = *s.ActivityType
	}
	var distance float64
	if s.Distance != nil {
		distance = *s.Distance
	}

	var startHint, endHint string
	if len(s.RoadSegment) > 0 {
		startHint = s.RoadSegment[0].PlaceID
		endHint = s.RoadSegment[len(s.RoadSegment)-1].PlaceID
	}

	date := UTCDate(startTS)
	start := domain.Row{
		Date:         date,
		LocalTime:    startClock,
		UTCTimestamp: startTS,
		Latitude:     startLat,
		Longitude:    startLon,
		Address:      addressOr(s.StartLocation, startHint),
		Kind:         domain.KindStart,
		HasMovement:  true,
		Distance:     distance,
		Activity:     activity,
	}
	end := start
	end.LocalTime = endClock
	end.UTCTimestamp = endTS
	end.Latitude, end.Longitude = endLat, endLon
	end.Address = addressOr(s.EndLocation, endHint)
	end.Kind = domain.KindEnd

	return []domain.Row{start, end}, nil
}

// Visit returns the single Place row of a place visit.
//
// Name precedence: location name, then location address, then the
// UnknownPlace placeholder. A placeholder is replaced by a nearby known
// place when one matches. The rename table is applied last.
func (n *Normalizer) Visit(v domain.PlaceVisit) (domain.Row, error) {
	if v.Duration == nil || v.Duration.StartTimestamp == nil {
		return domain.Row{}, missing("placeVisit.duration.startTimestamp")
	}
	ts := *v.Duration.StartTimestamp
	lat, lon, err := coordinates(v.Location, "placeVisit.location")
	if err != nil {
		return domain.Row{}, err
	}
	clock, err := LocalClock(ts, n.loc)
	if err != nil {
		return domain.Row{}, err
	}

	name := firstNonEmpty(v.Location.Name, v.Location.Address, UnknownPlace)
	if name == "" || name == UnknownPlace {
		if p, ok := n.places.Nearby(lat, lon); ok {
			name = p.Name
		}
	}
	if renamed, ok := n.renames[strings.ToLower(name)]; ok {
		name = renamed
	}

	address := NoAddress
	if v.Location.Address != nil {
		address = *v.Location.Address
	}

	return domain.Row{
		Date:         UTCDate(ts),
		LocalTime:    clock,
		UTCTimestamp: ts,
		Latitude:     lat,
		Longitude:    lon,
		LocationName: name,
		Address:      address,
		Kind:         domain.KindPlace,
	}, nil
}

func coordinates(loc *domain.Location, field string) (float64, float64, error) {
	if loc == nil {
		return 0, 0, missing(field)
	}
	if loc.LatitudeE7 == nil {
		return 0, 0, missing(field + ".latitudeE7")
	}
	if loc.LongitudeE7 == nil {
		return 0, 0, missing(field + ".longitudeE7")
	}
	return domain.E7(*loc.LatitudeE7), domain.E7(*loc.LongitudeE7), nil
}

// addressOr returns the location's own address, or hint when it has none.
func addressOr(loc *domain.Location, hint string) string {
	if loc.Address != nil && *loc.Address != "" {
		return *loc.Address
	}
	return hint
}

func firstNonEmpty(name, address *string, fallback string) string {
	if name != nil && *name != "" {
		return *name
	}
	if address != nil && *address != "" {
		return *address
	}
	return fallback
}

func missing(field string) error {
	return fmt.Errorf("%w: %s missing", domain.ErrInvalidRecord, field)
}
