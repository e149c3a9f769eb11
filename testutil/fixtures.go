// Package testutil provides shared builders for timeline test fixtures.
// Builders produce the JSON shapes found in location-history exports so that
// tests exercise the same decoding path as real files.
package testutil

import (
	"encoding/json"
	"testing"
)

// Obj is a generic JSON object used to assemble fixtures.
type Obj = map[string]any

// Segment returns an activitySegment item between two E7 points.
// Extra keys are merged into the segment object, overriding defaults.
func Segment(start, end string, startLat, startLon, endLat, endLon int64, extra Obj) Obj {
	seg := Obj{
		"duration":      Obj{"startTimestamp": start, "endTimestamp": end},
		"startLocation": Obj{"latitudeE7": startLat, "longitudeE7": startLon},
		"endLocation":   Obj{"latitudeE7": endLat, "longitudeE7": endLon},
	}
	for k, v := range extra {
		seg[k] = v
	}
	return Obj{"activitySegment": seg}
}

// Visit returns a placeVisit item. Extra keys are merged into the location.
func Visit(start string, lat, lon int64, location Obj) Obj {
	loc := Obj{"latitudeE7": lat, "longitudeE7": lon}
	for k, v := range location {
		loc[k] = v
	}
	return Obj{"placeVisit": Obj{
		"duration": Obj{"startTimestamp": start},
		"location": loc,
	}}
}

// Document wraps items in a timelineObjects document and encodes it.
func Document(t *testing.T, items ...Obj) []byte {
	t.Helper()
	if items == nil {
		items = []Obj{}
	}
	return MustJSON(t, Obj{"timelineObjects": items})
}

// MustJSON encodes v, failing the test on error.
func MustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("testutil.MustJSON: %v", err)
	}
	return b
}
