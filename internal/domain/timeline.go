// Package domain contains the core data types for the timeline exporter.
// This package has zero external dependencies and is imported by every other
// internal package (loader, normalize, export, service).
package domain

import "encoding/json"

// Document is one parsed source file. Objects holds each timeline item
// undecoded so that a broken item can be rejected without losing its siblings.
type Document struct {
	Name    string
	Objects []json.RawMessage
}

// TimelineObject is the tagged union found in timelineObjects.
// Exactly one of ActivitySegment or PlaceVisit is expected to be set;
// items with neither produce no rows.
type TimelineObject struct {
	ActivitySegment *MovementSegment `json:"activitySegment,omitempty"`
	PlaceVisit      *PlaceVisit      `json:"placeVisit,omitempty"`
}

// Duration carries the raw ISO-8601 instants of a segment or visit.
// Pointers distinguish an absent field from an empty one.
type Duration struct {
	StartTimestamp *string `json:"startTimestamp"`
	EndTimestamp   *string `json:"endTimestamp"`
}

// Location is a point in E7 coordinates with optional descriptive fields.
type Location struct {
	LatitudeE7  *int64  `json:"latitudeE7"`
	LongitudeE7 *int64  `json:"longitudeE7"`
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// RoadSegment is one entry of a segment's road-snapping hints.
type RoadSegment struct {
	PlaceID string `json:"placeId"`
}

// MovementSegment is a recorded interval of travel between two points.
type MovementSegment struct {
	Duration      *Duration     `json:"duration"`
	ActivityType  *string       `json:"activityType,omitempty"`
	Distance      *float64      `json:"distance,omitempty"`
	StartLocation *Location     `json:"startLocation"`
	EndLocation   *Location     `json:"endLocation"`
	RoadSegment   []RoadSegment `json:"roadSegment,omitempty"`
}

// PlaceVisit is a recorded dwell at one location.
type PlaceVisit struct {
	Duration *Duration `json:"duration"`
	Location *Location `json:"location"`
}

// E7 converts an integer-degrees-times-1e7 value to decimal degrees.
func E7(v int64) float64 {
	return float64(v) / 1e7
}
