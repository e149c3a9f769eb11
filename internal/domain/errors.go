package domain

import "errors"

// ErrNoSourceFiles is returned when the input directory holds no .json files.
// It is the only input condition that aborts a run.
var ErrNoSourceFiles = errors.New("no source files")

// ErrUnreadable is returned when a source file cannot be opened or read.
var ErrUnreadable = errors.New("unreadable source file")

// ErrMalformed is returned when a source file is not valid JSON.
var ErrMalformed = errors.New("malformed source file")

// ErrMissingTimeline is returned when a document lacks the timelineObjects collection.
var ErrMissingTimeline = errors.New("missing timelineObjects")

// ErrInvalidRecord is returned by the normalizer when a single timeline item
// is missing a required field or carries an unparseable value.
var ErrInvalidRecord = errors.New("invalid record")
