package domain

// Kind tags the origin of a Row.
type Kind string

const (
	KindStart Kind = "Start"
	KindEnd   Kind = "End"
	KindPlace Kind = "Place"
)

// Row is the unified output unit produced by the normalizer.
// UTCTimestamp is the raw source instant and doubles as the sort key.
// Distance and Activity are only meaningful when HasMovement is true;
// Place rows leave them empty.
type Row struct {
	Date         string // "2006-01-02", UTC calendar date of the source instant
	LocalTime    string // "15:04" in the target timezone
	UTCTimestamp string
	Latitude     float64
	Longitude    float64
	LocationName string
	Address      string
	Kind         Kind
	HasMovement  bool
	Distance     float64
	Activity     string
}
