package normalize

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // embeds the zone database so Europe/Rome resolves on any host

	"github.com/pkordes/timeline-export/internal/domain"
)

// TargetZone is the civil timezone used for the local time column.
const TargetZone = "Europe/Rome"

var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
}

// LoadTargetZone loads TargetZone from the embedded zone database.
func LoadTargetZone() (*time.Location, error) {
	loc, err := time.LoadLocation(TargetZone)
	if err != nil {
		return nil, fmt.Errorf("normalize.LoadTargetZone: %w", err)
	}
	return loc, nil
}

// ParseUTC parses an ISO-8601 instant and reads its wall clock as UTC.
// A trailing "Z" is the usual designator; an explicit offset, if present,
// is dropped rather than applied.
func ParseUTC(ts string) (time.Time, error) {
	s := ts
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: unparseable timestamp %q", domain.ErrInvalidRecord, ts)
}

// LocalClock converts ts to loc and formats it as zero-padded "15:04".
func LocalClock(ts string, loc *time.Location) (string, error) {
	t, err := ParseUTC(ts)
	if err != nil {
		return "", err
	}
	return t.In(loc).Format("15:04"), nil
}

// UTCDate returns the date portion of ts as written, before any zone
// conversion. A row's Date is therefore the UTC day even though its
// LocalTime is localized.
func UTCDate(ts string) string {
	date, _, _ := strings.Cut(ts, "T")
	return date
}
