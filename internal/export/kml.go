package export

import (
	"fmt"
	"io"

	"github.com/twpayne/go-kml/v3"

	"github.com/pkordes/timeline-export/internal/domain"
)

// WriteKML writes one labelled point per row.
// Place points read "name (address)"; Start and End points read "Kind: HH:MM".
func WriteKML(w io.Writer, rows []domain.Row) error {
	placemarks := make([]kml.Element, 0, len(rows))
	for _, r := range rows {
		label, ok := pointLabel(r)
		if !ok {
			continue
		}
		placemarks = append(placemarks, kml.Placemark(
			kml.Name(label),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: r.Longitude, Lat: r.Latitude})),
		))
	}
	if err := kml.KML(kml.Document(placemarks...)).WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("export.WriteKML: %w", err)
	}
	return nil
}

// pointLabel returns the placemark name for r, or false for kinds that
// are not drawn.
func pointLabel(r domain.Row) (string, bool) {
	switch r.Kind {
	case domain.KindPlace:
		return fmt.Sprintf("%s (%s)", r.LocationName, r.Address), true
	case domain.KindStart, domain.KindEnd:
		return fmt.Sprintf("%s: %s", r.Kind, r.LocalTime), true
	default:
		return "", false
	}
}
