package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pkordes/timeline-export/internal/domain"
)

// csvHeaders defines the column names written as the first row of the CSV output.
var csvHeaders = []string{
	"Date", "Time", "Timestamp", "Latitude", "Longitude",
	"Location", "Address", "Type", "Distance (m)", "Activity",
}

// WriteCSV writes a header row followed by one record per row, in the
// order given.
func WriteCSV(w io.Writer, rows []domain.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(rowToCSVRecord(r)); err != nil {
			return fmt.Errorf("export.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	return nil
}

// rowToCSVRecord encodes a row as a flat string slice.
// Place rows leave distance and activity empty.
func rowToCSVRecord(r domain.Row) []string {
	var distance string
	if r.HasMovement {
		distance = formatFloat(r.Distance)
	}
	return []string{
		r.Date,
		r.LocalTime,
		r.UTCTimestamp,
		formatFloat(r.Latitude),
		formatFloat(r.Longitude),
		r.LocationName,
		r.Address,
		string(r.Kind),
		distance,
		r.Activity,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
