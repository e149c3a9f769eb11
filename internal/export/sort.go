// Package export orders normalized rows and writes them as CSV and KML.
package export

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkordes/timeline-export/internal/domain"
)

// Sort orders rows in place by their raw UTC timestamp string.
// The comparison is lexicographic, so it is chronological only while all
// timestamps share one format, precision and zone designator.
// Rows with equal timestamps keep their insertion order.
func Sort(rows []domain.Row) {
	slices.SortStableFunc(rows, func(a, b domain.Row) int {
		return strings.Compare(a.UTCTimestamp, b.UTCTimestamp)
	})
}

// OutputNames returns the CSV and KML file names derived from the last
// path segment of the input directory.
func OutputNames(inputDir string) (csvName, kmlName string) {
	base := filepath.Base(inputDir)
	return base + ".csv", base + ".kml"
}
