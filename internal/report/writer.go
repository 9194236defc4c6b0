// Package report renders detected streak records as a plain text table.
//
// The table starts with a header line naming the descriptor columns,
// followed by one fixed-width row per record. Numeric precision per column
// is fixed so reports from different frames line up when concatenated.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/astrokit/streakfinder/pkg/streak"
)

// Header is the column description line leading every report.
const Header = "#ID x_center y_center area perimeter shape_factor radius_deviation slope_angle intercept connectivity"

// rowFormat lays out one record in fixed-width columns.
const rowFormat = "%2d %7.2f %7.2f %6.1f %6.1f %6.3f %6.2f %5.2f %7.2f %2d\n"

// Write renders the header line followed by one row per edge, in input
// order. Unlinked edges carry their -1 connectivity sentinel through to
// the output.
func Write(w io.Writer, edges []streak.Edge) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, e := range edges {
		_, err := fmt.Fprintf(w, rowFormat,
			e.Index, e.XCenter, e.YCenter,
			e.Area, e.Perimeter, e.ShapeFactor,
			e.RadiusDeviation, e.SlopeAngle,
			e.Intercept, e.Connectivity)
		if err != nil {
			return fmt.Errorf("failed to write report row %d: %w", e.Index, err)
		}
	}
	return nil
}

// WriteFile writes the report to path, creating or truncating the file.
func WriteFile(path string, edges []streak.Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := Write(f, edges); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}
