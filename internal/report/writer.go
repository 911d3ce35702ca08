// Package report provides report generation for inventory trees. It
// defines the ReportWriter interface and a registry managing the
// available output formats (text, Excel, HTML).
package report

import (
	"nettree/internal/inventory"
)

// ReportWriter defines the interface for generating inventory reports.
// Implementations write a network tree to a file in their specific
// format.
type ReportWriter interface {
	// Write generates a report for the network and saves it to the
	// specified output path, appending the format's file extension if
	// missing.
	//
	// Returns an error if report generation or file writing fails.
	Write(net *inventory.Network, outputPath string) error

	// Format returns the format identifier for this writer.
	// Values are "text", "excel" and "html".
	Format() string
}
