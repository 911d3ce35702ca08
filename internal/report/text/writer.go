// Package text writes the canonical ASCII rendering of an inventory
// tree to a plain text file.
package text

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nettree/internal/inventory"
)

// Writer implements report.ReportWriter for plain text format.
type Writer struct{}

// NewWriter creates a new text report writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "text"
}

// Write renders the network tree and saves it to outputPath. The tree
// itself carries no trailing newline; one is added at the file
// boundary only.
func (w *Writer) Write(net *inventory.Network, outputPath string) error {
	if net == nil {
		return fmt.Errorf("network is nil")
	}

	if !strings.HasSuffix(strings.ToLower(outputPath), ".txt") {
		outputPath = outputPath + ".txt"
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(net.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}

	return nil
}
