// Package excel provides Excel report generation for inventory trees.
// It implements the report.ReportWriter interface to generate .xlsx
// files with a host overview sheet and a component detail sheet.
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"nettree/internal/inventory"
)

const (
	// Sheet names
	sheetHosts      = "Hosts"
	sheetComponents = "Components"

	// Default sheet to remove
	defaultSheet = "Sheet1"

	// Colors for header formatting (RGB without #)
	colorHeaderBg = "4472C4" // Blue background for header
	colorHeaderFg = "FFFFFF" // White text for header

	// Column widths
	defaultColWidth = 15.0
	wideColWidth    = 30.0
)

// Writer implements report.ReportWriter for Excel format.
type Writer struct{}

// NewWriter creates a new Excel report writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "excel"
}

// Write generates an Excel report for the network tree.
func (w *Writer) Write(net *inventory.Network, outputPath string) error {
	if net == nil {
		return fmt.Errorf("network is nil")
	}

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.createHostsSheet(f, net); err != nil {
		return fmt.Errorf("failed to create hosts sheet: %w", err)
	}

	if err := w.createComponentsSheet(f, net); err != nil {
		return fmt.Errorf("failed to create components sheet: %w", err)
	}

	// Remove the default sheet created by excelize
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	return nil
}

// headerStyle creates the shared header cell style.
func (w *Writer) headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{colorHeaderBg},
			Pattern: 1,
		},
		Font: &excelize.Font{
			Bold:  true,
			Color: colorHeaderFg,
		},
	})
}

// createHostsSheet writes one row per host with address and component
// summaries.
func (w *Writer) createHostsSheet(f *excelize.File, net *inventory.Network) error {
	if _, err := f.NewSheet(sheetHosts); err != nil {
		return err
	}

	headers := []string{"Host", "Addresses", "Components"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetHosts, cell, header); err != nil {
			return err
		}
	}

	style, err := w.headerStyle(f)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetHosts, "A1", "C1", style); err != nil {
		return err
	}

	for row, host := range net.Hosts() {
		endpoints := make([]string, 0, len(host.Addresses()))
		for _, addr := range host.Addresses() {
			endpoints = append(endpoints, addr.Endpoint())
		}

		values := []interface{}{
			host.Name(),
			strings.Join(endpoints, ", "),
			len(host.Components()),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetHosts, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheetHosts, "A", "B", wideColWidth); err != nil {
		return err
	}
	return f.SetColWidth(sheetHosts, "C", "C", defaultColWidth)
}

// createComponentsSheet writes one row per component, with one extra
// row per disk partition.
func (w *Writer) createComponentsSheet(f *excelize.File, net *inventory.Network) error {
	if _, err := f.NewSheet(sheetComponents); err != nil {
		return err
	}

	headers := []string{"Host", "Component", "Details"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetComponents, cell, header); err != nil {
			return err
		}
	}

	style, err := w.headerStyle(f)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetComponents, "A1", "C1", style); err != nil {
		return err
	}

	row := 2
	writeRow := func(host, kind, details string) error {
		values := []interface{}{host, kind, details}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetComponents, cell, value); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	for _, host := range net.Hosts() {
		for _, comp := range host.Components() {
			switch c := comp.(type) {
			case *inventory.CPU:
				if err := writeRow(host.Name(), "CPU", fmt.Sprintf("%d cores @ %dMHz", c.Cores(), c.ClockMHz())); err != nil {
					return err
				}
			case *inventory.Memory:
				if err := writeRow(host.Name(), "Memory", fmt.Sprintf("%d MiB", c.CapacityMiB())); err != nil {
					return err
				}
			case *inventory.Disk:
				if err := writeRow(host.Name(), "Disk", fmt.Sprintf("%s, %d GiB", c.Kind(), c.CapacityGiB())); err != nil {
					return err
				}
				for i, p := range c.Partitions() {
					if err := writeRow(host.Name(), "Partition", fmt.Sprintf("[%d]: %d GiB, %s", i, p.SizeGiB, p.Label)); err != nil {
						return err
					}
				}
			}
		}
	}

	if err := f.SetColWidth(sheetComponents, "A", "A", wideColWidth); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetComponents, "B", "B", defaultColWidth); err != nil {
		return err
	}
	return f.SetColWidth(sheetComponents, "C", "C", wideColWidth)
}
