// Package html provides HTML report generation for inventory trees.
// It implements the report.ReportWriter interface to generate .html
// files with a host table and the canonical ASCII tree.
package html

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nettree/internal/inventory"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Writer implements report.ReportWriter for HTML format.
type Writer struct {
	templatePath string // User-defined template path (optional)
}

// TemplateData holds all data passed to the HTML template.
type TemplateData struct {
	Title       string
	NetworkName string
	Hosts       []*HostData
	Tree        string
	GeneratedAt string
}

// HostData represents host data formatted for template rendering.
type HostData struct {
	Name       string
	Addresses  []string
	Components []ComponentData
}

// ComponentData represents component data formatted for template
// rendering.
type ComponentData struct {
	Kind       string
	Details    string
	Partitions []string
}

// NewWriter creates a new HTML report writer. If templatePath is empty,
// the embedded default template is used.
func NewWriter(templatePath string) *Writer {
	return &Writer{templatePath: templatePath}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "html"
}

// Write generates an HTML report for the network tree.
func (w *Writer) Write(net *inventory.Network, outputPath string) error {
	if net == nil {
		return fmt.Errorf("network is nil")
	}

	if !strings.HasSuffix(strings.ToLower(outputPath), ".html") {
		outputPath = outputPath + ".html"
	}

	tmpl, err := w.loadTemplate()
	if err != nil {
		return err
	}

	data := w.buildTemplateData(net)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render HTML template: %w", err)
	}

	return nil
}

// loadTemplate first tries a user-defined template, then falls back to
// the embedded default.
func (w *Writer) loadTemplate() (*template.Template, error) {
	if w.templatePath != "" {
		tmpl, err := template.ParseFiles(w.templatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", w.templatePath, err)
		}
		return tmpl, nil
	}

	tmpl, err := template.ParseFS(embeddedTemplates, "templates/default.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// buildTemplateData converts the tree into template-friendly values.
func (w *Writer) buildTemplateData(net *inventory.Network) *TemplateData {
	data := &TemplateData{
		Title:       "Inventory Report - " + net.Name(),
		NetworkName: net.Name(),
		Tree:        net.String(),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}

	for _, host := range net.Hosts() {
		hostData := &HostData{Name: host.Name()}
		for _, addr := range host.Addresses() {
			hostData.Addresses = append(hostData.Addresses, addr.Endpoint())
		}
		for _, comp := range host.Components() {
			hostData.Components = append(hostData.Components, describeComponent(comp))
		}
		data.Hosts = append(data.Hosts, hostData)
	}

	return data
}

// describeComponent formats one component for the template.
func describeComponent(comp inventory.Component) ComponentData {
	switch c := comp.(type) {
	case *inventory.CPU:
		return ComponentData{
			Kind:    "CPU",
			Details: fmt.Sprintf("%d cores @ %dMHz", c.Cores(), c.ClockMHz()),
		}
	case *inventory.Memory:
		return ComponentData{
			Kind:    "Memory",
			Details: fmt.Sprintf("%d MiB", c.CapacityMiB()),
		}
	case *inventory.Disk:
		data := ComponentData{
			Kind:    "Disk",
			Details: fmt.Sprintf("%s, %d GiB", c.Kind(), c.CapacityGiB()),
		}
		for i, p := range c.Partitions() {
			data.Partitions = append(data.Partitions, fmt.Sprintf("[%d]: %d GiB, %s", i, p.SizeGiB, p.Label))
		}
		return data
	default:
		return ComponentData{Kind: fmt.Sprintf("%T", comp)}
	}
}
