package report

import (
	"fmt"
	"sort"
	"strings"

	"nettree/internal/report/excel"
	"nettree/internal/report/html"
	"nettree/internal/report/text"
)

// Registry manages report writers for different formats. It provides a
// centralized way to access report writers by format name.
type Registry struct {
	writers map[string]ReportWriter
}

// NewRegistry creates a report registry with the text, Excel and HTML
// writers pre-registered. htmlTemplatePath is optional; if empty, the
// HTML writer uses the embedded default template.
func NewRegistry(htmlTemplatePath string) *Registry {
	textWriter := text.NewWriter()
	excelWriter := excel.NewWriter()
	htmlWriter := html.NewWriter(htmlTemplatePath)

	r := &Registry{
		writers: make(map[string]ReportWriter),
	}

	// Register writers using their Format() return values
	r.writers[textWriter.Format()] = textWriter
	r.writers[excelWriter.Format()] = excelWriter
	r.writers[htmlWriter.Format()] = htmlWriter

	return r
}

// Get returns a writer for the specified format. Format names are
// case-insensitive. Returns an error if the format is not supported.
func (r *Registry) Get(format string) (ReportWriter, error) {
	normalizedFormat := strings.ToLower(strings.TrimSpace(format))

	writer, ok := r.writers[normalizedFormat]
	if !ok {
		supported := r.GetAll()
		return nil, fmt.Errorf("unsupported report format %q, supported formats: %s",
			format, strings.Join(supported, ", "))
	}

	return writer, nil
}

// GetAll returns all supported format names in sorted order.
func (r *Registry) GetAll() []string {
	formats := make([]string, 0, len(r.writers))
	for format := range r.writers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

// Has checks if the specified format is supported. Format names are
// case-insensitive.
func (r *Registry) Has(format string) bool {
	normalizedFormat := strings.ToLower(strings.TrimSpace(format))
	_, ok := r.writers[normalizedFormat]
	return ok
}
