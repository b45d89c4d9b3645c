// internal/core/ports/exporter.go
package ports

import (
	"io"

	"urlsummary/internal/core/domain"
)

// Exporter renders a summary in one output format.
type Exporter interface {
	// Name returns the format name (e.g. "html", "json", "tree")
	Name() string

	// Export writes result to w
	Export(w io.Writer, result domain.SummaryResult, opts ExportOptions) error
}

// ExportOptions tunes rendering. Exporters ignore the fields they do not use.
type ExportOptions struct {
	// Title heads standalone documents and terminal output
	Title string

	// Standalone wraps HTML output in a complete document with its own stylesheet
	Standalone bool

	// Pretty indents machine-readable output
	Pretty bool

	// Color enables terminal styling
	Color bool

	// Metadata is attached to machine-readable output
	Metadata map[string]string
}

// DefaultExportOptions returns standalone, pretty, coloured output.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Title:      "URL summary",
		Standalone: true,
		Pretty:     true,
		Color:      true,
		Metadata:   make(map[string]string),
	}
}
