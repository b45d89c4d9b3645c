// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"urlsummary/internal/core/domain"
	"urlsummary/internal/core/ports"
)

// Document is the machine-readable envelope shared by the JSON and YAML exporters.
type Document struct {
	Metadata map[string]string    `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Summary  domain.SummaryResult `json:"summary" yaml:"summary"`
}

func newDocument(result domain.SummaryResult, opts ports.ExportOptions) Document {
	if result == nil {
		result = domain.SummaryResult{}
	}
	return Document{Metadata: opts.Metadata, Summary: result}
}

// JSONExporter writes the summary as a JSON document.
type JSONExporter struct{}

// NewJSONExporter creates the JSON exporter.
func NewJSONExporter() *JSONExporter { return &JSONExporter{} }

// Name returns "json".
func (e *JSONExporter) Name() string { return FormatJSON }

// Export encodes result, indented when opts.Pretty is set.
func (e *JSONExporter) Export(w io.Writer, result domain.SummaryResult, opts ports.ExportOptions) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(newDocument(result, opts)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
