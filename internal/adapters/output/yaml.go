// internal/adapters/output/yaml.go
package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"urlsummary/internal/core/domain"
	"urlsummary/internal/core/ports"
)

// YAMLExporter writes the summary as a YAML document.
type YAMLExporter struct{}

// NewYAMLExporter creates the YAML exporter.
func NewYAMLExporter() *YAMLExporter { return &YAMLExporter{} }

// Name returns "yaml".
func (e *YAMLExporter) Name() string { return FormatYAML }

// Export encodes result with two-space indentation.
func (e *YAMLExporter) Export(w io.Writer, result domain.SummaryResult, opts ports.ExportOptions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(result, opts)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}
	return nil
}
