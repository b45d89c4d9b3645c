// internal/adapters/output/registry.go
package output

import (
	"strings"

	"urlsummary/internal/core/ports"
	"urlsummary/internal/platform/errors"
	"urlsummary/internal/platform/logx"
)

// Output format names.
const (
	FormatTree  = "tree"
	FormatTable = "table"
	FormatHTML  = "html"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the supported formats, default first.
func Formats() []string {
	return []string{FormatTree, FormatTable, FormatHTML, FormatJSON, FormatYAML}
}

// New returns the exporter for format (case-insensitive; "yml" is accepted for YAML).
func New(format string, logger logx.Logger) (ports.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTree:
		return NewTreeExporter(), nil
	case FormatTable:
		return NewTableExporter(), nil
	case FormatHTML:
		return NewHTMLExporter(logger), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatYAML, "yml":
		return NewYAMLExporter(), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "format %q (supported: %s)",
			format, strings.Join(Formats(), ", "))
	}
}
