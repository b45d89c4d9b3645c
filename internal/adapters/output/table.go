// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"urlsummary/internal/core/domain"
	"urlsummary/internal/core/ports"
	"urlsummary/internal/core/usecases"
	"urlsummary/internal/platform/ui"
)

// TableExporter renders one row per facet with its first sample URL.
type TableExporter struct{}

// NewTableExporter creates the table exporter.
func NewTableExporter() *TableExporter { return &TableExporter{} }

// Name returns "table".
func (e *TableExporter) Name() string { return FormatTable }

// Export renders the table to w.
func (e *TableExporter) Export(w io.Writer, result domain.SummaryResult, opts ports.ExportOptions) error {
	theme := ui.NewTheme(opts.Color)

	data := pterm.TableData{{"COUNT", "KIND", "VALUE", "UNIQUE", "SAMPLE"}}
	for _, item := range result {
		unique := "-"
		if item.ValueDiversity != nil {
			unique = humanize.Comma(int64(*item.ValueDiversity))
		}

		sample := ""
		if len(item.Sample) > 0 {
			sample = usecases.Highlight(item.Sample[0], item.Facet, theme.Mark)
			if len(item.Sample) > 1 || item.HasMore() {
				sample += theme.Secondary(" " + ui.SymbolMore)
			}
		}

		data = append(data, []string{
			theme.Count(humanize.Comma(int64(item.Count))),
			item.Kind.String(),
			theme.Value(item.Value),
			unique,
			sample,
		})
	}

	printer := pterm.DefaultTable.WithHasHeader().WithData(data)
	if !opts.Color {
		printer = printer.WithHeaderStyle(pterm.NewStyle()).WithSeparatorStyle(pterm.NewStyle())
	}

	out, err := printer.Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	if opts.Title != "" {
		out = opts.Title + "\n\n" + out
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
