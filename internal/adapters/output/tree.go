// internal/adapters/output/tree.go
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

// TreeExporter renders the summary as a terminal tree under an optional title line.
// Each facet is a branch and each sample URL a leaf with the matching part highlighted.
type TreeExporter struct{}

// NewTreeExporter creates the tree exporter.
func NewTreeExporter() *TreeExporter { return &TreeExporter{} }

// Name returns "tree".
func (e *TreeExporter) Name() string { return FormatTree }

// Export renders the tree to w.
func (e *TreeExporter) Export(w io.Writer, result domain.SummaryResult, opts ports.ExportOptions) error {
	theme := ui.NewTheme(opts.Color)

	var root pterm.TreeNode
	for _, item := range result {
		root.Children = append(root.Children, itemNode(item, theme))
	}
	if len(result) == 0 {
		root.Children = append(root.Children, pterm.TreeNode{Text: theme.Secondary("no urls")})
	}

	printer := pterm.DefaultTree.WithRoot(root)
	if !opts.Color {
		printer = printer.WithTreeStyle(pterm.NewStyle()).WithTextStyle(pterm.NewStyle())
	}

	out, err := printer.Srender()
	if err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	if opts.Title != "" {
		out = opts.Title + "\n" + out
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	return nil
}

func itemNode(item domain.SummaryItem, theme ui.Theme) pterm.TreeNode {
	node := pterm.TreeNode{Text: itemCaption(item, theme)}
	for _, u := range item.Sample {
		node.Children = append(node.Children, pterm.TreeNode{
			Text: usecases.Highlight(u, item.Facet, theme.Mark),
		})
	}
	if item.HasMore() {
		node.Children = append(node.Children, pterm.TreeNode{
			Text: theme.Secondary(fmt.Sprintf("%s %s more", ui.SymbolMore, humanize.Comma(int64(item.Count-len(item.Sample))))),
		})
	}
	return node
}

// itemCaption renders "12 query key: ?page (5 unique values)".
func itemCaption(item domain.SummaryItem, theme ui.Theme) string {
	caption := fmt.Sprintf("%s %s: %s",
		theme.Count(humanize.Comma(int64(item.Count))),
		theme.Secondary(item.Kind.Label()),
		theme.Value(item.Value),
	)
	if item.ValueDiversity != nil {
		caption += theme.Secondary(fmt.Sprintf(" (%s unique values)", humanize.Comma(int64(*item.ValueDiversity))))
	}
	return caption
}
