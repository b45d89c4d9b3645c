// internal/adapters/output/html.go
package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/net/html"

	"urlsummary/internal/core/domain"
	"urlsummary/internal/core/ports"
	"urlsummary/internal/core/usecases"
	"urlsummary/internal/platform/logx"
)

const (
	htmlMarkOpen  = `<b style="color: black">`
	htmlMarkClose = `</b>`

	// groups start collapsed; the arrow flips on click
	htmlToggleScript = `var el = document.getElementById('%s'); ` +
		`this.getElementsByTagName('SPAN')[0].textContent = ` +
		`el.classList.contains('hidden') ? '&#9660;' : '&#9658;'; ` +
		`el.classList.toggle('hidden')`

	htmlStyle = `.hidden { display: none; }
ul { font-family: monospace; }
li > span { user-select: none; }`
)

// HTMLExporter renders a summary as nested lists with expand/collapse toggles.
type HTMLExporter struct {
	logger logx.Logger
	newID  func() string
}

// NewHTMLExporter creates the HTML exporter.
func NewHTMLExporter(logger logx.Logger) *HTMLExporter {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &HTMLExporter{
		logger: logger.With("component", "html_exporter"),
		newID:  uuid.NewString,
	}
}

// Name returns "html".
func (e *HTMLExporter) Name() string { return FormatHTML }

// Export writes the summary as an HTML fragment, or a full document when opts.Standalone is set.
func (e *HTMLExporter) Export(w io.Writer, result domain.SummaryResult, opts ports.ExportOptions) error {
	var buf bytes.Buffer

	if opts.Standalone {
		title := html.EscapeString(opts.Title)
		fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>\n%s\n</style>\n</head>\n<body>\n", title, htmlStyle)
		if title != "" {
			fmt.Fprintf(&buf, "<h1>%s</h1>\n", title)
		}
	}

	buf.WriteString("<ul>\n")
	for _, item := range result {
		e.writeItem(&buf, item)
	}
	buf.WriteString("</ul>\n")

	if opts.Standalone {
		buf.WriteString("</body>\n</html>\n")
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write html: %w", err)
	}
	return nil
}

func (e *HTMLExporter) writeItem(buf *bytes.Buffer, item domain.SummaryItem) {
	id := e.newID()

	samples := make([]string, 0, len(item.Sample)+1)
	for _, u := range item.Sample {
		samples = append(samples, e.renderURL(u, item.Facet))
	}
	if item.HasMore() {
		samples = append(samples, "&hellip;")
	}

	extra := ""
	if item.ValueDiversity != nil {
		extra = fmt.Sprintf(" (%s unique values)", humanize.Comma(int64(*item.ValueDiversity)))
	}

	buf.WriteString("<li>\n")
	fmt.Fprintf(buf, "<span href=\"#\" style=\"cursor: pointer\" onclick=\"%s\">%s %s: <b>%s</b>%s <span>&#9658;</span></span>\n",
		fmt.Sprintf(htmlToggleScript, id),
		humanize.Comma(int64(item.Count)),
		html.EscapeString(item.Kind.Label()),
		html.EscapeString(item.Value),
		extra,
	)
	fmt.Fprintf(buf, "<ul id=\"%s\" class=\"hidden\" style=\"margin-top: 0\">\n", id)
	for _, s := range samples {
		fmt.Fprintf(buf, "<li>%s</li>\n", s)
	}
	buf.WriteString("</ul>\n</li>\n")
}

// renderURL links a sample URL and marks the part matching the facet.
// Every segment is escaped before the mark tags are added around it.
func (e *HTMLExporter) renderURL(rawURL string, f domain.Facet) string {
	segments, ok := usecases.HighlightSegments(rawURL, f)
	if !ok {
		e.logger.Debug("facet not found in sample url", "facet", f.String(), "url", rawURL)
	}

	var text strings.Builder
	for _, s := range segments {
		if s.Marked {
			text.WriteString(htmlMarkOpen + html.EscapeString(s.Text) + htmlMarkClose)
			continue
		}
		text.WriteString(html.EscapeString(s.Text))
	}

	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, html.EscapeString(rawURL), text.String())
}
