// internal/core/usecases/highlighter.go
package usecases

import (
	"fmt"
	"strings"

	"urlsummary/internal/core/domain"
	"urlsummary/internal/platform/urlparts"
)

// Segment is a piece of a highlighted URL.
type Segment struct {
	Text   string
	Marked bool
}

// Marker wraps a marked piece of text, e.g. in <b> tags or a terminal colour.
type Marker func(text string) string

// Highlight marks the part of rawURL that matches facet f and renders the
// result with mark. A facet that does not occur in the URL leaves it unmarked.
func Highlight(rawURL string, f domain.Facet, mark Marker) string {
	segments, _ := HighlightSegments(rawURL, f)
	return JoinSegments(segments, mark)
}

// JoinSegments concatenates segments, passing marked ones through mark.
// A nil mark leaves marked text as is.
func JoinSegments(segments []Segment, mark Marker) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Marked && mark != nil {
			b.WriteString(mark(s.Text))
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// HighlightSegments splits rawURL into marked and unmarked segments for facet f.
//
// Netloc, domain and path-prefix highlights keep the URL verbatim. Query
// highlights re-serialize the whole query with urlparts.Quote, keeping input
// pair order. The boolean is false when f does not occur in the URL; the URL
// is then returned as one unmarked segment. Builds tagged "debug" panic instead,
// since the renderer should only ask for facets the URL was grouped under.
func HighlightSegments(rawURL string, f domain.Facet) ([]Segment, bool) {
	segments, ok := highlight(rawURL, f)
	if !ok {
		if debugAssertions {
			panic(fmt.Sprintf("highlight: facet %s not present in %q", f, rawURL))
		}
		return []Segment{{Text: rawURL}}, false
	}
	return segments, true
}

func highlight(rawURL string, f domain.Facet) ([]Segment, bool) {
	if f.Kind == domain.KindAll {
		return []Segment{{Text: rawURL}}, true
	}

	p, err := urlparts.Split(rawURL)
	if err != nil {
		return nil, false
	}

	var sb segmentBuilder
	switch f.Kind {
	case domain.KindNetloc:
		if p.Netloc != f.Value {
			return nil, false
		}
		sb.add(authorityPrefix(p), false)
		sb.add(p.Netloc, true)
		sb.add(p.Path, false)
		sb.add(querySuffix(p), false)

	case domain.KindDomain:
		start, end := p.HostBounds()
		host := p.Netloc[start:end]
		cut := len(host) - len(strings.TrimSuffix(host, "."))
		if cut > 0 {
			host = host[:len(host)-cut]
			end -= cut
		}
		if len(host) < len(f.Value) || !strings.EqualFold(host[len(host)-len(f.Value):], f.Value) {
			return nil, false
		}
		if len(host) > len(f.Value) && host[len(host)-len(f.Value)-1] != '.' {
			return nil, false
		}
		split := end - len(f.Value)
		sb.add(authorityPrefix(p), false)
		sb.add(p.Netloc[:split], false)
		sb.add(p.Netloc[split:end], true)
		sb.add(p.Netloc[end:], false)
		sb.add(p.Path, false)
		sb.add(querySuffix(p), false)

	case domain.KindPathPrefix:
		if f.Value == "" || !strings.HasPrefix(p.Path, f.Value) {
			return nil, false
		}
		if rest := p.Path[len(f.Value):]; rest != "" && rest[0] != '/' {
			return nil, false
		}
		// the leading separator stays unmarked unless it is the whole prefix
		lead := 0
		if f.Value[0] == '/' && len(f.Value) > 1 {
			lead = 1
		}
		sb.add(authorityPrefix(p), false)
		sb.add(p.Netloc, false)
		sb.add(p.Path[:lead], false)
		sb.add(p.Path[lead:len(f.Value)], true)
		sb.add(p.Path[len(f.Value):], false)
		sb.add(querySuffix(p), false)

	case domain.KindQueryKey, domain.KindQueryKeyValue:
		if !strings.HasPrefix(f.Value, "?") {
			return nil, false
		}

		sb.add(authorityPrefix(p), false)
		sb.add(p.Netloc, false)
		sb.add(p.Path, false)
		sb.add("?", false)

		// pairs are compared in facet form, since a decoded key may itself hold "="
		matched := false
		for i, pair := range urlparts.ParseQuery(p.RawQuery) {
			if i > 0 {
				sb.add("&", false)
			}
			var keyHit, valueHit bool
			if f.Kind == domain.KindQueryKeyValue {
				keyHit = "?"+pair.Key+"="+pair.Value == f.Value
				valueHit = keyHit
			} else {
				keyHit = "?"+pair.Key == f.Value
			}
			matched = matched || keyHit
			sb.add(urlparts.Quote(pair.Key), keyHit)
			sb.add("=", false)
			sb.add(urlparts.Quote(pair.Value), valueHit)
		}
		if !matched {
			return nil, false
		}
		if p.HasFragment {
			sb.add("#"+p.Fragment, false)
		}

	default:
		return nil, false
	}

	return sb.segments, true
}

// authorityPrefix renders "scheme:" and the "//" marker.
func authorityPrefix(p urlparts.Parts) string {
	var prefix string
	if p.Scheme != "" {
		prefix = p.Scheme + ":"
	}
	if p.HasAuthority {
		prefix += "//"
	}
	return prefix
}

// querySuffix renders the raw query and fragment as they appeared.
func querySuffix(p urlparts.Parts) string {
	var suffix string
	if p.HasQuery {
		suffix = "?" + p.RawQuery
	}
	if p.HasFragment {
		suffix += "#" + p.Fragment
	}
	return suffix
}

// segmentBuilder merges adjacent segments with the same marking and drops empty ones.
type segmentBuilder struct {
	segments []Segment
}

func (b *segmentBuilder) add(text string, marked bool) {
	if text == "" {
		return
	}
	if n := len(b.segments); n > 0 && b.segments[n-1].Marked == marked && !marked {
		b.segments[n-1].Text += text
		return
	}
	b.segments = append(b.segments, Segment{Text: text, Marked: marked})
}
