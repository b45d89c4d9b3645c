// Package urlparts splits URL strings into their generic components
// (scheme, netloc, path, query, fragment) without validating or normalizing them.
//
// Unlike net/url.Parse, Split never decodes the path and tolerates anything that
// still has a recognisable component layout. Joining the parts gives back the
// input string minus the bytes Split discards: leading C0 controls and spaces,
// and every tab, CR and LF.
package urlparts

import (
	"fmt"
	"strings"

	"urlsummary/internal/platform/errors"
)

// Parts holds the raw components of a URL.
type Parts struct {
	Scheme string

	// HasAuthority is set when the URL carried a "//" authority marker, even an empty one.
	HasAuthority bool
	Netloc       string

	Path string

	HasQuery bool
	RawQuery string

	HasFragment bool
	Fragment    string
}

// unsafeBytes are removed anywhere in a URL before it is split.
var unsafeBytes = strings.NewReplacer("\t", "", "\r", "", "\n", "")

// Split divides raw into its components. Other control bytes are kept as data.
// It fails only on an unbalanced IPv6 bracket in the netloc.
func Split(raw string) (Parts, error) {
	var p Parts

	for len(raw) > 0 && raw[0] <= ' ' {
		raw = raw[1:]
	}
	if strings.ContainsAny(raw, "\t\r\n") {
		raw = unsafeBytes.Replace(raw)
	}

	rest := raw
	if i := strings.IndexByte(rest, ':'); i > 0 && isSchemeName(rest[:i]) {
		p.Scheme = rest[:i]
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			end = len(rest)
		}
		p.HasAuthority = true
		p.Netloc = rest[:end]
		rest = rest[end:]

		if strings.Contains(p.Netloc, "[") != strings.Contains(p.Netloc, "]") {
			return Parts{}, fmt.Errorf("%w: unbalanced brackets in netloc %q", errors.ErrParse, p.Netloc)
		}
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		p.HasFragment = true
		p.Fragment = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		p.HasQuery = true
		p.RawQuery = rest[i+1:]
		rest = rest[:i]
	}
	p.Path = rest

	return p, nil
}

// String joins the parts back into a URL.
func (p Parts) String() string {
	var b strings.Builder
	b.Grow(len(p.Scheme) + len(p.Netloc) + len(p.Path) + len(p.RawQuery) + len(p.Fragment) + 6)
	if p.Scheme != "" {
		b.WriteString(p.Scheme)
		b.WriteByte(':')
	}
	if p.HasAuthority {
		b.WriteString("//")
		b.WriteString(p.Netloc)
	}
	b.WriteString(p.Path)
	if p.HasQuery {
		b.WriteByte('?')
		b.WriteString(p.RawQuery)
	}
	if p.HasFragment {
		b.WriteByte('#')
		b.WriteString(p.Fragment)
	}
	return b.String()
}

// HostBounds returns the byte range of the host inside Netloc, excluding
// userinfo, port and IPv6 brackets.
func (p Parts) HostBounds() (start, end int) {
	nl := p.Netloc
	start = strings.LastIndexByte(nl, '@') + 1
	end = len(nl)

	if start < end && nl[start] == '[' {
		if i := strings.IndexByte(nl[start:], ']'); i >= 0 {
			return start + 1, start + i
		}
		return start, end
	}
	if i := strings.LastIndexByte(nl[start:], ':'); i >= 0 {
		end = start + i
	}
	return start, end
}

// Hostname returns the host part of Netloc.
func (p Parts) Hostname() string {
	start, end := p.HostBounds()
	return p.Netloc[start:end]
}

// PathPrefixes returns the cumulative prefixes of the path after trailing slashes
// are stripped: "/foo/two/" gives ["/foo", "/foo/two"]. A path with fewer than two
// segments yields nothing.
func (p Parts) PathPrefixes() []string {
	trimmed := strings.TrimRight(p.Path, "/")
	first := strings.IndexByte(trimmed, '/')
	if first < 0 {
		return nil
	}

	var prefixes []string
	// every separator after the first one closes a prefix
	for i := first + 1; i < len(trimmed); i++ {
		if trimmed[i] == '/' {
			prefixes = append(prefixes, trimmed[:i])
		}
	}
	return append(prefixes, trimmed)
}

func isSchemeName(s string) bool {
	if !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isAlpha(c) && !('0' <= c && c <= '9') && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
