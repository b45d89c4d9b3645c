package urlparts

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Pair is one decoded query parameter. Keys without "=" carry an empty Value.
type Pair struct {
	Key   string
	Value string
}

// ParseQuery splits a raw query string on "&" into ordered, decoded pairs.
// Empty fields are skipped, blank values are kept, and the key/value split
// happens at the first "=".
func ParseQuery(raw string) []Pair {
	if raw == "" {
		return nil
	}

	pairs := make([]Pair, 0, strings.Count(raw, "&")+1)
	for field := range strings.SplitSeq(raw, "&") {
		if field == "" {
			continue
		}
		key, value, _ := strings.Cut(field, "=")
		pairs = append(pairs, Pair{Key: Unquote(key), Value: Unquote(value)})
	}
	return pairs
}

// Unquote decodes a query component: "+" becomes a space and valid %XX escapes
// become bytes. Malformed escapes stay as written. Each maximal invalid UTF-8
// subsequence produced by decoding becomes its own U+FFFD, so "%FF" and
// "%FF%FE" decode to different strings.
func Unquote(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return replaceInvalidUTF8(b.String())
}

// replaceInvalidUTF8 substitutes U+FFFD for every maximal subpart of an
// ill-formed sequence (Unicode 15, section 3.9).
func replaceInvalidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError || size > 1 {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}
		b.WriteRune(utf8.RuneError)
		i += invalidSubpartLen(s[i:])
	}
	return b.String()
}

// invalidSubpartLen returns the length of the ill-formed prefix of s: the lead
// byte plus the continuation bytes that could still have completed it.
func invalidSubpartLen(s string) int {
	var need int
	lo, hi := byte(0x80), byte(0xBF)
	switch c := s[0]; {
	case 0xC2 <= c && c <= 0xDF:
		need = 1
	case c == 0xE0:
		need, lo = 2, 0xA0
	case c == 0xED:
		need, hi = 2, 0x9F
	case 0xE1 <= c && c <= 0xEF:
		need = 2
	case c == 0xF0:
		need, lo = 3, 0x90
	case c == 0xF4:
		need, hi = 3, 0x8F
	case 0xF1 <= c && c <= 0xF3:
		need = 3
	default:
		return 1
	}

	n := 1
	for ; n <= need && n < len(s); n++ {
		if s[n] < lo || s[n] > hi {
			break
		}
		lo, hi = 0x80, 0xBF
	}
	return n
}

// Quote escapes a query key or value: spaces become "+", and everything except
// letters, digits, "-", "_", ".", "~" and "/" is percent-encoded. It is the only
// escaping routine used to re-serialize queries.
func Quote(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%2F", "/")
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
