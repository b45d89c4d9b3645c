// internal/core/domain/enums.go
package domain

// FacetKind names the structural dimension a facet groups URLs by.
type FacetKind string

const (
	// KindAll groups every input URL under a single empty value.
	KindAll FacetKind = "all"

	// KindDomain groups URLs by registered domain (eTLD+1). Opt-in.
	KindDomain FacetKind = "domain"

	// KindNetloc groups URLs by host[:port], userinfo included when present.
	KindNetloc FacetKind = "netloc"

	// KindPathPrefix groups URLs by each cumulative path prefix, e.g. "/foo" and "/foo/two".
	KindPathPrefix FacetKind = "path-prefix"

	// KindQueryKey groups URLs by query parameter name, value "?key".
	KindQueryKey FacetKind = "query-key"

	// KindQueryKeyValue groups URLs by query parameter name and value, value "?key=value".
	KindQueryKeyValue FacetKind = "query-key-value"
)

// IsValid reports whether k is a known kind.
func (k FacetKind) IsValid() bool {
	switch k {
	case KindAll, KindDomain, KindNetloc, KindPathPrefix, KindQueryKey, KindQueryKeyValue:
		return true
	default:
		return false
	}
}

// String returns the kind name.
func (k FacetKind) String() string {
	return string(k)
}

// Label returns the human readable caption used by renderers.
func (k FacetKind) Label() string {
	switch k {
	case KindPathPrefix:
		return "path start"
	case KindQueryKey:
		return "query key"
	case KindQueryKeyValue:
		return "query key=value"
	default:
		return string(k)
	}
}

// ErrorPolicy decides what a build does with a URL that cannot be split.
type ErrorPolicy string

const (
	// ErrorPolicyAbort stops the build at the first unparseable URL.
	ErrorPolicyAbort ErrorPolicy = "abort"

	// ErrorPolicySkip logs and drops unparseable URLs; they count nowhere.
	ErrorPolicySkip ErrorPolicy = "skip"
)

// IsValid reports whether p is a known policy.
func (p ErrorPolicy) IsValid() bool {
	return p == ErrorPolicyAbort || p == ErrorPolicySkip
}

// String returns the policy name.
func (p ErrorPolicy) String() string {
	return string(p)
}
