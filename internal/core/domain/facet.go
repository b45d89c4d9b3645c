// internal/core/domain/facet.go
package domain

// Facet is a (kind, value) classification a URL belongs to. Two facets are the
// same group only when both fields are byte-for-byte equal.
type Facet struct {
	Kind  FacetKind `json:"kind" yaml:"kind"`
	Value string    `json:"value" yaml:"value"`
}

// NewFacet builds a facet.
func NewFacet(kind FacetKind, value string) Facet {
	return Facet{Kind: kind, Value: value}
}

// AllFacet is the facet shared by every URL.
var AllFacet = Facet{Kind: KindAll}

// Compare orders facets by kind name, then by value, lexicographically.
// It returns -1, 0 or +1.
func (f Facet) Compare(o Facet) int {
	switch {
	case f.Kind < o.Kind:
		return -1
	case f.Kind > o.Kind:
		return 1
	case f.Value < o.Value:
		return -1
	case f.Value > o.Value:
		return 1
	default:
		return 0
	}
}

// String renders the facet as "kind: value".
func (f Facet) String() string {
	if f.Value == "" {
		return string(f.Kind)
	}
	return string(f.Kind) + ": " + f.Value
}
