// internal/core/domain/summary.go
package domain

// GroupStats describes one retained group.
type GroupStats struct {
	// Count is the total number of members, not just the sampled ones.
	Count int `json:"count" yaml:"count"`

	// Sample holds up to top_urls members, sorted lexicographically.
	Sample []string `json:"sample" yaml:"sample"`

	// ValueDiversity is the number of distinct values seen for the key across the
	// whole input. Set for query-key facets only.
	ValueDiversity *int `json:"value_diversity,omitempty" yaml:"value_diversity,omitempty"`
}

// HasMore reports whether the group has members that are not in the sample.
func (s GroupStats) HasMore() bool {
	return s.Count > len(s.Sample)
}

// SummaryItem is one ranked record of a summary.
type SummaryItem struct {
	Facet      `yaml:",inline"`
	GroupStats `yaml:",inline"`
}

// SummaryResult is the ranked, truncated list of groups. It holds copies of
// the sampled URLs only and no reference to the full member lists.
type SummaryResult []SummaryItem

// Find returns the item for facet f.
func (r SummaryResult) Find(f Facet) (SummaryItem, bool) {
	for _, item := range r {
		if item.Facet == f {
			return item, true
		}
	}
	return SummaryItem{}, false
}

// Facets returns the facets in rank order.
func (r SummaryResult) Facets() []Facet {
	out := make([]Facet, len(r))
	for i, item := range r {
		out[i] = item.Facet
	}
	return out
}

// CountByKind sums member counts per facet kind.
func (r SummaryResult) CountByKind() map[FacetKind]int {
	out := make(map[FacetKind]int)
	for _, item := range r {
		out[item.Kind] += item.Count
	}
	return out
}
