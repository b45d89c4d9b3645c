// internal/core/domain/summary_test.go
package domain

import (
	"testing"

	"urlsummary/internal/testutil"
)

func testResult() SummaryResult {
	n := 2
	return SummaryResult{
		{Facet: AllFacet, GroupStats: GroupStats{Count: 4, Sample: []string{"a", "b", "c"}}},
		{Facet: NewFacet(KindNetloc, "a.com"), GroupStats: GroupStats{Count: 3, Sample: []string{"a", "b", "c"}}},
		{Facet: NewFacet(KindNetloc, "b.com"), GroupStats: GroupStats{Count: 1, Sample: []string{"d"}}},
		{Facet: NewFacet(KindQueryKey, "?x"), GroupStats: GroupStats{Count: 2, Sample: []string{"a", "b"}, ValueDiversity: &n}},
	}
}

func TestGroupStats_HasMore(t *testing.T) {
	testutil.AssertTrue(t, GroupStats{Count: 4, Sample: []string{"a", "b", "c"}}.HasMore(), "truncated sample")
	testutil.AssertFalse(t, GroupStats{Count: 2, Sample: []string{"a", "b"}}.HasMore(), "complete sample")
	testutil.AssertTrue(t, GroupStats{Count: 1}.HasMore(), "empty sample with members")
}

func TestSummaryResult_Find(t *testing.T) {
	r := testResult()

	item, ok := r.Find(NewFacet(KindNetloc, "b.com"))
	testutil.AssertTrue(t, ok, "b.com found")
	testutil.AssertEqual(t, item.Count, 1, "b.com count")

	_, ok = r.Find(NewFacet(KindNetloc, "c.com"))
	testutil.AssertFalse(t, ok, "c.com not found")

	_, ok = r.Find(NewFacet(KindPathPrefix, "a.com"))
	testutil.AssertFalse(t, ok, "kind is part of identity")
}

func TestSummaryResult_FacetsAndCounts(t *testing.T) {
	r := testResult()

	testutil.AssertEqual(t, r.Facets(), []Facet{
		AllFacet,
		NewFacet(KindNetloc, "a.com"),
		NewFacet(KindNetloc, "b.com"),
		NewFacet(KindQueryKey, "?x"),
	}, "facets in rank order")

	testutil.AssertEqual(t, r.CountByKind(), map[FacetKind]int{
		KindAll:      4,
		KindNetloc:   4,
		KindQueryKey: 2,
	}, "counts per kind")
}
