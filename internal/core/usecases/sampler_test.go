// internal/core/usecases/sampler_test.go
package usecases

import (
	"fmt"
	"slices"
	"testing"

	"urlsummary/internal/testutil"
)

func members(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("http://example.com/%03d", i)
	}
	return out
}

func TestSelectSample_SmallGroup(t *testing.T) {
	in := members(3)
	for _, randomize := range []bool{true, false} {
		got := selectSample(in, 3, randomize)
		testutil.AssertEqual(t, got, in, fmt.Sprintf("randomize=%v returns every member", randomize))
	}
}

func TestSelectSample_Positional(t *testing.T) {
	in := members(10)
	got := selectSample(in, 4, false)
	testutil.AssertEqual(t, got, in[:4], "first members in encounter order")
}

func TestSelectSample_Randomized(t *testing.T) {
	in := members(50)

	first := selectSample(in, 5, true)
	second := selectSample(in, 5, true)

	testutil.AssertLen(t, first, 5, "sample size")
	testutil.AssertEqual(t, second, first, "fixed seed makes samples reproducible")

	seen := make(map[string]bool)
	for _, m := range first {
		testutil.AssertFalse(t, seen[m], "member drawn twice: "+m)
		seen[m] = true
		testutil.AssertTrue(t, slices.Contains(in, m), "sample member comes from the group")
	}
}

func TestSelectSample_DoesNotMutate(t *testing.T) {
	in := members(20)
	orig := slices.Clone(in)

	got := selectSample(in, 5, true)
	slices.Sort(got)
	slices.Reverse(got)

	testutil.AssertEqual(t, in, orig, "input untouched")

	small := selectSample(in[:2], 5, false)
	small[0] = "changed"
	testutil.AssertEqual(t, in[0], orig[0], "returned slice does not alias input")
}

func TestSelectSample_Zero(t *testing.T) {
	testutil.AssertLen(t, selectSample(members(5), 0, true), 0, "randomized")
	testutil.AssertLen(t, selectSample(members(5), 0, false), 0, "positional")
	testutil.AssertLen(t, selectSample(nil, 0, true), 0, "empty group")
}
