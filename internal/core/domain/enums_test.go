// internal/core/domain/enums_test.go
package domain

import "testing"

func TestFacetKind_IsValid(t *testing.T) {
	tests := []struct {
		kind  FacetKind
		valid bool
	}{
		{KindAll, true},
		{KindDomain, true},
		{KindNetloc, true},
		{KindPathPrefix, true},
		{KindQueryKey, true},
		{KindQueryKeyValue, true},
		{"", false},
		{"path", false},
		{"NETLOC", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.valid {
				t.Errorf("FacetKind(%q).IsValid() = %v, want %v", tt.kind, got, tt.valid)
			}
		})
	}
}

func TestFacetKind_Label(t *testing.T) {
	tests := []struct {
		kind  FacetKind
		label string
	}{
		{KindAll, "all"},
		{KindDomain, "domain"},
		{KindNetloc, "netloc"},
		{KindPathPrefix, "path start"},
		{KindQueryKey, "query key"},
		{KindQueryKeyValue, "query key=value"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
		})
	}
}

// The ranking tie-break depends on this order of kind names.
func TestFacetKind_NameOrder(t *testing.T) {
	ordered := []FacetKind{KindAll, KindDomain, KindNetloc, KindPathPrefix, KindQueryKey, KindQueryKeyValue}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%q should sort before %q", ordered[i-1], ordered[i])
		}
	}
}

func TestErrorPolicy_IsValid(t *testing.T) {
	tests := []struct {
		policy ErrorPolicy
		valid  bool
	}{
		{ErrorPolicyAbort, true},
		{ErrorPolicySkip, true},
		{"", false},
		{"ignore", false},
		{"Abort", false},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			if got := tt.policy.IsValid(); got != tt.valid {
				t.Errorf("ErrorPolicy(%q).IsValid() = %v, want %v", tt.policy, got, tt.valid)
			}
		})
	}
}
