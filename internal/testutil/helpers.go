// internal/testutil/helpers.go

// Package testutil holds the assertion helpers and fixtures shared by package tests.
package testutil

import (
	"reflect"
	"strings"
	"testing"
)

// AssertEqual fails the test when got and want are not deeply equal.
func AssertEqual(t testing.TB, got, want interface{}, msg string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s: got %#v, want %#v", msg, got, want)
	}
}

// AssertNotEqual fails the test when got and want are deeply equal.
func AssertNotEqual(t testing.TB, got, notWant interface{}, msg string) {
	t.Helper()
	if reflect.DeepEqual(got, notWant) {
		t.Errorf("%s: did not expect %#v", msg, got)
	}
}

// AssertTrue fails the test when cond is false.
func AssertTrue(t testing.TB, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Errorf("%s: expected true", msg)
	}
}

// AssertFalse fails the test when cond is true.
func AssertFalse(t testing.TB, cond bool, msg string) {
	t.Helper()
	if cond {
		t.Errorf("%s: expected false", msg)
	}
}

// AssertNoError stops the test when err is not nil.
func AssertNoError(t testing.TB, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", msg, err)
	}
}

// AssertError fails the test when err is nil.
func AssertError(t testing.TB, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error", msg)
	}
}

// AssertNotNil fails the test when v is nil, including typed nils.
func AssertNotNil(t testing.TB, v interface{}, msg string) {
	t.Helper()
	if isNil(v) {
		t.Errorf("%s: expected non-nil value", msg)
	}
}

// AssertLen fails the test when v (slice, map, string, chan) does not have length n.
func AssertLen(t testing.TB, v interface{}, n int, msg string) {
	t.Helper()
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.String, reflect.Array, reflect.Chan:
		if rv.Len() != n {
			t.Errorf("%s: got length %d, want %d", msg, rv.Len(), n)
		}
	default:
		t.Errorf("%s: value of kind %s has no length", msg, rv.Kind())
	}
}

// AssertContains fails the test when s does not contain substr.
func AssertContains(t testing.TB, s, substr, msg string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("%s: %q does not contain %q", msg, s, substr)
	}
}

// AssertNotContains fails the test when s contains substr.
func AssertNotContains(t testing.TB, s, substr, msg string) {
	t.Helper()
	if strings.Contains(s, substr) {
		t.Errorf("%s: %q should not contain %q", msg, s, substr)
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
