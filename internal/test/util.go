package test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func AssertEqual(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if observed != expected {
		t.Fatalf("%v != %v", observed, expected)
	}
}

// AssertDeepEqual compares with go-cmp so float options such as
// cmpopts.EquateApprox and cmpopts.EquateNaNs can be passed through.
func AssertDeepEqual(t *testing.T, observed interface{}, expected interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(expected, observed, opts...); diff != "" {
		t.Fatalf("mismatch (-expected +observed):\n%s", diff)
	}
}
