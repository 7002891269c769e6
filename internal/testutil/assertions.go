package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// VisitOrder extracts the visit sequence from "print" renderer output.
func VisitOrder(t *testing.T, result *HarnessResult) []string {
	t.Helper()
	var order []string
	for _, line := range result.Lines() {
		f := strings.Fields(line)
		if len(f) > 3 && f[2] == "visit" && strings.HasPrefix(f[3], "current=") {
			order = append(order, strings.TrimPrefix(f[3], "current="))
		}
	}
	return order
}

// AssertVisited checks that the session visited exactly want, in order.
func AssertVisited(t *testing.T, result *HarnessResult, want ...string) {
	t.Helper()
	require.NoError(t, result.Err)
	require.Equal(t, want, VisitOrder(t, result), "unexpected visit order")
}
