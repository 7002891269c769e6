package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    ID
		wantErr string
	}{
		{name: "single letter", raw: "A", want: "A"},
		{name: "trims whitespace", raw: "  B ", want: "B"},
		{name: "mixed token", raw: "node_1-x", want: "node_1-x"},
		{name: "empty", raw: "", wantErr: "cannot be empty"},
		{name: "blank", raw: "   ", wantErr: "cannot be empty"},
		{name: "dot is rejected", raw: "a.b", wantErr: "invalid node identifier"},
		{name: "space inside", raw: "a b", wantErr: "invalid node identifier"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.wantErr)
				assert.True(t, got.IsNone())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("") })
	assert.Equal(t, ID("C"), MustParse("C"))
}

func TestSortAndStrings(t *testing.T) {
	ids := []ID{"C", "A", "b", "B"}
	Sort(ids)
	assert.Equal(t, []string{"A", "B", "C", "b"}, Strings(ids))
}
