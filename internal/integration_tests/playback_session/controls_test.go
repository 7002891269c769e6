package playback_session

import (
	"slices"
	"strings"
	"testing"

	"github.com/specialistvlad/graphstep/internal/app"
	"github.com/specialistvlad/graphstep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareHCL = `
node "A" {}
node "B" {}
node "C" {}
node "D" {}
edges = [["A", "B"], ["A", "C"], ["B", "D"], ["C", "D"]]

renderer "print" {}
`

func stepLines(r *testutil.HarnessResult) []string {
	return slices.DeleteFunc(r.Lines(), func(l string) bool {
		return strings.HasSuffix(l, " reset") || strings.HasPrefix(l, "state=")
	})
}

// TestPauseResume_MatchesUninterruptedRun checks that stepping by hand and
// then resuming produces the same sequence as an uninterrupted run.
func TestPauseResume_MatchesUninterruptedRun(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"square.hcl": squareHCL})
	cfg := app.Config{GraphPath: "square.hcl", SpeedMs: 1}

	straight := testutil.RunSession(t, dir, cfg, "start\n")
	require.NoError(t, straight.Err)

	interrupted := testutil.RunSession(t, dir, cfg, "step\nstep\nstep\nresume\n")
	require.NoError(t, interrupted.Err)

	want := stepLines(straight)
	require.Len(t, want, 13)
	assert.Equal(t, want, stepLines(interrupted))
	assert.True(t, strings.HasPrefix(want[12], "bfs 12 done"))
}

// TestGraphChange_DiscardsRun checks that reshuffling edges mid-run throws the
// run away and the next step starts over.
func TestGraphChange_DiscardsRun(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"square.hcl": squareHCL})

	result := testutil.RunSession(t, dir, app.Config{GraphPath: "square.hcl"}, "step\nstep\nrandomize\nstep\nquit\n")
	require.NoError(t, result.Err)

	lines := result.Lines()
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "bfs 0 init"))
	assert.True(t, strings.HasPrefix(lines[1], "bfs 1 dequeue"))
	assert.Equal(t, "bfs reset", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "bfs 0 init"))
}

// TestRegenerate_ReplacesGraph checks that regeneration swaps in a new
// connected graph and moves the start to its first node.
func TestRegenerate_ReplacesGraph(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"g.hcl": "generator {\n nodes = 3\n seed = 5\n}\nrenderer \"print\" {}\n"})

	result := testutil.RunSession(t, dir, app.Config{GraphPath: "g.hcl", SpeedMs: 1}, "from c\nregen 6\nstart dfs\n")
	require.NoError(t, result.Err)

	assert.Equal(t, 6, result.App.Graph().Len())
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E", "F"}, testutil.VisitOrder(t, result))
	assert.Equal(t, "A", testutil.VisitOrder(t, result)[0])
}

// TestSpeedAndStatus checks the speed command and the status report.
func TestSpeedAndStatus(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"square.hcl": squareHCL})

	result := testutil.RunSession(t, dir, app.Config{GraphPath: "square.hcl", Algorithm: "dfs", Start: "D"},
		"speed 75\nbogus\nstatus\nquit\n")
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, `error: unknown command: "bogus"`)
	assert.Contains(t, result.Output, "state=idle algorithm=dfs start=D speed=75ms\n")
}
