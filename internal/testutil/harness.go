// Package testutil holds the shared harness for end-to-end tests: it writes
// graph files to a temporary directory, builds the app and runs a scripted
// console session against it.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/graphstep/internal/app"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of a session run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// Lines returns the non-empty output lines.
func (r *HarnessResult) Lines() []string {
	var out []string
	for _, l := range strings.Split(r.Output, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// WriteFiles writes files (relative name -> content) under a fresh temporary
// directory and returns its path.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// RunSession builds the app from cfg and feeds script to its console. A
// startup failure is returned in Err with App left nil. cfg.GraphPath is
// resolved relative to dir when it is not absolute.
func RunSession(t *testing.T, dir string, cfg app.Config, script string, opts ...app.Option) *HarnessResult {
	t.Helper()
	if !filepath.IsAbs(cfg.GraphPath) {
		cfg.GraphPath = filepath.Join(dir, cfg.GraphPath)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	out := &SafeBuffer{}
	a, err := app.NewApp(ctx, out, strings.NewReader(script), &cfg, opts...)
	if err != nil {
		return &HarnessResult{Output: out.String(), Err: err}
	}
	err = a.Run(ctx)
	if os.Getenv("GRAPHSTEP_TEST_LOGS") == "true" {
		t.Logf("--- Full Output for %s ---\n%s", t.Name(), out.String())
	}
	return &HarnessResult{Output: out.String(), Err: err, App: a}
}
