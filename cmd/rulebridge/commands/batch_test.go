package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeBatchInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunBatch_MultipleTargets(t *testing.T) {
	dir := t.TempDir()
	a := writeBatchInput(t, dir, "api.md", "# API Rules\n\n- Version every endpoint\n")
	b := writeBatchInput(t, dir, "style.md", "# Style\n\nKeep functions small.\n")

	outDir := t.TempDir()
	batchFrom = "agentsmd"
	batchTargets = []string{"trae", "windsurf"}
	batchOut = outDir
	batchJobs = 2
	batchJSON = false
	batchDryRun = false
	defer func() { batchTargets = nil; batchOut = "." }()

	cmd, _, _ := newTestCommand(t)
	if err := runBatch(cmd, []string{a, b}); err != nil {
		t.Fatalf("runBatch() error = %v", err)
	}

	for _, want := range []string{
		filepath.Join(outDir, ".trae", "rules", "api.md"),
		filepath.Join(outDir, ".trae", "rules", "style.md"),
		filepath.Join(outDir, ".windsurf", "rules", "api.md"),
		filepath.Join(outDir, ".windsurf", "rules", "style.md"),
	} {
		if _, err := os.Stat(want); err != nil {
			t.Errorf("expected output file %s: %v", want, err)
		}
	}
}

func TestRunBatch_FailedJobDoesNotHaltOthers(t *testing.T) {
	dir := t.TempDir()
	good := writeBatchInput(t, dir, "good.md", "---\ninclusion: always\n---\n\nSteering body.\n")
	bad := writeBatchInput(t, dir, "bad.md", "no frontmatter here\n")

	outDir := t.TempDir()
	batchFrom = "kiro"
	batchTargets = []string{"claude"}
	batchOut = outDir
	batchJobs = 0
	batchJSON = false
	batchDryRun = false
	defer func() { batchTargets = nil; batchOut = "." }()

	cmd, _, _ := newTestCommand(t)
	err := runBatch(cmd, []string{good, bad})
	if err == nil {
		t.Fatal("runBatch() expected error when a job fails")
	}
	if !strings.Contains(err.Error(), "1 of 2 jobs failed") {
		t.Errorf("runBatch() error = %v, want one failed job", err)
	}

	// The good file still converted
	if _, statErr := os.Stat(filepath.Join(outDir, "CLAUDE.md")); statErr != nil {
		t.Errorf("expected CLAUDE.md for the good input: %v", statErr)
	}
}

func TestRunBatch_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeBatchInput(t, dir, "rules.md", "# Rules\n\n- One\n")

	outDir := t.TempDir()
	batchFrom = "agentsmd"
	batchTargets = []string{"cursor"}
	batchOut = outDir
	batchDryRun = true
	defer func() { batchTargets = nil; batchOut = "."; batchDryRun = false }()

	cmd, _, _ := newTestCommand(t)
	if err := runBatch(cmd, []string{input}); err != nil {
		t.Fatalf("runBatch() error = %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run wrote %d entries to output dir", len(entries))
	}
}

func TestRunBatch_NoTargets(t *testing.T) {
	dir := t.TempDir()
	input := writeBatchInput(t, dir, "rules.md", "# Rules\n\n- One\n")

	batchFrom = "agentsmd"
	batchTargets = nil
	savedCfg := cfg
	cfg = nil
	defer func() { cfg = savedCfg }()

	cmd, _, _ := newTestCommand(t)
	if err := runBatch(cmd, []string{input}); err == nil {
		t.Error("runBatch() expected error with no targets and no config")
	}
}
