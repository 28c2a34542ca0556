package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDiffReportsNoDifferences(t *testing.T) {
	dir := t.TempDir()
	before := filepath.Join(dir, "before.txt")
	after := filepath.Join(dir, "after.txt")
	writeFixture(t, before, "Hello")
	writeFixture(t, after, "Hello")

	diffFormat = "text"
	diffWidth = "utf16"
	diffColor = false

	out := captureStdout(t, func() {
		if err := runDiff(diffCmd, []string{before, after}); err != nil {
			t.Fatalf("runDiff: %v", err)
		}
	})

	if !strings.Contains(out, "no differences") {
		t.Errorf("runDiff output = %q; want it to report no differences", out)
	}
}

func TestRunDiffShowsChangedLines(t *testing.T) {
	dir := t.TempDir()
	before := filepath.Join(dir, "before.txt")
	after := filepath.Join(dir, "after.txt")
	writeFixture(t, before, "Hello")
	writeFixture(t, after, "World")

	diffFormat = "text"
	diffWidth = "utf16"
	diffColor = false

	out := captureStdout(t, func() {
		if err := runDiff(diffCmd, []string{before, after}); err != nil {
			t.Fatalf("runDiff: %v", err)
		}
	})

	if !strings.Contains(out, "-Hello") || !strings.Contains(out, "+World") {
		t.Errorf("runDiff output = %q; want it to show the changed line", out)
	}
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}
