package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunFixturesMatchesGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.fixture", "b.fixture", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	out := captureStdout(t, func() {
		if err := runFixtures(fixturesCmd, []string{filepath.Join(dir, "*.fixture")}); err != nil {
			t.Fatalf("runFixtures: %v", err)
		}
	})

	if !strings.Contains(out, "a.fixture") || !strings.Contains(out, "b.fixture") || strings.Contains(out, "skip.txt") {
		t.Errorf("runFixtures output = %q; want a.fixture and b.fixture but not skip.txt", out)
	}
}
