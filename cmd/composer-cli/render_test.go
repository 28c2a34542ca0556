package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured stdout: %v", err)
	}
	return string(out)
}

func TestRunRenderHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.txt")
	if err := os.WriteFile(path, []byte("{Hello} world"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	renderFormat = "html"
	renderWidth = "utf16"

	out := captureStdout(t, func() {
		if err := runRender(renderCmd, []string{path}); err != nil {
			t.Fatalf("runRender: %v", err)
		}
	})

	if out != "<p>Hello world</p>\n" {
		t.Errorf("runRender output = %q; want %q", out, "<p>Hello world</p>\n")
	}
}

func TestRunRenderUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.txt")
	if err := os.WriteFile(path, []byte("Hello"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	renderFormat = "bogus"
	renderWidth = "utf16"

	if err := runRender(renderCmd, []string{path}); err == nil {
		t.Errorf("runRender with unknown format returned nil error; want error")
	}
}
