package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadShaderNullTerminates(t *testing.T) {
	dir := t.TempDir()
	src := "#version 330 core\nvoid main() {}\n"
	if err := os.WriteFile(filepath.Join(dir, "a.vert"), []byte(src), 0o644); err != nil {
		t.Fatalf("write shader: %v", err)
	}

	got, err := LoadShader(dir, "a.vert")
	if err != nil {
		t.Fatalf("LoadShader: %v", err)
	}
	if got != src+"\x00" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadShaderKeepsExistingTerminator(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.frag"), []byte("x\x00"), 0o644); err != nil {
		t.Fatalf("write shader: %v", err)
	}
	got, err := LoadShader(dir, "b.frag")
	if err != nil {
		t.Fatalf("LoadShader: %v", err)
	}
	if got != "x\x00" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadShaderMissing(t *testing.T) {
	_, err := LoadShader(t.TempDir(), "missing.vert")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
	if !strings.Contains(err.Error(), "missing.vert") {
		t.Fatalf("error does not name the file: %v", err)
	}
}
