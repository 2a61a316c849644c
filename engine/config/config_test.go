package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), DefaultFilename))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Mode != ModeAudio {
		t.Errorf("mode = %q", c.Mode)
	}
	if !*c.VSync || !*c.Fullscreen || !*c.Audio.Progress {
		t.Error("boolean defaults not applied")
	}
	if c.Audio.Stride != 1000 {
		t.Errorf("stride = %d, want 1000", c.Audio.Stride)
	}
	if c.Shaders.Vertex != "triangle.vert" || c.Shaders.Fragment != "triangle.frag" {
		t.Errorf("shaders = %+v", c.Shaders)
	}
	if c.ClearColor != [4]float32{0, 0, 0, 1} {
		t.Errorf("clear color = %v", c.ClearColor)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := `title: demo
mode: count
vsync: false
fullscreen: false
width: 800
height: 600
tint: cornflowerblue
clearColor: [0.1, 0.2, 0.3, 1]
shaders:
  dir: shaders
  vertex: a.vert
  fragment: a.frag
count:
  period: 30
audio:
  stride: 10
  play: true
  progress: false
`
	path := filepath.Join(dir, DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Title != "demo" || c.Mode != ModeCount {
		t.Errorf("title/mode = %q/%q", c.Title, c.Mode)
	}
	if *c.VSync || *c.Fullscreen {
		t.Error("explicit false booleans were overridden")
	}
	if c.Width != 800 || c.Height != 600 {
		t.Errorf("size = %dx%d", c.Width, c.Height)
	}
	if c.ClearColor != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Errorf("clear color = %v", c.ClearColor)
	}
	if c.Shaders.Dir != "shaders" || c.Shaders.Vertex != "a.vert" {
		t.Errorf("shaders = %+v", c.Shaders)
	}
	if c.Count.Period != 30 || c.Audio.Stride != 10 || !c.Audio.Play || *c.Audio.Progress {
		t.Errorf("count/audio = %+v / %+v", c.Count, c.Audio)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"mode", "mode: strobe\n", "unknown mode"},
		{"stride", "audio:\n  stride: -1\n", "stride"},
		{"size", "width: -5\n", "window size"},
		{"syntax", "mode: [\n", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFilename)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}
