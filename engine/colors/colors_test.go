package colors

import "testing"

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"white", White},
		{"Black", Black},
		{" red ", Color{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		got, err := Named(tt.name)
		if err != nil {
			t.Fatalf("Named(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Named(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := Named("not-a-color"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func TestScaleKeepsAlpha(t *testing.T) {
	got := Color{1, 0.5, 0, 0.25}.Scale(0.5)
	want := Color{0.5, 0.25, 0, 0.25}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if Gray(0.5) != White.Scale(0.5) {
		t.Fatalf("Gray(0.5) = %v", Gray(0.5))
	}
}
