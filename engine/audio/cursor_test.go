package audio

import "testing"

func TestCursorStopsAtEnd(t *testing.T) {
	samples := []int16{5, -6, 7}
	c := NewCursor(samples)

	for i, want := range samples {
		if c.Done() {
			t.Fatalf("done early at %d", i)
		}
		got, ok := c.Next()
		if !ok || got != want {
			t.Fatalf("Next() #%d = (%d, %v), want (%d, true)", i, got, ok, want)
		}
	}
	if !c.Done() || c.Pos() != c.Len() {
		t.Fatalf("pos=%d len=%d done=%v", c.Pos(), c.Len(), c.Done())
	}

	// Exhausted: no one-past-end read and no wrap to the start.
	for i := 0; i < 3; i++ {
		if s, ok := c.Next(); ok || s != 0 {
			t.Fatalf("Next() after end = (%d, %v)", s, ok)
		}
	}
	if c.Pos() != 3 {
		t.Fatalf("cursor moved after end: %d", c.Pos())
	}
}

func TestCursorEmpty(t *testing.T) {
	c := NewCursor(nil)
	if !c.Done() {
		t.Fatal("empty cursor should be done")
	}
	if _, ok := c.Next(); ok {
		t.Fatal("empty cursor returned a sample")
	}
}
