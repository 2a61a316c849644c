package profiler

import "testing"

func TestFrameRateReporterSixtyFrames(t *testing.T) {
	r := NewFrameRateReporter(0)

	for i := 1; i < 60; i++ {
		if n, ok := r.Frame(float64(i) / 60); ok {
			t.Fatalf("frame %d: unexpected report %d", i, n)
		}
	}

	n, ok := r.Frame(60.0 / 60)
	if !ok {
		t.Fatal("expected a report at t=1.0")
	}
	if n != 60 {
		t.Fatalf("reported %d, want 60", n)
	}
	if r.Pending() != 0 {
		t.Fatalf("counter not reset: %d", r.Pending())
	}
	if r.Boundary() != 1.0 {
		t.Fatalf("boundary = %v, want 1.0", r.Boundary())
	}
}

func TestFrameRateReporterAdvancesFromBoundary(t *testing.T) {
	r := NewFrameRateReporter(10)

	// A late frame reports, but the boundary moves by exactly one second.
	n, ok := r.Frame(11.25)
	if !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", n, ok)
	}
	if r.Boundary() != 11 {
		t.Fatalf("boundary = %v, want 11", r.Boundary())
	}

	// 11.25 - 11 < 1, so the next frame at 11.5 does not report.
	if _, ok := r.Frame(11.5); ok {
		t.Fatal("unexpected report at 11.5")
	}
	n, ok = r.Frame(12.0)
	if !ok || n != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", n, ok)
	}
	if r.Boundary() != 12 {
		t.Fatalf("boundary = %v, want 12", r.Boundary())
	}
}

func TestFrameRateReporterNoReportBeforeSecond(t *testing.T) {
	r := NewFrameRateReporter(0)
	for i := 0; i < 1000; i++ {
		if _, ok := r.Frame(0.999); ok {
			t.Fatal("reported before one second elapsed")
		}
	}
	if r.Pending() != 1000 {
		t.Fatalf("pending = %d, want 1000", r.Pending())
	}
}
