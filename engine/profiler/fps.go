package profiler

// FrameRateReporter counts frames and reports the count once per elapsed
// second of the supplied clock.
//
// The report boundary advances by exactly one second per report rather than
// snapping to the current time, so rounding never accumulates across seconds.
type FrameRateReporter struct {
	boundary float64
	frames   int
}

// NewFrameRateReporter starts the first one-second window at start.
func NewFrameRateReporter(start float64) *FrameRateReporter {
	return &FrameRateReporter{boundary: start}
}

// Frame records one rendered frame at time now (seconds). When at least one
// second has passed since the current boundary it returns the frame count
// and true, resets the count and moves the boundary forward by one second.
func (r *FrameRateReporter) Frame(now float64) (int, bool) {
	r.frames++
	if now-r.boundary < 1.0 {
		return 0, false
	}
	n := r.frames
	r.frames = 0
	r.boundary += 1.0
	return n, true
}

// Pending is the number of frames counted since the last report.
func (r *FrameRateReporter) Pending() int { return r.frames }

// Boundary is the start of the current one-second window.
func (r *FrameRateReporter) Boundary() float64 { return r.boundary }
