package anim

// DefaultPeriod is the number of frames one ramp cycle takes.
const DefaultPeriod = 120

// Ramp is a frame-counting animation that rises from 0 towards 1 over Period
// frames and then starts again.
type Ramp struct {
	Period int
	count  int
}

// Step advances one frame and returns the brightness for the frame just
// counted, (count mod Period) / Period.
func (r *Ramp) Step() float32 {
	p := r.Period
	if p < 1 {
		p = 1
	}
	v := float32(r.count%p) / float32(p)
	r.count++
	return v
}

// Count is the number of frames stepped so far.
func (r *Ramp) Count() int { return r.count }
