package audio

import "math"

// DefaultStride keeps every 1000th sample when downsampling.
const DefaultStride = 1000

// minPeak guards the scale divisor for silent or empty buffers.
const minPeak = 1

// Normalizer maps raw samples to a brightness in [0, 1] relative to the
// loudest sample of the buffer it was built from.
type Normalizer struct {
	Min, Max int16
	Scale    float64 // 1 / max(|Min|, |Max|)
}

// NewNormalizer scans samples for their extrema.
func NewNormalizer(samples []int16) Normalizer {
	var n Normalizer
	for i, s := range samples {
		if i == 0 || s < n.Min {
			n.Min = s
		}
		if i == 0 || s > n.Max {
			n.Max = s
		}
	}
	// int keeps |-32768| representable.
	peak := max(abs(int(n.Min)), abs(int(n.Max)))
	if peak < minPeak {
		peak = minPeak
	}
	n.Scale = 1 / float64(peak)
	return n
}

// Brightness is |s| * Scale, clamped to 1.
func (n Normalizer) Brightness(s int16) float32 {
	b := math.Abs(float64(s)) * n.Scale
	if b > 1 {
		b = 1
	}
	return float32(b)
}

// Downsample returns a new slice holding every stride-th sample, starting at
// index 0. A stride below 2 copies the whole buffer.
func Downsample(samples []int16, stride int) []int16 {
	if stride < 2 {
		out := make([]int16, len(samples))
		copy(out, samples)
		return out
	}
	out := make([]int16, 0, (len(samples)+stride-1)/stride)
	for i := 0; i < len(samples); i += stride {
		out = append(out, samples[i])
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
