package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/schollz/progressbar/v3"
)

// Clip is a fully decoded audio file.
type Clip struct {
	Samples    []int16 // interleaved, Channels per frame
	Channels   int
	SampleRate int

	buf *beep.Buffer
}

// Duration of the clip at its native sample rate.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	frames := len(c.Samples) / c.Channels
	return time.Duration(frames) * time.Second / time.Duration(c.SampleRate)
}

type LoadOptions struct {
	// Progress draws a byte progress bar while the file is decoded.
	Progress bool
}

// Load decodes a WAV, MP3 or FLAC file (chosen by extension) into memory.
func Load(path string, opts LoadOptions) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if opts.Progress {
		size := int64(-1)
		if st, err := f.Stat(); err == nil {
			size = st.Size()
		}
		bar := progressbar.DefaultBytes(size, "decoding "+filepath.Base(path))
		defer bar.Close()
		r = io.TeeReader(f, bar)
	}

	streamer, format, err := decode(filepath.Ext(path), r)
	if err != nil {
		return nil, fmt.Errorf("decode audio %q: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode audio %q: %w", path, err)
	}
	return fromBuffer(buf), nil
}

func decode(ext string, r io.Reader) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(r)
	case ".mp3":
		return mp3.Decode(io.NopCloser(r))
	case ".flac":
		return flac.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", ext)
	}
}

// fromBuffer flattens a decoded beep buffer into interleaved int16 samples.
func fromBuffer(buf *beep.Buffer) *Clip {
	format := buf.Format()
	channels := format.NumChannels
	if channels < 1 || channels > 2 {
		channels = 2
	}

	clip := &Clip{
		Samples:    make([]int16, 0, buf.Len()*channels),
		Channels:   channels,
		SampleRate: int(format.SampleRate),
		buf:        buf,
	}

	s := buf.Streamer(0, buf.Len())
	chunk := make([][2]float64, 4096)
	for {
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			for ch := 0; ch < channels; ch++ {
				clip.Samples = append(clip.Samples, toInt16(frame[ch]))
			}
		}
		if !ok {
			break
		}
	}
	return clip
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(math.Round(v * math.MaxInt16))
}

// Play starts audible playback on beep's speaker. Playback runs on the
// speaker's own goroutine and is not tied to the render loop.
func (c *Clip) Play() error {
	if c.buf == nil {
		return fmt.Errorf("play: clip has no decoded stream")
	}
	sr := beep.SampleRate(c.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.buf.Streamer(0, c.buf.Len()))
	return nil
}

// StopPlayback drops anything still queued on the speaker.
func StopPlayback() { speaker.Clear() }
