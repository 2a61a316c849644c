package main

import (
	"log"

	"github.com/hubastard/visuals/engine/anim"
	"github.com/hubastard/visuals/engine/audio"
	"github.com/hubastard/visuals/engine/colors"
	"github.com/hubastard/visuals/engine/core"
)

// brightnessSource yields one background brightness per rendered frame.
// ok is false once the source has nothing left to show.
type brightnessSource interface {
	Next() (b float32, ok bool)
}

type rampSource struct{ ramp *anim.Ramp }

func (s rampSource) Next() (float32, bool) { return s.ramp.Step(), true }

// sampleSource advances one sample per frame, regardless of the clip's
// sample rate or wall time.
type sampleSource struct {
	cursor *audio.Cursor
	norm   audio.Normalizer
}

func (s sampleSource) Next() (float32, bool) {
	v, ok := s.cursor.Next()
	if !ok {
		return 0, false
	}
	return s.norm.Brightness(v), true
}

// App tints the clear color from its source and draws the triangle.
type App struct {
	source  brightnessSource // nil: keep the configured clear color
	tint    colors.Color
	clear   colors.Color
	clip    *audio.Clip
	play    bool
	verbose bool

	playing bool
}

func (a *App) OnStart(e *core.Engine) error {
	e.SetClearColor(a.clear)
	if a.clip != nil && a.play {
		if err := a.clip.Play(); err != nil {
			log.Printf("audio: %v", err)
		} else {
			a.playing = true
		}
	}
	return nil
}

func (a *App) OnUpdate(e *core.Engine, frame uint64) {
	if a.source == nil {
		return
	}
	b, ok := a.source.Next()
	if !ok {
		e.Close(core.CloseExhausted)
		return
	}
	if a.verbose {
		log.Printf("frame %d brightness %.4f", frame, b)
	}
	e.SetClearColor(a.tint.Scale(b).WithAlpha(1))
}

func (a *App) OnRender(e *core.Engine) { e.Renderer.DrawTriangle() }

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if v, ok := ev.(core.EventResize); ok && a.verbose {
		log.Printf("resize %dx%d", v.W, v.H)
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.playing {
		audio.StopPlayback()
	}
}
