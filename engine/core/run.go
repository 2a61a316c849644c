package core

import (
	"fmt"
	"log"
	"runtime"

	"github.com/hubastard/visuals/engine/profiler"
)

// Run wires the platform window + renderer and executes the main loop.
//
// Each iteration polls events, lets the app compute the frame, clears to
// Engine.ClearColor, renders and presents. The loop leaves Running when the
// window asks to close, Escape is held, or the app calls Engine.Close.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	// window owns context; renderer shuts down first (deferred later)
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:     win,
		Renderer:   rend,
		Input:      NewInput(),
		ClearColor: cfg.ClearColor,
		start:      win.Time(),
	}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		switch v := ev.(type) {
		case EventResize:
			if v.W < 1 || v.H < 1 {
				return
			}
			rend.Resize(v.W, v.H)
		case EventCloseRequested:
			eng.Close(CloseWindow)
		}
	})

	if err := app.OnStart(eng); err != nil {
		return err
	}

	fps := profiler.NewFrameRateReporter(eng.start)
	for eng.state == Running {
		win.PollEvents()
		switch {
		case win.ShouldClose():
			eng.Close(CloseWindow)
		case eng.Input.IsKeyDown(KeyEscape):
			eng.Close(CloseEscape)
		}
		if eng.state != Running {
			break
		}

		app.OnUpdate(eng, eng.frames)
		if eng.state != Running {
			break
		}

		c := eng.ClearColor
		rend.Clear(c[0], c[1], c[2], c[3])
		app.OnRender(eng)
		win.SwapBuffers()
		eng.frames++

		if n, ok := fps.Frame(win.Time()); ok {
			log.Printf("fps: %d", n)
		}
	}

	app.OnShutdown(eng)
	log.Printf("Engine exit (%s, %d frames)", eng.reason, eng.frames)
	return nil
}
