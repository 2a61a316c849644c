package core

// App defines the demo hooks.
type App interface {
	OnStart(e *Engine) error          // called once after window/renderer init
	OnUpdate(e *Engine, frame uint64) // called once per rendered frame, before clear
	OnRender(e *Engine)               // draw after the clear
	OnEvent(e *Engine, ev Event)      // input/window events
	OnShutdown(e *Engine)             // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input

	// ClearColor is the RGBA the next frame is cleared to.
	ClearColor [4]float32

	state  State
	reason CloseReason
	frames uint64
	start  float64
}

// Close moves the loop to Closing. The first reason wins.
func (e *Engine) Close(reason CloseReason) {
	if e.state == Closing {
		return
	}
	e.state = Closing
	e.reason = reason
}

func (e *Engine) State() State               { return e.state }
func (e *Engine) CloseReason() CloseReason   { return e.reason }
func (e *Engine) Frames() uint64             { return e.frames }
func (e *Engine) Uptime() float64            { return e.Window.Time() - e.start }
func (e *Engine) SetClearColor(c [4]float32) { e.ClearColor = c }

// State of the render loop.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// CloseReason records which transition ended the loop.
type CloseReason int

const (
	CloseNone CloseReason = iota
	CloseWindow
	CloseEscape
	CloseExhausted
)

func (r CloseReason) String() string {
	switch r {
	case CloseWindow:
		return "window closed"
	case CloseEscape:
		return "escape pressed"
	case CloseExhausted:
		return "samples exhausted"
	default:
		return "none"
	}
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Time() float64 // seconds since the window system was initialised
	Destroy()
}

// Renderer abstraction.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	DrawTriangle()
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool // size the window to the primary monitor's video mode
	VSync      bool
	ClearColor [4]float32 // RGBA
}
