package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hubastard/visuals/engine/anim"
	"github.com/hubastard/visuals/engine/assets"
	"github.com/hubastard/visuals/engine/audio"
	"github.com/hubastard/visuals/engine/colors"
	"github.com/hubastard/visuals/engine/config"
	"github.com/hubastard/visuals/engine/core"
	glbackend "github.com/hubastard/visuals/engine/gfx/gl"
	"github.com/hubastard/visuals/engine/platform"
)

// exitInitFailure mirrors the demo's -1 for window/context/loader failures.
const exitInitFailure = -1

type (
	windowFactory   func(core.Config) (core.Window, error)
	rendererFactory func(win core.Window, cfg core.Config, vertSrc, fragSrc string) (core.Renderer, error)
)

func main() {
	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config, vs, fs string) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg, vs, fs)
	}
	os.Exit(run(os.Args[1:], os.Stderr, newWindow, newRenderer))
}

func run(args []string, stderr io.Writer, newWindow windowFactory, newRenderer rendererFactory) int {
	fl := flag.NewFlagSet("visuals", flag.ContinueOnError)
	fl.SetOutput(stderr)
	configPath := fl.String("config", config.DefaultFilename, "YAML config file (optional)")
	mode := fl.String("mode", "", "Brightness source: clear, count or audio (default from config)")
	stride := fl.Int("stride", 0, "Keep every n-th audio sample (default from config)")
	play := fl.Bool("play", false, "Also play the audio file through the speaker")
	verbose := fl.Bool("verbose", false, "Log per-frame brightness")
	fl.Usage = func() {
		fmt.Fprintf(stderr, "Usage: visuals [flags] <audio-file>\n\n")
		fmt.Fprintf(stderr, "Draw a triangle on a background tinted by audio amplitude.\n")
		fmt.Fprintf(stderr, "With -mode clear or -mode count no audio file is taken.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fl.PrintDefaults()
	}
	if err := fl.Parse(args); err != nil {
		// -h and bad flags are argument errors: usage was printed, exit 0.
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config: %v", err)
		return exitInitFailure
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *stride > 0 {
		cfg.Audio.Stride = *stride
	}
	if *play {
		cfg.Audio.Play = true
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "visuals: %v\n", err)
		return 0
	}

	// Argument errors end the run before any window exists.
	rest := fl.Args()
	wantArgs := 0
	if cfg.Mode == config.ModeAudio {
		wantArgs = 1
	}
	if len(rest) != wantArgs {
		if wantArgs == 1 {
			fmt.Fprintf(stderr, "visuals: expected exactly one audio file, got %d arguments\n", len(rest))
		} else {
			fmt.Fprintf(stderr, "visuals: mode %q takes no arguments, got %d\n", cfg.Mode, len(rest))
		}
		fl.Usage()
		return 0
	}

	tint, err := colors.Named(cfg.Tint)
	if err != nil {
		log.Printf("config: %v; using white", err)
		tint = colors.White
	}

	app := &App{
		tint:    tint,
		clear:   colors.Color(cfg.ClearColor),
		play:    cfg.Audio.Play,
		verbose: cfg.Verbose,
	}
	switch cfg.Mode {
	case config.ModeCount:
		app.source = rampSource{ramp: &anim.Ramp{Period: cfg.Count.Period}}
	case config.ModeAudio:
		clip, err := audio.Load(rest[0], audio.LoadOptions{Progress: *cfg.Audio.Progress})
		if err != nil {
			log.Printf("audio: %v", err)
			return exitInitFailure
		}
		// Extrema come from the whole clip; playback walks the subset.
		norm := audio.NewNormalizer(clip.Samples)
		subset := audio.Downsample(clip.Samples, cfg.Audio.Stride)
		log.Printf("audio: %d samples (%d ch, %d Hz, %s), playing %d at stride %d",
			len(clip.Samples), clip.Channels, clip.SampleRate, clip.Duration(), len(subset), cfg.Audio.Stride)
		log.Printf("audio: min %d max %d scale %g", norm.Min, norm.Max, norm.Scale)
		app.clip = clip
		app.source = sampleSource{cursor: audio.NewCursor(subset), norm: norm}
	}

	// A missing shader file is logged and compiled as empty source; the
	// renderer reports the compile failure and the loop still runs.
	vs, err := assets.LoadShader(cfg.Shaders.Dir, cfg.Shaders.Vertex)
	if err != nil {
		log.Printf("shader: %v", err)
	}
	fs, err := assets.LoadShader(cfg.Shaders.Dir, cfg.Shaders.Fragment)
	if err != nil {
		log.Printf("shader: %v", err)
	}

	coreCfg := core.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: *cfg.Fullscreen,
		VSync:      *cfg.VSync,
		ClearColor: cfg.ClearColor,
	}
	err = core.Run(app, coreCfg, newWindow, func(win core.Window, c core.Config) (core.Renderer, error) {
		return newRenderer(win, c, vs, fs)
	})
	if err != nil {
		log.Printf("visuals: %v", err)
		return exitInitFailure
	}
	return 0
}
