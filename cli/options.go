// Package cli turns command line arguments into Options.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"math"

	"fractalglass/effect"
	"fractalglass/misc"
)

var ErrInvalidOption = errors.New("invalid option")

type Options struct {
	Effect effect.Config

	ConfigPath string
	ImagePath  string

	// hot reload source for the glass shader
	ShaderPath string
	HotReload  bool

	Width  int
	Height int

	ClearColor    color.NRGBA
	MaxPixelRatio float64

	PProf bool

	Headless  bool
	Frames    int
	FPS       float64
	OutputDir string
}

func DefaultOptions() Options {
	return Options{
		Effect: effect.DefaultConfig(),

		ShaderPath: "assets/glass_shader.go",

		Width:  1280,
		Height: 720,

		ClearColor:    color.NRGBA{0, 0, 0, 255},
		MaxPixelRatio: 2,

		Frames:    120,
		FPS:       60,
		OutputDir: "frames",
	}
}

// colorValue is a flag.Value parsing css colors.
type colorValue struct {
	clr *color.NRGBA
}

func (v colorValue) String() string {
	if v.clr == nil {
		return ""
	}
	return misc.ColorToString(*v.clr)
}

func (v colorValue) Set(str string) error {
	c, err := misc.ParseColorString(str)
	if err != nil {
		return err
	}
	*v.clr = c
	return nil
}

func newFlagSet(name string, opts *Options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	opts.Effect.RegisterFlags(fs)

	fs.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "JSON file with effect knobs, flags take precedence")
	fs.StringVar(&opts.ImagePath, "image", opts.ImagePath, "image shown through the glass (png, jpeg, gif, webp)")
	fs.StringVar(&opts.ShaderPath, "shader", opts.ShaderPath, "kage source reloaded with F5 when -hot is set")
	fs.BoolVar(&opts.HotReload, "hot", opts.HotReload, "enable shader hot reloading")

	fs.IntVar(&opts.Width, "width", opts.Width, "window or frame width")
	fs.IntVar(&opts.Height, "height", opts.Height, "window or frame height")
	fs.Var(colorValue{&opts.ClearColor}, "clear", "css color drawn while the image is loading")
	fs.Float64Var(&opts.MaxPixelRatio, "max-pixel-ratio", opts.MaxPixelRatio, "upper bound of the device scale factor")

	fs.BoolVar(&opts.PProf, "pprof", opts.PProf, "serve pprof on localhost:6060")

	fs.BoolVar(&opts.Headless, "headless", opts.Headless, "render frames on the cpu and write them as png")
	fs.IntVar(&opts.Frames, "frames", opts.Frames, "number of frames rendered in headless mode")
	fs.Float64Var(&opts.FPS, "fps", opts.FPS, "tick rate in headless mode")
	fs.StringVar(&opts.OutputDir, "out", opts.OutputDir, "directory headless frames are written to")

	return fs
}

// Parse parses args (without the program name).
//
// When -config is given, the file is loaded over the defaults and args
// are parsed a second time so explicitly set flags win over the file.
func Parse(name string, args []string, output io.Writer) (Options, error) {
	opts := DefaultOptions()

	fs := newFlagSet(name, &opts)
	fs.SetOutput(output)
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.ConfigPath != "" {
		cfg, err := effect.LoadConfigFile(opts.ConfigPath, effect.DefaultConfig())
		if err != nil {
			return opts, fmt.Errorf("loading config: %w", err)
		}

		configPath := opts.ConfigPath
		opts = DefaultOptions()
		opts.Effect = cfg
		opts.ConfigPath = configPath

		fs = newFlagSet(name, &opts)
		fs.SetOutput(output)
		if err := fs.Parse(args); err != nil {
			return opts, err
		}
	}

	if fs.NArg() > 0 {
		return opts, fmt.Errorf("%w: unexpected arguments %q", ErrInvalidOption, fs.Args())
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

func (o Options) Validate() error {
	var errs []error

	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidOption}, args...)...))
	}

	if err := o.Effect.Validate(); err != nil {
		errs = append(errs, err)
	}

	if o.Width <= 0 || o.Height <= 0 {
		invalid("size must be positive, got %dx%d", o.Width, o.Height)
	}
	if math.IsNaN(o.MaxPixelRatio) || o.MaxPixelRatio <= 0 {
		invalid("max-pixel-ratio must be positive, got %v", o.MaxPixelRatio)
	}

	if o.ImagePath == "" {
		invalid("-image is required")
	} else if exists, err := misc.CheckFileExists(o.ImagePath); err != nil {
		errs = append(errs, err)
	} else if !exists {
		invalid("%s does not exist", o.ImagePath)
	}

	if o.HotReload && !o.Headless {
		if exists, err := misc.CheckFileExists(o.ShaderPath); err != nil {
			errs = append(errs, err)
		} else if !exists {
			invalid("shader source %s does not exist", o.ShaderPath)
		}
	}

	if o.Headless {
		if o.Frames <= 0 {
			invalid("frames must be positive, got %d", o.Frames)
		}
		if math.IsNaN(o.FPS) || math.IsInf(o.FPS, 0) || o.FPS <= 0 {
			invalid("fps must be positive, got %v", o.FPS)
		}
		if o.OutputDir == "" {
			invalid("-out must not be empty")
		} else if _, err := misc.CheckDirExists(o.OutputDir); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidOption, err))
		}
	}

	return errors.Join(errs...)
}
