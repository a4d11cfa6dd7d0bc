package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/erdincmutlu/gridview/geom"
)

// Modes a run can use
const (
	ModeWindow   = "window"
	ModeTerminal = "term"
	ModePNG      = "png"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options are the parsed command line. Zero values for the grid overrides
// mean "not given".
type Options struct {
	Mode       string
	ConfigPath string
	Preset     string
	Output     string
	Pointer    *geom.Point

	Step         int
	BoldInterval int
	Width        int
	Height       int

	LogFormat string
	LogLevel  slog.Level
	LogFile   string
	Debug     bool
}

// Parse processes command-line arguments. It returns the Options, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("gridview", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridview - draws a coordinate grid with a live pointer position readout.

Usage:
  gridview [options]

Modes:
  window  open a window (default)
  term    draw in the terminal, quit with q or Esc
  png     render one frame to the file given by -out

Options:
`)
		flagSet.PrintDefaults()
	}

	opts := &Options{}
	var pointer, level string
	flagSet.StringVar(&opts.Mode, "mode", ModeWindow, "Where to draw: 'window', 'term' or 'png'.")
	flagSet.StringVar(&opts.ConfigPath, "config", "", "Path to an HCL settings file.")
	flagSet.StringVar(&opts.Preset, "preset", "", "Grid preset: 'default', 'gray50' or 'pink'.")
	flagSet.StringVar(&opts.Output, "out", "grid.png", "Output file for png mode.")
	flagSet.StringVar(&pointer, "pointer", "", "Pointer position 'x,y' for png mode.")
	flagSet.IntVar(&opts.Step, "step", 0, "Pixels between grid lines.")
	flagSet.IntVar(&opts.BoldInterval, "bold-interval", 0, "Make every Nth line bold.")
	flagSet.IntVar(&opts.Width, "width", 0, "Surface width in pixels for window and png modes.")
	flagSet.IntVar(&opts.Height, "height", 0, "Surface height in pixels for window and png modes.")
	flagSet.StringVar(&opts.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flagSet.StringVar(&level, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file instead of stderr.")
	flagSet.BoolVar(&opts.Debug, "debug", false, "Show FPS and pointer state in window mode.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	opts.Mode = strings.ToLower(opts.Mode)
	switch opts.Mode {
	case ModeWindow, ModeTerminal, ModePNG:
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid mode: must be 'window', 'term' or 'png'"}
	}

	opts.LogFormat = strings.ToLower(opts.LogFormat)
	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	// slog accepts any case and offsets such as "warn+2"
	if err := opts.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if opts.Step < 0 || opts.BoldInterval < 0 || opts.Width < 0 || opts.Height < 0 {
		return nil, false, &ExitError{Code: 2, Message: "step, bold-interval, width and height must not be negative"}
	}

	if pointer != "" {
		p, err := parsePoint(pointer)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		opts.Pointer = &p
	}

	slog.Debug("CLI parser finished successfully.", "mode", opts.Mode)
	return opts, false, nil
}

func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("invalid pointer %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid pointer x %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid pointer y %q: %w", ys, err)
	}
	return geom.Pt(x, y), nil
}
