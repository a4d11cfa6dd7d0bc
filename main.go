package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten"

	"github.com/erdincmutlu/gridview/cli"
	"github.com/erdincmutlu/gridview/config"
	"github.com/erdincmutlu/gridview/raster"
	"github.com/erdincmutlu/gridview/term"
	"github.com/erdincmutlu/gridview/view"
)

var prog *view.Prog

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logW := io.Writer(os.Stderr)
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logW = f
	} else if opts.Mode == cli.ModeTerminal {
		// stderr is the screen being drawn on
		logW = io.Discard
	}
	slog.SetDefault(config.NewLogger(opts.LogLevel, opts.LogFormat, logW))

	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}

	switch opts.Mode {
	case cli.ModeTerminal:
		return runTerminal(settings)
	case cli.ModePNG:
		return raster.Snapshot{
			Width:        settings.Window.Width,
			Height:       settings.Window.Height,
			Background:   settings.Window.Background,
			Grid:         settings.Grid,
			PointerColor: settings.Pointer.Color,
			Pointer:      opts.Pointer,
		}.WriteFile(opts.Output)
	default:
		return runWindow(settings, opts.Debug)
	}
}

// loadSettings layers defaults, the settings file, then flags
func loadSettings(opts *cli.Options) (config.Settings, error) {
	settings := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if settings, err = config.Load(opts.ConfigPath, settings); err != nil {
			return config.Settings{}, err
		}
	}
	if opts.Preset != "" {
		grid, err := config.Preset(opts.Preset)
		if err != nil {
			return config.Settings{}, &cli.ExitError{Code: 2, Message: err.Error()}
		}
		settings.Grid = grid
	}
	if opts.Step > 0 {
		settings.Grid.Step = opts.Step
	}
	if opts.BoldInterval > 0 {
		settings.Grid.BoldInterval = opts.BoldInterval
	}
	if opts.Width > 0 {
		settings.Window.Width = opts.Width
	}
	if opts.Height > 0 {
		settings.Window.Height = opts.Height
	}
	if err := settings.Validate(); err != nil {
		return config.Settings{}, &cli.ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Settings resolved.", "grid", settings.Grid, "window", settings.Window)
	return settings, nil
}

func runWindow(settings config.Settings, debug bool) error {
	board := view.Board{
		Width:  settings.Window.Width,
		Height: settings.Window.Height,
		Margin: settings.Window.Margin,
	}
	var err error
	prog, err = view.NewProg(view.Options{
		Board:        board,
		Background:   settings.Window.Background,
		PointerColor: settings.Pointer.Color,
		Grid:         settings.Grid,
		Debug:        debug,
	})
	if err != nil {
		return err
	}

	width, height := board.WindowSize()
	slog.Info("Window opened.", "width", width, "height", height)
	err = ebiten.Run(update, width, height, 1, settings.Window.Title)
	if errors.Is(err, view.ErrQuit) {
		return nil
	}
	return err
}

func update(screen *ebiten.Image) error {
	if err := prog.Update(); err != nil {
		return err
	}
	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return prog.Draw(screen)
}

func runTerminal(settings config.Settings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	host, err := term.NewHost(screen, term.Options{
		CellWidth:    settings.Terminal.CellWidth,
		CellHeight:   settings.Terminal.CellHeight,
		FPS:          settings.Terminal.FPS,
		Background:   settings.Window.Background,
		PointerColor: settings.Pointer.Color,
		Grid:         settings.Grid,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
