package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"quickplot/internal/artifact"
	"quickplot/internal/colormap"
	"quickplot/internal/config"
	"quickplot/internal/figure"
	"quickplot/internal/plotfile"
	"quickplot/internal/telemetry"
	"quickplot/internal/ui"
)

// app is the state a subcommand runs with, built by setup from the config
// file and flags.
type app struct {
	out    io.Writer
	cfg    config.Config
	store  *artifact.Store
	term   *ui.Terminal
	files  *plotfile.Backend
	tracer *telemetry.Tracer

	closeLog func() error
}

func (a *app) setup(cmd *cobra.Command, opts options) error {
	cfg, path, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = opts.backend
	}
	if flags.Changed("out-dir") {
		cfg.OutputDir = opts.outDir
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("cmap") {
		cfg.Colormap = opts.colormap
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	closeLog, err := setupLogging(opts.debug, opts.logFile, cfg.Backend == config.BackendTerminal)
	if err != nil {
		return err
	}
	a.closeLog = closeLog
	if path != "" {
		slog.Debug("loaded config", "path", path)
	}

	a.store, err = artifact.NewStore(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("output dir: %w", err)
	}
	switch cfg.Backend {
	case config.BackendTerminal:
		a.term = ui.NewTerminal()
	case config.BackendFile:
		a.files, err = plotfile.New(a.store, cfg.Format, cmd.Name())
		if err != nil {
			return err
		}
	}

	a.tracer, err = telemetry.Init(cmd.Context())
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	slog.Debug("ready", "backend", cfg.Backend, "output_dir", a.store.BaseDir(), "tracing", a.tracer.Enabled())
	return nil
}

func loadConfig(path string) (config.Config, string, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, "", err
		}
		return *cfg, path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, "", err
	}
	found, cfg, err := config.Find(cwd)
	if err != nil {
		return config.Config{}, "", err
	}
	if cfg == nil {
		return config.Default(), "", nil
	}
	return *cfg, found, nil
}

// setupLogging installs a tint handler as the default logger. The terminal
// backend owns the screen, so without a log file its logs are dropped.
func setupLogging(debug bool, logFile string, interactive bool) (func() error, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }
	noColor := !isatty.IsTerminal(os.Stderr.Fd())
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		w, closeFn, noColor = f, f.Close, true
	case interactive:
		w = io.Discard
	}

	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})))
	return closeFn, nil
}

func (a *app) backend() figure.Backend {
	if a.term != nil {
		return a.term
	}
	return a.files
}

func (a *app) colormap() (*colormap.Map, error) {
	return colormap.Named(a.cfg.Colormap)
}

// run builds the figures of one command inside a span, then shows them.
func (a *app) run(ctx context.Context, name string, build func(context.Context) error, attrs ...attribute.KeyValue) error {
	attrs = append(attrs, attribute.String("quickplot.backend", a.cfg.Backend))
	if err := a.tracer.Run(ctx, name, build, attrs...); err != nil {
		return err
	}
	return a.show(ctx)
}

// show runs the terminal UI, or lists the files written by the file
// backend.
func (a *app) show(ctx context.Context) error {
	if a.term != nil {
		if len(a.term.Figures()) == 0 {
			return nil
		}
		err := a.term.Run(ctx, a.store)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	for _, f := range a.files.Figures() {
		if p := f.Path(); p != "" {
			if _, err := fmt.Fprintln(a.out, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *app) close(ctx context.Context) error {
	var errs []error
	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		errs = append(errs, a.tracer.Shutdown(ctx))
	}
	if a.closeLog != nil {
		errs = append(errs, a.closeLog())
	}
	return errors.Join(errs...)
}
