package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	backend    string
	outDir     string
	format     string
	colormap   string
	width      float64
	height     float64
	debug      bool
	logFile    string
}

func newRootCmd(out io.Writer) (*cobra.Command, *app) {
	var opts options
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:   "quickplot",
		Short: "Interactive helpers for scientific plots",
		Long: `quickplot shows image and line stacks in the terminal or writes them to
image files. Images can share one colour scale, be tiled into a near-square
grid or be stepped through with the arrow keys. Complex fields are shown as
phase/magnitude colour images.

Input files are JSON arrays; without one, each command uses demo data.
Defaults are read from quickplot.toml in the working directory or above.`,
		Example: `  # Step through a stack of images (arrows: +-1, up/down: +-100)
  quickplot stack images.json --names a,b,c

  # Share one colour scale across figures and write PNGs
  quickplot sync images.json --backend file --out-dir ./figs

  # Tile series into a grid
  quickplot grid series.json --mode plot`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to quickplot.toml (default: search upwards)")
	pf.StringVarP(&opts.backend, "backend", "b", "", "display backend: term or file")
	pf.StringVarP(&opts.outDir, "out-dir", "o", "", "directory for saved figures (default $QUICKPLOT_OUTPUT_DIR or ~/.quickplot/figures)")
	pf.StringVar(&opts.format, "format", "", "file format for the file backend: png, svg, pdf, jpg, tiff, eps")
	pf.StringVar(&opts.colormap, "cmap", "", "colormap: hot, gray, cyclic or cyclic-hpluv")
	pf.Float64Var(&opts.width, "width", 0, "figure width in inches")
	pf.Float64Var(&opts.height, "height", 0, "figure height in inches")
	pf.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file (the terminal backend discards them otherwise)")

	rootCmd.AddCommand(
		stackCmd(a),
		plotsCmd(a),
		syncCmd(a),
		gridCmd(a),
		phaseCmd(a),
		colormapCmd(a),
	)
	return rootCmd, a
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd, a := newRootCmd(os.Stdout)
	err := fang.Execute(ctx, rootCmd,
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	)
	if cerr := a.close(context.Background()); cerr != nil {
		fmt.Fprintf(os.Stderr, "quickplot: %v\n", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
