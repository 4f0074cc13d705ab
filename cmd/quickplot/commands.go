package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"quickplot/internal/array"
	"quickplot/internal/colormap"
	"quickplot/internal/dataset"
	"quickplot/internal/figure"
	"quickplot/internal/grid"
	"quickplot/internal/multiscale"
	"quickplot/internal/navigate"
	"quickplot/internal/phase"
	"quickplot/internal/telemetry"
)

// load decodes the file named by args[0], or returns demo data without one.
func load[T any](args []string, decode func(io.Reader) (T, error), demo func() T) (T, error) {
	if len(args) == 0 {
		slog.Info("no input file, using demo data")
		return demo(), nil
	}
	r, err := dataset.Open(args[0])
	if err != nil {
		var zero T
		return zero, err
	}
	defer r.Close()
	return decode(r)
}

// limitsFlag turns a two-element "min,max" flag into limits.
func limitsFlag(name string, v []float64) (*array.Limits, error) {
	switch len(v) {
	case 0:
		return nil, nil
	case 2:
		return &array.Limits{Min: v[0], Max: v[1]}, nil
	}
	return nil, fmt.Errorf("--%s wants min,max, got %d values", name, len(v))
}

func stackCmd(a *app) *cobra.Command {
	var names []string
	cmd := &cobra.Command{
		Use:   "stack [file.json]",
		Short: "Step through a stack of images on a shared colour scale",
		Long: `Shows one image of the stack at a time. Right/left move by one, up/down by
100, wrapping around. Every image uses the min/max of the whole stack.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := load(args, dataset.LoadMatrices, func() []array.Matrix { return dataset.Gaussians(8, 48) })
			if err != nil {
				return err
			}
			cmap, err := a.colormap()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), "stack", func(ctx context.Context) error {
				s, err := navigate.NewImageStack(a.backend(), stack, navigate.Config{
					Names:    names,
					Colormap: cmap,
					Width:    a.cfg.Width,
					Height:   a.cfg.Height,
				})
				if err != nil {
					return err
				}
				slog.Debug("image stack", "images", s.Len(), "limits", s.Limits())
				return nil
			}, telemetry.Count(len(stack)))
		},
	}
	cmd.Flags().StringSliceVar(&names, "names", nil, "title of each image (default: index N)")
	return cmd
}

func plotsCmd(a *app) *cobra.Command {
	var (
		names      []string
		xlim, ylim []float64
	)
	cmd := &cobra.Command{
		Use:   "plots [file.json]",
		Short: "Step through a stack of line plots on shared axes",
		Long: `Shows one series of the stack at a time with the same keys as stack. Axis
limits cover the whole stack unless --xlim/--ylim are given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := load(args, dataset.LoadSeries, func() []array.Series { return dataset.Waves(6, 256) })
			if err != nil {
				return err
			}
			x, err := limitsFlag("xlim", xlim)
			if err != nil {
				return err
			}
			y, err := limitsFlag("ylim", ylim)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), "plots", func(ctx context.Context) error {
				s, err := navigate.NewPlotStack(a.backend(), stack, navigate.Config{
					Names:  names,
					XLim:   x,
					YLim:   y,
					Width:  a.cfg.Width,
					Height: a.cfg.Height,
				})
				if err != nil {
					return err
				}
				xl, yl := s.Limits()
				slog.Debug("plot stack", "series", s.Len(), "xlim", xl, "ylim", yl)
				return nil
			}, telemetry.Count(len(stack)))
		},
	}
	cmd.Flags().StringSliceVar(&names, "names", nil, "title of each series (default: index N)")
	cmd.Flags().Float64SliceVar(&xlim, "xlim", nil, "x axis limits as min,max")
	cmd.Flags().Float64SliceVar(&ylim, "ylim", nil, "y axis limits as min,max")
	return cmd
}

func syncCmd(a *app) *cobra.Command {
	var titles, save []string
	cmd := &cobra.Command{
		Use:   "sync [file.json]",
		Short: "Show each image in its own figure, all on one colour scale",
		Long: `Registers the images one by one. Whenever an image falls outside the current
scale, every figure is redrawn on the widened scale, so all colour bars agree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := load(args, dataset.LoadMatrices, func() []array.Matrix { return dataset.Gaussians(4, 32) })
			if err != nil {
				return err
			}
			cmap, err := a.colormap()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), "sync", func(ctx context.Context) error {
				s, err := multiscale.NewFromStack(a.backend(), stack, multiscale.Config{
					Colormap: cmap,
					Width:    a.cfg.Width,
					Height:   a.cfg.Height,
				})
				if err != nil {
					return err
				}
				if len(titles) > 0 {
					if err := s.SetTitles(titles); err != nil {
						return err
					}
				}
				if len(save) > 0 {
					if err := s.SaveAll(save); err != nil {
						return err
					}
				}
				telemetry.Annotate(ctx, telemetry.Count(s.Len()))
				slog.Info("synchronized", "images", s.Len(), "limits", s.Limits(), "rescales", s.Rescales())
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&titles, "titles", nil, "title of each figure")
	cmd.Flags().StringSliceVar(&save, "save", nil, "save each figure to these paths, one per image")
	return cmd
}

func gridCmd(a *app) *cobra.Command {
	var (
		mode  string
		title string
	)
	cmd := &cobra.Command{
		Use:   "grid [file.json]",
		Short: "Tile plots or images into a near-square grid with shared limits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := grid.ParseMode(mode)
			if err != nil {
				return err
			}
			var elems []array.Element
			switch m {
			case grid.Plot:
				series, err := load(args, dataset.LoadSeries, func() []array.Series { return dataset.Waves(7, 128) })
				if err != nil {
					return err
				}
				elems = array.Elements(series)
			case grid.ImShow:
				images, err := load(args, dataset.LoadMatrices, func() []array.Matrix { return dataset.Gaussians(7, 24) })
				if err != nil {
					return err
				}
				elems = array.Elements(images)
			}
			cmap, err := a.colormap()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), "grid", func(ctx context.Context) error {
				arr, err := grid.New(a.backend(), grid.Config{
					Mode:     m,
					Colormap: cmap,
					Width:    a.cfg.Width,
					Height:   a.cfg.Height,
					Title:    title,
				})
				if err != nil {
					return err
				}
				layout, err := arr.Arrange(elems, nil)
				if err != nil {
					return err
				}
				telemetry.Annotate(ctx, telemetry.Shape(layout.Rows, layout.Cols)...)
				slog.Debug("grid", "rows", layout.Rows, "cols", layout.Cols, "limits", layout.Limits)
				return nil
			}, telemetry.Count(len(elems)), attributeMode(m))
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(grid.ImShow), "plot or imshow")
	cmd.Flags().StringVar(&title, "title", "", "figure title")
	return cmd
}

func phaseCmd(a *app) *cobra.Command {
	var (
		theme string
		norm  float64
	)
	cmd := &cobra.Command{
		Use:   "phase [file.json]",
		Short: "Show a complex field as colour: hue is phase, brightness is magnitude",
		Long: `Input is a 2-D array of [re, im] pairs. With the dark theme magnitude sets
the value; with the light theme it sets the saturation. --norm fixes the
magnitude shown at full strength (default: the field's largest magnitude).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if theme == "" {
				theme = a.cfg.Theme
			}
			th, err := phase.ParseTheme(theme)
			if err != nil {
				return err
			}
			z, err := load(args, dataset.LoadComplex, func() array.Complex { return dataset.Vortex(96) })
			if err != nil {
				return err
			}
			rows, cols := z.Size()
			return a.run(cmd.Context(), "phase", func(ctx context.Context) error {
				rgb, err := phase.Encode(z, th, phase.Options{Norm: norm})
				if err != nil {
					return err
				}
				fig, err := a.backend().NewFigure(figure.Options{Width: a.cfg.Width, Height: a.cfg.Height})
				if err != nil {
					return err
				}
				ax, err := fig.Axes(0)
				if err != nil {
					return err
				}
				ax.SetTitle(fmt.Sprintf("phase (%s)", th))
				ax.ImShowRGB(rgb)
				return fig.Draw()
			}, telemetry.Shape(rows, cols)...)
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "dark or light (default from config)")
	cmd.Flags().Float64Var(&norm, "norm", 0, "magnitude shown at full strength (0: automatic)")
	return cmd
}

func colormapCmd(a *app) *cobra.Command {
	var (
		space string
		size  int
		hex   bool
	)
	cmd := &cobra.Command{
		Use:   "colormap",
		Short: "Build a cyclic colormap and show or print it",
		Long: `Builds a cyclic map in a perceptually uniform space: lightness ramps up along
one hue and back down along another, so both ends meet at black. Hues and
saturation come from the [cyclic] section of quickplot.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if space == "" {
				space = a.cfg.Cyclic.Space
			}
			if size == 0 {
				size = a.cfg.Cyclic.Size
			}
			sp, err := colormap.ParseSpace(space)
			if err != nil {
				return err
			}
			cmap, err := colormap.CyclicWith(size, sp, a.cfg.CyclicOptions())
			if err != nil {
				return err
			}
			if hex {
				for _, c := range cmap.Table() {
					if _, err := fmt.Fprintln(a.out, c.Hex()); err != nil {
						return err
					}
				}
				return nil
			}
			return a.run(cmd.Context(), "colormap", func(ctx context.Context) error {
				return showColormap(a, cmap, sp)
			}, telemetry.Count(size))
		},
	}
	cmd.Flags().StringVar(&space, "space", "", "hsluv or hpluv (default from config)")
	cmd.Flags().IntVarP(&size, "size", "n", 0, "number of entries (default from config)")
	cmd.Flags().BoolVar(&hex, "hex", false, "print the table as hex colours instead of showing it")
	return cmd
}

// showColormap draws the map as a horizontal ramp with its colour bar.
func showColormap(a *app, cmap *colormap.Map, sp colormap.Space) error {
	n := cmap.Len()
	ramp := array.NewMatrix(max(n/8, 1), n)
	for r := range ramp {
		for c := range ramp[r] {
			ramp[r][c] = float64(c) / float64(n-1)
		}
	}
	fig, err := a.backend().NewFigure(figure.Options{Width: a.cfg.Width, Height: a.cfg.Height / 2})
	if err != nil {
		return err
	}
	ax, err := fig.Axes(0)
	if err != nil {
		return err
	}
	ax.SetTitle(fmt.Sprintf("cyclic %s, %d entries", sp, n))
	img := ax.ImShow(ramp, array.Limits{Min: 0, Max: 1}, cmap)
	if _, err := fig.Colorbar(img); err != nil {
		return err
	}
	return fig.Draw()
}

func attributeMode(m grid.Mode) attribute.KeyValue {
	return attribute.String("quickplot.mode", string(m))
}
