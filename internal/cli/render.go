package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/recaman-visualization/internal/config"
	"github.com/iburimskiy/recaman-visualization/internal/render"
	"github.com/iburimskiy/recaman-visualization/internal/sequence"
)

func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the arc chain as an SVG document",
		Example: `  recaman render -n 30 -o recaman.svg
  recaman render --scale 6 > small.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if output == "" || output == "-" {
				return writeSVG(cmd.OutOrStdout(), cfg)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := writeSVG(f, cfg); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}
			logger.Info("wrote svg", "path", output, "limit", cfg.Sequence.Limit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}

// writeSVG draws the configured limit onto an SVG surface the size of the
// window's drawing area.
func writeSVG(w io.Writer, cfg config.Config) error {
	width, height := float64(cfg.Window.Width), float64(cfg.Window.Height)
	svg := render.NewSVG(width, height)

	ctx := render.NewContext(svg, width, height, float64(cfg.Sequence.Scale))
	ctx.Style = render.StyleFrom(cfg.Axis)
	render.DrawSequence(ctx, sequence.Scaled(float64(cfg.Sequence.Scale)), cfg.Sequence.Limit)

	if _, err := svg.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
