package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/recaman-visualization/internal/config"
	"github.com/iburimskiy/recaman-visualization/internal/render"
	"github.com/iburimskiy/recaman-visualization/internal/sequence"
)

func newTraceCmd() *cobra.Command {
	var arcsOnly bool

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the drawing operations for a limit",
		Long:  `trace runs the renderer against a recording surface and prints every drawing call, one per line. With --arcs it prints only the arc geometry, in sequence units.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if arcsOnly {
				return writeArcTable(cmd.OutOrStdout(), cfg.Sequence.Limit)
			}
			return writeTrace(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().BoolVar(&arcsOnly, "arcs", false, "print arc geometry only")
	return cmd
}

func writeTrace(w io.Writer, cfg config.Config) error {
	rec := &render.Recorder{}
	ctx := render.NewContext(rec, float64(cfg.Window.Width), float64(cfg.Window.Height), float64(cfg.Sequence.Scale))
	ctx.Style = render.StyleFrom(cfg.Axis)
	render.DrawSequence(ctx, sequence.Scaled(float64(cfg.Sequence.Scale)), cfg.Sequence.Limit)

	_, err := rec.WriteTo(w)
	return err
}

func writeArcTable(w io.Writer, limit int) error {
	if _, err := fmt.Fprintf(w, "%4s %5s %5s %7s %7s  %s\n", "step", "from", "to", "center", "radius", "side"); err != nil {
		return err
	}
	for _, a := range render.Arcs(sequence.Scaled(1), limit) {
		_, err := fmt.Fprintf(w, "%4d %5d %5d %7.1f %7.1f  %s\n",
			a.Step, sequence.Values[a.Step-1], sequence.Values[a.Step], a.CenterX, a.Radius, a.Orientation)
		if err != nil {
			return err
		}
	}
	return nil
}
