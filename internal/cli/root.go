package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/recaman-visualization/internal/config"
	"github.com/iburimskiy/recaman-visualization/internal/game"
	"github.com/iburimskiy/recaman-visualization/internal/sequence"
)

// runWindow opens the visualizer. Overridden in tests.
var runWindow = game.Run

type configKey struct{}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the attached config, or the defaults.
func configFromContext(ctx context.Context) config.Config {
	if c, ok := ctx.Value(configKey{}).(config.Config); ok {
		return c
	}
	return config.Default()
}

type rootOptions struct {
	configPath string
	verbose    bool
	limit      string
	scale      int
	sound      bool
}

// resolve loads the config file and applies flag overrides on top.
func (o *rootOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("limit") {
		n, err := sequence.ParseLimit(o.limit)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Sequence.Limit = n
	}
	if flags.Changed("scale") {
		cfg.Sequence.Scale = o.scale
	}
	if flags.Changed("sound") {
		cfg.Audio.Enabled = o.sound
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	cfg.Sequence.Limit = sequence.Clamp(cfg.Sequence.Limit)
	return cfg, nil
}

// NewRootCommand builds the command tree. With no subcommand it opens the
// window.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "recaman",
		Short:         "Draw the Recaman sequence as alternating arcs",
		Long:          `recaman draws the first terms of the Recaman sequence as a chain of half circles that alternate below and above a number line. A slider picks how many steps are shown.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := opts.resolve(cmd)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			logger.Debug("config resolved",
				"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
				"scale", cfg.Sequence.Scale,
				"limit", cfg.Sequence.Limit)

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return runWindow(configFromContext(ctx), loggerFromContext(ctx))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $RECAMAN_CONFIG or ~/.config/recaman/config.toml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&opts.limit, "limit", "n", "", fmt.Sprintf("number of steps to draw, 0-%d", sequence.MaxLimit()))
	pf.IntVar(&opts.scale, "scale", config.Scale, "pixels per sequence unit")
	pf.BoolVar(&opts.sound, "sound", false, "play a tone for each new step")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newTraceCmd())

	return root
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
