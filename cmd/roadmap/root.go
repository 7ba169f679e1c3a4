package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadmap/config"
	"github.com/katalvlaran/roadmap/parser"
	"github.com/katalvlaran/roadmap/pipeline"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "roadmap [input] [output]",
		Short: "Find the fastest route and the barely connected road network",
		Long: `roadmap reads a TAB-separated road map, finds the fastest route
between its start and end, builds the cheapest network that keeps every
location connected, and writes a report comparing the two.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML or TOML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newGenerateCmd(opts))

	return cmd
}

// loadConfig returns the config file named by --config, or the defaults,
// with --log-level applied on top.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	return cfg, nil
}

// resolveConfig merges positional arguments over loadConfig and validates
// the result.
func resolveConfig(opts *rootOptions, args []string) (config.Config, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return cfg, err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("need input and output paths (as arguments or in --config): %w", err)
	}

	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := resolveConfig(opts, args)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()
	logger = logger.With("run_id", uuid.NewString())

	lines, err := parser.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	m, err := parser.Parse(lines)
	if err != nil {
		logger.Error("malformed road map", "input", cfg.Input, "error", err)
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	logger.Info("road map loaded",
		"input", cfg.Input,
		"start", m.Start,
		"end", m.End,
		"locations", humanize.Comma(int64(m.Len())),
		"roads", humanize.Comma(int64(len(m.Roads))))

	if err := checkConnectivity(cmd.Context(), logger, m); err != nil {
		return err
	}

	res := pipeline.Run(m)
	logger.Debug("analysis complete",
		"route_km", humanize.Comma(res.Route.Distance),
		"route_roads", len(res.Route.Roads),
		"barely_roads", humanize.Comma(int64(len(res.Barely))),
		"barely_route_km", humanize.Comma(res.BarelyRoute.Distance),
		"material_ratio", res.Ratios.Material,
		"route_ratio", res.Ratios.Route)

	if err := res.Report.WriteFile(cfg.Output); err != nil {
		return err
	}
	logger.Info("report written",
		"output", cfg.Output,
		"size", humanize.Bytes(uint64(len(res.Report.String()))))

	return nil
}
