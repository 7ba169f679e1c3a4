package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadmap/builder"
	"github.com/katalvlaran/roadmap/parser"
)

type generateOptions struct {
	locations int
	roads     int
	seed      int64
	minDist   int64
	maxDist   int64
	names     string
	start     string
	end       string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:          "generate <output>",
		Short:        "Write a random connected road map in the input format",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts, args[0])
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.locations, "locations", 10, "number of locations")
	f.IntVar(&opts.roads, "roads", 15, "number of roads (at least locations-1)")
	f.Int64Var(&opts.seed, "seed", 1, "random seed")
	f.Int64Var(&opts.minDist, "min-distance", 1, "shortest road distance")
	f.Int64Var(&opts.maxDist, "max-distance", 100, "longest road distance")
	f.StringVar(&opts.names, "names", "location", "location naming: location (L0, L1, ...) or excel (A, B, ...)")
	f.StringVar(&opts.start, "start", "", "start location (default: the first location)")
	f.StringVar(&opts.end, "end", "", "end location (default: the last location)")

	return cmd
}

func idScheme(name string) (builder.IDFn, error) {
	switch name {
	case "location":
		return builder.LocationIDFn, nil
	case "excel":
		return builder.ExcelColumnIDFn, nil
	default:
		return nil, fmt.Errorf("unknown naming scheme %q", name)
	}
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions, output string) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	idFn, err := idScheme(opts.names)
	if err != nil {
		return err
	}
	roads, err := builder.RandomRoads(opts.locations, opts.roads,
		builder.WithSeed(opts.seed),
		builder.WithIDScheme(idFn),
		builder.WithDistanceRange(opts.minDist, opts.maxDist))
	if err != nil {
		return err
	}

	start, end := opts.start, opts.end
	if start == "" {
		start = idFn(0)
	}
	if end == "" {
		end = idFn(opts.locations - 1)
	}

	body := strings.Join(parser.Format(start, end, roads), "\n") + "\n"
	if err := os.WriteFile(output, []byte(body), 0o644); err != nil {
		return fmt.Errorf("generate: write %q: %w", output, err)
	}
	logger.Info("road map generated",
		"output", output,
		"locations", humanize.Comma(int64(opts.locations)),
		"roads", humanize.Comma(int64(len(roads))),
		"seed", opts.seed)

	return nil
}
