package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/paradox-sims/montyhall/internal/cli"
	"github.com/paradox-sims/montyhall/internal/report"
	"github.com/paradox-sims/montyhall/internal/sim"
	"github.com/paradox-sims/montyhall/pkg/config"
	"github.com/paradox-sims/montyhall/pkg/logger"
	"github.com/paradox-sims/montyhall/pkg/utils"
)

// Run parses argv, plays the stay batch and then the switch batch against a
// single random source, and writes all output to stdout. It returns the
// process exit code: 0 on success, 2 on a flag parse error, 1 on any other
// failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("montyhall")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 1
	}

	var base = logger.NewText(cfg.Log.Level, stdout)
	if cfg.Log.Format == "json" {
		base = logger.New(cfg.Log.Level, stdout)
	}

	rng := utils.NewRandSource(cfg.Seed)
	log := base.With("run_id", utils.GenerateRunID(), "seed", rng.Seed())
	logger.SetDefault(log)

	console := report.NewConsole(stdout, cfg.Report.Table)
	runner := sim.NewRunner(rng)
	runner.SetLogger(log)

	results := make([]sim.BatchResult, 0, 2)
	for _, strategy := range sim.Strategies() {
		console.Banner(strategy)
		result, err := runner.RunBatch(cfg.Simulations, strategy)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			fs.SetOutput(stderr)
			fs.Usage()
			return 1
		}
		console.BatchSummary(result)
		results = append(results, result)
	}

	console.Comparison(sim.Compare(results[0], results[1]))
	return 0
}

// resolveConfig merges the optional config file with the command line. When
// no file is given only the flags apply; otherwise file values yield to
// flags typed explicitly.
func resolveConfig(opts cli.Options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.ConfigPath == "" || opts.Explicit("simulations") {
		cfg.Simulations = opts.Simulations
	}
	if opts.ConfigPath == "" || opts.Explicit("seed") {
		cfg.Seed = opts.Seed
	}
	if opts.ConfigPath == "" || opts.Explicit("table") {
		cfg.Report.Table = opts.Table
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}
