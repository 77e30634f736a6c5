package cli

import (
	"flag"
	"fmt"

	"github.com/paradox-sims/montyhall/pkg/config"
)

// Options holds all CLI flags for one run.
type Options struct {
	Simulations int
	Verbose     bool
	Seed        int64
	ConfigPath  string
	Table       bool

	explicit map[string]bool
}

// Explicit reports whether the named flag was given on the command line, as
// opposed to holding its default value. Config file values yield only to
// flags the user actually typed.
func (o Options) Explicit(name string) bool {
	return o.explicit[name]
}

// NewFlagSet returns a configured FlagSet with the usage synopsis.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"Usage: %s [--simulations <number>] [--verbose] [--seed <number>] [--config <path>] [--table]\n", name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Simulations, "simulations", config.DefaultSimulations, "number of trials per strategy batch [10000]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log every trial step [false]")
	fs.Int64Var(&opt.Seed, "seed", 0, "random seed (0 = derive from the clock) [0]")
	fs.StringVar(&opt.ConfigPath, "config", "", "YAML config file, overridden by explicit flags")
	fs.BoolVar(&opt.Table, "table", false, "render a comparison table after both batches [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}

	opt.explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opt.explicit[f.Name] = true })

	// Validation
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("invalid argument: %s", fs.Arg(0))
	}
	if opt.Simulations <= 0 {
		return opt, fmt.Errorf("--simulations must be positive, got %d", opt.Simulations)
	}
	return opt, nil
}
