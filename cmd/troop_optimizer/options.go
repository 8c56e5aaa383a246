package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/troop-optimizer/internal/catalog"
	"github.com/jonathan/troop-optimizer/internal/config"
	"github.com/jonathan/troop-optimizer/internal/pipeline"
	"github.com/jonathan/troop-optimizer/internal/types"
)

// Names used in output when a unit is given by raw cost instead of by name.
const (
	rawTroop1 = "Troop 1"
	rawTroop2 = "Troop 2"
)

// searchFlags are the flags shared by optimize and compare.
type searchFlags struct {
	configPath string
	budget     string
	catalog    string
	step       int
	window     int
	exclude    string
	workers    int
	verbose    bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	// Config file flag (processed first)
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to a JSON or YAML config file (values can be overridden by other flags; defaults to $"+config.EnvConfigPath+")")

	cmd.Flags().StringVarP(&f.budget, "budget", "b", "", `Budget as "lumber,clay,iron,crop" or "lumber=..,clay=..,iron=..,crop=.."`)
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "Built-in tribe name or catalog file (default spartans)")
	cmd.Flags().IntVar(&f.step, "step", 0, "Coarse sweep stride, at least 1 (default 10)")
	cmd.Flags().IntVar(&f.window, "window", 0, "Fine sweep radius around the coarse winner (default 10)")
	cmd.Flags().StringVar(&f.exclude, "exclude", "", "Resource kind left out of the remaining-sum score (lumber, clay, iron, crop)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Concurrent workers (0 or 1 runs sequentially)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
}

// apply copies explicitly set flags over cfg.
func (f *searchFlags) apply(changed func(string) bool, cfg *config.Config) error {
	if changed("budget") {
		budget, err := types.ParseResources(f.budget)
		if err != nil {
			return fmt.Errorf("invalid --budget: %w", err)
		}
		cfg.Budget = &budget
	}
	if changed("catalog") {
		cfg.Catalog = f.catalog
	}
	if changed("step") {
		if f.step < 1 {
			return fmt.Errorf("--step must be at least 1, got %d", f.step)
		}
		cfg.Step = f.step
	}
	if changed("window") {
		window := f.window
		cfg.Window = &window
	}
	if changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}
	return nil
}

// loadCommandConfig loads the config file named by path, or by the
// environment when path is empty. No file yields an empty Config.
func loadCommandConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	if path == "" {
		return config.Config{}, nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return *loaded, nil
}

// optimizeInputs is a fully resolved optimize invocation.
type optimizeInputs struct {
	Tribe   string
	Troop1  string
	Troop2  string
	Request types.OptimizeRequest
}

// resolveOptimize turns a merged config into an optimize request, looking
// unit names up in the configured catalog.
func resolveOptimize(cfg config.Config) (*optimizeInputs, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Budget == nil {
		return nil, fmt.Errorf("a budget must be provided (via --budget or config)")
	}
	if cfg.Troop1 == "" && cfg.Cost1 == nil {
		return nil, fmt.Errorf("the first unit must be provided (via --troop1 or --cost1)")
	}
	if cfg.Troop2 == "" && cfg.Cost2 == nil {
		return nil, fmt.Errorf("the second unit must be provided (via --troop2 or --cost2)")
	}

	exclude, err := parseExclude(cfg.Exclude)
	if err != nil {
		return nil, err
	}

	in := &optimizeInputs{
		Troop1: rawTroop1,
		Troop2: rawTroop2,
		Request: types.OptimizeRequest{
			Budget:     *cfg.Budget,
			CoarseStep: cfg.Step,
			FineWindow: cfg.WindowOrDefault(),
			Exclude:    exclude,
			Workers:    cfg.Workers,
		},
	}

	var cat *types.Catalog
	if cfg.Troop1 != "" || cfg.Troop2 != "" {
		cat, err = catalog.Resolve(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		in.Tribe = cat.Tribe
	}

	if cfg.Cost1 != nil {
		in.Request.Cost1 = *cfg.Cost1
	} else {
		unit, err := cat.Lookup(cfg.Troop1)
		if err != nil {
			return nil, err
		}
		in.Troop1, in.Request.Cost1 = unit.Name, unit.Cost
	}

	if cfg.Cost2 != nil {
		in.Request.Cost2 = *cfg.Cost2
	} else {
		unit, err := cat.Lookup(cfg.Troop2)
		if err != nil {
			return nil, err
		}
		in.Troop2, in.Request.Cost2 = unit.Name, unit.Cost
	}

	return in, nil
}

// resolveCompare turns a merged config into compare options for the whole catalog.
func resolveCompare(cfg config.Config) (*pipeline.CompareOptions, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Budget == nil {
		return nil, fmt.Errorf("a budget must be provided (via --budget or config)")
	}

	exclude, err := parseExclude(cfg.Exclude)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Resolve(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	return &pipeline.CompareOptions{
		Catalog:    cat,
		Budget:     *cfg.Budget,
		CoarseStep: cfg.Step,
		FineWindow: cfg.WindowOrDefault(),
		Exclude:    exclude,
		Workers:    cfg.Workers,
	}, nil
}

func parseExclude(s string) (types.Kind, error) {
	if s == "" {
		return "", nil
	}
	kind, err := types.ParseKind(s)
	if err != nil {
		return "", fmt.Errorf("invalid exclude: %w", err)
	}
	return kind, nil
}
