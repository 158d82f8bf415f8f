// gradecharts loads a grade sheet, prints its descriptive statistics and
// renders the pass/fail chart set as PNG and PDF files.
//
// Flag defaults come from GRADECHARTS_* environment variables, optionally
// loaded from the -env dotenv file. Flags given on the command line win.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corhuila/gradecharts/src/analysis"
	"github.com/corhuila/gradecharts/src/charts"
	"github.com/corhuila/gradecharts/src/gradebook"
)

func main() {
	var (
		envFile   string
		flags     config
		chartList string
		stats     bool
	)
	flag.StringVar(&envFile, "env", ".env", "dotenv file with GRADECHARTS_* defaults (ignored if missing)")
	flag.StringVar(&flags.DataPath, "data", "", "Path to the grades CSV (default $GRADECHARTS_DATA or data/grades.csv)")
	flag.StringVar(&flags.OutputDir, "out", "", "Output directory (default $GRADECHARTS_OUTPUT_DIR or "+charts.DefaultOutputDir+")")
	flag.IntVar(&flags.DPI, "dpi", 0, "PNG resolution (default $GRADECHARTS_DPI or 300)")
	flag.IntVar(&flags.Bins, "bins", 0, "Histogram bins (default $GRADECHARTS_BINS or 10)")
	flag.StringVar(&chartList, "charts", "all", "Comma list of charts: bar,pie,histogram,partials")
	flag.BoolVar(&stats, "stats", true, "Print the descriptive statistics report")
	flag.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug|info|warn|error (default $GRADECHARTS_LOG_LEVEL or info)")
	flag.Parse()

	if err := loadEnvFile(envFile); err != nil {
		fatal(1, err)
	}
	cfg, err := configFromEnv()
	if err != nil {
		fatal(2, err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.DataPath = flags.DataPath
		case "out":
			cfg.OutputDir = flags.OutputDir
		case "dpi":
			cfg.DPI = flags.DPI
		case "bins":
			cfg.Bins = flags.Bins
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})
	if cfg.DPI <= 0 || cfg.Bins <= 0 {
		fatal(2, fmt.Errorf("-dpi and -bins must be positive (got %d, %d)", cfg.DPI, cfg.Bins))
	}
	if !charts.SetLogLevel(cfg.LogLevel) {
		fatal(2, fmt.Errorf("unknown log level %q", cfg.LogLevel))
	}
	keys, err := parseChartList(chartList)
	if err != nil {
		fatal(2, err)
	}

	charts.ConfigureGlobalStyle()
	records, err := gradebook.Load(cfg.DataPath)
	if err != nil {
		fatal(1, err)
	}
	charts.Infof("loaded %d students from %s", len(records), cfg.DataPath)

	if stats {
		if err := analysis.PrintDescriptiveStatistics(records); err != nil {
			fatal(1, err)
		}
	}
	saved, err := RunRenderAll(records, cfg.OutputDir, cfg.DPI, cfg.Bins, keys, os.Stdout)
	if err != nil {
		fatal(1, err)
	}
	fmt.Printf("[gradecharts] %d charts written to %s\n", len(saved), cfg.OutputDir)
}

func fatal(code int, err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(code)
}
