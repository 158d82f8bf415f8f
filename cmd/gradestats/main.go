// gradestats prints the descriptive statistics report of a grade sheet.
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
	var file string
	var logLevel string
	flag.StringVar(&file, "file", "data/grades.csv", "Path to the grades CSV")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	flag.Parse()
	if !charts.SetLogLevel(logLevel) {
		fmt.Fprintf(os.Stderr, "error: unknown log level %q\n", logLevel)
		os.Exit(2)
	}
	records, err := gradebook.Load(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	charts.Debugf("loaded %d students from %s", len(records), file)
	if charts.GetLogLevel() <= charts.LevelDebug {
		if sums, err := analysis.Describe(records); err == nil {
			for _, s := range sums {
				charts.Debugf("%s", s)
			}
		}
	}
	if err := analysis.PrintDescriptiveStatistics(records); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
