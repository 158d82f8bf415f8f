package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/corhuila/gradecharts/src/analysis"
	"github.com/corhuila/gradecharts/src/charts"
	"github.com/corhuila/gradecharts/src/types"
)

// chartJob names one chart of the curated set and how to build it.
type chartJob struct {
	key      string
	baseName string
	build    func(records []types.GradeRecord, bins int) (*charts.Figure, error)
}

var chartJobs = []chartJob{
	{"bar", "bar_pass_fail", func(recs []types.GradeRecord, _ int) (*charts.Figure, error) {
		return charts.BarChartPassFail(analysis.CountStatus(recs), len(recs))
	}},
	{"pie", "pie_pass_fail", func(recs []types.GradeRecord, _ int) (*charts.Figure, error) {
		return charts.PieChartPassFail(analysis.CountStatus(recs))
	}},
	{"histogram", "histogram_final_scores", func(recs []types.GradeRecord, bins int) (*charts.Figure, error) {
		return charts.HistogramFinalScores(recs, charts.WithBins(bins))
	}},
	{"partials", "partials_per_student", func(recs []types.GradeRecord, _ int) (*charts.Figure, error) {
		return charts.GroupedBarByPartialScore(recs)
	}},
}

// parseChartList turns "bar,pie" into job keys; empty or "all" selects every chart.
func parseChartList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		keys := make([]string, len(chartJobs))
		for i, j := range chartJobs {
			keys[i] = j.key
		}
		return keys, nil
	}
	var keys []string
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		k := strings.ToLower(strings.TrimSpace(part))
		if k == "" || seen[k] {
			continue
		}
		if findJob(k) == nil {
			return nil, fmt.Errorf("unknown chart %q (want bar, pie, histogram, partials)", k)
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys, nil
}

func findJob(key string) *chartJob {
	for i := range chartJobs {
		if chartJobs[i].key == key {
			return &chartJobs[i]
		}
	}
	return nil
}

// RunRenderAll renders the selected charts and saves each as a PNG/PDF pair
// under outDir. It stops at the first failure.
func RunRenderAll(records []types.GradeRecord, outDir string, dpi, bins int, chartKeys []string, report io.Writer) ([]charts.SavedFiles, error) {
	var saved []charts.SavedFiles
	for _, key := range chartKeys {
		job := findJob(key)
		if job == nil {
			return saved, fmt.Errorf("unknown chart %q", key)
		}
		fig, err := job.build(records, bins)
		if err != nil {
			return saved, fmt.Errorf("render %s: %w", job.baseName, err)
		}
		files, err := charts.SaveFigure(fig, job.baseName,
			charts.WithOutputDir(outDir), charts.WithDPI(dpi), charts.WithReport(report))
		if err != nil {
			return saved, fmt.Errorf("save %s: %w", job.baseName, err)
		}
		saved = append(saved, files)
	}
	return saved, nil
}
