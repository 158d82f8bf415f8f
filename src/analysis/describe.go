// Package analysis computes the descriptive statistics of a grade sheet and
// prints the pass/fail report.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/corhuila/gradecharts/src/types"
)

// ErrNoRecords is returned when a report is requested for an empty grade sheet.
var ErrNoRecords = errors.New("no grade records")

// Summary is the describe() row set for one numeric column.
type Summary struct {
	Column types.ScoreField `json:"column"`
	Count  int              `json:"count"`
	Mean   float64          `json:"mean"`
	Std    float64          `json:"std"`
	Min    float64          `json:"min"`
	Q25    float64          `json:"q25"`
	Median float64          `json:"median"`
	Q75    float64          `json:"q75"`
	Max    float64          `json:"max"`
}

// Describe summarizes every numeric column in types.ScoreFields order.
// Std is the sample standard deviation and is NaN for a single record.
func Describe(records []types.GradeRecord) ([]Summary, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	out := make([]Summary, 0, len(types.ScoreFields))
	for _, f := range types.ScoreFields {
		vals, err := types.Scores(records, f)
		if err != nil {
			return nil, err
		}
		out = append(out, summarize(f, vals))
	}
	return out, nil
}

func summarize(field types.ScoreField, vals []float64) Summary {
	cp := append([]float64(nil), vals...)
	sort.Float64s(cp)
	mean, std := stat.MeanStdDev(cp, nil)
	return Summary{
		Column: field,
		Count:  len(cp),
		Mean:   mean,
		Std:    std,
		Min:    floats.Min(cp),
		Q25:    quantile(cp, 0.25),
		Median: quantile(cp, 0.50),
		Q75:    quantile(cp, 0.75),
		Max:    floats.Max(cp),
	}
}

// quantile interpolates linearly between the closest ranks of sorted data
// (position q*(n-1)).
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// StatusTally is one line of the ordered status listing.
type StatusTally struct {
	Label string
	Count int
}

// CountStatus tallies the Status field as given; it never re-derives the
// status from the scores.
func CountStatus(records []types.GradeRecord) types.StatusCount {
	counts := types.StatusCount{}
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}

// Ordered lists the counts by count descending, then label.
func Ordered(counts types.StatusCount) []StatusTally {
	out := make([]StatusTally, 0, len(counts))
	for k, v := range counts {
		out = append(out, StatusTally{Label: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func (s Summary) String() string {
	return fmt.Sprintf("%s n=%d mean=%.2f std=%.2f min=%.2f q25=%.2f median=%.2f q75=%.2f max=%.2f",
		s.Column, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max)
}
