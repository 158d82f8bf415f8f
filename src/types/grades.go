// Package types holds the grade rows and status counts shared by the chart
// renderers, the statistics report and the CSV loader.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// Status labels as they appear in the Status column.
const (
	StatusApproved    = "Approved"
	StatusNotApproved = "Not Approved"
)

// PassingScore is the minimum final score for StatusApproved.
const PassingScore = 3.0

// Weights of the three partial scores in the final score.
const (
	WeightPartial1 = 0.30
	WeightPartial2 = 0.30
	WeightPartial3 = 0.40
)

// ScoreField names one numeric column of a GradeRecord.
type ScoreField string

const (
	FieldPartial1   ScoreField = "Partial1"
	FieldPartial2   ScoreField = "Partial2"
	FieldPartial3   ScoreField = "Partial3"
	FieldFinalScore ScoreField = "FinalScore"
)

// ScoreFields lists the numeric columns in report order.
var ScoreFields = []ScoreField{FieldPartial1, FieldPartial2, FieldPartial3, FieldFinalScore}

// ErrUnknownField is returned when a score is looked up by a name that is not a numeric column.
var ErrUnknownField = errors.New("unknown score field")

// GradeRecord is one student row. FinalScore and Status are precomputed upstream.
type GradeRecord struct {
	Names      string  `json:"names"`
	LastNames  string  `json:"last_names"`
	Partial1   float64 `json:"partial1"`
	Partial2   float64 `json:"partial2"`
	Partial3   float64 `json:"partial3"`
	FinalScore float64 `json:"final_score"`
	Status     string  `json:"status"`
}

// Score returns the value of the named numeric column.
func (r GradeRecord) Score(field ScoreField) (float64, error) {
	switch field {
	case FieldPartial1:
		return r.Partial1, nil
	case FieldPartial2:
		return r.Partial2, nil
	case FieldPartial3:
		return r.Partial3, nil
	case FieldFinalScore:
		return r.FinalScore, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, string(field))
}

// ShortName renders "First L." for axis labels. An empty last name yields just the first name.
func (r GradeRecord) ShortName() string {
	first := strings.TrimSpace(r.Names)
	last := strings.TrimSpace(r.LastNames)
	if last == "" {
		return first
	}
	initial := []rune(last)[0]
	return fmt.Sprintf("%s %c.", first, initial)
}

// Scores extracts one column from a slice of records.
func Scores(records []GradeRecord, field ScoreField) ([]float64, error) {
	out := make([]float64, len(records))
	for i, r := range records {
		v, err := r.Score(field)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// StatusCount maps a status label to the number of students carrying it.
type StatusCount map[string]int

// Total sums all counts.
func (sc StatusCount) Total() int {
	n := 0
	for _, v := range sc {
		n += v
	}
	return n
}

// Percent is count as a percentage of total. Callers guard total > 0.
func Percent(count, total int) float64 {
	return float64(count) / float64(total) * 100
}

// KnownStatus reports whether label is one of the two status labels.
func KnownStatus(label string) bool {
	return label == StatusApproved || label == StatusNotApproved
}
