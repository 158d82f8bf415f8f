// Package gradebook loads grade rows from a CSV export.
package gradebook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/corhuila/gradecharts/src/types"
)

// Column names of the input contract.
const (
	ColNames      = "Names"
	ColLastNames  = "LastNames"
	ColPartial1   = "Partial1"
	ColPartial2   = "Partial2"
	ColPartial3   = "Partial3"
	ColFinalScore = "FinalScore"
	ColStatus     = "Status"
)

var columns = []string{ColNames, ColLastNames, ColPartial1, ColPartial2, ColPartial3, ColFinalScore, ColStatus}

var (
	// ErrMissingColumn is returned when the header lacks a contract column.
	ErrMissingColumn = errors.New("missing column")
	// ErrNonFinite is returned for a score written as NaN or Inf.
	ErrNonFinite = errors.New("score must be a finite number")
)

// Load reads and parses a CSV file.
func Load(path string) ([]types.GradeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grades: %w", err)
	}
	defer f.Close()
	recs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Parse reads a header row followed by one row per student. Header names are
// matched case-insensitively after trimming; extra columns are ignored.
func Parse(r io.Reader) ([]types.GradeRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx := make(map[string]int, len(columns))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	pos := make(map[string]int, len(columns))
	for _, c := range columns {
		i, ok := idx[strings.ToLower(c)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
		pos[c] = i
	}

	var out []types.GradeRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", line, err)
		}
		field := func(c string) string {
			if i := pos[c]; i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		num := func(c string) (float64, error) {
			v, err := strconv.ParseFloat(field(c), 64)
			if err != nil {
				return 0, fmt.Errorf("row %d column %s: %w", line, c, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("row %d column %s: %w: %q", line, c, ErrNonFinite, field(c))
			}
			return v, nil
		}
		rec := types.GradeRecord{
			Names:     field(ColNames),
			LastNames: field(ColLastNames),
			Status:    field(ColStatus),
		}
		for _, t := range []struct {
			col string
			dst *float64
		}{
			{ColPartial1, &rec.Partial1},
			{ColPartial2, &rec.Partial2},
			{ColPartial3, &rec.Partial3},
			{ColFinalScore, &rec.FinalScore},
		} {
			if *t.dst, err = num(t.col); err != nil {
				return nil, err
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
