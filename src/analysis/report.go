package analysis

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/corhuila/gradecharts/src/types"
)

var banner = strings.Repeat("=", 60)

// PrintDescriptiveStatistics writes the report to stdout.
func PrintDescriptiveStatistics(records []types.GradeRecord) error {
	return WriteDescriptiveStatistics(os.Stdout, records)
}

// WriteDescriptiveStatistics writes the describe table followed by the
// pass/fail summary. Counts come from the Status field.
func WriteDescriptiveStatistics(w io.Writer, records []types.GradeRecord) error {
	sums, err := Describe(records)
	if err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b, "DESCRIPTIVE STATISTICS OF THE GRADES")
	fmt.Fprintln(&b, banner)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t", s.Column)
	}
	fmt.Fprintln(tw)
	rows := []struct {
		name string
		get  func(Summary) float64
	}{
		{"count", func(s Summary) float64 { return float64(s.Count) }},
		{"mean", func(s Summary) float64 { return s.Mean }},
		{"std", func(s Summary) float64 { return s.Std }},
		{"min", func(s Summary) float64 { return s.Min }},
		{"25%", func(s Summary) float64 { return s.Q25 }},
		{"50%", func(s Summary) float64 { return s.Median }},
		{"75%", func(s Summary) float64 { return s.Q75 }},
		{"max", func(s Summary) float64 { return s.Max }},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t", row.name)
		for _, s := range sums {
			fmt.Fprintf(tw, "%.2f\t", row.get(s))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("format statistics table: %w", err)
	}

	counts := CountStatus(records)
	total := len(records)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b, "PASS/FAIL SUMMARY")
	fmt.Fprintln(&b, banner)
	for _, t := range Ordered(counts) {
		fmt.Fprintf(&b, "%s: %d\n", t.Label, t.Count)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Total students: %d\n", total)
	approved := counts[types.StatusApproved]
	notApproved := counts[types.StatusNotApproved]
	fmt.Fprintf(&b, "Approved: %d (%.2f%%)\n", approved, types.Percent(approved, total))
	fmt.Fprintf(&b, "Not approved: %d (%.2f%%)\n", notApproved, types.Percent(notApproved, total))
	fmt.Fprintln(&b, banner)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write statistics report: %w", err)
	}
	return nil
}
