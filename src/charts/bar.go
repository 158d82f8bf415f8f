package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/corhuila/gradecharts/src/types"
)

const defaultBarTitle = "Student Distribution: Approved vs Not Approved\n(Partial 1: 30%, Partial 2: 30%, Partial 3: 40%)"

// BarChartPassFail draws one bar per status, colored by status and annotated with
// the count and its share of totalStudents to one decimal.
func (r *Renderer) BarChartPassFail(counts types.StatusCount, totalStudents int, opts ...Option) (*Figure, error) {
	o := collectOptions(defaultBarTitle, r.style.FigureSize, opts)
	if totalStudents <= 0 {
		return nil, fmt.Errorf("bar chart: %w (got %d)", ErrNoStudents, totalStudents)
	}
	labels, err := orderedStatuses(counts)
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("bar chart: %w", ErrEmptyCounts)
	}

	p := r.style.newPlot(o.title, "Status", "Number of Students")
	r.style.addGrid(p)
	fig := &Figure{Plot: p, Size: o.size, Title: o.title}

	width := barWidth(o.size, len(labels), 1, 0.8)
	maxCount := 0
	for i, label := range labels {
		n := counts[label]
		role, _ := StatusRole(label)
		bar, err := plotter.NewBarChart(plotter.Values{float64(n)}, width)
		if err != nil {
			return nil, fmt.Errorf("bar chart %s: %w", label, err)
		}
		bar.XMin = float64(i)
		bar.Color = withAlpha(role, 0.7)
		bar.LineStyle.Color = color.Black
		bar.LineStyle.Width = vg.Points(2)
		p.Add(bar)

		fig.Patches = append(fig.Patches, Patch{
			Label: label, Role: role, Color: Color(role), Alpha: 0.7,
			X0: float64(i) - 0.4, X1: float64(i) + 0.4, Value: float64(n),
		})
		fig.Annotations = append(fig.Annotations, Annotation{
			Text: fmt.Sprintf("%d\n(%.1f%%)", n, types.Percent(n, totalStudents)),
			X:    float64(i),
			Y:    float64(n),
		})
		if n > maxCount {
			maxCount = n
		}
	}
	if err := r.addAnnotations(p, fig.Annotations); err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}

	p.NominalX(labels...)
	p.X.Min, p.X.Max = -0.5, float64(len(labels))-0.5
	p.Y.Min, p.Y.Max = 0, headroom(float64(maxCount))
	p.Y.Tick.Marker = niceTicker{n: 6, integer: true}

	Debugf("bar chart rendered: bars=%d total=%d", len(labels), totalStudents)
	return fig, nil
}
