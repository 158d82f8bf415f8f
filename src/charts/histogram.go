package charts

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/corhuila/gradecharts/src/types"
)

const defaultHistogramTitle = "Final Score Distribution"

// HistogramFinalScores bins one score column into equal-width bins. A bin is
// colored not-approved when its left edge is below the passing score, approved
// otherwise; a bin straddling the threshold takes the color of its left edge.
func (r *Renderer) HistogramFinalScores(records []types.GradeRecord, opts ...Option) (*Figure, error) {
	o := collectOptions(defaultHistogramTitle, r.style.FigureSize, opts)
	field := types.ScoreField(o.scoreField)
	scores, err := types.Scores(records, field)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	edges, counts, err := BinScores(scores, o.bins)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}

	xLabel := "Final Score"
	if field != types.FieldFinalScore {
		xLabel = string(field)
	}
	p := r.style.newPlot(o.title, xLabel, "Frequency")
	r.style.addGrid(p)
	fig := &Figure{Plot: p, Size: o.size, Title: o.title, Edges: edges}

	byRole := map[Role][]plotter.HistogramBin{}
	maxCount := 0.0
	for i, n := range counts {
		role := ScoreRole(edges[i])
		bin := Bin{Left: edges[i], Right: edges[i+1], Count: n, Role: role}
		fig.Bins = append(fig.Bins, bin)
		fig.Patches = append(fig.Patches, Patch{
			Label: fmt.Sprintf("[%.2f, %.2f)", bin.Left, bin.Right),
			Role:  role, Color: Color(role), Alpha: 0.7,
			X0: bin.Left, X1: bin.Right, Value: n,
		})
		byRole[role] = append(byRole[role], plotter.HistogramBin{Min: bin.Left, Max: bin.Right, Weight: n})
		maxCount = math.Max(maxCount, n)
	}
	for _, role := range []Role{RoleNotApproved, RoleApproved} {
		if len(byRole[role]) == 0 {
			continue
		}
		p.Add(&plotter.Histogram{
			Bins:      byRole[role],
			Width:     edges[1] - edges[0],
			FillColor: withAlpha(role, 0.7),
			LineStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(1.5)},
		})
	}

	yMax := headroom(maxCount)
	line, err := plotter.NewLine(plotter.XYs{{X: types.PassingScore, Y: 0}, {X: types.PassingScore, Y: yMax}})
	if err != nil {
		return nil, fmt.Errorf("histogram threshold: %w", err)
	}
	line.LineStyle = thresholdStyle(vg.Points(2))
	p.Add(line)
	p.Legend.Add(thresholdLabel(), line)

	p.Y.Min, p.Y.Max = 0, yMax
	p.Y.Tick.Marker = niceTicker{n: 6, integer: true}
	p.X.Tick.Marker = niceTicker{n: 8}

	Debugf("histogram rendered: field=%s records=%d bins=%d range=[%.2f,%.2f]", field, len(records), o.bins, edges[0], edges[len(edges)-1])
	return fig, nil
}

// BinScores splits values into bins equal-width bins between their minimum and
// maximum. The last bin is closed on the right. A zero-width range is widened by
// 0.5 on each side and an empty input uses [0,1]. It returns bins+1 edges and bins counts.
// NaN or infinite values are rejected with ErrNonFinite.
func BinScores(values []float64, bins int) (edges, counts []float64, err error) {
	if bins < 1 {
		return nil, nil, fmt.Errorf("%w (got %d)", ErrInvalidBins, bins)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, fmt.Errorf("%w: value %d is %v", ErrNonFinite, i, v)
		}
	}
	lo, hi := 0.0, 1.0
	if len(values) > 0 {
		lo, hi = floats.Min(values), floats.Max(values)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges = floats.Span(make([]float64, bins+1), lo, hi)
	edges[bins] = hi
	counts = make([]float64, bins)
	if len(values) == 0 {
		return edges, counts, nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	// stat.Histogram bins are half-open; nudge the top divider so the maximum lands in the last bin.
	dividers := append([]float64(nil), edges...)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	stat.Histogram(counts, dividers, sorted, nil)
	return edges, counts, nil
}
