package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/corhuila/gradecharts/src/types"
)

// Renderer builds charts with a fixed Style. It holds no other state.
type Renderer struct {
	style Style
}

// NewRenderer returns a renderer bound to style.
func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style { return r.style }

func defaultRenderer() *Renderer { return NewRenderer(CurrentStyle()) }

// BarChartPassFail renders with the process default style.
func BarChartPassFail(counts types.StatusCount, totalStudents int, opts ...Option) (*Figure, error) {
	return defaultRenderer().BarChartPassFail(counts, totalStudents, opts...)
}

// PieChartPassFail renders with the process default style.
func PieChartPassFail(counts types.StatusCount, opts ...Option) (*Figure, error) {
	return defaultRenderer().PieChartPassFail(counts, opts...)
}

// HistogramFinalScores renders with the process default style.
func HistogramFinalScores(records []types.GradeRecord, opts ...Option) (*Figure, error) {
	return defaultRenderer().HistogramFinalScores(records, opts...)
}

// GroupedBarByPartialScore renders with the process default style.
func GroupedBarByPartialScore(records []types.GradeRecord, opts ...Option) (*Figure, error) {
	return defaultRenderer().GroupedBarByPartialScore(records, opts...)
}

var statusOrder = []string{types.StatusApproved, types.StatusNotApproved}

// orderedStatuses validates counts and returns the labels present in drawing order.
func orderedStatuses(counts types.StatusCount) ([]string, error) {
	for label, n := range counts {
		if !types.KnownStatus(label) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, label)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrNegativeCount, label, n)
		}
	}
	out := make([]string, 0, len(statusOrder))
	for _, s := range statusOrder {
		if _, ok := counts[s]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// addAnnotations places centred bold labels just above the given points.
func (r *Renderer) addAnnotations(p *plot.Plot, anns []Annotation) error {
	if len(anns) == 0 {
		return nil
	}
	xys := make(plotter.XYs, len(anns))
	texts := make([]string, len(anns))
	for i, a := range anns {
		xys[i] = plotter.XY{X: a.X, Y: a.Y}
		texts[i] = a.Text
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("annotations: %w", err)
	}
	for i := range labels.TextStyle {
		sty := r.style.textStyle(r.style.LabelSize, true)
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YBottom
		labels.TextStyle[i] = sty
	}
	labels.Offset = vg.Point{Y: vg.Points(3)}
	p.Add(labels)
	return nil
}

// thresholdStyle is the dashed red line marking the passing score.
func thresholdStyle(width vg.Length) draw.LineStyle {
	return draw.LineStyle{
		Color:  color.RGBA{R: 0xff, A: 0xff},
		Width:  width,
		Dashes: []vg.Length{vg.Points(6), vg.Points(4)},
	}
}

// thresholdLabel is the legend entry for the passing score line.
func thresholdLabel() string {
	return fmt.Sprintf("Minimum passing score (%.1f)", types.PassingScore)
}
