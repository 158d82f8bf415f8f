package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/corhuila/gradecharts/src/types"
)

const defaultPieTitle = "Proportion of Approved vs Not Approved Students\n(Minimum passing score: 3.0)"

const (
	pieStartAngle = math.Pi / 2
	pieExplode    = 0.05
	pieRadiusFill = 0.75
)

// PieChartPassFail draws one slice per status with its share to one decimal.
// Slices start at 12 o'clock and run counter-clockwise. Annotation coordinates
// are on the unit circle (radius 1 = slice edge).
func (r *Renderer) PieChartPassFail(counts types.StatusCount, opts ...Option) (*Figure, error) {
	o := collectOptions(defaultPieTitle, Inches(8, 8), opts)
	labels, err := orderedStatuses(counts)
	if err != nil {
		return nil, fmt.Errorf("pie chart: %w", err)
	}
	total := 0
	for _, l := range labels {
		total += counts[l]
	}
	if total == 0 {
		return nil, fmt.Errorf("pie chart: %w", ErrEmptyCounts)
	}

	p := r.style.newPlot(o.title, "", "")
	p.HideAxes()
	fig := &Figure{Plot: p, Size: o.size, Title: o.title}

	slices := &pieSlices{
		explode: pieExplode,
		shadow:  true,
		label:   r.style.textStyle(r.style.LabelSize, true),
		pct:     r.style.textStyle(r.style.LabelSize, true),
	}
	angle := pieStartAngle
	for _, label := range labels {
		n := counts[label]
		role, _ := StatusRole(label)
		sweep := 2 * math.Pi * float64(n) / float64(total)
		mid := angle + sweep/2
		pct := fmt.Sprintf("%.1f%%", types.Percent(n, total))

		slices.values = append(slices.values, float64(n))
		slices.labels = append(slices.labels, label)
		slices.pcts = append(slices.pcts, pct)
		slices.colors = append(slices.colors, Color(role))

		fig.Patches = append(fig.Patches, Patch{
			Label: label, Role: role, Color: Color(role), Alpha: 1,
			X0: angle, X1: angle + sweep, Value: float64(n),
		})
		if n > 0 {
			fig.Annotations = append(fig.Annotations, Annotation{
				Text: pct,
				X:    0.6 * math.Cos(mid),
				Y:    0.6 * math.Sin(mid),
			})
		}
		angle += sweep
	}
	p.Add(slices)

	Debugf("pie chart rendered: slices=%d total=%d", len(labels), total)
	return fig, nil
}

// pieSlices is a plot.Plotter drawing exploded wedges with an optional drop shadow.
type pieSlices struct {
	values  []float64
	labels  []string
	pcts    []string
	colors  []color.Color
	explode float64
	shadow  bool
	label   text.Style
	pct     text.Style
}

var pieShadowColor = color.NRGBA{A: 70}

// Plot implements plot.Plotter.
func (ps *pieSlices) Plot(c draw.Canvas, _ *plot.Plot) {
	total := 0.0
	for _, v := range ps.values {
		total += v
	}
	if total <= 0 {
		return
	}
	size := c.Rectangle.Size()
	radius := vg.Length(math.Min(float64(size.X), float64(size.Y))) / 2 * pieRadiusFill
	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}

	type wedge struct {
		start, sweep float64
		origin       vg.Point
	}
	wedges := make([]wedge, len(ps.values))
	angle := pieStartAngle
	for i, v := range ps.values {
		sweep := 2 * math.Pi * v / total
		mid := angle + sweep/2
		shift := radius * vg.Length(ps.explode)
		wedges[i] = wedge{
			start:  angle,
			sweep:  sweep,
			origin: vg.Point{X: center.X + shift*vg.Length(math.Cos(mid)), Y: center.Y + shift*vg.Length(math.Sin(mid))},
		}
		angle += sweep
	}

	if ps.shadow {
		off := vg.Point{X: radius * 0.02, Y: -radius * 0.02}
		for i, w := range wedges {
			if ps.values[i] == 0 {
				continue
			}
			fillWedge(c, w.origin.Add(off), radius, w.start, w.sweep, pieShadowColor)
		}
	}
	for i, w := range wedges {
		if ps.values[i] == 0 {
			continue
		}
		fillWedge(c, w.origin, radius, w.start, w.sweep, ps.colors[i])

		mid := w.start + w.sweep/2
		cos, sin := math.Cos(mid), math.Sin(mid)

		pct := ps.pct
		pct.XAlign, pct.YAlign = draw.XCenter, draw.YCenter
		c.FillText(pct, vg.Point{X: w.origin.X + radius*0.6*vg.Length(cos), Y: w.origin.Y + radius*0.6*vg.Length(sin)}, ps.pcts[i])

		lbl := ps.label
		lbl.YAlign = draw.YCenter
		lbl.XAlign = draw.XLeft
		if cos < 0 {
			lbl.XAlign = draw.XRight
		}
		c.FillText(lbl, vg.Point{X: w.origin.X + radius*1.1*vg.Length(cos), Y: w.origin.Y + radius*1.1*vg.Length(sin)}, ps.labels[i])
	}
}

func fillWedge(c draw.Canvas, origin vg.Point, radius vg.Length, start, sweep float64, col color.Color) {
	var path vg.Path
	path.Move(origin)
	path.Line(vg.Point{X: origin.X + radius*vg.Length(math.Cos(start)), Y: origin.Y + radius*vg.Length(math.Sin(start))})
	path.Arc(origin, radius, start, sweep)
	path.Close()
	c.SetColor(col)
	c.Fill(path)
}
