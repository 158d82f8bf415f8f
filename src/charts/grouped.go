package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/corhuila/gradecharts/src/types"
)

const groupedTitle = "Partial Scores per Student"

type partialSeries struct {
	label string
	field types.ScoreField
	role  Role
}

var partials = []partialSeries{
	{"Partial 1 (30%)", types.FieldPartial1, RolePrimary},
	{"Partial 2 (30%)", types.FieldPartial2, RoleSecondary},
	{"Partial 3 (40%)", types.FieldPartial3, RoleInfo},
}

// groupFill is the share of each student slot covered by the three bars.
const groupFill = 0.75

// GroupedBarByPartialScore draws the three partial scores of every student side by
// side, the middle bar centred on the student's tick, with the passing score as a
// dashed horizontal line.
func (r *Renderer) GroupedBarByPartialScore(records []types.GradeRecord, opts ...Option) (*Figure, error) {
	o := collectOptions(groupedTitle, Inches(12, 6), opts)
	if len(records) == 0 {
		return nil, fmt.Errorf("grouped bars: %w", ErrNoRecords)
	}

	p := r.style.newPlot(o.title, "Students", "Scores")
	r.style.addGrid(p)
	fig := &Figure{Plot: p, Size: o.size, Title: o.title}

	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.ShortName()
	}

	width := barWidth(o.size, len(records), len(partials), groupFill)
	// Patch extents are nominal: each slot is 1.0 wide in data units and the
	// three bars share groupFill of it. The drawn width is an estimate from the
	// figure size, so it only approximates this layout.
	dataWidth := groupFill / float64(len(partials))
	maxScore := 0.0
	for k, s := range partials {
		vals, err := types.Scores(records, s.field)
		if err != nil {
			return nil, fmt.Errorf("grouped bars: %w", err)
		}
		bars, err := plotter.NewBarChart(plotter.Values(vals), width)
		if err != nil {
			return nil, fmt.Errorf("grouped bars %s: %w", s.label, err)
		}
		shift := float64(k - len(partials)/2)
		bars.Offset = width * vg.Length(shift)
		bars.Color = withAlpha(s.role, 0.8)
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.Legend.Add(s.label, bars)

		for i, v := range vals {
			center := float64(i) + shift*dataWidth
			fig.Patches = append(fig.Patches, Patch{
				Label: fmt.Sprintf("%s %s", names[i], s.label),
				Role:  s.role, Color: Color(s.role), Alpha: 0.8,
				X0: center - dataWidth/2, X1: center + dataWidth/2, Value: v,
			})
			maxScore = math.Max(maxScore, v)
		}
	}

	threshold := plotter.NewFunction(func(float64) float64 { return types.PassingScore })
	threshold.LineStyle = thresholdStyle(vg.Points(1.5))
	p.Add(threshold)
	p.Legend.Add(thresholdLabel(), threshold)

	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.NominalX(names...)
	p.X.Min, p.X.Max = -0.5, float64(len(records))-0.5
	p.Y.Min, p.Y.Max = 0, math.Max(headroom(maxScore), types.PassingScore*1.2)
	p.Y.Tick.Marker = niceTicker{n: 6}

	Debugf("grouped bars rendered: students=%d", len(records))
	return fig, nil
}
