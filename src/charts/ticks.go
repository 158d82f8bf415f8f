package charts

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// niceTicker places up to n ticks on 1, 2, 2.5, 5 x 10^k steps.
// With integer set, fractional ticks are dropped (count axes).
type niceTicker struct {
	n       int
	integer bool
}

func (t niceTicker) Ticks(min, max float64) []plot.Tick {
	vals := numericTicks(min, max, t.n)
	out := make([]plot.Tick, 0, len(vals))
	for _, v := range vals {
		if t.integer && v != math.Trunc(v) {
			continue
		}
		out = append(out, plot.Tick{Value: v, Label: formatTick(v)})
	}
	return out
}

// numericTicks generates tick positions spanning [min,max]; the first tick is <= min
// and the last >= max.
func numericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if diff := math.Abs(count - float64(n)); diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

func formatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 0, 64)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

// headroom returns an axis maximum leaving space above the tallest value for annotations.
func headroom(max float64) float64 {
	if max <= 0 {
		return 1
	}
	return max * 1.2
}

// barWidth sizes a bar so that groups of `per` bars fill `fill` of each of the
// `slots` category positions across the plotting area.
func barWidth(size Size, slots, per int, fill float64) vg.Length {
	if slots < 1 {
		slots = 1
	}
	if per < 1 {
		per = 1
	}
	area := size.Width * 0.8
	return area / vg.Length(slots) * vg.Length(fill) / vg.Length(per)
}
