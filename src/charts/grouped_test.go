package charts

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/plot/vg/draw"

	"github.com/corhuila/gradecharts/src/types"
)

func TestGroupedBarByPartialScore_Layout(t *testing.T) {
	recs := sampleRecords()
	fig, err := NewRenderer(DefaultStyle()).GroupedBarByPartialScore(recs)
	if err != nil {
		t.Fatalf("GroupedBarByPartialScore: %v", err)
	}
	if fig.Size != Inches(12, 6) {
		t.Fatalf("default size %+v", fig.Size)
	}
	if len(fig.Patches) != 3*len(recs) {
		t.Fatalf("patches=%d want %d", len(fig.Patches), 3*len(recs))
	}
	// Patches are appended series by series; regroup per student.
	n := len(recs)
	for i := 0; i < n; i++ {
		p1, p2, p3 := fig.Patches[i], fig.Patches[n+i], fig.Patches[2*n+i]
		mid := (p1.X0 + p3.X1) / 2
		if math.Abs(mid-float64(i)) > 1e-9 {
			t.Fatalf("student %d triple centred at %v", i, mid)
		}
		if math.Abs(p1.X1-p2.X0) > 1e-9 || math.Abs(p2.X1-p3.X0) > 1e-9 {
			t.Fatalf("student %d bars not adjacent: %+v %+v %+v", i, p1, p2, p3)
		}
		if p1.Value != recs[i].Partial1 || p2.Value != recs[i].Partial2 || p3.Value != recs[i].Partial3 {
			t.Fatalf("student %d values mismatch", i)
		}
		if p1.Role != RolePrimary || p2.Role != RoleSecondary || p3.Role != RoleInfo {
			t.Fatalf("series roles: %s %s %s", p1.Role, p2.Role, p3.Role)
		}
	}
}

func TestGroupedBarByPartialScore_Axis(t *testing.T) {
	fig, err := NewRenderer(DefaultStyle()).GroupedBarByPartialScore(sampleRecords())
	if err != nil {
		t.Fatalf("GroupedBarByPartialScore: %v", err)
	}
	lbl := fig.Plot.X.Tick.Label
	if math.Abs(lbl.Rotation-math.Pi/4) > 1e-12 || lbl.XAlign != draw.XRight {
		t.Fatalf("tick labels should be rotated 45 degrees and right aligned: %v %v", lbl.Rotation, lbl.XAlign)
	}
	ticks := fig.Plot.X.Tick.Marker.Ticks(fig.Plot.X.Min, fig.Plot.X.Max)
	want := []string{"Ana G.", "Luis P.", "Marta R.", "Jorge D.", "Sofia L."}
	if len(ticks) != len(want) {
		t.Fatalf("ticks=%d want %d", len(ticks), len(want))
	}
	for i, tk := range ticks {
		if tk.Label != want[i] || tk.Value != float64(i) {
			t.Fatalf("tick %d = %+v want %q at %d", i, tk, want[i], i)
		}
	}
	if fig.Plot.Y.Max < types.PassingScore {
		t.Fatalf("threshold line out of range: ymax=%v", fig.Plot.Y.Max)
	}
}

func TestGroupedBarByPartialScore_Empty(t *testing.T) {
	if _, err := NewRenderer(DefaultStyle()).GroupedBarByPartialScore(nil); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}
