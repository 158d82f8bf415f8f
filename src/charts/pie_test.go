package charts

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/corhuila/gradecharts/src/types"
)

func TestPieChartPassFail_Slices(t *testing.T) {
	counts := types.StatusCount{types.StatusApproved: 7, types.StatusNotApproved: 3}
	fig, err := NewRenderer(DefaultStyle()).PieChartPassFail(counts)
	if err != nil {
		t.Fatalf("PieChartPassFail: %v", err)
	}
	if fig.Size != Inches(8, 8) {
		t.Fatalf("default pie size %+v", fig.Size)
	}
	if !strings.Contains(fig.Title, "3.0") {
		t.Fatalf("default title should state the threshold: %q", fig.Title)
	}
	if len(fig.Patches) != 2 {
		t.Fatalf("patches=%d", len(fig.Patches))
	}
	first := fig.Patches[0]
	if math.Abs(first.X0-math.Pi/2) > 1e-9 {
		t.Fatalf("first slice should start at 90 degrees, got %v", first.X0)
	}
	if math.Abs((first.X1-first.X0)-0.7*2*math.Pi) > 1e-9 {
		t.Fatalf("approved sweep %v", first.X1-first.X0)
	}
	if math.Abs(fig.Patches[1].X1-(math.Pi/2+2*math.Pi)) > 1e-9 {
		t.Fatalf("slices should close the circle, end=%v", fig.Patches[1].X1)
	}
	sameRGB(t, first.Color, RoleApproved)
	sameRGB(t, fig.Patches[1].Color, RoleNotApproved)

	texts := []string{fig.Annotations[0].Text, fig.Annotations[1].Text}
	if texts[0] != "70.0%" || texts[1] != "30.0%" {
		t.Fatalf("pie labels %v", texts)
	}
}

func TestPieChartPassFail_PercentagesSumTo100(t *testing.T) {
	for _, c := range [][2]int{{1, 2}, {2, 1}, {1, 6}, {13, 17}, {1, 998}} {
		counts := types.StatusCount{types.StatusApproved: c[0], types.StatusNotApproved: c[1]}
		fig, err := NewRenderer(DefaultStyle()).PieChartPassFail(counts)
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		sum := 0.0
		for _, a := range fig.Annotations {
			v, err := strconv.ParseFloat(strings.TrimSuffix(a.Text, "%"), 64)
			if err != nil {
				t.Fatalf("parse %q: %v", a.Text, err)
			}
			sum += v
		}
		if math.Abs(sum-100) > 0.1+1e-9 {
			t.Fatalf("%v: sum %.2f", c, sum)
		}
	}
}

func TestPieChartPassFail_ZeroSliceHasNoLabel(t *testing.T) {
	counts := types.StatusCount{types.StatusApproved: 4, types.StatusNotApproved: 0}
	fig, err := NewRenderer(DefaultStyle()).PieChartPassFail(counts)
	if err != nil {
		t.Fatalf("PieChartPassFail: %v", err)
	}
	if len(fig.Patches) != 2 || len(fig.Annotations) != 1 || fig.Annotations[0].Text != "100.0%" {
		t.Fatalf("patches=%d annotations=%+v", len(fig.Patches), fig.Annotations)
	}
}

func TestPieChartPassFail_Errors(t *testing.T) {
	r := NewRenderer(DefaultStyle())
	if _, err := r.PieChartPassFail(types.StatusCount{types.StatusApproved: 0, types.StatusNotApproved: 0}); !errors.Is(err, ErrEmptyCounts) {
		t.Fatalf("all zero: %v", err)
	}
	if _, err := r.PieChartPassFail(types.StatusCount{types.StatusApproved: -2, types.StatusNotApproved: 3}); !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("negative: %v", err)
	}
	if _, err := r.PieChartPassFail(types.StatusCount{"Aprobado": 3}); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("unknown: %v", err)
	}
}
