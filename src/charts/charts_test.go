package charts

import (
	"io"
	"math"
	"os"
	"testing"

	"github.com/corhuila/gradecharts/src/types"
)

func TestMain(m *testing.M) {
	SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

// sampleRecords is a small class with scores on both sides of the threshold.
func sampleRecords() []types.GradeRecord {
	rows := []struct {
		first, last string
		p1, p2, p3  float64
	}{
		{"Ana", "Gomez", 4.0, 3.5, 4.2},
		{"Luis", "Perez", 2.0, 2.5, 2.1},
		{"Marta", "Ruiz", 3.0, 3.0, 3.0},
		{"Jorge", "Diaz", 1.5, 2.0, 3.5},
		{"Sofia", "Lopez", 5.0, 4.8, 4.9},
	}
	out := make([]types.GradeRecord, len(rows))
	for i, r := range rows {
		final := r.p1*types.WeightPartial1 + r.p2*types.WeightPartial2 + r.p3*types.WeightPartial3
		final = math.Round(final*100) / 100
		status := types.StatusApproved
		if final < types.PassingScore {
			status = types.StatusNotApproved
		}
		out[i] = types.GradeRecord{
			Names: r.first, LastNames: r.last,
			Partial1: r.p1, Partial2: r.p2, Partial3: r.p3,
			FinalScore: final, Status: status,
		}
	}
	return out
}

func sameRGB(t *testing.T, got interface{ RGBA() (r, g, b, a uint32) }, role Role) {
	t.Helper()
	gr, gg, gb, _ := got.RGBA()
	wr, wg, wb, _ := Color(role).RGBA()
	if gr != wr || gg != wg || gb != wb {
		t.Fatalf("color mismatch for %s: got %v,%v,%v want %v,%v,%v", role, gr>>8, gg>>8, gb>>8, wr>>8, wg>>8, wb>>8)
	}
}
