package main

import (
	"bytes"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/corhuila/gradecharts/src/charts"
	"github.com/corhuila/gradecharts/src/types"
)

func TestMain(m *testing.M) {
	charts.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func fixture() []types.GradeRecord {
	return []types.GradeRecord{
		{Names: "Ana", LastNames: "Gomez", Partial1: 4, Partial2: 3.5, Partial3: 4.2, FinalScore: 3.93, Status: types.StatusApproved},
		{Names: "Luis", LastNames: "Perez", Partial1: 2, Partial2: 2.5, Partial3: 2.1, FinalScore: 2.19, Status: types.StatusNotApproved},
		{Names: "Marta", LastNames: "Ruiz", Partial1: 3, Partial2: 3, Partial3: 3, FinalScore: 3.0, Status: types.StatusApproved},
	}
}

func TestParseChartList(t *testing.T) {
	keys, err := parseChartList("")
	if err != nil || len(keys) != 4 {
		t.Fatalf("all charts: %v %v", keys, err)
	}
	keys, err = parseChartList(" Pie, bar,pie ")
	if err != nil || len(keys) != 2 || keys[0] != "pie" || keys[1] != "bar" {
		t.Fatalf("subset: %v %v", keys, err)
	}
	if _, err := parseChartList("bar,radar"); err == nil {
		t.Fatalf("unknown chart should fail")
	}
}

// TestRunRenderAll_Widths checks every chart lands as a PNG of its figure's pixel width plus a PDF.
func TestRunRenderAll_Widths(t *testing.T) {
	outDir := t.TempDir()
	keys, _ := parseChartList("all")
	var report bytes.Buffer
	saved, err := RunRenderAll(fixture(), outDir, 20, 5, keys, &report)
	if err != nil {
		t.Fatalf("RunRenderAll: %v", err)
	}
	if len(saved) != 4 {
		t.Fatalf("saved=%d", len(saved))
	}
	wantW := map[string]int{
		"bar_pass_fail.png":          200, // 10in @ 20dpi
		"pie_pass_fail.png":          160, // 8in
		"histogram_final_scores.png": 200,
		"partials_per_student.png":   240, // 12in
	}
	for _, s := range saved {
		name := filepath.Base(s.PNG)
		f, err := os.Open(s.PNG)
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if w := img.Bounds().Dx(); w != wantW[name] {
			t.Fatalf("%s width=%d want %d", name, w, wantW[name])
		}
		if _, err := os.Stat(s.PDF); err != nil {
			t.Fatalf("pdf for %s: %v", name, err)
		}
	}
	if !bytes.Contains(report.Bytes(), []byte("partials_per_student.pdf")) {
		t.Fatalf("report missing paths: %s", report.String())
	}
}

func TestRunRenderAll_StopsOnError(t *testing.T) {
	saved, err := RunRenderAll(nil, t.TempDir(), 20, 5, []string{"partials"}, io.Discard)
	if err == nil || len(saved) != 0 {
		t.Fatalf("expected failure for empty records, got %v %v", saved, err)
	}
}
