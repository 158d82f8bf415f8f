package charts

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var (
	ErrNoStudents    = errors.New("total students must be greater than zero")
	ErrUnknownStatus = errors.New("unknown status label")
	ErrNegativeCount = errors.New("status count must not be negative")
	ErrEmptyCounts   = errors.New("status counts are all zero")
	ErrInvalidBins   = errors.New("bins must be at least 1")
	ErrNoRecords     = errors.New("no grade records")
	ErrNonFinite     = errors.New("score is NaN or infinite")
)

// Patch is one filled shape drawn on a figure: a bar, a histogram bin or a pie slice.
// X0/X1 are data coordinates for bars and bins; for pie slices they hold the start
// and end angle in radians. Grouped bars record their nominal slot layout, not
// the drawn width.
type Patch struct {
	Label string
	Role  Role
	Color color.Color // palette color; the fill is drawn at Alpha opacity
	Alpha float64
	X0    float64
	X1    float64
	Value float64
}

// Annotation is a text label drawn at data coordinates.
type Annotation struct {
	Text string
	X    float64
	Y    float64
}

// Bin is one histogram bin with its edge-based color assignment.
type Bin struct {
	Left  float64
	Right float64
	Count float64
	Role  Role
}

// Figure is a rendered chart. It belongs to the caller once returned; nothing in
// this package keeps a reference to it.
type Figure struct {
	Plot        *plot.Plot
	Size        Size
	Title       string
	Patches     []Patch
	Annotations []Annotation
	// Histogram only.
	Edges []float64
	Bins  []Bin
}

// Width and Height of the figure in inches.
func (f *Figure) Width() float64  { return float64(f.Size.Width / vg.Inch) }
func (f *Figure) Height() float64 { return float64(f.Size.Height / vg.Inch) }

// PatchColors returns the fill color of every patch in draw order.
func (f *Figure) PatchColors() []color.Color {
	out := make([]color.Color, len(f.Patches))
	for i, p := range f.Patches {
		out[i] = p.Color
	}
	return out
}

// Option customizes a single render call.
type Option func(*renderOptions)

type renderOptions struct {
	title      string
	size       Size
	scoreField string
	bins       int
}

// WithTitle replaces the chart's default title.
func WithTitle(title string) Option {
	return func(o *renderOptions) { o.title = title }
}

// WithSize replaces the chart's default figure size.
func WithSize(size Size) Option {
	return func(o *renderOptions) { o.size = size }
}

// WithScoreField selects the histogram column (default FinalScore).
func WithScoreField(field string) Option {
	return func(o *renderOptions) { o.scoreField = field }
}

// WithBins sets the histogram bin count (default 10).
func WithBins(n int) Option {
	return func(o *renderOptions) { o.bins = n }
}

func collectOptions(defaultTitle string, defaultSize Size, opts []Option) renderOptions {
	o := renderOptions{title: defaultTitle, size: defaultSize, scoreField: "FinalScore", bins: 10}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if !o.size.valid() {
		o.size = defaultSize
	}
	return o
}
