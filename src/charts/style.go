package charts

import (
	"image/color"
	"sync"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Size is a figure size in plot units.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// Inches builds a Size from inch dimensions.
func Inches(w, h float64) Size {
	return Size{Width: vg.Length(w) * vg.Inch, Height: vg.Length(h) * vg.Inch}
}

func (s Size) valid() bool { return s.Width > 0 && s.Height > 0 }

// Style carries the rendering parameters every chart is built with.
type Style struct {
	Typeface   font.Typeface
	Variant    font.Variant
	FigureSize Size
	FontSize   vg.Length // base text
	LabelSize  vg.Length // axis labels and value annotations
	TitleSize  vg.Length
	TickSize   vg.Length
	LegendSize vg.Length
	Grid       bool
	GridAlpha  float64
}

// DefaultStyle is the whitegrid look: light horizontal grid, 10pt text, 10x6in figures.
func DefaultStyle() Style {
	return Style{
		Typeface:   "Liberation",
		Variant:    "Sans",
		FigureSize: Inches(10, 6),
		FontSize:   vg.Points(10),
		LabelSize:  vg.Points(12),
		TitleSize:  vg.Points(14),
		TickSize:   vg.Points(10),
		LegendSize: vg.Points(10),
		Grid:       true,
		GridAlpha:  0.3,
	}
}

var (
	styleMu      sync.RWMutex
	currentStyle = DefaultStyle()
)

// ConfigureGlobalStyle installs DefaultStyle as the process default and pushes its
// base font into the plot package defaults, so plots created outside this package
// pick it up too. Calling it repeatedly leaves the same state as calling it once.
func ConfigureGlobalStyle() Style {
	s := DefaultStyle()
	SetGlobalStyle(s)
	return s
}

// SetGlobalStyle installs s as the process default used by the package-level renderers.
func SetGlobalStyle(s Style) {
	styleMu.Lock()
	defer styleMu.Unlock()
	currentStyle = s
	plot.DefaultFont = s.font(s.FontSize, false)
	plotter.DefaultFont = s.font(s.FontSize, false)
	Debugf("global style set: font=%s %s %.0fpt grid=%t alpha=%.2f size=%.1fx%.1fin",
		s.Typeface, s.Variant, s.FontSize.Points(), s.Grid, s.GridAlpha,
		s.FigureSize.Width/vg.Inch, s.FigureSize.Height/vg.Inch)
}

// CurrentStyle returns the process default style.
func CurrentStyle() Style {
	styleMu.RLock()
	defer styleMu.RUnlock()
	return currentStyle
}

// boldSuffix names the typeface under which the bold Liberation faces are
// registered at normal weight. The PDF backend embeds fonts by name with an
// empty style and then selects "B" for bold weights, so bold text has to be
// reached through a separate typeface rather than through Font.Weight.
const boldSuffix = "Bold"

var boldOnce sync.Once

func registerBoldFaces() {
	boldOnce.Do(func() {
		var coll font.Collection
		for _, f := range liberation.Collection() {
			if f.Font.Weight != xfont.WeightBold || f.Font.Style != xfont.StyleNormal {
				continue
			}
			f.Font.Typeface += boldSuffix
			f.Font.Weight = xfont.WeightNormal
			coll = append(coll, f)
		}
		font.DefaultCache.Add(coll)
	})
}

func (s Style) font(size vg.Length, bold bool) font.Font {
	f := font.Font{Typeface: s.Typeface, Variant: s.Variant, Size: size}
	if bold {
		registerBoldFaces()
		f.Typeface += boldSuffix
	}
	return f
}

func (s Style) textStyle(size vg.Length, bold bool) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    s.font(size, bold),
		Handler: plot.DefaultTextHandler,
	}
}

// newPlot creates a plot with titles, labels, ticks and legend fonts taken from s.
func (s Style) newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font = s.font(s.TitleSize, true)
	p.Title.Padding = vg.Points(8)
	p.X.Label.Text = xLabel
	p.X.Label.TextStyle.Font = s.font(s.LabelSize, true)
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font = s.font(s.LabelSize, true)
	p.X.Tick.Label.Font = s.font(s.TickSize, false)
	p.Y.Tick.Label.Font = s.font(s.TickSize, false)
	p.Legend.TextStyle.Font = s.font(s.LegendSize, false)
	p.Legend.Top = true
	return p
}

// addGrid draws horizontal grid lines only, at GridAlpha opacity.
func (s Style) addGrid(p *plot.Plot) {
	if !s.Grid {
		return
	}
	g := plotter.NewGrid()
	g.Vertical.Color = nil
	g.Horizontal.Color = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: uint8(s.GridAlpha*255 + 0.5)}
	p.Add(g)
}
