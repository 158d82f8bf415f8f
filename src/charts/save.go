package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

const (
	DefaultOutputDir = "data/output/img"
	DefaultDPI       = 300
)

var (
	ErrNilFigure  = errors.New("nil figure")
	ErrEmptyName  = errors.New("empty file base name")
	ErrInvalidDPI = errors.New("dpi must be greater than zero")
)

// SavedFiles are the paths written by SaveFigure.
type SavedFiles struct {
	PNG string
	PDF string
}

// SaveOption customizes SaveFigure.
type SaveOption func(*saveOptions)

type saveOptions struct {
	dir string
	dpi int
	out io.Writer
}

// WithOutputDir sets the target directory (default data/output/img).
func WithOutputDir(dir string) SaveOption { return func(o *saveOptions) { o.dir = dir } }

// WithDPI sets the PNG resolution (default 300).
func WithDPI(dpi int) SaveOption { return func(o *saveOptions) { o.dpi = dpi } }

// WithReport sets where the saved paths are printed (default stdout).
func WithReport(w io.Writer) SaveOption { return func(o *saveOptions) { o.out = w } }

// SaveFigure writes {baseName}.png at the configured DPI and {baseName}.pdf into the
// output directory, creating it as needed, and prints both paths. Existing files
// are overwritten. A failing PDF write leaves the PNG in place.
func SaveFigure(fig *Figure, baseName string, opts ...SaveOption) (SavedFiles, error) {
	o := saveOptions{dir: DefaultOutputDir, dpi: DefaultDPI, out: os.Stdout}
	for _, fn := range opts {
		fn(&o)
	}
	if fig == nil || fig.Plot == nil {
		return SavedFiles{}, ErrNilFigure
	}
	if baseName == "" {
		return SavedFiles{}, ErrEmptyName
	}
	if o.dpi <= 0 {
		return SavedFiles{}, fmt.Errorf("%w (got %d)", ErrInvalidDPI, o.dpi)
	}
	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return SavedFiles{}, fmt.Errorf("create output dir: %w", err)
	}
	files := SavedFiles{
		PNG: filepath.Join(o.dir, baseName+".png"),
		PDF: filepath.Join(o.dir, baseName+".pdf"),
	}

	png, err := encodePNG(fig, o.dpi)
	if err != nil {
		return SavedFiles{}, err
	}
	if err := os.WriteFile(files.PNG, png, 0o644); err != nil {
		return SavedFiles{}, fmt.Errorf("write png %s: %w", files.PNG, err)
	}
	pdf, err := encodePDF(fig)
	if err != nil {
		return SavedFiles{PNG: files.PNG}, err
	}
	if err := os.WriteFile(files.PDF, pdf, 0o644); err != nil {
		return SavedFiles{PNG: files.PNG}, fmt.Errorf("write pdf %s: %w", files.PDF, err)
	}

	Infof("saved %s (%.1fx%.1fin @ %d dpi) and %s", files.PNG, fig.Width(), fig.Height(), o.dpi, files.PDF)
	if o.out != nil {
		fmt.Fprintln(o.out, "✓ Figure saved to:")
		fmt.Fprintf(o.out, "  - %s\n", files.PNG)
		fmt.Fprintf(o.out, "  - %s\n", files.PDF)
	}
	return files, nil
}

// encodePNG rasterizes the figure at dpi. The plot fills the canvas, so the image
// has no margin beyond the plot's own padding.
func encodePNG(fig *Figure, dpi int) ([]byte, error) {
	c := vgimg.NewWith(vgimg.UseWH(fig.Size.Width, fig.Size.Height), vgimg.UseDPI(dpi))
	fig.Plot.Draw(draw.New(c))
	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

func encodePDF(fig *Figure) ([]byte, error) {
	c := vgpdf.New(fig.Size.Width, fig.Size.Height)
	fig.Plot.Draw(draw.New(c))
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("pdf encode: %w", err)
	}
	return buf.Bytes(), nil
}

// PixelSize is the PNG size SaveFigure produces for fig at dpi.
func PixelSize(fig *Figure, dpi int) (int, int) {
	w := fig.Size.Width.Dots(float64(dpi))
	h := fig.Size.Height.Dots(float64(dpi))
	return int(w + 0.5), int(h + 0.5)
}
