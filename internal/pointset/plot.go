package pointset

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/pointset/internal/fsutil"
	"github.com/banshee-data/pointset/internal/monitoring"
)

// PlotOptions controls the rendered image.
type PlotOptions struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

type plotGroup struct {
	name   string
	points []Point
	color  color.Color
	shape  draw.GlyphDrawer
}

// Plot renders a scatter plot of idx to path, drawing points found only in
// the first file, only in the second, and in both as separate series. The
// image format follows the file extension (png when there is none).
func Plot(fsys fsutil.FileSystem, path string, idx *Index, opts PlotOptions) (err error) {
	if idx.Len() == 0 {
		return fmt.Errorf("no points to plot")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	groups := []plotGroup{
		{"A only", Difference(idx), color.RGBA{R: 214, G: 39, B: 40, A: 255}, draw.CircleGlyph{}},
		{"B only", Select(idx, func(s OriginSet) bool { return s.Has(OriginB) && !s.Has(OriginA) }), color.RGBA{R: 31, G: 119, B: 180, A: 255}, draw.SquareGlyph{}},
		{"A and B", Intersection(idx), color.RGBA{R: 44, G: 160, B: 44, A: 255}, draw.TriangleGlyph{}},
	}
	for _, g := range groups {
		if len(g.points) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(toXYs(g.points))
		if err != nil {
			return fmt.Errorf("failed to build %s series: %w", g.name, err)
		}
		scatter.GlyphStyle.Color = g.color
		scatter.GlyphStyle.Shape = g.shape
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add(g.name, scatter)
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		format = "png"
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("failed to render plot: %w", err)
	}

	f, err := fsys.Create(path)
	if err != nil {
		return &FileAccessError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileAccessError{Op: "close", Path: path, Err: cerr}
		}
	}()
	if _, err := wt.WriteTo(f); err != nil {
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}

	monitoring.Logf("plotted %d points to %s", idx.Len(), path)
	return nil
}

func toXYs(points []Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}
