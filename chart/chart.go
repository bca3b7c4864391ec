// Package chart renders the two-panel trend figure.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sartorproj/trendfit/analysis"
	"github.com/sartorproj/trendfit/timeseries"
)

// Two 6x5 inch panels side by side.
const (
	figureWidth  = 12 * vg.Inch
	figureHeight = 5 * vg.Inch
)

var (
	actualColor   = color.RGBA{R: 65, G: 105, B: 225, A: 255}
	trendColor    = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	seasonalColor = color.RGBA{R: 220, G: 20, B: 60, A: 255}
)

// Figure is a rendered two-panel chart ready to be encoded as PNG.
type Figure struct {
	canvas *vgimg.Canvas
}

// Render builds the figure for a completed analysis run: the left panel
// shows the raw observations, the right panel overlays the observations
// with the linear trend line and the extended seasonal curve.
func Render(res *analysis.Result) (*Figure, error) {
	left, err := rawPanel(res.Series)
	if err != nil {
		return nil, err
	}
	right, err := trendPanel(res)
	if err != nil {
		return nil, err
	}

	canvas := vgimg.New(figureWidth, figureHeight)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
	}

	panels := [][]*plot.Plot{{left, right}}
	canvases := plot.Align(panels, tiles, draw.New(canvas))
	for i, row := range panels {
		for j, panel := range row {
			panel.Draw(canvases[i][j])
		}
	}

	return &Figure{canvas: canvas}, nil
}

// WriteTo encodes the figure as PNG.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	png := vgimg.PngCanvas{Canvas: f.canvas}
	return png.WriteTo(w)
}

// Save writes the figure as a PNG file.
func (f *Figure) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving figure: %w", err)
	}
	if _, err := f.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("saving figure: %w", err)
	}
	return out.Close()
}

// rawPanel plots the observed series alone.
func rawPanel(series *timeseries.Series) (*plot.Plot, error) {
	p := newPanel("Revenue time series")

	points := seriesXYs(series.Months, series.Values)
	line, err := plotter.NewLine(points)
	if err != nil {
		return nil, err
	}
	line.Color = actualColor
	line.Width = vg.Points(1)

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = actualColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(line, scatter)
	p.Legend.Add("Actual data", scatter)
	return p, nil
}

// trendPanel overlays the observations with both fitted curves.
func trendPanel(res *analysis.Result) (*plot.Plot, error) {
	p := newPanel("Trends: linear and seasonal")

	scatter, err := plotter.NewScatter(seriesXYs(res.Series.Months, res.Series.Values))
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = actualColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	trend, err := plotter.NewLine(seriesXYs(res.Series.Months, res.Trend))
	if err != nil {
		return nil, err
	}
	trend.Color = trendColor
	trend.Width = vg.Points(2)

	seasonal, err := plotter.NewLine(seriesXYs(res.Extended.Months, res.SeasonalTrend))
	if err != nil {
		return nil, err
	}
	seasonal.Color = seasonalColor
	seasonal.Width = vg.Points(2)
	seasonal.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}

	p.Add(scatter, trend, seasonal)
	p.Legend.Add("Actual data", scatter)
	p.Legend.Add("Linear trend", trend)
	p.Legend.Add("Seasonal trend (sine)", seasonal)
	return p, nil
}

func newPanel(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Revenue, mln"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func seriesXYs(xs, ys []float64) plotter.XYs {
	points := make(plotter.XYs, len(xs))
	for i := range xs {
		points[i].X = xs[i]
		points[i].Y = ys[i]
	}
	return points
}
