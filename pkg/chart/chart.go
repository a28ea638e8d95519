package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gilchrisn/graph-datasets/pkg/regression"
	"github.com/gilchrisn/graph-datasets/pkg/utils"
)

const (
	title  = "Algorithm running time in function of the size of the graph"
	xLabel = "Size of the graph (number of nodes + number of edges)"
	yLabel = "Computation time (ns)"
)

var ErrNoPoints = errors.New("no points to plot")

// Point is the measured running time of one dataset
type Point struct {
	Name     string
	Size     float64 // n + m
	Mean     float64
	ErrorBar float64
}

// Zoom is a view of the chart limited to sizes below Limit
type Zoom struct {
	Name  string
	Limit float64
}

// DefaultZooms are the views rendered next to the full chart
var DefaultZooms = []Zoom{
	{Name: "large", Limit: 4e7},
	{Name: "medium", Limit: 8e6},
	{Name: "small", Limit: 15e5},
	{Name: "tiny", Limit: 3e5},
}

// Options controls chart rendering
type Options struct {
	Dir    string // output directory
	Prefix string // file name prefix, e.g. "running-times"
	Width  vg.Length
	Height vg.Length
	Zooms  []Zoom
}

// DefaultOptions writes running-times-*.png into dir
func DefaultOptions(dir string) Options {
	return Options{
		Dir:    dir,
		Prefix: "running-times",
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
		Zooms:  DefaultZooms,
	}
}

// errorPoints pairs the means with their error bars
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Render writes the full chart with the regression line and one chart per
// zoom. Zooms with no point below their limit are skipped. It returns the
// paths written.
func Render(points []Point, model regression.Model, opts Options) ([]string, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	var written []string

	p, err := newPlot(points)
	if err != nil {
		return nil, err
	}
	if err := addFit(p, points, model); err != nil {
		return nil, err
	}
	path := filepath.Join(opts.Dir, opts.Prefix+"-huge.png")
	if err := save(p, opts, path); err != nil {
		return nil, err
	}
	written = append(written, path)

	for _, z := range opts.Zooms {
		maxVisible, ok := maxVisibleTime(points, z.Limit)
		if !ok {
			continue
		}

		p, err := newPlot(points)
		if err != nil {
			return written, err
		}
		p.X.Min, p.X.Max = -z.Limit*0.05, z.Limit
		p.Y.Min, p.Y.Max = -maxVisible*0.05, maxVisible*1.1

		path := filepath.Join(opts.Dir, opts.Prefix+"-"+z.Name+".png")
		if err := save(p, opts, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

// FitLabel is the legend entry of the regression line
func FitLabel(model regression.Model) string {
	r := math.Round(model.R2*1e5) / 1e5
	return "linear regression, R=" + strconv.FormatFloat(r, 'f', -1, 64)
}

func newPlot(points []Point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	data := errorPoints{
		XYs:     make(plotter.XYs, len(points)),
		YErrors: make(plotter.YErrors, len(points)),
	}
	for i, pt := range points {
		data.XYs[i].X = pt.Size
		data.XYs[i].Y = pt.Mean
		data.YErrors[i].Low = pt.ErrorBar
		data.YErrors[i].High = pt.ErrorBar
	}

	scatter, err := plotter.NewScatter(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CrossGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	bars, err := plotter.NewYErrorBars(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create error bars: %w", err)
	}

	p.Add(scatter, bars)
	p.Legend.Add("running times", scatter)
	return p, nil
}

func addFit(p *plot.Plot, points []Point, model regression.Model) error {
	xs := make([]float64, len(points))
	for i, pt := range points {
		xs[i] = pt.Size
	}
	sort.Float64s(xs)

	lo, hi := xs[0], xs[len(xs)-1]
	line, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: model.Predict(lo)},
		{X: hi, Y: model.Predict(hi)},
	})
	if err != nil {
		return fmt.Errorf("failed to create regression line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = color.Gray{Y: 128}

	p.Add(line)
	p.Legend.Add(FitLabel(model), line)
	return nil
}

// maxVisibleTime returns the largest mean among points with size below limit
func maxVisibleTime(points []Point, limit float64) (float64, bool) {
	found := false
	best := 0.0
	for _, pt := range points {
		if pt.Size >= limit {
			continue
		}
		if !found || pt.Mean > best {
			best = pt.Mean
			found = true
		}
	}
	return best, found
}

func save(p *plot.Plot, opts Options, path string) error {
	canvas := vgimg.New(opts.Width, opts.Height)
	p.Draw(draw.New(canvas))

	err := utils.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := vgimg.PngCanvas{Canvas: canvas}.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}
