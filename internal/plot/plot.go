// Package plot renders the score vs. price scatter plot with github.com/wcharczuk/go-chart/v2.
//
// Score runs along the x axis and the negated price along the y axis, so the best
// value for money sits in the top right corner.
package plot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/huangsam/vendorrank/schema"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoPoints is returned when there is nothing to plot.
var ErrNoPoints = errors.New("no vendors to plot")

// Options control the size and labeling of a plot.
type Options struct {
	Title  string
	Width  int
	Height int
}

// pointStyle returns a style that renders points only, no connecting line.
func pointStyle(col drawing.Color, dot float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    dot,
		DotColor:    col,
	}
}

// NewChart builds the chart for a set of points. Frontier vendors get their own
// highlighted series and every vendor is annotated with its name.
func NewChart(points []schema.PlotPoint, opts Options) (chart.Chart, error) {
	if len(points) == 0 {
		return chart.Chart{}, ErrNoPoints
	}

	var regular, frontier chart.ContinuousSeries
	regular.Name = "Vendors"
	regular.Style = pointStyle(chart.ColorBlue, 5)
	frontier.Name = "Price frontier"
	frontier.Style = pointStyle(chart.ColorRed, 7)

	annotations := chart.AnnotationSeries{Name: "Names"}
	for _, p := range points {
		x, y := p.Score, -p.Price
		if p.Frontier {
			frontier.XValues = append(frontier.XValues, x)
			frontier.YValues = append(frontier.YValues, y)
		} else {
			regular.XValues = append(regular.XValues, x)
			regular.YValues = append(regular.YValues, y)
		}
		annotations.Annotations = append(annotations.Annotations, chart.Value2{XValue: x, YValue: y, Label: p.Entity})
	}

	var series []chart.Series
	if len(regular.XValues) > 0 {
		series = append(series, regular)
	}
	if len(frontier.XValues) > 0 {
		series = append(series, frontier)
	}
	series = append(series, annotations)

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 40, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Score",
			Range: &chart.ContinuousRange{Min: -0.05, Max: 1.1},
		},
		YAxis: chart.YAxis{
			Name:           "-Price",
			Range:          priceRange(points),
			ValueFormatter: priceFormatter,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch, nil
}

// priceRange pads the negated price range so no point sits on the plot border.
// go-chart rejects zero-width ranges, so equal prices still get some room.
func priceRange(points []schema.PlotPoint) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, -p.Price)
		hi = math.Max(hi, -p.Price)
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = math.Max(1, math.Abs(hi)*0.1)
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func priceFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

// Render writes the plot in the given format.
func Render(w io.Writer, points []schema.PlotPoint, format schema.PlotFormat, opts Options) error {
	ch, err := NewChart(points, opts)
	if err != nil {
		return err
	}
	var provider chart.RendererProvider
	switch format {
	case schema.SVGPlot:
		provider = chart.SVG
	case schema.PNGPlot, "":
		provider = chart.PNG
	default:
		return fmt.Errorf("unsupported plot format %q", format)
	}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("cannot render plot: %w", err)
	}
	return nil
}

// RenderImage renders the plot as a decoded PNG image for on-screen display.
func RenderImage(points []schema.PlotPoint, opts Options) (image.Image, error) {
	var buf bytes.Buffer
	if err := Render(&buf, points, schema.PNGPlot, opts); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("cannot decode plot: %w", err)
	}
	return img, nil
}

// WriteFile renders the plot into a file.
func WriteFile(path string, points []schema.PlotPoint, format schema.PlotFormat, opts Options) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create plot file: %w", err)
	}
	if err := Render(file, points, format, opts); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Blank returns an empty white image, shown when there is nothing to plot.
func Blank(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}
