package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/vendorrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
)

func samplePoints() []schema.PlotPoint {
	return []schema.PlotPoint{
		{Entity: "Acme", Score: 0.9, Price: 1200, Frontier: true},
		{Entity: "Bolt", Score: 0.5, Price: 1500},
		{Entity: "Crux", Score: 0.3, Price: 400, Frontier: true},
	}
}

func testOptions() Options {
	return Options{Title: "Capstone score vs Price", Width: 640, Height: 480}
}

func TestNewChart(t *testing.T) {
	ch, err := NewChart(samplePoints(), testOptions())
	require.NoError(t, err)

	require.Len(t, ch.Series, 3)
	regular, ok := ch.Series[0].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Equal(t, []float64{0.5}, regular.XValues)
	assert.Equal(t, []float64{-1500}, regular.YValues)

	frontier, ok := ch.Series[1].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Equal(t, []float64{0.9, 0.3}, frontier.XValues)

	names, ok := ch.Series[2].(chart.AnnotationSeries)
	require.True(t, ok)
	assert.Len(t, names.Annotations, 3)
	assert.Equal(t, "Crux", names.Annotations[2].Label)
}

func TestNewChartAllFrontier(t *testing.T) {
	points := []schema.PlotPoint{{Entity: "Solo", Score: 1, Price: 10, Frontier: true}}
	ch, err := NewChart(points, testOptions())
	require.NoError(t, err)
	assert.Len(t, ch.Series, 2, "empty vendor series is left out")
}

func TestNewChartNoPoints(t *testing.T) {
	_, err := NewChart(nil, testOptions())
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestPriceRange(t *testing.T) {
	t.Run("pads both ends", func(t *testing.T) {
		r := priceRange(samplePoints())
		assert.InDelta(t, -1610, r.Min, 1e-9)
		assert.InDelta(t, -290, r.Max, 1e-9)
	})

	t.Run("equal prices", func(t *testing.T) {
		r := priceRange([]schema.PlotPoint{{Price: 100}, {Price: 100}})
		assert.Less(t, r.Min, -100.0)
		assert.Greater(t, r.Max, -100.0)
	})

	t.Run("zero prices", func(t *testing.T) {
		r := priceRange([]schema.PlotPoint{{Price: 0}})
		assert.Equal(t, -1.0, r.Min)
		assert.Equal(t, 1.0, r.Max)
	})
}

func TestRender(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, samplePoints(), schema.PNGPlot, testOptions()))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	})

	t.Run("svg", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, samplePoints(), schema.SVGPlot, testOptions()))
		assert.Contains(t, buf.String(), "<svg")
		assert.Contains(t, buf.String(), "Acme")
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, Render(&buf, samplePoints(), "gif", testOptions()))
	})
}

func TestRenderImage(t *testing.T) {
	img, err := RenderImage(samplePoints(), testOptions())
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.svg")
	require.NoError(t, WriteFile(path, samplePoints(), schema.SVGPlot, testOptions()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBlank(t *testing.T) {
	img := Blank(10, 5)
	assert.Equal(t, 10, img.Bounds().Dx())
	r, g, b, a := img.At(3, 3).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
}
