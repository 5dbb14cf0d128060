package export

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/justsurfingit/jobtrack-dashboard/internal/dashboard"
)

// ErrNoChartData is returned when there are no bars to draw.
var ErrNoChartData = errors.New("no chart data")

// WriteChartPNG renders series as a bar chart PNG, one bar per company in its
// assigned colour.
func WriteChartPNG(w io.Writer, series dashboard.ChartSeries) error {
	if len(series.Bars) == 0 {
		return ErrNoChartData
	}

	maxCount := 1
	bars := make([]chart.Value, 0, len(series.Bars))
	for _, b := range series.Bars {
		maxCount = max(maxCount, b.Count)
		col := HSLToColor(b.Color)
		bars = append(bars, chart.Value{
			Label: b.Company,
			Value: float64(b.Count),
			Style: chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
		})
	}

	graph := chart.BarChart{
		Title:  series.Label,
		Width:  max(480, 110*len(bars)),
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		BarWidth: 60,
		XAxis:    chart.Style{FontSize: 9},
		YAxis: chart.YAxis{
			Name:  "Number of Jobs",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// HSLToColor converts an hsl() colour to RGB.
func HSLToColor(c dashboard.HSL) drawing.Color {
	h := math.Mod(float64(c.Hue), 360) / 360
	s := float64(c.Saturation) / 100
	l := float64(c.Lightness) / 100

	if s == 0 {
		v := uint8(math.Round(l * 255))
		return drawing.Color{R: v, G: v, B: v, A: 255}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return drawing.Color{
		R: uint8(math.Round(hueToRGB(p, q, h+1.0/3) * 255)),
		G: uint8(math.Round(hueToRGB(p, q, h) * 255)),
		B: uint8(math.Round(hueToRGB(p, q, h-1.0/3) * 255)),
		A: 255,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
