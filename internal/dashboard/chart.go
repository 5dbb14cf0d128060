package dashboard

import (
	"fmt"

	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

const (
	hueStep          = 45
	colorSaturation  = 70
	colorLightness   = 50
	chartSeriesLabel = "Jobs by Company"
)

// HSL is a colour in the hsl() notation the chart front-end consumes.
type HSL struct {
	Hue        int
	Saturation int
	Lightness  int
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

func (c HSL) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *HSL) UnmarshalText(b []byte) error {
	_, err := fmt.Sscanf(string(b), "hsl(%d, %d%%, %d%%)", &c.Hue, &c.Saturation, &c.Lightness)
	if err != nil {
		return fmt.Errorf("parse colour %q: %w", b, err)
	}
	return nil
}

// CompanyColors assigns each company a colour in first-seen order.
type CompanyColors struct {
	order  []string
	colors map[string]HSL
}

// AssignColors builds the colour assignment from the raw, unfiltered job list.
// The same ordering always produces the same colours.
func AssignColors(raw []models.Job) CompanyColors {
	cc := CompanyColors{colors: make(map[string]HSL)}
	for _, j := range raw {
		if _, ok := cc.colors[j.CompanyName]; ok {
			continue
		}
		idx := len(cc.order)
		cc.order = append(cc.order, j.CompanyName)
		cc.colors[j.CompanyName] = HSL{
			Hue:        (idx * hueStep) % 360,
			Saturation: colorSaturation,
			Lightness:  colorLightness,
		}
	}
	return cc
}

// Companies lists the distinct companies in first-seen order.
func (cc CompanyColors) Companies() []string {
	return append([]string(nil), cc.order...)
}

// Color returns the colour for company, false if it was never seen.
func (cc CompanyColors) Color(company string) (HSL, bool) {
	c, ok := cc.colors[company]
	return c, ok
}

// Bar is one bar of the company chart.
type Bar struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
	Color   HSL    `json:"color"`
}

// ChartSeries is the company bar chart.
type ChartSeries struct {
	Label string `json:"label"`
	Bars  []Bar  `json:"bars"`
}

// BuildChartSeries builds the company chart. With selectedCompany set the chart
// is a single bar counting the filtered jobs, or no bar at all when raw has no
// such company; otherwise it has one bar per company of the raw list. Colours always come from colors, which callers
// derive from the raw list so they do not shift as filters change.
func BuildChartSeries(raw, filtered []models.Job, colors CompanyColors, selectedCompany string) ChartSeries {
	series := ChartSeries{Label: chartSeriesLabel, Bars: make([]Bar, 0)}

	if selectedCompany != "" {
		c, ok := colors.Color(selectedCompany)
		if !ok {
			return series
		}
		series.Bars = append(series.Bars, Bar{
			Company: selectedCompany,
			Count:   len(filtered),
			Color:   c,
		})
		return series
	}

	counts := make(map[string]int, len(colors.order))
	for _, j := range raw {
		counts[j.CompanyName]++
	}
	for _, company := range colors.order {
		c, _ := colors.Color(company)
		series.Bars = append(series.Bars, Bar{Company: company, Count: counts[company], Color: c})
	}
	return series
}
