package bot

import (
	"bytes"

	chart "github.com/wcharczuk/go-chart/v2"
)

// regionAverage is one bar of the cross-region comparison.
type regionAverage struct {
	Region string
	Avg    float64
}

// renderSalaryChart draws the per-region average salary bar chart as PNG.
// Only regions with qualifying data are passed in; a single bar is a valid
// chart, not an error.
func renderSalaryChart(profession string, entries []regionAverage) ([]byte, error) {
	bars := make([]chart.Value, len(entries))
	for i, e := range entries {
		bars[i] = chart.Value{Label: title(e.Region), Value: e.Avg}
	}

	width := 160*len(bars) + 80
	if width < 512 {
		width = 512
	}

	graph := chart.BarChart{
		Title:    title(profession),
		Height:   512,
		Width:    width,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
