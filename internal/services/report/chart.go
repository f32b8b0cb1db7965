package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/models"
)

// RenderCurrentChart renders the current allocation as a PNG donut
// chart. Slice sizes are the current market values. Returns raw PNG
// bytes.
func RenderCurrentChart(report *models.AllocationReport, cfg common.ChartConfig) ([]byte, error) {
	values := make([]chart.Value, 0, len(report.Allocations))
	for i, a := range report.Allocations {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", a.Asset, a.CurrentPct),
			Value: a.Value,
			Style: sliceStyle(cfg.Palette, i),
		})
	}
	return renderDonut("Current Allocation", values, cfg)
}

// RenderGoalChart renders the goal allocation as a PNG donut chart.
// Slice sizes are the goal shares of the current total, so the two
// charts stay on the same value scale.
func RenderGoalChart(report *models.AllocationReport, cfg common.ChartConfig) ([]byte, error) {
	values := make([]chart.Value, 0, len(report.Allocations))
	for i, a := range report.Allocations {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", a.Asset, a.GoalPct),
			Value: a.GoalPct / 100 * report.TotalValue,
			Style: sliceStyle(cfg.Palette, i),
		})
	}
	return renderDonut("Goal Allocation", values, cfg)
}

// sliceStyle cycles the configured palette across slices. A thin black
// stroke keeps adjacent pastel slices distinguishable.
func sliceStyle(palette []string, i int) chart.Style {
	hex := common.DefaultPalette[i%len(common.DefaultPalette)]
	if len(palette) > 0 {
		hex = palette[i%len(palette)]
	}
	return chart.Style{
		FillColor:   drawing.ColorFromHex(hex),
		StrokeColor: drawing.ColorBlack,
		StrokeWidth: 1,
	}
}

func renderDonut(title string, values []chart.Value, cfg common.ChartConfig) ([]byte, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("need at least 1 slice, got 0")
	}

	graph := chart.DonutChart{
		Title:  title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 10, Right: 10, Bottom: 10},
		},
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
