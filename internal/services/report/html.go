package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/models"
)

// reportTemplate lays out the dual donut charts, the suggestion, and
// the allocation table on a single self-contained page.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Investment Allocation</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 72rem; color: #111; }
  h1 { text-align: center; font-size: 1.6rem; }
  .charts { display: flex; justify-content: center; gap: 2rem; flex-wrap: wrap; }
  .charts figure { margin: 0; text-align: center; }
  .suggestion { text-align: center; font-size: 1.15rem; margin: 1.5rem 0; }
  table { border-collapse: collapse; margin: 0 auto; }
  th, td { border: 1px solid #ccc; padding: 0.4rem 0.9rem; text-align: right; }
  th:first-child, td:first-child { text-align: left; }
  tfoot td { font-weight: bold; }
  footer { text-align: center; color: #888; font-size: 0.8rem; margin-top: 2rem; }
</style>
</head>
<body>
<h1>Investment Allocation</h1>
<div class="charts">
  <figure><img src="data:image/png;base64,{{.CurrentChart}}" alt="Current Allocation"></figure>
  <figure><img src="data:image/png;base64,{{.GoalChart}}" alt="Goal Allocation"></figure>
</div>
<p class="suggestion">Suggestion: {{.Suggestion}}</p>
<table>
  <thead>
    <tr><th>Asset</th><th>Value</th><th>Current</th><th>Goal</th><th>Difference</th></tr>
  </thead>
  <tbody>
    {{- range .Rows}}
    <tr><td>{{.Asset}}</td><td>{{.Value}}</td><td>{{.Current}}</td><td>{{.Goal}}</td><td>{{.Diff}}</td></tr>
    {{- end}}
  </tbody>
  <tfoot>
    <tr><td>Total</td><td>{{.TotalValue}}</td><td>100.0%</td><td>100.0%</td><td></td></tr>
  </tfoot>
</table>
<footer>Report {{.ReportID}} &middot; generated {{.GeneratedAt}}</footer>
</body>
</html>
`))

type reportPage struct {
	CurrentChart string
	GoalChart    string
	Suggestion   string
	Rows         []reportRow
	TotalValue   string
	ReportID     string
	GeneratedAt  string
}

type reportRow struct {
	Asset   string
	Value   string
	Current string
	Goal    string
	Diff    string
}

// renderHTML assembles the report page with both charts embedded as
// base64 PNG data URIs.
func renderHTML(report *models.AllocationReport, currentPNG, goalPNG []byte) ([]byte, error) {
	page := reportPage{
		CurrentChart: base64.StdEncoding.EncodeToString(currentPNG),
		GoalChart:    base64.StdEncoding.EncodeToString(goalPNG),
		Suggestion:   report.Suggestion.String(),
		TotalValue:   common.FormatMoney(report.TotalValue),
		ReportID:     report.ReportID,
		GeneratedAt:  report.GeneratedAt.Format("2006-01-02 15:04:05"),
	}

	for _, a := range report.Allocations {
		page.Rows = append(page.Rows, reportRow{
			Asset:   a.Asset,
			Value:   common.FormatMoney(a.Value),
			Current: common.FormatPct(a.CurrentPct),
			Goal:    common.FormatPct(a.GoalPct),
			Diff:    common.FormatSignedPct(a.DiffPct),
		})
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("report template failed: %w", err)
	}

	return buf.Bytes(), nil
}
