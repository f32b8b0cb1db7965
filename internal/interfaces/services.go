// Package interfaces defines service contracts for Folio
package interfaces

import (
	"github.com/bobmcallan/folio/internal/models"
)

// AllocationService loads portfolios and derives allocation reports
type AllocationService interface {
	// LoadPortfolio reads and validates a portfolio JSON file
	LoadPortfolio(path string) (*models.Portfolio, error)

	// CurrentPercentages computes each asset's share of the total value
	CurrentPercentages(p *models.Portfolio) (map[string]float64, error)

	// Analyze builds the full allocation report including the
	// rebalancing suggestion
	Analyze(p *models.Portfolio) (*models.AllocationReport, error)
}

// ReportService renders allocation reports for presentation
type ReportService interface {
	// FormatMarkdown renders the tabular breakdown as markdown
	FormatMarkdown(report *models.AllocationReport) string

	// WriteHTML renders the chart report to an HTML file and returns
	// its path
	WriteHTML(report *models.AllocationReport) (string, error)
}
