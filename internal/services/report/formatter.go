package report

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/models"
)

// FormatMarkdown generates the tabular allocation breakdown as markdown.
func FormatMarkdown(report *models.AllocationReport) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Investment Allocation\n\n")
	sb.WriteString(fmt.Sprintf("**Date:** %s\n", report.GeneratedAt.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("**Total Value:** %s\n\n", common.FormatMoney(report.TotalValue)))

	// Allocation table
	sb.WriteString("## Allocations\n\n")
	sb.WriteString("| Asset | Value | Current | Goal | Difference |\n")
	sb.WriteString("|-------|-------|---------|------|------------|\n")

	for _, a := range report.Allocations {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			a.Asset, common.FormatMoney(a.Value),
			common.FormatPct(a.CurrentPct), common.FormatPct(a.GoalPct),
			common.FormatSignedPct(a.DiffPct),
		))
	}
	sb.WriteString(fmt.Sprintf("| **Total** | **%s** | **100.0%%** | **100.0%%** | |\n\n",
		common.FormatMoney(report.TotalValue)))

	// Suggestion
	sb.WriteString(fmt.Sprintf("**Suggestion:** %s\n", report.Suggestion.String()))

	return sb.String()
}
