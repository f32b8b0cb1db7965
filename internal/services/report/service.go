// Package report renders allocation reports for presentation
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/models"
)

// Service implements ReportService
type Service struct {
	config *common.Config
	logger *common.Logger
}

// NewService creates a new report service
func NewService(config *common.Config, logger *common.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// FormatMarkdown renders the tabular allocation breakdown as markdown.
func (s *Service) FormatMarkdown(report *models.AllocationReport) string {
	return FormatMarkdown(report)
}

// WriteHTML renders both donut charts, assembles the HTML report, and
// writes it under the configured output directory. Returns the path of
// the written file.
func (s *Service) WriteHTML(report *models.AllocationReport) (string, error) {
	currentPNG, err := RenderCurrentChart(report, s.config.Chart)
	if err != nil {
		return "", fmt.Errorf("failed to render current allocation chart: %w", err)
	}

	goalPNG, err := RenderGoalChart(report, s.config.Chart)
	if err != nil {
		return "", fmt.Errorf("failed to render goal allocation chart: %w", err)
	}

	page, err := renderHTML(report, currentPNG, goalPNG)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.config.Output.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir %s: %w", s.config.Output.Dir, err)
	}

	path := filepath.Join(s.config.Output.Dir, fmt.Sprintf("allocation-%s.html", report.ReportID))
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}

	s.logger.Info().
		Str("report_id", report.ReportID).
		Str("path", path).
		Msg("HTML report written")

	return path, nil
}
