// Package allocation provides portfolio allocation analysis services
package allocation

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/models"
)

// Service implements AllocationService
type Service struct {
	logger *common.Logger
}

// NewService creates a new allocation service
func NewService(logger *common.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// LoadPortfolio reads the portfolio JSON file at path and validates it.
func (s *Service) LoadPortfolio(path string) (*models.Portfolio, error) {
	s.logger.Info().Str("path", path).Msg("Loading portfolio")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio file %s: %w", path, err)
	}

	// Reject non-object documents up front so the error names the real
	// problem rather than a field-level decode failure.
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedInput, err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: document is not a JSON object", models.ErrMalformedInput)
	}

	var portfolio models.Portfolio
	if err := json.Unmarshal(data, &portfolio); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedInput, err)
	}

	if err := portfolio.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("assets", len(portfolio.CurrentValue)).
		Float64("total", portfolio.TotalValue()).
		Msg("Portfolio loaded")

	return &portfolio, nil
}

// CurrentPercentages computes each asset's share of the total current
// value (value/total*100). Fails with ErrZeroTotal when there is no
// value to allocate.
func (s *Service) CurrentPercentages(p *models.Portfolio) (map[string]float64, error) {
	total := p.TotalValue()
	if total <= 0 {
		return nil, models.ErrZeroTotal
	}

	percentages := make(map[string]float64, len(p.CurrentValue))
	for asset, value := range p.CurrentValue {
		percentages[asset] = value / total * 100
	}

	return percentages, nil
}

// Analyze builds the full allocation report: per-asset current/goal
// percentages, differences, and the rebalancing suggestion.
func (s *Service) Analyze(p *models.Portfolio) (*models.AllocationReport, error) {
	current, err := s.CurrentPercentages(p)
	if err != nil {
		return nil, err
	}

	assets := p.Assets()
	allocations := make([]models.Allocation, 0, len(assets))
	for _, asset := range assets {
		currentPct := current[asset]
		goalPct := p.GoalPercentage[asset] // missing goal treated as 0
		allocations = append(allocations, models.Allocation{
			Asset:      asset,
			Value:      p.CurrentValue[asset],
			CurrentPct: currentPct,
			GoalPct:    goalPct,
			DiffPct:    goalPct - currentPct,
		})
	}

	report := &models.AllocationReport{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now(),
		TotalValue:  p.TotalValue(),
		Allocations: allocations,
		Suggestion:  suggest(allocations),
	}

	s.logger.Info().
		Str("report_id", report.ReportID).
		Int("assets", len(allocations)).
		Str("suggestion", report.Suggestion.String()).
		Msg("Allocation report built")

	return report, nil
}

// suggest picks the single asset with the largest absolute gap between
// goal and current allocation. Allocations arrive in sorted asset
// order, so a tie resolves to the first (alphabetically lowest) asset.
func suggest(allocations []models.Allocation) models.Suggestion {
	if len(allocations) == 0 {
		return models.Suggestion{Action: models.SuggestionOnTrack}
	}

	best := allocations[0]
	for _, a := range allocations[1:] {
		if math.Abs(a.DiffPct) > math.Abs(best.DiffPct) {
			best = a
		}
	}

	switch {
	case best.DiffPct > 0:
		return models.Suggestion{
			Action:   models.SuggestionIncrease,
			Asset:    best.Asset,
			DeltaPct: best.DiffPct,
		}
	case best.DiffPct < 0:
		return models.Suggestion{
			Action:   models.SuggestionDecrease,
			Asset:    best.Asset,
			DeltaPct: -best.DiffPct,
		}
	default:
		return models.Suggestion{Action: models.SuggestionOnTrack}
	}
}
