// Package models defines data structures for Folio
package models

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// GoalSumTolerance is the allowed drift when checking that goal
// percentages sum to 100.
const GoalSumTolerance = 0.01

// Domain errors surfaced by portfolio validation and calculation.
var (
	// ErrMalformedInput indicates the input document is not a valid
	// portfolio object (wrong shape, bad goal sum, negative values).
	ErrMalformedInput = errors.New("malformed portfolio input")

	// ErrZeroTotal indicates the current values sum to zero, so
	// percentages cannot be computed.
	ErrZeroTotal = errors.New("portfolio total value is zero")
)

// Portfolio is the input document: current market value and goal
// allocation percentage per asset.
type Portfolio struct {
	CurrentValue   map[string]float64 `json:"current_value"`
	GoalPercentage map[string]float64 `json:"goal_percentage"`
}

// TotalValue returns the sum of all current asset values.
func (p *Portfolio) TotalValue() float64 {
	total := 0.0
	for _, v := range p.CurrentValue {
		total += v
	}
	return total
}

// Assets returns the union of current and goal asset names in sorted
// order. Sorted traversal keeps every derived result deterministic.
func (p *Portfolio) Assets() []string {
	seen := make(map[string]bool, len(p.CurrentValue))
	assets := make([]string, 0, len(p.CurrentValue))
	for name := range p.CurrentValue {
		seen[name] = true
		assets = append(assets, name)
	}
	for name := range p.GoalPercentage {
		if !seen[name] {
			assets = append(assets, name)
		}
	}
	sort.Strings(assets)
	return assets
}

// Validate checks the portfolio invariants: at least one holding,
// non-negative current values, a positive total, and goal percentages
// summing to 100 within GoalSumTolerance.
func (p *Portfolio) Validate() error {
	if len(p.CurrentValue) == 0 {
		return fmt.Errorf("%w: no current values", ErrMalformedInput)
	}

	for name, v := range p.CurrentValue {
		if v < 0 {
			return fmt.Errorf("%w: negative value %.2f for asset %q", ErrMalformedInput, v, name)
		}
	}

	if p.TotalValue() <= 0 {
		return fmt.Errorf("%w: current values sum to zero", ErrMalformedInput)
	}

	goalSum := 0.0
	for name, g := range p.GoalPercentage {
		if g < 0 || g > 100 {
			return fmt.Errorf("%w: goal percentage %.2f for asset %q outside 0-100", ErrMalformedInput, g, name)
		}
		goalSum += g
	}
	if math.Abs(goalSum-100) > GoalSumTolerance {
		return fmt.Errorf("%w: goal percentages sum to %.2f, want 100", ErrMalformedInput, goalSum)
	}

	return nil
}

// Allocation is the per-asset row of an allocation report.
type Allocation struct {
	Asset      string  `json:"asset"`
	Value      float64 `json:"value"`       // Current market value
	CurrentPct float64 `json:"current_pct"` // Share of total value
	GoalPct    float64 `json:"goal_pct"`    // Target share
	DiffPct    float64 `json:"diff_pct"`    // GoalPct - CurrentPct
}

// SuggestionAction classifies the advised rebalancing move.
type SuggestionAction string

const (
	SuggestionIncrease SuggestionAction = "increase"
	SuggestionDecrease SuggestionAction = "decrease"
	SuggestionOnTrack  SuggestionAction = "on_track"
)

// Suggestion names the single asset furthest from its goal and the
// move that closes the gap.
type Suggestion struct {
	Action   SuggestionAction `json:"action"`
	Asset    string           `json:"asset,omitempty"`
	DeltaPct float64          `json:"delta_pct"` // Magnitude of the gap, always >= 0
}

// String renders the suggestion the way it appears on the report.
func (s Suggestion) String() string {
	switch s.Action {
	case SuggestionIncrease:
		return fmt.Sprintf("Increase %s allocation by %.2f%%.", s.Asset, s.DeltaPct)
	case SuggestionDecrease:
		return fmt.Sprintf("Decrease %s allocation by %.2f%%.", s.Asset, s.DeltaPct)
	default:
		return "Asset allocation is on track with the goal."
	}
}

// AllocationReport contains the analysis results for a portfolio.
// Computed on every run, never persisted.
type AllocationReport struct {
	ReportID    string       `json:"report_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	TotalValue  float64      `json:"total_value"`
	Allocations []Allocation `json:"allocations"`
	Suggestion  Suggestion   `json:"suggestion"`
}
