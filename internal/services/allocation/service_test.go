package allocation

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/models"
)

func newTestService() *Service {
	return NewService(common.NewSilentLogger())
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "investments.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestLoadPortfolio(t *testing.T) {
	path := writeInput(t, `{
		"current_value": {"Shares": 7000, "Bonds": 3000},
		"goal_percentage": {"Shares": 60, "Bonds": 40}
	}`)

	svc := newTestService()
	p, err := svc.LoadPortfolio(path)
	if err != nil {
		t.Fatalf("LoadPortfolio() error = %v", err)
	}
	if len(p.CurrentValue) != 2 {
		t.Errorf("got %d current values, want 2", len(p.CurrentValue))
	}
	if p.TotalValue() != 10000 {
		t.Errorf("TotalValue() = %v, want 10000", p.TotalValue())
	}
}

func TestLoadPortfolio_NotAnObject(t *testing.T) {
	path := writeInput(t, `[1, 2, 3]`)

	svc := newTestService()
	_, err := svc.LoadPortfolio(path)
	if !errors.Is(err, models.ErrMalformedInput) {
		t.Errorf("LoadPortfolio() error = %v, want ErrMalformedInput", err)
	}
}

func TestLoadPortfolio_InvalidJSON(t *testing.T) {
	path := writeInput(t, `{"current_value": `)

	svc := newTestService()
	_, err := svc.LoadPortfolio(path)
	if !errors.Is(err, models.ErrMalformedInput) {
		t.Errorf("LoadPortfolio() error = %v, want ErrMalformedInput", err)
	}
}

func TestLoadPortfolio_GoalSumRejected(t *testing.T) {
	path := writeInput(t, `{
		"current_value": {"Shares": 7000, "Bonds": 3000},
		"goal_percentage": {"Shares": 60, "Bonds": 30}
	}`)

	svc := newTestService()
	_, err := svc.LoadPortfolio(path)
	if !errors.Is(err, models.ErrMalformedInput) {
		t.Errorf("LoadPortfolio() error = %v, want ErrMalformedInput", err)
	}
}

func TestLoadPortfolio_MissingFile(t *testing.T) {
	svc := newTestService()
	_, err := svc.LoadPortfolio(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("LoadPortfolio() error = nil, want read error")
	}
}

func TestCurrentPercentages_SumTo100(t *testing.T) {
	p := &models.Portfolio{
		CurrentValue: map[string]float64{
			"A": 1234.56, "B": 7890.12, "C": 42.0, "D": 0.01,
		},
	}

	svc := newTestService()
	pct, err := svc.CurrentPercentages(p)
	if err != nil {
		t.Fatalf("CurrentPercentages() error = %v", err)
	}

	sum := 0.0
	for _, v := range pct {
		sum += v
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestCurrentPercentages_ZeroTotal(t *testing.T) {
	p := &models.Portfolio{CurrentValue: map[string]float64{"A": 0}}

	svc := newTestService()
	_, err := svc.CurrentPercentages(p)
	if !errors.Is(err, models.ErrZeroTotal) {
		t.Errorf("CurrentPercentages() error = %v, want ErrZeroTotal", err)
	}
}

func TestAnalyze_AdvisorNamesMaxDiff(t *testing.T) {
	// Current: Shares 70%, Bonds 20%, Cash 10%.
	// Goal:    Shares 50%, Bonds 30%, Cash 20%.
	// Largest gap is Shares at -20.
	p := &models.Portfolio{
		CurrentValue:   map[string]float64{"Shares": 7000, "Bonds": 2000, "Cash": 1000},
		GoalPercentage: map[string]float64{"Shares": 50, "Bonds": 30, "Cash": 20},
	}

	svc := newTestService()
	report, err := svc.Analyze(p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.Suggestion.Action != models.SuggestionDecrease {
		t.Errorf("Suggestion.Action = %q, want %q", report.Suggestion.Action, models.SuggestionDecrease)
	}
	if report.Suggestion.Asset != "Shares" {
		t.Errorf("Suggestion.Asset = %q, want %q", report.Suggestion.Asset, "Shares")
	}
	if math.Abs(report.Suggestion.DeltaPct-20) > 1e-9 {
		t.Errorf("Suggestion.DeltaPct = %v, want 20", report.Suggestion.DeltaPct)
	}
}

func TestAnalyze_AdvisorIncrease(t *testing.T) {
	// Bonds sit 15 points under goal, the largest gap.
	p := &models.Portfolio{
		CurrentValue:   map[string]float64{"Shares": 8000, "Bonds": 1500, "Cash": 500},
		GoalPercentage: map[string]float64{"Shares": 65, "Bonds": 30, "Cash": 5},
	}

	svc := newTestService()
	report, err := svc.Analyze(p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.Suggestion.Action != models.SuggestionIncrease {
		t.Errorf("Suggestion.Action = %q, want %q", report.Suggestion.Action, models.SuggestionIncrease)
	}
	if report.Suggestion.Asset != "Bonds" {
		t.Errorf("Suggestion.Asset = %q, want %q", report.Suggestion.Asset, "Bonds")
	}
}

func TestAnalyze_AdvisorOnTrack(t *testing.T) {
	p := &models.Portfolio{
		CurrentValue:   map[string]float64{"Shares": 6000, "Bonds": 4000},
		GoalPercentage: map[string]float64{"Shares": 60, "Bonds": 40},
	}

	svc := newTestService()
	report, err := svc.Analyze(p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.Suggestion.Action != models.SuggestionOnTrack {
		t.Errorf("Suggestion.Action = %q, want %q", report.Suggestion.Action, models.SuggestionOnTrack)
	}
	if report.Suggestion.String() != "Asset allocation is on track with the goal." {
		t.Errorf("Suggestion.String() = %q", report.Suggestion.String())
	}
}

func TestAnalyze_TieBreaksToFirstAsset(t *testing.T) {
	// Alpha is 25 points over, Beta 25 points under. Assets are
	// traversed in sorted order, so Alpha wins the tie.
	p := &models.Portfolio{
		CurrentValue:   map[string]float64{"Alpha": 7500, "Beta": 2500},
		GoalPercentage: map[string]float64{"Alpha": 50, "Beta": 50},
	}

	svc := newTestService()
	report, err := svc.Analyze(p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.Suggestion.Asset != "Alpha" {
		t.Errorf("Suggestion.Asset = %q, want %q (tie goes to first asset)", report.Suggestion.Asset, "Alpha")
	}
	if report.Suggestion.Action != models.SuggestionDecrease {
		t.Errorf("Suggestion.Action = %q, want %q", report.Suggestion.Action, models.SuggestionDecrease)
	}
}

func TestAnalyze_MissingGoalTreatedAsZero(t *testing.T) {
	// Crypto has no goal entry, so its goal is 0 and it sits 40 points
	// over -- the largest gap.
	p := &models.Portfolio{
		CurrentValue:   map[string]float64{"Shares": 6000, "Crypto": 4000},
		GoalPercentage: map[string]float64{"Shares": 70, "Cash": 30},
	}

	svc := newTestService()
	report, err := svc.Analyze(p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	var crypto *models.Allocation
	for i := range report.Allocations {
		if report.Allocations[i].Asset == "Crypto" {
			crypto = &report.Allocations[i]
		}
	}
	if crypto == nil {
		t.Fatal("Crypto missing from allocations")
	}
	if crypto.GoalPct != 0 {
		t.Errorf("Crypto.GoalPct = %v, want 0", crypto.GoalPct)
	}

	if report.Suggestion.Asset != "Crypto" {
		t.Errorf("Suggestion.Asset = %q, want %q", report.Suggestion.Asset, "Crypto")
	}
	if report.Suggestion.Action != models.SuggestionDecrease {
		t.Errorf("Suggestion.Action = %q, want %q", report.Suggestion.Action, models.SuggestionDecrease)
	}
}

func TestAnalyze_ReportMetadata(t *testing.T) {
	p := &models.Portfolio{
		CurrentValue:   map[string]float64{"Shares": 6000, "Bonds": 4000},
		GoalPercentage: map[string]float64{"Shares": 60, "Bonds": 40},
	}

	svc := newTestService()
	report, err := svc.Analyze(p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.ReportID == "" {
		t.Error("ReportID is empty")
	}
	if report.GeneratedAt.IsZero() {
		t.Error("GeneratedAt is zero")
	}
	if report.TotalValue != 10000 {
		t.Errorf("TotalValue = %v, want 10000", report.TotalValue)
	}
	if len(report.Allocations) != 2 {
		t.Errorf("got %d allocations, want 2", len(report.Allocations))
	}
	// Allocations arrive sorted by asset name
	if report.Allocations[0].Asset != "Bonds" || report.Allocations[1].Asset != "Shares" {
		t.Errorf("allocations not sorted: %v, %v", report.Allocations[0].Asset, report.Allocations[1].Asset)
	}
}
