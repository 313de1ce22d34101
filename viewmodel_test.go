package finch

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testCategories() CategoryIndex {
	return NewCategoryIndex([]Category{
		{ID: "c1", Name: "Groceries", Icon: "🛒", BudgetPercentage: decimal.NewFromInt(15)},
		{ID: "c2", Name: "Transport", Icon: "🚗", BudgetPercentage: decimal.NewFromInt(10)},
	})
}

func TestCategoryIndexLookups(t *testing.T) {
	ix := testCategories()

	if got := ix.ByID("c1").Name; got != "Groceries" {
		t.Errorf("ByID(c1).Name = %q, want Groceries", got)
	}
	if got := ix.ByName("Transport").ID; got != "c2" {
		t.Errorf("ByName(Transport).ID = %q, want c2", got)
	}
	if !ix.Has("c1") || ix.Has("nope") {
		t.Errorf("Has should report only real ids")
	}
}

// TestCategoryFallback checks that unresolved references come back as the
// Unknown placeholder rather than failing.
func TestCategoryFallback(t *testing.T) {
	ix := testCategories()

	for _, got := range []Category{ix.ByID("deleted"), ix.ByName("Misc")} {
		if got.Name != "Unknown" || got.Icon != "📦" {
			t.Errorf("fallback = %+v, want the Unknown placeholder", got)
		}
	}
}

func TestBudgetTone(t *testing.T) {
	testCases := []struct {
		name string
		in   *MonthlyAnalysis
		want Tone
	}{
		{name: "no analysis", in: nil, want: TonePositive},
		{name: "zero is positive", in: &MonthlyAnalysis{RemainingBudget: decimal.Zero}, want: TonePositive},
		{name: "positive", in: &MonthlyAnalysis{RemainingBudget: decimal.NewFromInt(1000000)}, want: TonePositive},
		{name: "one cent over", in: &MonthlyAnalysis{RemainingBudget: decimal.NewFromFloat(-0.01)}, want: ToneNegative},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BudgetTone(tc.in); got != tc.want {
				t.Errorf("BudgetTone() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTopRecommendations(t *testing.T) {
	recs := []Recommendation{
		{Category: "Groceries", Tips: []string{"a", "b", "c"}},
		{Category: "Transport", Tips: []string{"d"}},
		{Category: "Entertainment"},
		{Category: "Utilities", Tips: []string{"e", "f"}},
	}

	top := TopRecommendations(recs)
	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	if len(top[0].Tips) != 2 || top[0].Tips[1] != "b" {
		t.Errorf("tips should be capped at the first two: %v", top[0].Tips)
	}
	if top[2].Category != "Entertainment" {
		t.Errorf("order must be preserved, got %q third", top[2].Category)
	}
	// the input keeps its full tip list
	if len(recs[0].Tips) != 3 {
		t.Errorf("input was modified: %v", recs[0].Tips)
	}
}

func TestTopRecommendationsShort(t *testing.T) {
	if got := TopRecommendations(nil); len(got) != 0 {
		t.Errorf("no recommendations should stay empty, got %v", got)
	}
	if got := TopRecommendations([]Recommendation{{Category: "Groceries"}}); len(got) != 1 {
		t.Errorf("fewer than three should pass through, got %v", got)
	}
}

func TestBreakdown(t *testing.T) {
	rows := Breakdown(testCategories(), map[string]decimal.Decimal{
		"Transport": decimal.NewFromInt(120),
		"Groceries": decimal.NewFromInt(300),
		"Misc":      decimal.NewFromInt(40),
	})

	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3", len(rows))
	}
	if rows[0].Category.Name != "Groceries" || rows[1].Category.Name != "Transport" {
		t.Errorf("rows must be sorted largest first: %+v", rows)
	}
	// the orphan keeps its server name but gets the placeholder icon
	if rows[2].Category.Name != "Misc" || rows[2].Category.Icon != "📦" {
		t.Errorf("orphan row = %+v, want server name with placeholder icon", rows[2].Category)
	}
}

func TestBreakdownTies(t *testing.T) {
	rows := Breakdown(testCategories(), map[string]decimal.Decimal{
		"Transport": decimal.NewFromInt(100),
		"Groceries": decimal.NewFromInt(100),
	})
	if rows[0].Category.Name != "Groceries" {
		t.Errorf("equal amounts must order by name: %+v", rows)
	}
}
