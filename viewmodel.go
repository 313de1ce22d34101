package finch

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Pure presentation mappings over fetched state. Everything here is
// recomputed on render from the current Snapshot; nothing has side effects.

// Unknown is the placeholder projection for a category reference that does
// not resolve in the session's category set. Lookups are total: an orphaned
// expense renders as Unknown instead of failing.
var Unknown = Category{Name: "Unknown", Icon: "📦"}

// CategoryIndex is a read-only lookup over the session's category set.
type CategoryIndex struct {
	all    []Category
	byID   map[string]Category
	byName map[string]Category
}

// NewCategoryIndex builds the index. The slice is kept as-is; the service
// owns ordering.
func NewCategoryIndex(cats []Category) CategoryIndex {
	ix := CategoryIndex{
		all:    cats,
		byID:   make(map[string]Category, len(cats)),
		byName: make(map[string]Category, len(cats)),
	}
	for _, c := range cats {
		ix.byID[c.ID] = c
		ix.byName[c.Name] = c
	}
	return ix
}

// All returns the categories in service order.
func (ix CategoryIndex) All() []Category { return ix.all }

// Len returns the number of categories.
func (ix CategoryIndex) Len() int { return len(ix.all) }

// ByID resolves a category id, falling back to Unknown.
func (ix CategoryIndex) ByID(id string) Category {
	if c, ok := ix.byID[id]; ok {
		return c
	}
	return Unknown
}

// ByName resolves a category display name, falling back to Unknown.
func (ix CategoryIndex) ByName(name string) Category {
	if c, ok := ix.byName[name]; ok {
		return c
	}
	return Unknown
}

// Has reports whether id resolves to a real category.
func (ix CategoryIndex) Has(id string) bool {
	_, ok := ix.byID[id]
	return ok
}

// Tone classifies the remaining budget for styling.
type Tone int

const (
	TonePositive Tone = iota
	ToneNegative
)

// BudgetTone mirrors the sign of the service-computed remaining budget:
// non-negative is positive-styled. The client never recomputes budget minus
// expenses; the analysis is the single source of truth.
func BudgetTone(a *MonthlyAnalysis) Tone {
	if a != nil && a.RemainingBudget.IsNegative() {
		return ToneNegative
	}
	return TonePositive
}

// Display caps. These are presentation-only: the full recommendation list
// stays available on the Snapshot for other consumers.
const (
	maxRecommendations = 3
	maxTipsPerCard     = 2
)

// BreakdownRow is one row of the per-category spending breakdown.
type BreakdownRow struct {
	Category Category
	Amount   decimal.Decimal
}

// Breakdown flattens the analysis's category->amount map into stable rows,
// largest amount first, resolving each name against the session's category
// set (orphans come back as Unknown).
func Breakdown(cats CategoryIndex, breakdown map[string]decimal.Decimal) []BreakdownRow {
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := breakdown[names[i]], breakdown[names[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return names[i] < names[j]
	})
	rows := make([]BreakdownRow, 0, len(names))
	for _, name := range names {
		cat := cats.ByName(name)
		if cat.Name == Unknown.Name {
			cat.Name = name
		}
		rows = append(rows, BreakdownRow{Category: cat, Amount: breakdown[name]})
	}
	return rows
}

// TopRecommendations returns at most the first 3 recommendations, each with
// at most its first 2 tips. The input is not modified.
func TopRecommendations(recs []Recommendation) []Recommendation {
	n := min(len(recs), maxRecommendations)
	top := make([]Recommendation, n)
	for i, r := range recs[:n] {
		r.Tips = r.Tips[:min(len(r.Tips), maxTipsPerCard)]
		top[i] = r
	}
	return top
}
