package finch

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The finance service exchanges amounts as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// User is the account owner. It is fetched once at startup and never changes
// during a session (the budget can only be changed through UpdateBudget,
// which is a separate, out-of-session operation).
type User struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	CreatedAt     Timestamp       `json:"created_at"`
}

// Category is read-only reference data, global to the session.
type Category struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Color            string          `json:"color"`
	Icon             string          `json:"icon"`
	BudgetPercentage decimal.Decimal `json:"budget_percentage"`
}

// IncomeEntry is a single income record. Income can be created but never
// edited or deleted.
type IncomeEntry struct {
	ID     string          `json:"id"`
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Source string          `json:"source"`
	Date   Timestamp       `json:"date"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
}

// ExpenseEntry is a single expense record, referencing a Category by id.
type ExpenseEntry struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id"`
	Date        Timestamp       `json:"date"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
}

// MonthlyAnalysis is the aggregate the service computes for one month.
// It is consumed read-only: the client never recomputes any of its figures,
// in particular RemainingBudget is the single source of truth for the
// positive/negative budget state.
type MonthlyAnalysis struct {
	TotalIncome            decimal.Decimal            `json:"total_income"`
	TotalExpenses          decimal.Decimal            `json:"total_expenses"`
	RemainingBudget        decimal.Decimal            `json:"remaining_budget"`
	CategoryBreakdown      map[string]decimal.Decimal `json:"category_breakdown"`
	OverspendingCategories []OverspendingCategory     `json:"overspending_categories"`
	SavingsRate            decimal.Decimal            `json:"savings_rate"`
	MonthComparison        MonthComparison            `json:"month_comparison"`
}

// OverspendingCategory reports a category whose spending exceeded its share
// of the monthly budget.
type OverspendingCategory struct {
	Category   string          `json:"category"`
	Spent      decimal.Decimal `json:"spent"`
	Budget     decimal.Decimal `json:"budget"`
	Overspent  decimal.Decimal `json:"overspent"`
	Percentage decimal.Decimal `json:"percentage"`
}

// MonthComparison compares total expenses with the previous month's.
type MonthComparison struct {
	CurrentMonth     decimal.Decimal `json:"current_month"`
	PreviousMonth    decimal.Decimal `json:"previous_month"`
	Difference       decimal.Decimal `json:"difference"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
}

// Recommendation is a service-computed savings suggestion for one category.
type Recommendation struct {
	Category          string          `json:"category"`
	CurrentSpending   decimal.Decimal `json:"current_spending"`
	RecommendedBudget decimal.Decimal `json:"recommended_budget"`
	PotentialSavings  decimal.Decimal `json:"potential_savings"`
	Tips              []string        `json:"tips"`
}

// Timestamp is a time.Time that tolerates the service's timestamp format.
// The service emits naive ISO-8601 timestamps (no zone offset), which the
// stock time.Time unmarshaller rejects; reads are therefore permissive and
// naive timestamps are taken as UTC. Writes always use RFC 3339 in UTC.
type Timestamp struct{ time.Time }

// Now returns the current wall-clock time as a Timestamp, in UTC.
func Now() Timestamp { return Timestamp{time.Now().UTC()} }

// read layouts, from strictest to most permissive.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, str); err == nil {
			t.Time = v.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", str)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

var _ json.Marshaler = (*Timestamp)(nil)
var _ json.Unmarshaler = (*Timestamp)(nil)
