package tui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/finchdev/finch"
	"github.com/finchdev/finch/period"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/income/"):
			w.Write([]byte(`{"income": []}`))
		case strings.HasPrefix(r.URL.Path, "/api/expenses/"):
			w.Write([]byte(`{"expenses": []}`))
		case strings.HasPrefix(r.URL.Path, "/api/analysis/"):
			w.Write([]byte(`{"total_income": 0, "total_expenses": 0, "remaining_budget": 0, "category_breakdown": {}, "overspending_categories": [], "savings_rate": 0, "month_comparison": {}}`))
		case strings.HasPrefix(r.URL.Path, "/api/recommendations/"):
			w.Write([]byte(`{"recommendations": []}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	client := finch.NewClient(srv.URL)
	session := &finch.Session{
		User: finch.User{ID: "u1", Name: "Sam"},
		Categories: finch.NewCategoryIndex([]finch.Category{
			{ID: "c1", Name: "Groceries", Icon: "🛒"},
		}),
	}
	return New(client, session)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned a %T, want Model", updated)
	}
	return next, cmd
}

func TestMonthNavigation(t *testing.T) {
	m := newTestModel(t)
	start := m.month

	m, cmd := update(t, m, key("left"))
	if m.month != start.Prev() {
		t.Errorf("month = %v, want %v", m.month, start.Prev())
	}
	if !m.loading || cmd == nil {
		t.Errorf("navigating must start a refresh")
	}

	m, _ = update(t, m, key("right"))
	if m.month != start {
		t.Errorf("month = %v, want %v", m.month, start)
	}
}

// TestStaleSnapshotDropped delivers the snapshot of a superseded refresh and
// checks that it never reaches the screen.
func TestStaleSnapshotDropped(t *testing.T) {
	m := newTestModel(t)
	month := period.New(2024, time.March)

	stale := m.syncer.Refresh(context.Background(), month, m.syncer.Begin())
	fresh := m.syncer.Refresh(context.Background(), month.Next(), m.syncer.Begin())
	fresh.Income = []finch.IncomeEntry{{ID: "i1", Source: "Salary"}}

	m, _ = update(t, m, snapshotMsg{snap: stale})
	if m.snap != nil {
		t.Fatalf("a superseded snapshot must not be committed")
	}
	if !m.loading {
		t.Errorf("dropping a stale snapshot must keep waiting for the fresh one")
	}

	m, _ = update(t, m, snapshotMsg{snap: fresh})
	if m.snap == nil || len(m.snap.Income) != 1 {
		t.Fatalf("the latest snapshot must be committed, got %+v", m.snap)
	}
	if m.loading {
		t.Errorf("committing must end the loading state")
	}
}

// snapshotFrom executes a command, unwrapping a batch, and returns the
// snapshot message it produced.
func snapshotFrom(t *testing.T, cmd tea.Cmd) snapshotMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("no command to execute")
	}
	switch msg := cmd().(type) {
	case snapshotMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if snap, ok := c().(snapshotMsg); ok {
				return snap
			}
		}
	}
	t.Fatal("the command produced no snapshot message")
	return snapshotMsg{}
}

// TestInvertedRefreshCompletion navigates twice and runs the two refresh
// commands in the opposite order of issue, as the runtime's goroutine
// scheduling is free to do. The superseded refresh finishes last but its
// snapshot must not displace the displayed month's.
func TestInvertedRefreshCompletion(t *testing.T) {
	m := newTestModel(t)

	m, first := update(t, m, key("left"))
	m, second := update(t, m, key("left"))
	displayed := m.month

	fresh := snapshotFrom(t, second)
	stale := snapshotFrom(t, first)

	m, _ = update(t, m, fresh)
	if m.snap == nil || m.snap.Month != displayed {
		t.Fatalf("committed snapshot is not the displayed month: got %+v, want %v", m.snap, displayed)
	}
	if m.loading {
		t.Errorf("committing the latest snapshot must end the loading state")
	}

	m, _ = update(t, m, stale)
	if m.snap.Month != displayed {
		t.Errorf("a superseded refresh that finished last displaced the snapshot: month = %v, want %v", m.snap.Month, displayed)
	}
}

func TestNilSnapshotIgnored(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, snapshotMsg{snap: nil})
	if m.snap != nil {
		t.Errorf("a nil snapshot must be ignored")
	}
}

func TestCursorClampOnCommit(t *testing.T) {
	m := newTestModel(t)
	m.cursor = 5

	snap := m.syncer.Refresh(context.Background(), period.This(), m.syncer.Begin())
	snap.Expenses = []finch.ExpenseEntry{{ID: "e1"}, {ID: "e2"}}
	m, _ = update(t, m, snapshotMsg{snap: snap})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after shrinking below it", m.cursor)
	}
}

func TestFailedMutationLeavesStateUntouched(t *testing.T) {
	m := newTestModel(t)
	m.mode = modeExpenseEntry
	m.form = newExpenseForm(m.session.Categories)

	m, cmd := update(t, m, mutatedMsg{kind: "add expense", err: errors.New("boom")})
	if cmd != nil {
		t.Errorf("a failed mutation must not trigger a refresh")
	}
	if m.mode != modeExpenseEntry {
		t.Errorf("a failed mutation must stay on the form")
	}
	if m.loading {
		t.Errorf("a failed mutation must not enter the loading state")
	}
}

func TestSuccessfulMutationRefreshes(t *testing.T) {
	m := newTestModel(t)
	m.mode = modeIncomeEntry
	m.form = newIncomeForm()

	m, cmd := update(t, m, mutatedMsg{kind: "add income"})
	if m.mode != modeDashboard {
		t.Errorf("a successful mutation must return to the dashboard")
	}
	if !m.loading || cmd == nil {
		t.Errorf("a successful mutation must start a refresh")
	}
}

func TestFormModes(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, key("i"))
	if m.mode != modeIncomeEntry {
		t.Fatalf("mode = %v, want income entry", m.mode)
	}
	m, _ = update(t, m, key("esc"))
	if m.mode != modeDashboard {
		t.Fatalf("esc must return to the dashboard")
	}

	m, _ = update(t, m, key("e"))
	if m.mode != modeExpenseEntry {
		t.Fatalf("mode = %v, want expense entry", m.mode)
	}
	// month navigation keys are form input while a form is open
	before := m.month
	m, _ = update(t, m, key("left"))
	if m.month != before {
		t.Errorf("month must not change while a form is open")
	}
}

func TestSubmitInvalidStaysOnForm(t *testing.T) {
	m := newTestModel(t)
	m.mode = modeIncomeEntry
	m.form = newIncomeForm()
	m.form.inputs[0].SetValue("-5")
	m.form.focus = len(m.form.inputs) - 1

	m, cmd := update(t, m, key("enter"))
	if cmd != nil {
		t.Errorf("an invalid form must not reach the wire")
	}
	if m.mode != modeIncomeEntry {
		t.Errorf("an invalid form must stay open")
	}
	if m.form.hint == "" {
		t.Errorf("an invalid form must explain itself")
	}
}

func TestDeleteWithoutSelection(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := update(t, m, key("d")); cmd != nil {
		t.Errorf("delete with no snapshot must be a no-op")
	}
}

func TestViewSmoke(t *testing.T) {
	m := newTestModel(t)
	m.width, m.height = 100, 40

	snap := m.syncer.Refresh(context.Background(), period.New(2024, time.March), m.syncer.Begin())
	snap.Analysis = &finch.MonthlyAnalysis{
		TotalIncome:     decimal.NewFromInt(5000),
		TotalExpenses:   decimal.NewFromInt(200),
		RemainingBudget: decimal.NewFromInt(2300),
	}
	m, _ = update(t, m, snapshotMsg{snap: snap})

	view := m.View()
	for _, want := range []string{"Sam", "March 2024", "$5,000.00", "$2,300.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("missing %q in view:\n%s", want, view)
		}
	}

	m.mode = modeIncomeEntry
	m.form = newIncomeForm()
	if view := m.View(); !strings.Contains(view, "Add Income") {
		t.Errorf("form view missing its title:\n%s", view)
	}
}
