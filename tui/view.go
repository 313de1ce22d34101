package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finchdev/finch"
)

func (m Model) View() string {
	switch m.mode {
	case modeIncomeEntry, modeExpenseEntry:
		return m.formView()
	default:
		return m.dashboardView()
	}
}

func (m Model) headerView() string {
	title := m.styles.Title.Render(fmt.Sprintf("%s — %s", m.session.User.Name, m.month))
	nav := m.styles.Muted.Render("←/→ month · i income · e expense · j/k select · d delete · r refresh · q quit")
	loading := ""
	if m.loading {
		loading = " " + m.spin.View() + m.styles.Muted.Render("loading")
	}
	return lipgloss.JoinVertical(lipgloss.Left, title+loading, nav)
}

func (m Model) dashboardView() string {
	sections := []string{m.headerView()}

	if m.snap == nil {
		sections = append(sections, m.styles.Muted.Render("fetching "+m.month.String()+"..."))
		return strings.Join(sections, "\n\n")
	}

	sections = append(sections, m.summaryView())
	if s := m.alertsView(); s != "" {
		sections = append(sections, s)
	}
	if s := m.breakdownView(); s != "" {
		sections = append(sections, s)
	}
	sections = append(sections, m.expensesView())
	if s := m.incomeView(); s != "" {
		sections = append(sections, s)
	}
	if s := m.recommendationsView(); s != "" {
		sections = append(sections, s)
	}
	return strings.Join(sections, "\n\n")
}

// summaryView renders the analysis totals. The remaining-budget line takes
// its tone from the analysis value itself, never from a client-side
// recomputation.
func (m Model) summaryView() string {
	a := m.snap.Analysis
	if a == nil {
		return m.styles.Summary.Render(m.styles.Muted.Render("analysis unavailable"))
	}
	tone := m.styles.Positive
	if finch.BudgetTone(a) == finch.ToneNegative {
		tone = m.styles.Negative
	}
	lines := []string{
		fmt.Sprintf("Total Income %s", m.styles.Positive.Render(finch.M(a.TotalIncome).String())),
		fmt.Sprintf("Total Expenses %s", m.styles.Negative.Render(finch.M(a.TotalExpenses).String())),
		fmt.Sprintf("Remaining Budget %s", tone.Render(finch.M(a.RemainingBudget).String())),
		fmt.Sprintf("Savings Rate %s", finch.Percent(a.SavingsRate)),
	}
	if !a.MonthComparison.PreviousMonth.IsZero() {
		lines = append(lines, fmt.Sprintf("Spending vs previous month: %s (%s)",
			finch.M(a.MonthComparison.Difference).SignedString(),
			finch.Percent(a.MonthComparison.PercentageChange).SignedString()))
	}
	return m.styles.Summary.Render(strings.Join(lines, "\n"))
}

func (m Model) alertsView() string {
	a := m.snap.Analysis
	if a == nil || len(a.OverspendingCategories) == 0 {
		return ""
	}
	lines := []string{m.styles.Section.Render("Overspending Alerts")}
	for _, o := range a.OverspendingCategories {
		cat := m.session.Categories.ByName(o.Category)
		lines = append(lines, m.styles.Negative.Render(
			fmt.Sprintf("%s %s — %s over budget", cat.Icon, o.Category, finch.M(o.Overspent))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) breakdownView() string {
	a := m.snap.Analysis
	if a == nil || len(a.CategoryBreakdown) == 0 {
		return ""
	}
	lines := []string{m.styles.Section.Render("Categories")}
	for _, row := range finch.Breakdown(m.session.Categories, a.CategoryBreakdown) {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			row.Category.Icon, row.Category.Name, finch.M(row.Amount)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) expensesView() string {
	lines := []string{m.styles.Section.Render(fmt.Sprintf("Expenses (%d)", len(m.snap.Expenses)))}
	if len(m.snap.Expenses) == 0 {
		lines = append(lines, m.styles.Muted.Render("no expenses recorded"))
	}
	for i, ex := range m.snap.Expenses {
		cat := m.session.Categories.ByID(ex.CategoryID)
		line := fmt.Sprintf("%s  %s %s  %s  %s",
			ex.Date.Format("2006-01-02"), cat.Icon, cat.Name, ex.Description,
			finch.M(ex.Amount))
		if i == m.cursor {
			line = m.styles.Selected.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) incomeView() string {
	if len(m.snap.Income) == 0 {
		return ""
	}
	lines := []string{m.styles.Section.Render(fmt.Sprintf("Income (%d)", len(m.snap.Income)))}
	for _, in := range m.snap.Income {
		lines = append(lines, fmt.Sprintf("  %s  %s  %s",
			in.Date.Format("2006-01-02"), in.Source,
			m.styles.Positive.Render(finch.M(in.Amount).String())))
	}
	return strings.Join(lines, "\n")
}

func (m Model) recommendationsView() string {
	top := finch.TopRecommendations(m.snap.Recommendations)
	if len(top) == 0 {
		return ""
	}
	lines := []string{m.styles.Section.Render("Recommendations")}
	for _, r := range top {
		cat := m.session.Categories.ByName(r.Category)
		lines = append(lines, fmt.Sprintf("%s %s: save up to %s",
			cat.Icon, r.Category, finch.M(r.PotentialSavings)))
		for _, tip := range r.Tips {
			lines = append(lines, m.styles.Muted.Render("  · "+tip))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) formView() string {
	lines := []string{
		m.headerView(),
		"",
		m.styles.Title.Render(m.form.title),
	}
	for _, in := range m.form.inputs {
		lines = append(lines, in.View())
	}
	if m.form.hint != "" {
		lines = append(lines, m.styles.Hint.Render(m.form.hint))
	}
	lines = append(lines, m.styles.Muted.Render("enter next/submit · tab cycle · esc cancel"))
	return strings.Join(lines, "\n")
}
