// Package renderer renders fetched finance state to markdown, ready to be
// printed through a terminal markdown renderer.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/finchdev/finch"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders one month's Snapshot to a markdown document:
// totals, category breakdown, overspending alerts, income and expense
// tables, and the capped recommendation cards.
func DashboardMarkdown(cats finch.CategoryIndex, snap *finch.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Dashboard", snap.Month))

	if a := snap.Analysis; a == nil {
		doc.PlainText("Analysis unavailable.")
	} else {
		income := fmt.Sprintf("Total Income %s", finch.M(a.TotalIncome))
		expenses := fmt.Sprintf("Total Expenses %s", finch.M(a.TotalExpenses))
		remaining := fmt.Sprintf("Remaining Budget %s", finch.M(a.RemainingBudget))
		if finch.BudgetTone(a) == finch.ToneNegative {
			remaining = "**" + remaining + "**"
		}
		doc.PlainText(income)
		doc.PlainText(expenses)
		doc.PlainText(remaining)
		doc.PlainText(fmt.Sprintf("Savings Rate %s", finch.Percent(a.SavingsRate)))
		if !a.MonthComparison.PreviousMonth.IsZero() {
			doc.PlainText(fmt.Sprintf("Spending vs previous month: %s (%s)",
				finch.M(a.MonthComparison.Difference).SignedString(),
				finch.Percent(a.MonthComparison.PercentageChange).SignedString()))
		}

		if len(a.CategoryBreakdown) > 0 {
			doc.H2("Categories")
			lines := make([]string, 0, len(a.CategoryBreakdown))
			for _, row := range finch.Breakdown(cats, a.CategoryBreakdown) {
				lines = append(lines, fmt.Sprintf("%s %s %s",
					row.Category.Icon, row.Category.Name, finch.M(row.Amount)))
			}
			doc.BulletList(lines...)
		}

		if len(a.OverspendingCategories) > 0 {
			doc.H2("Overspending Alerts")
			lines := make([]string, 0, len(a.OverspendingCategories))
			for _, o := range a.OverspendingCategories {
				lines = append(lines, fmt.Sprintf("%s %s — %s over budget",
					cats.ByName(o.Category).Icon, o.Category, finch.M(o.Overspent)))
			}
			doc.BulletList(lines...)
		}
	}

	if len(snap.Income) > 0 {
		doc.H2("Income")
		rows := make([][]string, 0, len(snap.Income))
		for _, in := range snap.Income {
			rows = append(rows, []string{
				in.Date.Format("2006-01-02"),
				in.Source,
				finch.M(in.Amount).String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Source", "Amount"},
			Rows:   rows,
		})
	}

	if len(snap.Expenses) > 0 {
		doc.H2("Expenses")
		rows := make([][]string, 0, len(snap.Expenses))
		for _, ex := range snap.Expenses {
			cat := cats.ByID(ex.CategoryID)
			rows = append(rows, []string{
				ex.Date.Format("2006-01-02"),
				ex.Description,
				fmt.Sprintf("%s %s", cat.Icon, cat.Name),
				finch.M(ex.Amount).String(),
				ex.ID,
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Description", "Category", "Amount", "ID"},
			Rows:   rows,
		})
	}

	if top := finch.TopRecommendations(snap.Recommendations); len(top) > 0 {
		doc.H2("Recommendations")
		for _, r := range top {
			doc.H3(fmt.Sprintf("%s %s: save up to %s",
				cats.ByName(r.Category).Icon, r.Category, finch.M(r.PotentialSavings)))
			doc.PlainText(fmt.Sprintf("Spending %s, recommended %s",
				finch.M(r.CurrentSpending), finch.M(r.RecommendedBudget)))
			doc.BulletList(r.Tips...)
		}
	}

	return doc.String()
}

// CategoriesMarkdown renders the global category set as a table.
func CategoriesMarkdown(cats finch.CategoryIndex) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Categories")
	rows := make([][]string, 0, cats.Len())
	for _, c := range cats.All() {
		rows = append(rows, []string{
			c.Icon,
			c.Name,
			finch.Percent(c.BudgetPercentage).String(),
			c.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Icon", "Name", "Budget Share", "ID"},
		Rows:   rows,
	})
	return doc.String()
}
