package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/finchdev/finch"
	"github.com/finchdev/finch/period"
	"github.com/finchdev/finch/renderer"
)

type expenseCmd struct {
	amount      string
	description string
	category    string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense entry" }
func (*expenseCmd) Usage() string {
	return `fin expense -amount <amount> -desc <description> -category <name|id>

  Records an expense entry dated now, then displays the refreshed current
  month. The category may be given by display name or by id and must exist;
  'fin categories' lists the known ones.

Usage Examples:
$ fin expense -amount 85 -desc "Gas station fill-up" -category Transportation
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount spent (must be positive)")
	f.StringVar(&c.description, "desc", "", "What the expense was for")
	f.StringVar(&c.category, "category", "", "Category name or id")
}

func (c *expenseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil || !amount.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: -amount must be a positive number, got %q\n", c.amount)
		return subcommands.ExitUsageError
	}
	if c.description == "" {
		fmt.Fprintln(os.Stderr, "Error: -desc must not be empty")
		return subcommands.ExitUsageError
	}

	client, session, err := OpenSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// resolve the category by id first, then by display name
	categoryID := c.category
	if !session.Categories.Has(categoryID) {
		cat := session.Categories.ByName(c.category)
		if cat.ID == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q, see 'fin categories'\n", c.category)
			return subcommands.ExitUsageError
		}
		categoryID = cat.ID
	}

	id, err := client.AddExpense(ctx, finch.NewExpense{
		UserID:      session.User.ID,
		Amount:      amount,
		Description: c.description,
		CategoryID:  categoryID,
		Date:        finch.Now(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded expense %s\n", id)

	syncer := finch.NewSyncer(client, session)
	snap := syncer.Refresh(ctx, period.This(), syncer.Begin())
	printMarkdown(renderer.DashboardMarkdown(session.Categories, snap))
	return subcommands.ExitSuccess
}
