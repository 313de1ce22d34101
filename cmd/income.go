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

type incomeCmd struct {
	amount string
	source string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income entry" }
func (*incomeCmd) Usage() string {
	return `fin income -amount <amount> -source <source>

  Records an income entry dated now, then displays the refreshed current
  month.

Usage Examples:
$ fin income -amount 4500 -source "Salary"
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount received (must be positive)")
	f.StringVar(&c.source, "source", "", "Where the income came from")
}

func (c *incomeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil || !amount.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: -amount must be a positive number, got %q\n", c.amount)
		return subcommands.ExitUsageError
	}
	if c.source == "" {
		fmt.Fprintln(os.Stderr, "Error: -source must not be empty")
		return subcommands.ExitUsageError
	}

	client, session, err := OpenSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	id, err := client.AddIncome(ctx, finch.NewIncome{
		UserID: session.User.ID,
		Amount: amount,
		Source: c.source,
		Date:   finch.Now(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded income %s\n", id)

	// second phase of the mutation protocol: refresh the displayed month
	syncer := finch.NewSyncer(client, session)
	snap := syncer.Refresh(ctx, period.This(), syncer.Begin())
	printMarkdown(renderer.DashboardMarkdown(session.Categories, snap))
	return subcommands.ExitSuccess
}
