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

type budgetCmd struct {
	set string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show or set the monthly budget" }
func (*budgetCmd) Usage() string {
	return `fin budget [-set <amount>]

  Without -set, prints the user's fixed monthly budget. With -set, updates
  it on the service and displays the refreshed current month.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "New monthly budget, e.g. 2500.")
}

func (c *budgetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, session, err := OpenSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.set == "" {
		fmt.Printf("Monthly budget for %s: %s\n", session.User.Name, finch.M(session.User.MonthlyBudget))
		return subcommands.ExitSuccess
	}

	budget, err := decimal.NewFromString(c.set)
	if err != nil || budget.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: invalid budget %q\n", c.set)
		return subcommands.ExitUsageError
	}
	if err := client.UpdateBudget(ctx, session.User.ID, budget); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Monthly budget set to %s\n", finch.M(budget))

	syncer := finch.NewSyncer(client, session)
	snap := syncer.Refresh(ctx, period.This(), syncer.Begin())
	printMarkdown(renderer.DashboardMarkdown(session.Categories, snap))
	return subcommands.ExitSuccess
}
