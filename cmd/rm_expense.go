package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finchdev/finch"
	"github.com/finchdev/finch/period"
	"github.com/finchdev/finch/renderer"
)

type rmExpenseCmd struct{}

func (*rmExpenseCmd) Name() string     { return "rm-expense" }
func (*rmExpenseCmd) Synopsis() string { return "delete an expense entry" }
func (*rmExpenseCmd) Usage() string {
	return `fin rm-expense <expense-id>

  Deletes the expense with the given id, then displays the refreshed current
  month. There is no confirmation step. Expense ids are shown in the
  'summary' expense table.
`
}

func (*rmExpenseCmd) SetFlags(_ *flag.FlagSet) {}

func (c *rmExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one expense id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	client, session, err := OpenSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := client.DeleteExpense(ctx, id); err != nil {
		// failed mutation: no refresh
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted expense %s\n", id)

	syncer := finch.NewSyncer(client, session)
	snap := syncer.Refresh(ctx, period.This(), syncer.Begin())
	printMarkdown(renderer.DashboardMarkdown(session.Categories, snap))
	return subcommands.ExitSuccess
}
