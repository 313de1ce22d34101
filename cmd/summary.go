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

type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a one-shot dashboard for a month" }
func (*summaryCmd) Usage() string {
	return `fin summary [-m <YYYY-MM>]

  Displays the dashboard of the given month (defaults to the current month):
  totals, category breakdown, overspending alerts, entries and savings
  recommendations.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to display (defaults to the current month)")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month := period.This()
	if c.month != "" {
		var err error
		month, err = period.Parse(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	client, session, err := OpenSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	syncer := finch.NewSyncer(client, session)
	snap := syncer.Refresh(ctx, month, syncer.Begin())
	printMarkdown(renderer.DashboardMarkdown(session.Categories, snap))
	return subcommands.ExitSuccess
}
