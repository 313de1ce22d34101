package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/subcommands"

	"github.com/finchdev/finch/tui"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "open the interactive monthly dashboard" }
func (*dashboardCmd) Usage() string {
	return `fin dashboard

  Opens the interactive dashboard for the configured user, starting on the
  current month. Navigate months with the arrow keys, add entries with 'i'
  and 'e', delete the selected expense with 'd'.
`
}

func (*dashboardCmd) SetFlags(_ *flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Diagnostics would corrupt the alternate screen; send them to a file.
	logfile := os.Getenv("FIN_LOG")
	if logfile == "" {
		logfile = os.DevNull
	}
	f, err := tea.LogToFile(logfile, "fin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	client, session, err := OpenSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := tui.Run(client, session); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
