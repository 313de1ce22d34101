// Package cmd implements the CLI application to operate the finance
// dashboard.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/finchdev/finch"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "view")
	c.Register(&summaryCmd{}, "view")
	c.Register(&categoriesCmd{}, "view")

	c.Register(&incomeCmd{}, "entries")
	c.Register(&expenseCmd{}, "entries")
	c.Register(&rmExpenseCmd{}, "entries")

	c.Register(&signupCmd{}, "account")
	c.Register(&budgetCmd{}, "account")

	c.Register(&assistCmd{}, "assist")
}

// as a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

const (
	apiURLEnv = "FIN_API_URL"
	userEnv   = "FIN_USER"
)

var apiURLFlag = flag.String("api-url", "", "Base URL of the finance service.\n If missing it reads the environment variable \""+apiURLEnv+"\" and falls back to "+finch.DefaultBaseURL+".")
var userFlag = flag.String("user", "", "User id to operate on.\n If missing it reads the environment variable \""+userEnv+"\". Create one with 'fin signup'.")

func baseURL() string {
	// If the flag is not set, try the environment variable; NewClient
	// applies the default when both are empty.
	if *apiURLFlag == "" {
		*apiURLFlag = os.Getenv(apiURLEnv)
	}
	return *apiURLFlag
}

func userID() string {
	if *userFlag == "" {
		*userFlag = os.Getenv(userEnv)
	}
	return *userFlag
}

// NewClient is the central function to reach the finance service.
func NewClient() *finch.Client { return finch.NewClient(baseURL()) }

// OpenSession establishes the immutable session context (user identity and
// the global category set) most commands need.
func OpenSession(ctx context.Context) (*finch.Client, *finch.Session, error) {
	client := NewClient()
	session, err := finch.Open(ctx, client, userID())
	if err != nil {
		return nil, nil, err
	}
	return client, session, nil
}

// printMarkdown renders markdown for the terminal. It degrades to raw
// markdown when the terminal renderer cannot be set up.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
