package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finchdev/finch"
)

type signupCmd struct {
	name   string
	email  string
	budget string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a user on the finance service" }
func (*signupCmd) Usage() string {
	return `fin signup -name <name> -email <email> [-budget <amount>]

  Registers a user and prints its id. Export it as ` + userEnv + ` so the
  other commands can find it.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the user.")
	f.StringVar(&c.email, "email", "", "Email address of the user.")
	f.StringVar(&c.budget, "budget", "0", "Fixed monthly budget, e.g. 2500.")
}

func (c *signupCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.email == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -email are required")
		return subcommands.ExitUsageError
	}
	budget, err := decimal.NewFromString(c.budget)
	if err != nil || budget.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: invalid budget %q\n", c.budget)
		return subcommands.ExitUsageError
	}

	// Generate the id locally so the command can print it even if the
	// service's create response ever changes shape.
	id, err := NewClient().CreateUser(ctx, finch.NewUser{
		ID:            uuid.NewString(),
		Name:          c.name,
		Email:         c.email,
		MonthlyBudget: budget,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created user %s\n", id)
	fmt.Printf("\n  export %s=%s\n\n", userEnv, id)
	return subcommands.ExitSuccess
}
