package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finchdev/finch"
	"github.com/finchdev/finch/renderer"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list expense categories" }
func (*categoriesCmd) Usage() string {
	return `fin categories

  Lists the expense categories the service knows about, with their icons
  and budget allocations.
`
}

func (*categoriesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *categoriesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := NewClient()
	cats, err := client.Categories(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CategoriesMarkdown(finch.NewCategoryIndex(cats)))
	return subcommands.ExitSuccess
}
