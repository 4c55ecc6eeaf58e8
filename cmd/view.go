package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct {
	raw bool
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "print the expense table and total" }
func (*viewCmd) Usage() string {
	return `exps view [-raw]

  Prints all expenses and their total, without starting the menu.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it.")
}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := expenses.NewStore(StorePath()).Load()
	if err != nil {
		return reportError(err)
	}
	md := renderer.Expenses(l)
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
