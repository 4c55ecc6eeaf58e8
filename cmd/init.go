package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create an empty expense store" }
func (*initCmd) Usage() string {
	return `exps init

  Creates an empty expense store, and its directory, unless it already exists.
`
}

func (*initCmd) SetFlags(f *flag.FlagSet) {}

func (*initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := expenses.NewStore(StorePath())
	if err := s.Init(); err != nil {
		return reportError(err)
	}
	fmt.Fprintf(stdout, "Expense store ready at %s\n", s.Path())
	return subcommands.ExitSuccess
}
