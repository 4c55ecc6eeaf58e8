package cmd

import (
	"context"
	"flag"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/console"
	"github.com/etnz/expenses/menu"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "browse, add, edit and back up expenses interactively" }
func (*menuCmd) Usage() string {
	return `exps [menu]

  Starts the interactive menu. This is also what exps does without arguments.
  Every change is saved to the expense store as soon as it is confirmed.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := menu.New(
		expenses.NewStore(StorePath()),
		expenses.NewBackupWriter(BackupDir()),
		console.New(stdin, stdout),
		menu.RenderFunc(renderExpenses),
	)
	s.Strict = StrictAmounts()
	if err := s.Run(); err != nil {
		return reportError(err)
	}
	return subcommands.ExitSuccess
}

// Interactive runs the menu, for invocations without a subcommand.
func Interactive(ctx context.Context) subcommands.ExitStatus {
	return (&menuCmd{}).Execute(ctx, flag.NewFlagSet("menu", flag.ContinueOnError))
}
