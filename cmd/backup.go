package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type backupCmd struct{}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "write a timestamped copy of the expense store" }
func (*backupCmd) Usage() string {
	return `exps backup

  Writes a snapshot of all expenses into the backup directory.
`
}

func (*backupCmd) SetFlags(f *flag.FlagSet) {}

func (*backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := expenses.NewStore(StorePath()).Load()
	if err != nil {
		return reportError(err)
	}
	path, err := expenses.NewBackupWriter(BackupDir()).Snapshot(l)
	if err != nil {
		return reportError(err)
	}
	fmt.Fprintf(stdout, "Backed up %d expenses to %s\n", len(l), path)
	return subcommands.ExitSuccess
}
