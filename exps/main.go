package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/expenses/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers shell completion requests and exits, otherwise does nothing.
	cmd.Completion().Complete("exps")

	cmd.LoadEnv()
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogger()

	ctx := context.Background()
	if flag.NArg() == 0 {
		os.Exit(int(cmd.Interactive(ctx)))
	}
	os.Exit(int(commander.Execute(ctx)))
}
