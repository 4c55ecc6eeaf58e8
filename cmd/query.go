package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the expenses" }
func (*queryCmd) Usage() string {
	return `exps query <jsonpath>

  Prints, as JSON, the result of a JSONPath expression evaluated against
  the expense store.

Usage Examples:
# The amount of the first expense.
$ exps query '$[0].amount'

# All expenses described as "coffee".
$ exps query '$[?(@.description == "coffee")]'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: query expects exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	l, err := expenses.NewStore(StorePath()).Load()
	if err != nil {
		return reportError(err)
	}
	v, err := expenses.Query(l, f.Arg(0))
	if err != nil {
		return reportError(err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return reportError(err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
