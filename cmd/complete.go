package cmd

import (
	"github.com/etnz/expenses/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(Commands))
	for _, c := range Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["help"] = &complete.Command{Args: predict.Set(commandNames())}
	sub["view"].Flags = map[string]complete.Predictor{"raw": nil}
	if topics, err := docs.All(); err == nil {
		sub["topic"].Args = predict.Set(topics)
	}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"store-file":     predict.Files("*.json"),
			"backup-dir":     predict.Dirs("*"),
			"strict-amounts": nil,
			"v":              nil,
		},
	}
}

func commandNames() []string {
	names := make([]string, 0, len(Commands))
	for _, c := range Commands {
		names = append(names, c.Name())
	}
	return names
}
