package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/expenses"
	"github.com/etnz/expenses/renderer"
)

// renderMarkdown renders md for the terminal.
func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("could not create markdown renderer: %w", err)
	}
	return r.Render(md)
}

// printMarkdown prints md to stdout, falling back to the raw markdown.
func printMarkdown(md string) {
	out, err := renderMarkdown(md)
	if err != nil {
		fmt.Fprintln(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// renderExpenses is the report shown by the interactive menu.
func renderExpenses(l expenses.Expenses) (string, error) {
	return renderMarkdown(renderer.Expenses(l))
}
