package renderer

import (
	"github.com/etnz/expenses"
)

// Report is the data behind the expenses report.
type Report struct {
	Rows  []expenses.Expense
	Total string // sum of all amounts, two fraction digits
}

// NewReport computes the report of an expense list.
func NewReport(l expenses.Expenses) *Report {
	return &Report{
		Rows:  l,
		Total: expenses.FormatAmount(l.Total()),
	}
}

// Expenses renders the expense list as a markdown table followed by its total.
func Expenses(l expenses.Expenses) string {
	return RenderReport(NewReport(l))
}

// RenderReport renders a Report to a markdown string.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"expenses_table": "expenses_table.md",
		"expenses_total": "expenses_total.md",
	}
	return renderTemplate("expenses", "expenses.md", partials, r)
}
