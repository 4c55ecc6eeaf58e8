package expenses

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Expense is a single expense record.
//
// All fields are text. Date is free-form, it is never parsed as a calendar
// date. Amount is normalized to exactly two fraction digits when it is
// entered through EditField or NewExpense.
type Expense struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// NewExpense returns an expense with trimmed text fields and a normalized amount.
func NewExpense(date, description, amount string) Expense {
	var e Expense
	e = EditField(e, FieldDate, date)
	e = EditField(e, FieldDescription, description)
	e = EditField(e, FieldAmount, amount)
	return e
}

// Get returns the value of the field f, or "" for an unknown field.
func (e Expense) Get(f Field) string {
	switch f {
	case FieldDate:
		return e.Date
	case FieldDescription:
		return e.Description
	case FieldAmount:
		return e.Amount
	default:
		return ""
	}
}

// Values returns the field values in positional order.
func (e Expense) Values() []string {
	return []string{e.Date, e.Description, e.Amount}
}

// String returns the one line form used in selection lists.
func (e Expense) String() string {
	return fmt.Sprintf("%s %s %s", e.Date, e.Description, e.Amount)
}

// Value returns the numeric amount. A non-numeric amount counts as zero.
func (e Expense) Value() decimal.Decimal {
	d, err := ParseAmount(e.Amount)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Expenses is the ordered expense list. The index of a record is its only
// identity.
type Expenses []Expense

// Clone returns a copy of the list that does not share the backing array.
func (l Expenses) Clone() Expenses {
	if l == nil {
		return Expenses{}
	}
	return append(make(Expenses, 0, len(l)), l...)
}

// Append returns a new list with e added at the end. l is left untouched.
func (l Expenses) Append(e Expense) Expenses {
	return append(l.Clone(), e)
}

// Replace returns a new list where the record at index i is e.
// It fails if i is out of range.
func (l Expenses) Replace(i int, e Expense) (Expenses, error) {
	if i < 0 || i >= len(l) {
		return nil, fmt.Errorf("expense index %d out of range [0, %d)", i, len(l))
	}
	n := l.Clone()
	n[i] = e
	return n, nil
}

// Total returns the sum of all amounts. Non-numeric amounts count as zero.
func (l Expenses) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l {
		total = total.Add(e.Value())
	}
	return total
}
