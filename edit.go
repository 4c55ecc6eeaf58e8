package expenses

import (
	"fmt"
	"strings"
)

// Field selects one field of an Expense, in positional order.
type Field int

const (
	// FieldDate is the free-form date of the expense.
	FieldDate Field = iota
	// FieldDescription is the free-form description.
	FieldDescription
	// FieldAmount is the normalized amount.
	FieldAmount
)

// Fields lists all fields in positional order.
var Fields = []Field{FieldDate, FieldDescription, FieldAmount}

func (f Field) String() string {
	switch f {
	case FieldDate:
		return "date"
	case FieldDescription:
		return "description"
	case FieldAmount:
		return "amount"
	default:
		return "unknown"
	}
}

// ParseField parses a field name into a Field.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return FieldDate, nil
	case "description":
		return FieldDescription, nil
	case "amount":
		return FieldAmount, nil
	default:
		return 0, fmt.Errorf("unknown expense field: %q", s)
	}
}

// EditField returns a copy of e with the field f replaced by raw.
//
// The amount field goes through NormalizeAmount, so non-numeric input
// silently becomes "0.00". Other fields take the trimmed input verbatim.
// An unknown field returns e unchanged.
func EditField(e Expense, f Field, raw string) Expense {
	switch f {
	case FieldDate:
		e.Date = strings.TrimSpace(raw)
	case FieldDescription:
		e.Description = strings.TrimSpace(raw)
	case FieldAmount:
		e.Amount = NormalizeAmount(raw)
	}
	return e
}
