package expenses

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// EncodeExpenses writes l as a JSON array, one indented object per record,
// with keys in date, description, amount order.
func EncodeExpenses(w io.Writer, l Expenses) error {
	if l == nil {
		l = Expenses{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(l)
}

// DecodeExpenses reads a JSON array of expense objects from r.
//
// Every object must carry the three keys as strings. Any other content is
// reported as an error wrapping ErrParse.
func DecodeExpenses(r io.Reader) (Expenses, error) {
	// jexpense is the object read from the file, pointers tell a missing key
	// from an empty one.
	type jexpense struct {
		Date        *string `json:"date"`
		Description *string `json:"description"`
		Amount      *string `json:"amount"`
	}

	dec := json.NewDecoder(r)
	var jlist []*jexpense
	if err := dec.Decode(&jlist); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty content", ErrParse)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if jlist == nil {
		return nil, fmt.Errorf("%w: expected a list of expenses", ErrParse)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected content after the expense list", ErrParse)
	}

	l := make(Expenses, 0, len(jlist))
	for i, je := range jlist {
		if je == nil {
			return nil, fmt.Errorf("%w: expense #%d is null", ErrParse, i)
		}
		if je.Date == nil || je.Description == nil || je.Amount == nil {
			return nil, fmt.Errorf("%w: expense #%d must have date, description and amount", ErrParse, i)
		}
		l = append(l, Expense{Date: *je.Date, Description: *je.Description, Amount: *je.Amount})
	}
	return l, nil
}
