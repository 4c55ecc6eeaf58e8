package expenses

import "testing"

func TestEditField(t *testing.T) {
	base := Expense{Date: "1/1", Description: "coffee", Amount: "3.50"}

	testCases := []struct {
		name  string
		field Field
		input string
		want  Expense
	}{
		{
			name:  "amount is normalized",
			field: FieldAmount,
			input: "12.5",
			want:  Expense{Date: "1/1", Description: "coffee", Amount: "12.50"},
		},
		{
			name:  "non numeric amount becomes zero",
			field: FieldAmount,
			input: "abc",
			want:  Expense{Date: "1/1", Description: "coffee", Amount: "0.00"},
		},
		{
			name:  "date is trimmed",
			field: FieldDate,
			input: "  2/1 ",
			want:  Expense{Date: "2/1", Description: "coffee", Amount: "3.50"},
		},
		{
			name:  "description is kept verbatim",
			field: FieldDescription,
			input: "Tea & biscuits | x2\t",
			want:  Expense{Date: "1/1", Description: "Tea & biscuits | x2", Amount: "3.50"},
		},
		{
			name:  "unknown field is a no-op",
			field: Field(7),
			input: "ignored",
			want:  base,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EditField(base, tc.field, tc.input)
			if got != tc.want {
				t.Errorf("EditField(%v, %q) = %+v, want %+v", tc.field, tc.input, got, tc.want)
			}
		})
	}

	if base.Amount != "3.50" || base.Date != "1/1" {
		t.Errorf("EditField modified its input: %+v", base)
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(f.String())
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %v, %v; want %v", f.String(), got, err, f)
		}
	}
	if _, err := ParseField("category"); err == nil {
		t.Error("ParseField(\"category\") expected an error")
	}
}

func TestNewExpense(t *testing.T) {
	got := NewExpense(" 1/2 ", " book ", "10")
	want := Expense{Date: "1/2", Description: "book", Amount: "10.00"}
	if got != want {
		t.Errorf("NewExpense() = %+v, want %+v", got, want)
	}
}
