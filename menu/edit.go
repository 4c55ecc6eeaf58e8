package menu

import (
	"fmt"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/console"
)

// editSelectRecord starts, or restarts, the edit flow.
func (s *Session) editSelectRecord() (State, error) {
	s.index, s.selected, s.field, s.edited = -1, expenses.Expense{}, 0, expenses.Expense{}

	s.heading()
	if len(s.list) == 0 {
		s.ui.Println(console.Notice, "There are no expenses to edit yet.")
		return s.returnToMain("Return to main?")
	}
	items := make([]string, len(s.list))
	for i, e := range s.list {
		items[i] = e.String()
	}
	i, err := s.ui.Select(items, "Choose expense to edit:", true)
	if err != nil {
		return Terminated, err
	}
	if i < 0 || i >= len(s.list) {
		return Terminated, nil
	}
	s.index, s.selected = i, s.list[i]
	return EditSelectField, nil
}

func (s *Session) editSelectField() (State, error) {
	s.heading()
	s.ui.Println(console.Notice, "Expense to edit:")
	s.ui.Println(console.Plain, describe(s.selected))
	items := make([]string, len(expenses.Fields))
	for i, f := range expenses.Fields {
		items[i] = fmt.Sprintf("%s: %s", f, s.selected.Get(f))
	}
	i, err := s.ui.Select(items, "Which field do you want to edit?", true)
	if err != nil {
		return Terminated, err
	}
	if i < 0 || i >= len(expenses.Fields) {
		return Terminated, nil
	}
	s.field = expenses.Fields[i]
	return EditConfirmSelection, nil
}

func (s *Session) editConfirmSelection() (State, error) {
	s.heading()
	s.ui.Println(console.Notice, "Field to edit:")
	s.ui.Println(console.Plain, s.selected.Get(s.field))
	return s.restart(EditSelectRecord, EditEnterReplacement)
}

func (s *Session) editEnterReplacement() (State, error) {
	s.heading()
	s.ui.Println(console.Notice, "Replace field "+s.selected.Get(s.field)+" with:")
	raw, err := s.ui.Question("What do you want to replace this field with? ")
	if err != nil {
		return Terminated, err
	}
	if s.Strict && s.field == expenses.FieldAmount {
		if _, err := expenses.ParseAmount(raw); err != nil {
			s.alert = fmt.Sprintf("Invalid amount %q, restarting", raw)
			return EditSelectRecord, nil
		}
	}
	s.edited = expenses.EditField(s.selected, s.field, raw)
	return EditConfirmReplacement, nil
}

// editConfirmReplacement writes the edited record back at the index chosen
// in editSelectRecord, provided that record is still the one selected.
func (s *Session) editConfirmReplacement() (State, error) {
	s.ui.Println(console.Notice, s.edited.Get(s.field))
	ok, err := s.ui.Confirm("Validate edited field: proceed (y) or restart process (n)?")
	if err != nil {
		return Terminated, err
	}
	if !ok {
		return EditSelectRecord, nil
	}

	if s.index < 0 || s.index >= len(s.list) || s.list[s.index] != s.selected {
		return Terminated, fmt.Errorf("expense #%d changed since it was selected", s.index)
	}
	l, err := s.list.Replace(s.index, s.edited)
	if err != nil {
		return Terminated, err
	}
	if err := s.store.Save(l); err != nil {
		return Terminated, err
	}
	s.list = l
	return EditPersisted, nil
}

func (s *Session) editPersisted() (State, error) {
	return s.returnToMain("Data updated successfully, return to main?")
}
