package menu

import (
	"fmt"
	"strings"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/console"
)

// addEnterDate starts, or restarts, the add flow with an empty draft.
func (s *Session) addEnterDate() (State, error) {
	s.draft = expenses.Expense{}
	s.rawAmount = ""

	s.heading()
	date, err := s.ui.Question("Date of expense: ")
	if err != nil {
		return Terminated, err
	}
	s.draft = expenses.EditField(s.draft, expenses.FieldDate, date)
	return AddConfirmDate, nil
}

func (s *Session) addConfirmDate() (State, error) {
	s.heading()
	s.ui.Println(console.Notice, "Entered date: "+s.draft.Date)
	return s.restart(AddEnterDate, AddEnterDescription)
}

func (s *Session) addEnterDescription() (State, error) {
	s.heading()
	desc, err := s.ui.Question("Description of expense: ")
	if err != nil {
		return Terminated, err
	}
	s.draft = expenses.EditField(s.draft, expenses.FieldDescription, desc)
	return AddConfirmDescription, nil
}

func (s *Session) addConfirmDescription() (State, error) {
	s.heading()
	s.ui.Println(console.Notice, "Description of expense: "+s.draft.Description)
	return s.restart(AddEnterDate, AddEnterAmount)
}

func (s *Session) addEnterAmount() (State, error) {
	s.heading()
	raw, err := s.ui.Question("Expense amount: ")
	if err != nil {
		return Terminated, err
	}
	if s.Strict {
		if _, err := expenses.ParseAmount(raw); err != nil {
			s.alert = fmt.Sprintf("Invalid amount %q, restarting", raw)
			return AddEnterDate, nil
		}
	}
	s.rawAmount = raw
	return AddConfirmAmount, nil
}

func (s *Session) addConfirmAmount() (State, error) {
	s.heading()
	s.ui.Println(console.Notice, "Expense amount inputted: "+strings.TrimSpace(s.rawAmount))
	return s.restart(AddEnterDate, AddConfirmCreate)
}

// addConfirmCreate shows the normalized record and, once confirmed, writes a
// backup of the new list and saves it.
func (s *Session) addConfirmCreate() (State, error) {
	s.draft = expenses.EditField(s.draft, expenses.FieldAmount, s.rawAmount)

	s.heading()
	s.ui.Println(console.Success, "Expense created:")
	s.ui.Println(console.Notice, describe(s.draft))
	ok, err := s.ui.Confirm("Confirm Expense: (y) for Yes (n) for No")
	if err != nil {
		return Terminated, err
	}
	if !ok {
		return AddEnterDate, nil
	}

	l := s.list.Append(s.draft)
	if _, err := s.backups.Snapshot(l); err != nil {
		return Terminated, err
	}
	if err := s.store.Save(l); err != nil {
		return Terminated, err
	}
	s.list = l
	return AddPersisted, nil
}

func (s *Session) addPersisted() (State, error) {
	choice, err := s.ui.Select([]string{"Main menu", "Add expense"}, "Data created successfully, return to main?", true)
	if err != nil {
		return Terminated, err
	}
	switch choice {
	case 0:
		return Main, nil
	case 1:
		return AddEnterDate, nil
	default:
		return Terminated, nil
	}
}

// describe returns the multi line form of an expense.
func describe(e expenses.Expense) string {
	return fmt.Sprintf("date: %s\ndescription: %s\namount: %s", e.Date, e.Description, e.Amount)
}
