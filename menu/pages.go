package menu

import (
	"github.com/etnz/expenses/console"
)

func (s *Session) viewExpenses() (State, error) {
	s.heading()
	out, err := s.report.Render(s.list)
	if err != nil {
		return Terminated, err
	}
	s.ui.Println(console.Plain, out)
	return s.returnToMain("Return to main (Y) or exit program (N)?")
}

func (s *Session) changeIncome() (State, error) {
	s.heading()
	s.ui.Println(console.Plain, "This page has not been implemented yet")
	return s.returnToMain("Return to main?")
}

func (s *Session) backup() (State, error) {
	s.heading()
	path, err := s.backups.Snapshot(s.list)
	if err != nil {
		return Terminated, err
	}
	s.ui.Println(console.Success, "Backup written to "+path)
	return s.returnToMain("Data backed up successfully, return to main?")
}
