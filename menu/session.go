// Package menu implements the interactive expense menu as an explicit state
// machine: each step handles one State and returns the next one, and Run
// drives the steps until the session is Terminated.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/console"
)

// UI is the terminal interface used by the menu.
type UI interface {
	// Heading starts a new screen.
	Heading()
	Println(style console.Style, a ...any)
	// Question returns a free text answer.
	Question(query string) (string, error)
	// Select returns the index of the chosen item, or -1 when cancel is
	// allowed and chosen.
	Select(items []string, query string, cancel bool) (int, error)
	// Confirm returns the answer to a yes/no question.
	Confirm(query string) (bool, error)
}

// Store loads and replaces the whole expense list.
type Store interface {
	Load() (expenses.Expenses, error)
	Save(expenses.Expenses) error
}

// Snapshotter writes backups of the expense list.
type Snapshotter interface {
	Snapshot(expenses.Expenses) (string, error)
}

// Renderer formats the expense report for the terminal.
type Renderer interface {
	Render(expenses.Expenses) (string, error)
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(expenses.Expenses) (string, error)

func (f RenderFunc) Render(l expenses.Expenses) (string, error) { return f(l) }

// Error is a failure that ended a session, with the state it happened in.
type Error struct {
	State State
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.State, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Session holds everything a menu flow needs. It is built once and passed
// to every step; there is no other shared state.
type Session struct {
	store   Store
	backups Snapshotter
	ui      UI
	report  Renderer

	// Strict rejects non-numeric amounts instead of recording them as 0.00.
	Strict bool
	// Log receives state transitions. Defaults to slog.Default().
	Log *slog.Logger

	list  expenses.Expenses // as last loaded or persisted
	alert string            // shown after the next heading

	// add flow
	draft     expenses.Expense
	rawAmount string

	// edit flow
	index    int
	selected expenses.Expense // the record at index when it was selected
	field    expenses.Field
	edited   expenses.Expense
}

// New returns a session over the given store, backup writer, terminal and report renderer.
func New(store Store, backups Snapshotter, ui UI, report Renderer) *Session {
	return &Session{
		store:   store,
		backups: backups,
		ui:      ui,
		report:  report,
	}
}

// Run drives the menu from Main until it is Terminated.
//
// It returns nil when the user quits, including when the input is closed.
// Any other failure ends the session and is returned as an *Error.
func (s *Session) Run() error {
	state := Main
	for state != Terminated {
		next, err := s.Step(state)
		if errors.Is(err, io.EOF) {
			s.logger().Debug("input closed", "state", state)
			return nil
		}
		if err != nil {
			return &Error{State: state, Err: err}
		}
		s.logger().Debug("menu transition", "from", state, "to", next)
		state = next
	}
	return nil
}

// Step handles a single state and returns the next one.
func (s *Session) Step(state State) (State, error) {
	switch state {
	case Main:
		return s.main()
	case ViewExpenses:
		return s.viewExpenses()
	case AddEnterDate:
		return s.addEnterDate()
	case AddConfirmDate:
		return s.addConfirmDate()
	case AddEnterDescription:
		return s.addEnterDescription()
	case AddConfirmDescription:
		return s.addConfirmDescription()
	case AddEnterAmount:
		return s.addEnterAmount()
	case AddConfirmAmount:
		return s.addConfirmAmount()
	case AddConfirmCreate:
		return s.addConfirmCreate()
	case AddPersisted:
		return s.addPersisted()
	case ChangeIncome:
		return s.changeIncome()
	case EditSelectRecord:
		return s.editSelectRecord()
	case EditSelectField:
		return s.editSelectField()
	case EditConfirmSelection:
		return s.editConfirmSelection()
	case EditEnterReplacement:
		return s.editEnterReplacement()
	case EditConfirmReplacement:
		return s.editConfirmReplacement()
	case EditPersisted:
		return s.editPersisted()
	case Backup:
		return s.backup()
	case Terminated:
		return Terminated, nil
	default:
		return Terminated, fmt.Errorf("unknown menu state %d", state)
	}
}

// Expenses returns the expense list as last loaded or persisted.
func (s *Session) Expenses() expenses.Expenses { return s.list }

func (s *Session) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

// heading starts a new screen and shows the pending alert, if any.
func (s *Session) heading() {
	s.ui.Heading()
	if s.alert != "" {
		s.ui.Println(console.Alert, s.alert)
		s.alert = ""
	}
}

// restart is a yes/no gate: yes moves on to next, no restarts the flow at first.
func (s *Session) restart(first, next State) (State, error) {
	ok, err := s.ui.Confirm("Proceed (y) or restart process (n)?")
	if err != nil {
		return Terminated, err
	}
	if !ok {
		return first, nil
	}
	return next, nil
}

// returnToMain asks query and goes back to Main on yes, terminates on no.
func (s *Session) returnToMain(query string) (State, error) {
	ok, err := s.ui.Confirm(query)
	if err != nil {
		return Terminated, err
	}
	if !ok {
		return Terminated, nil
	}
	return Main, nil
}

func (s *Session) main() (State, error) {
	l, err := s.store.Load()
	if err != nil {
		return Terminated, err
	}
	s.list = l

	s.heading()
	labels := make([]string, len(mainMenu))
	for i, m := range mainMenu {
		labels[i] = m.label
	}
	choice, err := s.ui.Select(labels, "Choose directory", true)
	if err != nil {
		return Terminated, err
	}
	if choice < 0 || choice >= len(mainMenu) {
		return Terminated, nil
	}
	return mainMenu[choice].next, nil
}
