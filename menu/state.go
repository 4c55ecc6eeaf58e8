package menu

// State is a step of the interactive menu.
type State int

const (
	// Terminated ends the session.
	Terminated State = iota
	// Main reloads the expense list and offers the top level menu.
	Main
	ViewExpenses
	AddEnterDate
	AddConfirmDate
	AddEnterDescription
	AddConfirmDescription
	AddEnterAmount
	AddConfirmAmount
	AddConfirmCreate
	AddPersisted
	// ChangeIncome is a placeholder page.
	ChangeIncome
	EditSelectRecord
	EditSelectField
	EditConfirmSelection
	EditEnterReplacement
	EditConfirmReplacement
	EditPersisted
	Backup
)

var stateNames = [...]string{
	Terminated:             "terminated",
	Main:                   "main",
	ViewExpenses:           "view-expenses",
	AddEnterDate:           "add-enter-date",
	AddConfirmDate:         "add-confirm-date",
	AddEnterDescription:    "add-enter-description",
	AddConfirmDescription:  "add-confirm-description",
	AddEnterAmount:         "add-enter-amount",
	AddConfirmAmount:       "add-confirm-amount",
	AddConfirmCreate:       "add-confirm-create",
	AddPersisted:           "add-persisted",
	ChangeIncome:           "change-income",
	EditSelectRecord:       "edit-select-record",
	EditSelectField:        "edit-select-field",
	EditConfirmSelection:   "edit-confirm-selection",
	EditEnterReplacement:   "edit-enter-replacement",
	EditConfirmReplacement: "edit-confirm-replacement",
	EditPersisted:          "edit-persisted",
	Backup:                 "backup",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// mainMenu lists the top level entries in display order.
var mainMenu = []struct {
	label string
	next  State
}{
	{"View expenses", ViewExpenses},
	{"Add expense", AddEnterDate},
	{"Change income", ChangeIncome},
	{"Edit expenses", EditSelectRecord},
	{"Backup", Backup},
}
