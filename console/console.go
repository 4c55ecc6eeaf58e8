// Package console implements the line based terminal interface of exps:
// a free text question, a numbered single choice with an optional cancel
// entry, a yes/no confirmation, and styled messages.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Style selects how a message is printed.
type Style int

const (
	Plain   Style = iota
	Notice        // echo of user input, records about to be written
	Success       // completed operations
	Alert         // errors and rejected input
	Accent        // totals and titles
)

// Title is printed by Heading.
const Title = "EXPENSES"

// ErrNothingToSelect is returned by Select when there is no item and no cancel entry.
var ErrNothingToSelect = errors.New("nothing to select")

// Terminal reads answers line by line from an input and writes prompts to an output.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	clear  bool // clear the screen before each heading
	styles map[Style]lipgloss.Style
	title  lipgloss.Style
}

// New returns a Terminal reading from in and writing to out.
// The screen is cleared on headings only when out is a terminal.
func New(in io.Reader, out io.Writer) *Terminal {
	r := lipgloss.NewRenderer(out)
	t := &Terminal{
		in:  bufio.NewReader(in),
		out: out,
		styles: map[Style]lipgloss.Style{
			Plain:   r.NewStyle(),
			Notice:  r.NewStyle().Foreground(lipgloss.Color("5")),
			Success: r.NewStyle().Foreground(lipgloss.Color("2")),
			Alert:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
			Accent:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		},
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).
			Padding(0, 4),
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.clear = true
	}
	return t
}

// Heading clears the screen, if possible, and prints the application title.
func (t *Terminal) Heading() {
	if t.clear {
		termenv.NewOutput(t.out).ClearScreen()
	}
	fmt.Fprintln(t.out, t.title.Render(Title))
	fmt.Fprintln(t.out)
}

// Println prints the operands, separated by spaces, in the given style.
func (t *Terminal) Println(style Style, a ...any) {
	s, ok := t.styles[style]
	if !ok {
		s = t.styles[Plain]
	}
	msg := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	fmt.Fprintln(t.out, s.Render(msg))
}

// Question prints query and returns the answer line, without its line terminator.
func (t *Terminal) Question(query string) (string, error) {
	fmt.Fprint(t.out, query)
	return t.readLine()
}

// Select prints items as a numbered list, starting at 1, and returns the
// zero based index of the chosen item. When cancel is true a "0" entry is
// offered and choosing it returns -1.
// Invalid answers are rejected and the question is asked again.
func (t *Terminal) Select(items []string, query string, cancel bool) (int, error) {
	if len(items) == 0 && !cancel {
		return -1, ErrNothingToSelect
	}
	for i, item := range items {
		fmt.Fprintf(t.out, "[%d] %s\n", i+1, item)
	}
	if cancel {
		fmt.Fprintln(t.out, "[0] CANCEL")
	}
	fmt.Fprintln(t.out)

	hint := selectHint(len(items), cancel)
	for {
		fmt.Fprintf(t.out, "%s %s: ", query, hint)
		line, err := t.readLine()
		if err != nil {
			return -1, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
		case n == 0 && cancel:
			return -1, nil
		case n >= 1 && n <= len(items):
			return n - 1, nil
		}
		t.Println(Alert, "Invalid choice, enter one of", hint)
	}
}

// selectHint describes the valid answers of a selection, e.g. "[1...5 / 0]".
func selectHint(n int, cancel bool) string {
	var choices []string
	switch n {
	case 0:
	case 1:
		choices = append(choices, "1")
	default:
		choices = append(choices, fmt.Sprintf("1...%d", n))
	}
	if cancel {
		choices = append(choices, "0")
	}
	return "[" + strings.Join(choices, " / ") + "]"
}

// Confirm prints query and waits for a yes or no answer.
func (t *Terminal) Confirm(query string) (bool, error) {
	for {
		fmt.Fprintf(t.out, "%s [y/n]: ", query)
		line, err := t.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		t.Println(Alert, "Please answer y or n")
	}
}

// readLine returns the next input line. A last line without terminator is
// returned as is; io.EOF is returned only when there is nothing left.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
