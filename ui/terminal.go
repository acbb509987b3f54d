package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"chat-client/domain"
)

// clearScreen resets the scrollback before a history replay.
const clearScreen = "\x1b[2J\x1b[H"

// Terminal implements contract.ISurface on a writer, usually stdout.
// It holds the rendered message log in the terminal scrollback only;
// nothing is retained after display.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) ShowLoginView() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, color.Yellow.Sprint("-- login: enter username and password --"))
}

func (t *Terminal) ShowRegisterView() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, color.Yellow.Sprint("-- register: enter a new username and password --"))
}

func (t *Terminal) ShowChatView(identity string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, color.Green.Sprintf("-- connected as %s --", identity))
}

func (t *Terminal) ShowError(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, color.Red.Sprintf("error: %s", message))
}

func (t *Terminal) AppendMessage(entry domain.Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, entry.Text)
}

func (t *Terminal) ClearMessages() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprint(t.out, clearScreen)
}

// RenderRoster draws the participant table. The client hands over the
// roster snapshot with the local identity already excluded.
func (t *Terminal) RenderRoster(participants []domain.Participant) {
	t.mu.Lock()
	defer t.mu.Unlock()

	table := tablewriter.NewWriter(t.out)
	table.SetHeader([]string{"NAME", "STATUS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, p := range participants {
		table.Append([]string{p.Name, presenceCell(p.Presence)})
	}
	table.Render()
}

func (t *Terminal) RenderRecipients(names []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(names) == 0 {
		fmt.Fprintln(t.out, "nobody else is around")
		return
	}
	fmt.Fprintf(t.out, "whisper targets: %s\n", strings.Join(names, ", "))
}

func presenceCell(p domain.Presence) string {
	if p == domain.Online {
		return color.Green.Sprint("● online")
	}
	return color.Gray.Sprint("○ offline")
}
