package ui

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastMsg is a transient notification raised by the services.
type ToastMsg struct {
	Text  string
	IsErr bool
}

// ConsoleNotifier prints toasts as styled lines, used by the one-shot
// commands.
type ConsoleNotifier struct {
	Out    io.Writer
	Styles Styles
}

func (n *ConsoleNotifier) Success(msg string) {
	fmt.Fprintln(n.Out, n.Styles.Success.Render("✔ "+msg))
}

func (n *ConsoleNotifier) Error(msg string) {
	fmt.Fprintln(n.Out, n.Styles.Error.Render("✘ "+msg))
}

// ProgramNotifier forwards toasts into a running bubbletea program. The
// services call it from inside tea.Cmd goroutines, so delivery goes through
// Program.Send rather than touching the model directly. Toasts raised before
// Attach (none in practice) are dropped.
type ProgramNotifier struct {
	mu sync.Mutex
	p  *tea.Program
}

func (n *ProgramNotifier) Attach(p *tea.Program) {
	n.mu.Lock()
	n.p = p
	n.mu.Unlock()
}

func (n *ProgramNotifier) send(msg ToastMsg) {
	n.mu.Lock()
	p := n.p
	n.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func (n *ProgramNotifier) Success(msg string) { n.send(ToastMsg{Text: msg}) }
func (n *ProgramNotifier) Error(msg string)   { n.send(ToastMsg{Text: msg, IsErr: true}) }
