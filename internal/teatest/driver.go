// Package teatest drives bubbletea models from tests without tea.Program.
//
// Every message goes straight to Update and the returned commands are run
// in the test goroutine's turn, so the model's state can be asserted right
// after each key press.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainSteps bounds how many commands one Send may run.
const MaxDrainSteps = 100

// defaultCmdTimeout is how long a command may take before its result is
// dropped. Cursor blink commands sleep for about half a second.
const defaultCmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a model and records whether it asked to quit.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is true once a command returned tea.QuitMsg. Later input is
	// ignored.
	Quitting bool

	cmdTimeout time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: defaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout changes how long a single command may run.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.cmdTimeout = timeout }
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init())
}

// Send passes msg to Update and runs whatever the model returns.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd)
}

func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

func (d *Driver) press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter()     { d.press(tea.KeyEnter) }
func (d *Driver) PressEsc()       { d.press(tea.KeyEsc) }
func (d *Driver) PressCtrlC()     { d.press(tea.KeyCtrlC) }
func (d *Driver) PressTab()       { d.press(tea.KeyTab) }
func (d *Driver) PressShiftTab()  { d.press(tea.KeyShiftTab) }
func (d *Driver) PressLeft()      { d.press(tea.KeyLeft) }
func (d *Driver) PressRight()     { d.press(tea.KeyRight) }
func (d *Driver) PressBackspace() { d.press(tea.KeyBackspace) }

// Type presses each rune of s in turn.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

// ViewContains reports whether the rendered output contains every fragment.
func (d *Driver) ViewContains(fragments ...string) bool {
	out := d.View()
	for _, f := range fragments {
		if !strings.Contains(out, f) {
			return false
		}
	}
	return true
}

// drain runs cmd and every command it leads to, in order. Batches are
// flattened into the queue.
func (d *Driver) drain(cmd tea.Cmd) {
	d.T.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps == MaxDrainSteps {
			d.T.Logf("teatest: stopped after %d commands", MaxDrainSteps)
			return
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg := d.run(next)
		switch m := msg.(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, m...)
		case tea.QuitMsg:
			d.Quitting = true
			d.Model, _ = d.Model.Update(m)
			return
		default:
			if isBlink(msg) {
				continue
			}
			var follow tea.Cmd
			d.Model, follow = d.Model.Update(msg)
			queue = append(queue, follow)
		}
	}
}

// run returns cmd's message, or nil when it does not finish in time.
func (d *Driver) run(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(d.cmdTimeout):
		return nil
	}
}

// isBlink matches the unexported blink messages of bubbles/cursor.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
