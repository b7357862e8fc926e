package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkobayashi/kanjidrill/internal/ui/theme"
)

// TypingForm is a set of one or more text input slots. Multi-meaning
// prompts show one slot per expected answer; tab cycles focus.
type TypingForm struct {
	inputs    []textinput.Model
	focused   int
	submitted bool
	correct   bool
}

// NewTypingForm creates a form with the given number of slots.
func NewTypingForm(slots int, placeholder string) TypingForm {
	if slots < 1 {
		slots = 1
	}

	inputs := make([]textinput.Model, slots)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		ti.SetWidth(32)
		inputs[i] = ti
	}
	inputs[0].Focus()

	return TypingForm{inputs: inputs}
}

// Init returns the focus command for the first slot.
func (f TypingForm) Init() tea.Cmd {
	return f.inputs[0].Focus()
}

// Update handles focus cycling and forwards input to the focused slot.
func (f TypingForm) Update(msg tea.Msg) (TypingForm, tea.Cmd) {
	if f.submitted {
		return f, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f.focusSlot(f.focused + 1)
		case "shift+tab", "up":
			return f.focusSlot(f.focused - 1)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

func (f TypingForm) focusSlot(idx int) (TypingForm, tea.Cmd) {
	n := len(f.inputs)
	idx = ((idx % n) + n) % n

	f.inputs[f.focused].Blur()
	f.focused = idx
	return f, f.inputs[idx].Focus()
}

// View renders all slots vertically.
func (f TypingForm) View() string {
	var s string
	for i := range f.inputs {
		s += "  " + f.inputs[i].View() + "\n"
	}

	if f.submitted {
		if f.correct {
			s += "\n  " + lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓ correct")
		} else {
			s += "\n  " + lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✗ wrong")
		}
	}

	return s
}

// Values returns the raw value of each slot in order.
func (f TypingForm) Values() []string {
	vals := make([]string, len(f.inputs))
	for i := range f.inputs {
		vals[i] = f.inputs[i].Value()
	}
	return vals
}

// Slots returns the number of input slots.
func (f TypingForm) Slots() int {
	return len(f.inputs)
}

// Submit locks the form and records the grading outcome.
func (f *TypingForm) Submit(correct bool) {
	f.submitted = true
	f.correct = correct
	f.inputs[f.focused].Blur()
}
