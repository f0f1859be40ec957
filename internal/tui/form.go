package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const fieldFormat = " %s\n %s\n\n"

// formField is either a free text input or, when options is set, a choice
// cycled with left/right.
type formField struct {
	label    string
	input    textinput.Model
	options  []string
	selected int
}

func textField(label, placeholder string) formField {
	t := textinput.New()
	t.Placeholder = placeholder
	t.CharLimit = 256
	t.Cursor.Style = focusedStyle
	return formField{label: label, input: t}
}

func choiceField(label string, options ...string) formField {
	return formField{label: label, options: options}
}

func (f formField) isChoice() bool {
	return len(f.options) > 0
}

func (f formField) value() string {
	if f.isChoice() {
		return f.options[f.selected]
	}
	return f.input.Value()
}

// form cycles focus over its fields and a trailing submit button, the way a
// textinput form usually does in bubbletea.
type form struct {
	fields     []formField
	focusIndex int
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	f.applyFocus()
	return f
}

func (f *form) onButton() bool {
	return f.focusIndex == len(f.fields)
}

func (f *form) value(i int) string {
	return f.fields[i].value()
}

// reset clears text inputs and returns focus to the first field. Choices
// keep their selection.
func (f *form) reset() {
	for i := range f.fields {
		if !f.fields[i].isChoice() {
			f.fields[i].input.SetValue("")
		}
	}
	f.focusIndex = 0
	f.applyFocus()
}

func (f *form) applyFocus() tea.Cmd {
	var cmds []tea.Cmd
	for i := range f.fields {
		if f.fields[i].isChoice() {
			continue
		}
		if i == f.focusIndex {
			cmds = append(cmds, f.fields[i].input.Focus())
			f.fields[i].input.PromptStyle = focusedStyle
			f.fields[i].input.TextStyle = focusedStyle
			continue
		}
		f.fields[i].input.Blur()
		f.fields[i].input.PromptStyle = noStyle
		f.fields[i].input.TextStyle = noStyle
	}
	return tea.Batch(cmds...)
}

// update handles one message. submitted is true when enter was pressed on
// the submit button.
func (f *form) update(msg tea.Msg) (submitted bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if f.onButton() {
				return true, nil
			}
			f.focusIndex++
			return false, f.applyFocus()

		case "tab", "down":
			f.focusIndex = (f.focusIndex + 1) % (len(f.fields) + 1)
			return false, f.applyFocus()

		case "shift+tab", "up":
			f.focusIndex--
			if f.focusIndex < 0 {
				f.focusIndex = len(f.fields)
			}
			return false, f.applyFocus()

		case "left", "right", " ":
			if !f.onButton() && f.fields[f.focusIndex].isChoice() {
				field := &f.fields[f.focusIndex]
				step := 1
				if key.String() == "left" {
					step = len(field.options) - 1
				}
				field.selected = (field.selected + step) % len(field.options)
				return false, nil
			}
		}
	}

	if f.onButton() || f.fields[f.focusIndex].isChoice() {
		return false, nil
	}
	field := &f.fields[f.focusIndex]
	field.input, cmd = field.input.Update(msg)
	return false, cmd
}

func (f *form) view() string {
	var b strings.Builder
	for i, field := range f.fields {
		label := blurredStyle.Render(field.label + ":")
		if !field.isChoice() {
			fmt.Fprintf(&b, fieldFormat, label, field.input.View())
			continue
		}

		choice := fmt.Sprintf("< %s >", field.value())
		if i == f.focusIndex {
			choice = focusedStyle.Render(choice)
		}
		fmt.Fprintf(&b, fieldFormat, label, choice)
	}

	button := blurredButton
	if f.onButton() {
		button = focusedButton
	}
	fmt.Fprintf(&b, "\n %s\n", button)
	return b.String()
}
