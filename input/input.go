// Package input is a single line text field for bubbletea programs.
package input

import (
	"slices"
	"unicode"

	tea "charm.land/bubbletea/v2"
)

const (
	defaultMaxLength = 100
)

// Input is an editable text field
type Input struct {
	value     []rune
	cursor    int // Index into value runes
	maxLength int
}

// ChangedMsg is sent when the value of an Input changes.
type ChangedMsg struct {
	Value string
}

func New(value string, maxLength int) Input {
	if maxLength <= 0 {
		maxLength = defaultMaxLength
	}
	runes := []rune(value)
	return Input{
		value:     runes,
		cursor:    len(runes),
		maxLength: maxLength,
	}
}

func (in Input) Init() tea.Cmd {
	return nil
}

func (in Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return in, nil
	}

	oldValue := in.Value()
	switch key.String() {
	case "backspace":
		if in.cursor > 0 {
			in.value = slices.Delete(slices.Clone(in.value), in.cursor-1, in.cursor)
			in.cursor--
		}
	case "delete":
		if in.cursor < len(in.value) {
			in.value = slices.Delete(slices.Clone(in.value), in.cursor, in.cursor+1)
		}
	case "left":
		if in.cursor > 0 {
			in.cursor--
		}
	case "right":
		if in.cursor < len(in.value) {
			in.cursor++
		}
	case "home", "ctrl+a":
		in.cursor = 0
	case "end", "ctrl+e":
		in.cursor = len(in.value)
	case "space":
		in = in.insert([]rune{' '})
	default:
		if printable(key.Text) {
			in = in.insert([]rune(key.Text))
		}
	}

	if value := in.Value(); value != oldValue {
		return in, func() tea.Msg {
			return ChangedMsg{Value: value}
		}
	}
	return in, nil
}

func (in Input) View() tea.View {
	return tea.NewView(in.Render())
}

func (in Input) Value() string {
	return string(in.value)
}

// Cursor is the position of the cursor in runes.
func (in Input) Cursor() int {
	return in.cursor
}

// Render shows the value with a block cursor.
func (in Input) Render() string {
	return string(in.value[:in.cursor]) + "▏" + string(in.value[in.cursor:])
}

// unexported

func (in Input) insert(runes []rune) Input {
	if len(in.value)+len(runes) > in.maxLength {
		return in
	}
	in.value = slices.Insert(slices.Clone(in.value), in.cursor, runes...)
	in.cursor += len(runes)
	return in
}

func printable(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
