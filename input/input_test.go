package input

import (
	"testing"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func press(in Input, keys ...tea.KeyPressMsg) (Input, tea.Msg) {
	var last tea.Msg
	for _, key := range keys {
		var cmd tea.Cmd
		in, cmd = in.Update(key)
		last = nil
		if cmd != nil {
			last = cmd()
		}
	}
	return in, last
}

func text(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func TestTyping(t *testing.T) {

	in, msg := press(New("", 0), text("a"), text("b"))
	assert.Equal(t, "ab", in.Value())
	assert.Equal(t, 2, in.Cursor())
	assert.Equal(t, ChangedMsg{Value: "ab"}, msg)

	in, msg = press(in, tea.KeyPressMsg{Code: tea.KeyLeft}, text("x"))
	assert.Equal(t, "axb", in.Value())
	assert.Equal(t, ChangedMsg{Value: "axb"}, msg)
	assert.Equal(t, "ax▏b", in.Render())

	in, msg = press(in, tea.KeyPressMsg{Code: tea.KeyBackspace})
	assert.Equal(t, "ab", in.Value())
	assert.Equal(t, ChangedMsg{Value: "ab"}, msg)

	in, msg = press(in, tea.KeyPressMsg{Code: tea.KeyHome})
	assert.Equal(t, 0, in.Cursor())
	assert.Nil(t, msg)

	in, _ = press(in, tea.KeyPressMsg{Code: tea.KeyDelete})
	assert.Equal(t, "b", in.Value())

	in, _ = press(in, tea.KeyPressMsg{Code: tea.KeyEnd}, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, text("c"))
	assert.Equal(t, "b c", in.Value())
}

func TestMultibyte(t *testing.T) {

	in, msg := press(New("José", 0), tea.KeyPressMsg{Code: tea.KeyBackspace})
	assert.Equal(t, "Jos", in.Value())
	assert.True(t, utf8.ValidString(in.Value()))
	assert.Equal(t, ChangedMsg{Value: "Jos"}, msg)

	in, msg = press(New("", 0), text("é"), text("日"))
	assert.Equal(t, "é日", in.Value())
	assert.Equal(t, 2, in.Cursor())
	assert.Equal(t, ChangedMsg{Value: "é日"}, msg)

	in, _ = press(in, tea.KeyPressMsg{Code: tea.KeyLeft}, tea.KeyPressMsg{Code: tea.KeyDelete})
	assert.Equal(t, "é", in.Value())
	assert.Equal(t, "é▏", in.Render())

	in, _ = press(New("ñandú", 0), tea.KeyPressMsg{Code: tea.KeyLeft}, text("x"))
	assert.Equal(t, "ñandxú", in.Value())
}

func TestCopiesOnEdit(t *testing.T) {

	in := New("abc", 0)
	in, _ = press(in, tea.KeyPressMsg{Code: tea.KeyLeft})

	edited, _ := press(in, text("x"))
	assert.Equal(t, "abxc", edited.Value())
	assert.Equal(t, "abc", in.Value())
}

func TestMaxLength(t *testing.T) {

	in, msg := press(New("abc", 3), text("d"))
	assert.Equal(t, "abc", in.Value())
	assert.Nil(t, msg)

	in, msg = press(New("ab", 3), text("é"))
	assert.Equal(t, "abé", in.Value())
	assert.Equal(t, ChangedMsg{Value: "abé"}, msg)
}

func TestIgnoresOtherMessages(t *testing.T) {

	in, cmd := New("abc", 0).Update(tea.WindowSizeMsg{Width: 10})
	assert.Equal(t, "abc", in.Value())
	assert.Nil(t, cmd)
}
