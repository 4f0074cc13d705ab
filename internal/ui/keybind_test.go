package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")
	reg.Bind("SPC q", tea.Quit, "quit")
	reg.Bind("?", tea.Quit, "help", ModeFigures)

	assert.NotNil(t, reg.Lookup("q", ModeFigures))
	assert.NotNil(t, reg.Lookup("space q", ModeHelp), "space is normalised to SPC")
	assert.NotNil(t, reg.Lookup("?", ModeFigures))
	assert.Nil(t, reg.Lookup("?", ModeHelp), "mode filter")
	assert.Nil(t, reg.Lookup("unknown", ModeFigures))
	assert.True(t, reg.HasPrefix("SPC"))
	assert.False(t, reg.HasPrefix("q"))
}

func TestKeybindRegistry_BindingsSortedWithHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")
	reg.Bind("SPC s", tea.Quit, "save figure")
	reg.Bind("tab", tea.Quit, "")

	bs := reg.Bindings(ModeFigures)
	require.Len(t, bs, 3)
	assert.Equal(t, "SPC s", bs[0].Keys()[0])
	assert.Equal(t, "save figure", bs[0].Help().Desc)
	assert.Equal(t, "q", bs[1].Keys()[0])
	assert.Equal(t, "tab", bs[2].Help().Desc, "missing description falls back to the sequence")
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	}, "")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "), ModeFigures)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)
	assert.Contains(t, RenderLeaderHelp(h, ModeFigures), "x")

	consumed, cmd = h.Handle(keyMsg("x"), ModeFigures)
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit, "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeFigures)
	consumed, cmd := h.Handle(keyMsg("esc"), ModeFigures)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
	assert.Empty(t, RenderLeaderHelp(h, ModeFigures))
}

func TestKeyHandler_UnknownSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit, "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeFigures)
	consumed, cmd := h.Handle(keyMsg("j"), ModeFigures)
	assert.True(t, consumed, "keys typed after the leader are swallowed")
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_UnboundKeyPassesThrough(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	consumed, cmd := h.Handle(keyMsg("right"), ModeFigures)
	assert.False(t, consumed)
	assert.Nil(t, cmd)
}

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
