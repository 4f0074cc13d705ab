package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// helpKeys joins navigation bindings with the app bindings of a mode.
type helpKeys struct {
	nav help.KeyMap
	app []key.Binding
}

func (k helpKeys) ShortHelp() []key.Binding {
	var out []key.Binding
	if k.nav != nil {
		out = append(out, k.nav.ShortHelp()...)
	}
	return append(out, k.app...)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	if k.nav != nil {
		cols = append(cols, k.nav.FullHelp()...)
	}
	return append(cols, k.app)
}

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint
	m.Styles.FullKey = m.Styles.ShortKey
	m.Styles.FullDesc = Styles.Hint
	m.Styles.FullSeparator = Styles.Hint
	return m
}

// RenderLeaderHelp shows the bindings reachable from the sequence typed so
// far, while the leader key is pending.
func RenderLeaderHelp(h *KeyHandler, mode AppMode) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	prefix := strings.Join(h.Buffer, " ")
	var next []key.Binding
	for _, b := range h.Registry.Bindings(mode) {
		seq := b.Keys()[0]
		if !strings.HasPrefix(seq, prefix+" ") {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix+" ")
		next = append(next, key.NewBinding(key.WithKeys(rest), key.WithHelp(rest, b.Help().Desc)))
	}
	next = append(next, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	m := newHelpModel()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return box.Render(Styles.Label.Render(prefix) + " " + m.ShortHelpView(next))
}
