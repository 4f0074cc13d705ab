package navigate

import "github.com/charmbracelet/bubbles/key"

// PageStep is the jump size of the up and down keys.
const PageStep = 100

// KeyMap lists the navigation bindings. It implements help.KeyMap.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	PageNext key.Binding
	PagePrev key.Binding
}

// Keys are the default navigation bindings.
var Keys = KeyMap{
	Next:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
	Prev:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
	PageNext: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "+100")),
	PagePrev: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "-100")),
}

// Delta returns the cursor step bound to a key name, or false if the key
// is not a navigation key.
func (k KeyMap) Delta(name string) (int, bool) {
	for _, b := range []struct {
		binding key.Binding
		delta   int
	}{
		{k.Next, 1},
		{k.Prev, -1},
		{k.PageNext, PageStep},
		{k.PagePrev, -PageStep},
	} {
		if !b.binding.Enabled() {
			continue
		}
		for _, bound := range b.binding.Keys() {
			if bound == name {
				return b.delta, true
			}
		}
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.PageNext, k.PagePrev}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
