package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeLines is the number of lines around the figure: header, status and
// help line, plus a blank separator.
const chromeLines = 4

// FigureErrMsg reports an error returned by a figure's key handlers.
type FigureErrMsg struct {
	Err error
}

// FigureView shows one terminal figure and forwards unclaimed keys to it.
type FigureView struct {
	Figure *TermFigure
}

var _ View = (*FigureView)(nil)

// NewFigureView wraps f.
func NewFigureView(f *TermFigure) *FigureView {
	return &FigureView{Figure: f}
}

func (v *FigureView) Init() tea.Cmd { return nil }

func (v *FigureView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.Figure.SetSize(msg.Width, msg.Height-chromeLines)
	case tea.KeyMsg:
		if _, err := v.Figure.HandleKey(msg.String()); err != nil {
			return v, func() tea.Msg { return FigureErrMsg{Err: err} }
		}
	}
	return v, nil
}

func (v *FigureView) View() string {
	return v.Figure.Render()
}

// helpView is the full key reference shown as an overlay.
type helpView struct {
	keys help.KeyMap
}

func (h *helpView) Init() tea.Cmd                  { return nil }
func (h *helpView) Update(tea.Msg) (View, tea.Cmd) { return h, nil }

func (h *helpView) View() string {
	m := newHelpModel()
	m.ShowAll = true
	return Styles.HelpBox.Render(Styles.Title.Render("Keys") + "\n\n" + m.View(h.keys))
}
