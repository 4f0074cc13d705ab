package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"quickplot/internal/artifact"
	"quickplot/internal/navigate"
)

type (
	focusMsg    struct{ delta int }
	showHelpMsg struct{}
	saveMsg     struct{}
)

// AppModel is the root model. It shows one figure at a time; tab cycles
// through them and keys the app does not bind go to the focused figure.
type AppModel struct {
	Mode       AppMode
	Views      []*FigureView
	Focus      *FocusRing
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Store      *artifact.Store
	Status     string
	Err        error

	help help.Model
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for the figures of t.
func NewAppModel(t *Terminal, store *artifact.Store) *AppModel {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit, "quit")
	reg.Bind("SPC q", tea.Quit, "quit")
	reg.Bind("tab", focusCmd(1), "next figure", ModeFigures)
	reg.Bind("shift+tab", focusCmd(-1), "previous figure", ModeFigures)
	reg.Bind("?", func() tea.Msg { return showHelpMsg{} }, "help", ModeFigures)
	reg.Bind("SPC s", func() tea.Msg { return saveMsg{} }, "save figure", ModeFigures)

	m := &AppModel{
		Mode:       ModeFigures,
		KeyHandler: NewKeyHandler(reg),
		Store:      store,
		help:       newHelpModel(),
	}
	for _, f := range t.Figures() {
		m.Views = append(m.Views, NewFigureView(f))
	}
	m.Focus = &FocusRing{N: len(m.Views), OnChange: func(_, to int) {
		m.Status = fmt.Sprintf("figure %d/%d", to+1, len(m.Views))
	}}
	return m
}

func focusCmd(delta int) tea.Cmd {
	return func() tea.Msg { return focusMsg{delta: delta} }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Current returns the focused figure view, or nil without figures.
func (m *AppModel) Current() *FigureView {
	if len(m.Views) == 0 {
		return nil
	}
	return m.Views[m.Focus.Current]
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		for _, v := range a.Views {
			v.Update(msg)
		}
		return a, nil
	case focusMsg:
		if msg.delta > 0 {
			a.Focus.Next()
		} else {
			a.Focus.Prev()
		}
		return a, nil
	case showHelpMsg:
		a.Overlays.Push(Overlay{View: &helpView{keys: a.keyHelp(ModeFigures)}, Dismiss: []string{"esc", "?"}})
		a.Mode = ModeHelp
		return a, nil
	case saveMsg:
		a.save()
		return a, nil
	case FigureErrMsg:
		a.Err = msg.Err
		slog.Error("key handler failed", "err", msg.Err)
		return a, nil
	case tea.KeyMsg:
		if top, ok := a.Overlays.Peek(); ok && top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			if a.Overlays.Len() == 0 {
				a.Mode = ModeFigures
			}
			return a, nil
		}
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
			return a, cmd
		}
		if a.Mode != ModeFigures {
			return a, nil
		}
		if i, ok := figureIndex(msg); ok && a.Focus.SetFocus(i) {
			return a, nil
		}
		a.Err = nil
		if v := a.Current(); v != nil {
			_, cmd := v.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

// figureIndex maps the keys 1-9 to figure indices 0-8.
func figureIndex(msg tea.KeyMsg) (int, bool) {
	k := msg.String()
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}

func (a *appModelAdapter) save() {
	v := a.Current()
	if v == nil {
		return
	}
	if a.Store == nil {
		a.Err = fmt.Errorf("ui: no output directory configured")
		return
	}
	path, err := a.Store.Path(v.Figure.Title(), "txt")
	if err == nil {
		err = v.Figure.Save(path)
	}
	if err != nil {
		a.Err = err
		slog.Error("save figure", "err", err)
		return
	}
	a.Err = nil
	a.Status = "saved " + path
	slog.Info("saved figure", "path", path)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	v := a.Current()
	if v == nil {
		return Styles.Hint.Render("no figures") + "\n"
	}
	var b strings.Builder
	header := fmt.Sprintf("Figure %d/%d  %s", a.Focus.Current+1, len(a.Views), v.Figure.Title())
	b.WriteString(Styles.FigureTitle.Render(header) + "\n")

	if top, ok := a.Overlays.Peek(); ok {
		b.WriteString(top.View.View())
	} else {
		b.WriteString(v.View())
	}
	b.WriteString("\n")

	switch {
	case a.Err != nil:
		b.WriteString(Styles.Error.Render("error: " + a.Err.Error()))
	case a.Status != "":
		b.WriteString(Styles.Status.Render(a.Status))
	}
	b.WriteString("\n")

	if leader := RenderLeaderHelp(a.KeyHandler, a.Mode); leader != "" {
		b.WriteString(leader)
	} else {
		b.WriteString(a.help.ShortHelpView(a.keyHelp(a.Mode).ShortHelp()))
	}
	return b.String()
}

// keyHelp joins the figure navigation keys with the single-key app bindings.
func (a *AppModel) keyHelp(mode AppMode) helpKeys {
	var app []key.Binding
	for _, b := range a.KeyHandler.Registry.Bindings(mode) {
		if mode == ModeFigures && b.Keys()[0] == "ctrl+c" {
			continue
		}
		app = append(app, b)
	}
	return helpKeys{nav: navigate.Keys, app: app}
}
