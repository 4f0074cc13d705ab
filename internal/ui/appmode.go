package ui

// AppMode is the top-level mode of the terminal app.
type AppMode int

const (
	ModeFigures AppMode = iota
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeFigures:
		return "Figures"
	case ModeHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
