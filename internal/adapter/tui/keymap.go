package tui

// Key binding constants used in handleKey.
const (
	KeyQuit      = "esc"
	KeyCtrlC     = "ctrl+c"
	KeyTab       = "tab"
	KeyShiftTab  = "shift+tab"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyEnter     = "enter"
	KeyBackspace = "backspace"
	KeyPlot      = "ctrl+p"
	KeyClear     = "ctrl+u"
)
