package ui

// Unicode symbols used by the login screen.
const (
	SymbolFail     = "✗" // Structured error prefix
	SymbolFocus    = "▸" // Marks the focused control
	SymbolFocusEnd = "◂"
	SymbolShow     = "◉" // Secret is masked; press to reveal
	SymbolHide     = "◎" // Secret is revealed; press to mask
	SymbolMask     = '•' // Echo character for masked input
	SymbolSuccess  = "✓"
)
