package ui

import (
	"regexp"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputKind selects how a TextInput renders its content.
type InputKind int

const (
	// InputPlain renders text as typed.
	InputPlain InputKind = iota
	// InputSecret masks text by default, with a reveal toggle.
	InputSecret
)

// String returns a human-readable input kind.
func (k InputKind) String() string {
	switch k {
	case InputPlain:
		return "plain"
	case InputSecret:
		return "secret"
	default:
		return "unknown"
	}
}

// SubmitHint tells the parent what enter means for this field.
type SubmitHint int

const (
	// SubmitDefault leaves enter to the field (no focus change).
	SubmitDefault SubmitHint = iota
	// SubmitNext moves focus to the next control on enter.
	SubmitNext
)

// String returns a human-readable submit hint.
func (h SubmitHint) String() string {
	switch h {
	case SubmitDefault:
		return "default"
	case SubmitNext:
		return "next"
	default:
		return "unknown"
	}
}

// ChangeFunc receives the field text and its validity after every change.
type ChangeFunc func(text string, valid bool)

// TextInputConfig configures a TextInput.
type TextInputConfig struct {
	Label   string
	Kind    InputKind
	Submit  SubmitHint
	Pattern string // Regular expression the whole text must match; empty disables validation
	Width   int    // Outer width in columns; zero uses DefaultInputWidth
}

// DefaultInputWidth is the outer width of a TextInput when none is configured.
const DefaultInputWidth = 40

// TextInputKeyMap defines key bindings handled by the TextInput itself.
type TextInputKeyMap struct {
	Reveal key.Binding
}

// TextInputKeys are the bindings for all TextInputs.
var TextInputKeys = TextInputKeyMap{
	Reveal: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "show/hide password"),
	),
}

// TextInput is a labeled single-line field that validates its text against
// an optional pattern and reports (text, valid) to its owner on every change.
type TextInput struct {
	label  string
	kind   InputKind
	submit SubmitHint
	width  int

	pattern    *regexp.Regexp
	badPattern bool // pattern was configured but did not compile

	input         textinput.Model
	text          string
	isError       bool
	secretVisible bool

	onChange ChangeFunc
}

// CompilePattern compiles pattern for whole-string matching.
// An empty pattern returns a nil regexp, meaning "no validation".
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(`^(?:` + pattern + `)$`)
}

// HasError reports whether text violates re. Empty text and a nil pattern
// are never errors.
func HasError(re *regexp.Regexp, text string) bool {
	if re == nil || text == "" {
		return false
	}
	return !re.MatchString(text)
}

// NewTextInput creates a TextInput with empty text and no error.
// A pattern that does not compile is not reported; the field then treats
// every non-empty text as invalid.
func NewTextInput(cfg TextInputConfig, onChange ChangeFunc) TextInput {
	re, err := CompilePattern(cfg.Pattern)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(ColorPurple)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	if cfg.Kind == InputSecret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = SymbolMask
	}

	t := TextInput{
		label:      cfg.Label,
		kind:       cfg.Kind,
		submit:     cfg.Submit,
		pattern:    re,
		badPattern: err != nil,
		input:      ti,
		onChange:   onChange,
	}
	t.SetWidth(cfg.Width)
	return t
}

// OnTextChanged replaces the stored text, recomputes the error flag, then
// notifies the owner with the new text and its validity.
func (t *TextInput) OnTextChanged(newText string) {
	t.text = newText
	if t.input.Value() != newText {
		t.input.SetValue(newText)
	}
	t.isError = t.hasError(newText)

	if t.onChange != nil {
		t.onChange(newText, !t.isError)
	}
}

func (t *TextInput) hasError(text string) bool {
	if t.badPattern {
		return text != ""
	}
	return HasError(t.pattern, text)
}

// Update handles key input while focused. Editing is delegated to the
// bubbles textinput; any resulting change goes through OnTextChanged.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if !t.input.Focused() {
		return t, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && t.kind == InputSecret && key.Matches(k, TextInputKeys.Reveal) {
		t.ToggleSecret()
		return t, nil
	}

	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if after := t.input.Value(); after != before {
		t.OnTextChanged(after)
	}
	return t, cmd
}

// ToggleSecret flips between masked and revealed rendering of a secret field.
// Text and validity are untouched. No-op for plain fields.
func (t *TextInput) ToggleSecret() {
	if t.kind != InputSecret {
		return
	}
	t.secretVisible = !t.secretVisible
	if t.secretVisible {
		t.input.EchoMode = textinput.EchoNormal
	} else {
		t.input.EchoMode = textinput.EchoPassword
	}
}

// Focus focuses the field and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus from the field.
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused reports whether the field has focus.
func (t TextInput) Focused() bool {
	return t.input.Focused()
}

// SetWidth sets the outer width (border included).
func (t *TextInput) SetWidth(width int) {
	if width <= 0 {
		width = DefaultInputWidth
	}
	t.width = width

	// border (2) + padding (2), plus the cursor cell and reveal affordance for secrets
	inner := width - 4
	if t.kind == InputSecret {
		inner -= lipgloss.Width(t.affordance()) + 2
	}
	if inner < 1 {
		inner = 1
	}
	t.input.Width = inner
}

func (t TextInput) Value() string { return t.text }
func (t TextInput) Label() string { return t.label }
func (t TextInput) IsError() bool { return t.isError }
func (t TextInput) IsValid() bool { return !t.isError }
func (t TextInput) SecretVisible() bool { return t.secretVisible }
func (t TextInput) Kind() InputKind { return t.kind }
func (t TextInput) Submit() SubmitHint { return t.submit }
func (t TextInput) Width() int { return t.width }

// affordance is the trailing show/hide hint of a secret field.
func (t TextInput) affordance() string {
	if t.secretVisible {
		return SymbolHide + " hide"
	}
	return SymbolShow + " show"
}

// View renders the label above a rounded box. The box border is only drawn
// in the error state.
func (t TextInput) View() string {
	labelStyle := MutedStyle()
	if t.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(ColorPurple).Bold(true)
	}

	content := t.input.View()
	if t.kind == InputSecret {
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(t.input.Width+1).Render(content),
			" ",
			MutedStyle().Render(t.affordance()),
		)
	}

	border := lipgloss.HiddenBorder()
	if t.isError {
		border = lipgloss.RoundedBorder()
	}
	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(ColorError).
		Background(ColorInputBg).
		Padding(0, 1).
		Width(t.width - 2).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(t.label), box)
}
