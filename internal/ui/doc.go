// Package ui provides the terminal widgets used by the login screen.
//
// Everything is rendered with Lip Gloss and is meant to be composed into a
// Bubble Tea model (see internal/login).
//
// # Components Overview
//
//	TextInput           - Labeled single-line field with optional pattern validation
//	RenderPrimaryButton - Filled full-width button with an enabled/disabled look
//	RenderTextButton    - Link-style button
//	Logo, WelcomeText   - Static decorations at the top of the screen
//
// # TextInput
//
// A TextInput owns its text, an error flag, and (for secret fields) a reveal
// flag. Each change recomputes the error flag from the text and the pattern,
// then calls the owner's ChangeFunc:
//
//	user := ui.NewTextInput(ui.TextInputConfig{
//		Label:   "Username",
//		Submit:  ui.SubmitNext,
//		Pattern: `^[a-zA-Z_][a-zA-Z0-9_]*$`,
//	}, func(text string, valid bool) {
//		m.form.SetUsernameValid(valid)
//	})
//
// Patterns match the whole text. Empty text is never an error, so a field
// that has not been typed into shows no highlight.
//
// Secret fields (InputSecret) mask their content with • until ctrl+r
// toggles it. Toggling never changes the text or its validity.
//
// # Color Scheme
//
//	ColorPurple    - Primary button, links, cursor, focused label
//	ColorLightGray - Labels and secondary text
//	ColorError     - Border of a field whose text fails its pattern
//
// Use DisableColors() to switch to monochrome output (for --no-color).
package ui
