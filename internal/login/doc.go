// Package login implements the login screen.
//
// The screen is a Bubble Tea model laid out top to bottom: logo, welcome
// headline, tagline, username input, password input, login button,
// forgot-password link, and, pinned to the bottom, the register prompt.
//
// # State
//
// Model owns two ui.TextInput widgets and a Form. Each input is built with a
// callback that writes its validity into its own Form flag; the flags are
// never read back into the inputs. The login button is enabled only when
// both flags are true, so it starts disabled and stays disabled until each
// input has received text that passes its pattern.
//
// # Keys
//
//	tab / down        Next control (skips a disabled login button)
//	shift+tab / up    Previous control
//	enter             Next field from username; press the focused button
//	space             Press the focused button
//	ctrl+r            Show/hide the password
//	esc / ctrl+c      Quit
//
// # Actions
//
// The three buttons call Actions.OnLogin, OnForgotPassword, and OnRegister.
// Nil callbacks do nothing.
//
// RunAccessible offers the same form as line-based huh prompts for
// terminals without full-screen support.
package login
