package login

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/simplelogin/internal/ui"
)

// Vertical spacing in rows.
const (
	marginTop     = 2
	marginSection = 2 // around the logo and above the inputs
	marginField   = 1 // between inputs, between headline and tagline
	marginButton  = 1 // above the login button and the forgot-password link
)

// Horizontal layout in columns.
const (
	paddingHorizontal = 2
	maxContentWidth   = 48
	minContentWidth   = 20
)

// Labels for the three buttons.
const (
	labelLogin          = "Login"
	labelForgotPassword = "Forgot password?"
	labelRegisterPrompt = "Don't have an account?"
	labelRegister       = "Register!"
)

// contentWidth is the width of the inputs and the login button.
func (m *Model) contentWidth() int {
	if m.width == 0 {
		return maxContentWidth
	}
	w := m.width - 2*paddingHorizontal
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < minContentWidth {
		w = minContentWidth
	}
	return w
}

func (m *Model) resize() {
	w := m.contentWidth()
	m.username.SetWidth(w)
	m.password.SetWidth(w)
	m.help.Width = w
}

// marginVertical returns n empty rows for use in JoinVertical.
func marginVertical(n int) []string {
	return make([]string, n)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.contentWidth()

	var top []string
	top = append(top, marginVertical(marginTop)...)
	if m.opts.ShowLogo {
		top = append(top, ui.Logo())
		top = append(top, marginVertical(marginSection)...)
	}
	top = append(top, ui.WelcomeText(m.opts.AppName))
	top = append(top, marginVertical(marginField)...)
	top = append(top, ui.AboutText(m.opts.Tagline))
	top = append(top, marginVertical(marginSection)...)
	top = append(top, m.username.View())
	top = append(top, marginVertical(marginField)...)
	top = append(top, m.password.View())
	top = append(top, marginVertical(marginButton)...)
	top = append(top, ui.RenderPrimaryButton(labelLogin, m.form.LoginEnabled(), m.focus == ControlLogin, w))
	top = append(top, marginVertical(marginButton)...)
	top = append(top, ui.RenderTextButton(labelForgotPassword, m.focus == ControlForgotPassword))

	upper := lipgloss.JoinVertical(lipgloss.Center, top...)
	bottom := lipgloss.JoinVertical(lipgloss.Center,
		m.registerRow(),
		"",
		m.help.View(keys),
	)

	// The register row sits at the bottom of the terminal; the gap absorbs
	// whatever height is left.
	gap := 1
	if m.height > 0 {
		if free := m.height - lipgloss.Height(upper) - lipgloss.Height(bottom); free > gap {
			gap = free
		}
	}

	screen := lipgloss.JoinVertical(lipgloss.Center,
		upper,
		strings.Join(marginVertical(gap), "\n"),
		bottom,
	)

	if m.width == 0 {
		return screen
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, screen)
}

func (m *Model) registerRow() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		ui.MutedStyle().Render(labelRegisterPrompt),
		" ",
		ui.RenderTextButton(labelRegister, m.focus == ControlRegister),
	)
}
