package ui

import "github.com/charmbracelet/lipgloss"

// RenderPrimaryButton renders a full-width filled button. A disabled button
// is drawn greyed out; focus adds a marker on both sides.
func RenderPrimaryButton(label string, enabled, focused bool, width int) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Padding(1, 0).
		Width(width)

	if enabled {
		style = style.Foreground(ColorWhite).Background(ColorPurple)
	} else {
		style = style.Foreground(ColorLightGray).Background(ColorDisabledBg)
	}

	text := label
	if focused && enabled {
		text = SymbolFocus + " " + label + " " + SymbolFocusEnd
	}
	return style.Render(text)
}

// RenderTextButton renders a link-style button. Focus underlines it and adds
// a leading marker.
func RenderTextButton(label string, focused bool) string {
	style := LinkStyle()
	if focused {
		return style.Underline(true).Render(SymbolFocus + " " + label)
	}
	return style.Render(label)
}
