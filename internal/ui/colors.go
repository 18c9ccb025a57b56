package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Brand palette
const (
	ColorPurple     lipgloss.Color = "#7B5CFA" // Primary action, links, cursor
	ColorLightGray  lipgloss.Color = "#9E9EAE" // Secondary text, labels
	ColorInputBg    lipgloss.Color = "#26263A" // Text input container
	ColorDisabledBg lipgloss.Color = "#3A3A48" // Disabled button
	ColorWhite      lipgloss.Color = "#FFFFFF"
)

// Semantic colors for status indication
const (
	ColorError lipgloss.Color = "#FF3B30" // Invalid input border, error text
)

// Text colors for content hierarchy
const (
	ColorPrimary lipgloss.Color = ColorWhite
	ColorMuted   lipgloss.Color = ColorLightGray
)

// ErrorStyle returns the style for error text.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// MutedStyle returns the style for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// LinkStyle returns the style for clickable text.
func LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorPurple).Bold(true)
}

// DisableColors switches lipgloss to monochrome output (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ForceColors switches lipgloss to truecolor regardless of terminal detection.
func ForceColors() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}
