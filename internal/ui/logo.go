package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// logoArt is a padlock, drawn in box characters.
var logoArt = []string{
	"  ╭─────╮  ",
	"  │     │  ",
	"╭─┴─────┴─╮",
	"│    ●    │",
	"│    ┃    │",
	"╰─────────╯",
}

// Logo renders the application logo.
func Logo() string {
	return lipgloss.NewStyle().
		Foreground(ColorPurple).
		Bold(true).
		Render(lipgloss.JoinVertical(lipgloss.Center, logoArt...))
}

// WelcomeText renders the headline for brandName.
func WelcomeText(brandName string) string {
	return lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Render(fmt.Sprintf("Welcome to %s!", brandName))
}

// AboutText renders the muted line under the headline.
func AboutText(text string) string {
	return MutedStyle().Render(text)
}
