package main

import "github.com/charmbracelet/lipgloss"

var (
	errorTitleStyle = lipgloss.NewStyle().Bold(true)
	errorBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderConfigError(err error) string {
	return errorBoxStyle.Render(errorTitleStyle.Render("Error in configuration file:") + "\n" + err.Error())
}
