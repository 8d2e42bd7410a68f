package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jhale/tripgrid/internal/domain"
)

var (
	colorHeader = lipgloss.Color("#7D56F4")
	colorDim    = lipgloss.Color("240")
	colorGrid   = lipgloss.Color("238")
	colorDraft  = lipgloss.Color("63")
	colorToday  = lipgloss.Color("205")

	styleTitle  = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleGrid   = lipgloss.NewStyle().Foreground(colorGrid)
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleDraft  = lipgloss.NewStyle().Background(colorDraft).Foreground(lipgloss.Color("255"))
)

// kindStyle returns the block style for items of a kind.
func kindStyle(k domain.ItemKind) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(k.Color())).
		Foreground(lipgloss.Color("235"))
}

// barStyle is the full-day bar variant: same color, bolder text.
func barStyle(k domain.ItemKind) lipgloss.Style {
	return kindStyle(k).Bold(true)
}

// tripgridHuhTheme matches the form chrome to the calendar styling.
func tripgridHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorHeader)
	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(colorHeader).Foreground(lipgloss.Color("255")).Padding(0, 1)
	t.Blurred.Title = styleDim
	return t
}
