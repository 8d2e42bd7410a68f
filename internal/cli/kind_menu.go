package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jhale/tripgrid/internal/domain"
)

// kindChosenMsg reports the type chooser's outcome; a zero Kind means the
// user cancelled.
type kindChosenMsg struct {
	kind domain.ItemKind
}

// kindMenu is the type chooser shown while the creation machine sits in
// pending-type-selection: the drag fixed the time range, the menu picks
// lodging, transportation or activity.
type kindMenu struct {
	label   string
	cursor  int
	choices []kindChoice
}

type kindChoice struct {
	label string
	key   string
	kind  domain.ItemKind // zero value = cancel
}

func newKindMenu(rangeLabel string) *kindMenu {
	return &kindMenu{
		label: rangeLabel,
		choices: []kindChoice{
			{label: "Lodging", key: "l", kind: domain.KindLodging},
			{label: "Transportation", key: "t", kind: domain.KindTransportation},
			{label: "Activity", key: "a", kind: domain.KindActivity},
			{label: "Cancel", key: "c"},
		},
	}
}

func (m *kindMenu) Update(msg tea.Msg) (overlayModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter":
		choice := m.choices[m.cursor]
		return m, func() tea.Msg { return kindChosenMsg{kind: choice.kind} }
	case "esc":
		return m, func() tea.Msg { return kindChosenMsg{} }
	default:
		for i, c := range m.choices {
			if keyMsg.String() == c.key {
				m.cursor = i
				choice := c
				return m, func() tea.Msg { return kindChosenMsg{kind: choice.kind} }
			}
		}
	}
	return m, nil
}

func (m *kindMenu) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("New item"))
	b.WriteString("  ")
	b.WriteString(styleDim.Render(m.label))
	b.WriteString("\n\n")
	for i, c := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = styleHeader.Render("› ")
		}
		line := cursor + "[" + c.key + "] " + c.label
		if c.kind != "" {
			line = cursor + kindStyle(c.kind).Render(" "+c.kind.Icon()+" ") + " [" + c.key + "] " + c.label
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorHeader).
		Padding(0, 2).
		Render(b.String())
}
