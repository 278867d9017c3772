package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Version  string
	BuildNum string
)

func (m Model) View() string {
	if !m.ready {
		return "Loading skills..."
	}
	if len(m.skills) == 0 {
		return "No skills bundled.\n\nPress q to quit.\n"
	}

	var b strings.Builder

	header := titleStyle.Render(fmt.Sprintf(" gqlify v%s b%s ", Version, BuildNum))
	b.WriteString(header + subtitleStyle.Render("  bundled skills") + "\n\n")

	listPane := m.renderList()
	previewPane := m.renderPreview()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listPane, " ", previewPane))
	b.WriteString("\n")

	help := "j/k move   tab focus preview   q quit"
	if m.focus == focusPreview {
		help = "j/k scroll   tab/esc back to list   q quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderList() string {
	listW := m.listWidth()
	var rows []string
	for i, s := range m.skills {
		name := s.Name
		if len(name) > listW-4 {
			name = name[:listW-7] + "..."
		}
		line := "  " + skillNameStyle.Render(name)
		if i == m.cursor {
			line = cursorStyle.Render("> " + name)
		}
		rows = append(rows, line)
	}

	style := borderStyle
	if m.focus == focusList {
		style = focusedBorderStyle
	}
	return style.Width(listW).Render(strings.Join(rows, "\n"))
}

func (m Model) renderPreview() string {
	s, ok := m.selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(skillNameStyle.Render(s.Name))
	if s.Description != "" {
		b.WriteString("\n" + descStyle.Render(s.Description))
	}
	b.WriteString("\n\n")
	b.WriteString(m.preview.View())

	style := borderStyle
	if m.focus == focusPreview {
		style = focusedBorderStyle
	}
	return style.Render(b.String())
}
