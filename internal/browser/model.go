// Package browser is the interactive skill browser behind `gqlify skills`:
// a list of bundled skills on the left, a rendered preview on the right.
package browser

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nqcccccc/GQLify/internal/skills"
)

const (
	focusList    = "list"
	focusPreview = "preview"
)

type Model struct {
	skills   []skills.Skill
	cursor   int
	focus    string
	preview  viewport.Model
	renderer *markdownRenderer
	width    int
	height   int
	ready    bool
}

func NewModel(list []skills.Skill) Model {
	return Model{
		skills: list,
		focus:  focusList,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// selected returns the skill under the cursor.
func (m Model) selected() (skills.Skill, bool) {
	if m.cursor < 0 || m.cursor >= len(m.skills) {
		return skills.Skill{}, false
	}
	return m.skills[m.cursor], true
}

// refreshPreview re-renders the selected skill into the viewport and resets
// scroll position.
func (m *Model) refreshPreview() {
	s, ok := m.selected()
	if !ok || m.renderer == nil {
		return
	}
	m.preview.SetContent(m.renderer.render(s.Content))
	m.preview.GotoTop()
}
