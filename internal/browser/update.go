package browser

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		m.ready = true
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.focus == focusPreview {
			m.focus = focusList
			return m, nil
		}
		return m, tea.Quit

	case "tab", "enter":
		if m.focus == focusList {
			m.focus = focusPreview
		} else {
			m.focus = focusList
		}
		return m, nil
	}

	if m.focus == focusPreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.refreshPreview()
		}
	case "down", "j":
		if m.cursor < len(m.skills)-1 {
			m.cursor++
			m.refreshPreview()
		}
	case "g":
		m.cursor = 0
		m.refreshPreview()
	case "G":
		if len(m.skills) > 0 {
			m.cursor = len(m.skills) - 1
			m.refreshPreview()
		}
	}
	return m, nil
}

// relayout recomputes pane sizes after a resize and re-renders the preview
// at the new width.
func (m *Model) relayout() {
	listW := m.listWidth()
	previewW := m.width - listW - 7
	if previewW < 30 {
		previewW = 30
	}
	previewH := m.height - 6
	if previewH < 5 {
		previewH = 5
	}

	if m.renderer == nil {
		m.renderer = newMarkdownRenderer(previewW)
		m.preview = viewport.New(previewW, previewH)
	} else {
		m.renderer.updateWidth(previewW)
		m.preview.Width = previewW
		m.preview.Height = previewH
	}
	m.refreshPreview()
}

func (m Model) listWidth() int {
	w := m.width / 3
	if w < 24 {
		w = 24
	}
	if w > 40 {
		w = 40
	}
	return w
}
