package browser

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer renders skill markdown to styled ANSI output for the
// preview pane.
type markdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

func newMarkdownRenderer(width int) *markdownRenderer {
	if width < 40 {
		width = 80
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	return &markdownRenderer{renderer: r, width: width}
}

func (r *markdownRenderer) render(md string) string {
	if r.renderer == nil {
		return md
	}
	out, err := r.renderer.Render(md)
	if err != nil {
		return md
	}
	// glamour pads with trailing newlines; trim for the viewport.
	return strings.TrimRight(out, "\n")
}

func (r *markdownRenderer) updateWidth(width int) {
	if width < 40 {
		width = 80
	}
	if width == r.width {
		return
	}
	r.width = width
	newR, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err == nil {
		r.renderer = newR
	}
}
