package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the cell styles used by Styled.
type Palette struct {
	Line       lipgloss.Style
	City       lipgloss.Style
	Background lipgloss.Style
}

// DefaultPalette colours lines red and cities green on the given renderer.
func DefaultPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Line:       r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		City:       r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Background: r.NewStyle().Faint(true),
	}
}

// Styled renders c with DefaultPalette on r. A renderer bound to a
// non-terminal writer yields exactly Canvas.String.
func Styled(r *lipgloss.Renderer, c *Canvas) string {
	return StyledWith(DefaultPalette(r), c)
}

// StyledWith renders c using p. Layout matches Canvas.String exactly; only
// escape sequences are added.
func StyledWith(p Palette, c *Canvas) string {
	var sb strings.Builder
	for x := range c.cells {
		writeRow(&sb, c.cells[x], func(b byte) string {
			switch b {
			case Line:
				return p.Line.Render(string(b))
			case Background:
				return p.Background.Render(string(b))
			default:
				return p.City.Render(string(b))
			}
		})
		sb.WriteByte('\n')
	}

	return sb.String()
}
