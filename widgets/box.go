package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider as a Frame row draws a horizontal rule across the frame.
const Divider = "\x00divider"

// Frame draws a rounded border of exactly width x len(rows)+2 cells around
// rows. Rows are padded or truncated to width-2 cells.
func Frame(rows []string, width int, border lipgloss.Style) string {
	if width < 2 {
		return ""
	}
	b := lipgloss.RoundedBorder()
	inner := width - 2
	out := make([]string, 0, len(rows)+2)
	out = append(out, border.Render(b.TopLeft+strings.Repeat(b.Top, inner)+b.TopRight))
	for _, row := range rows {
		if row == Divider {
			out = append(out, border.Render(b.MiddleLeft+strings.Repeat(b.Top, inner)+b.MiddleRight))
			continue
		}
		out = append(out, border.Render(b.Left)+padRight(row, inner)+border.Render(b.Right))
	}
	out = append(out, border.Render(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))
	return strings.Join(out, "\n")
}

// Box is a framed area filled with a repeating pattern, used as an image
// placeholder.
type Box struct {
	Title  string
	Fill   string
	Style  lipgloss.Style
	Border lipgloss.Style
}

func (b Box) Render(width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	inner := width - 2
	rows := make([]string, height-2)
	fill := b.Fill
	if fill == "" {
		fill = " "
	}
	for i := range rows {
		rows[i] = b.Style.Render(strings.Repeat(fill, inner))
	}
	if b.Title != "" && len(rows) > 0 {
		rows[len(rows)/2] = Label{Text: b.Title, Style: b.Style}.Render(inner, 1)
	}
	return Frame(rows, width, b.Border)
}
