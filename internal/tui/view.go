package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/holdmenu/internal/layout"
	"github.com/jask/holdmenu/widgets"
)

// below this the card is not drawn at all
const minOpacity = 0.02

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	usable := max(0, a.height-chromeLines)
	backdrop := a.theme.backdropStyle()
	screen := widgets.Canvas(a.width, usable, func(s string) string { return backdrop.Render(s) })

	if t := a.geo.Thumb; !t.Empty() {
		thumb := widgets.Box{Title: "picture", Fill: "▒", Style: thumbStyle, Border: thumbBorderStyle}.Render(t.W, t.H)
		screen = widgets.Overlay(screen, thumb, t.X, t.Y, a.width, usable)
	}
	if op := a.vis.Opacity(); op >= minOpacity && !a.geo.Card.Empty() {
		c := a.geo.Card
		screen = widgets.Overlay(screen, a.renderCard(op), c.X, c.Y, a.width, usable)
	}

	lines := make([]string, 0, a.height)
	if usable > 0 {
		lines = append(lines, screen)
	}
	lines = append(lines, a.renderHelp(), a.renderStatus())
	return strings.Join(lines, "\n")
}

func (a *App) renderCard(opacity float64) string {
	st := a.theme.faded(opacity)
	c := a.geo.Card
	inner := c.W - 2

	rows := make([]string, 0, c.H-2)
	rows = append(rows, st.header.Render(padCell(" "+a.cfg.Panel.Author, inner)), widgets.Divider)
	for i := 0; i < a.geo.Picture.H; i++ {
		rows = append(rows, st.picture.Render(strings.Repeat("░", inner)))
	}
	rows = append(rows, widgets.Divider, a.renderFooter(st, inner))
	return widgets.Frame(rows, c.W, st.border)
}

func (a *App) renderFooter(st cardStyles, width int) string {
	stack := footerStack()
	for i, w := range stack.Widgets {
		label := w.(widgets.Label)
		label.Style = st.item
		if layout.Items()[i] == a.highlighted {
			label.Style = st.selected
		}
		stack.Widgets[i] = label
	}
	return stack.Render(width, 1)
}

func (a *App) renderHelp() string {
	return helpBarStyle.Render(padCell(a.help.ShortHelpView(a.keys.ShortHelp()), a.width-2))
}

func (a *App) renderStatus() string {
	return statusBarStyle.Render(padCell(a.status, a.width-2))
}

func padCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
