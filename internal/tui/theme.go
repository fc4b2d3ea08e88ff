package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/jask/holdmenu/internal/config"
	"github.com/jask/holdmenu/widgets"
)

// ---------------------------------------------------------------------------
// Catppuccin palette for the chrome around the card
// ---------------------------------------------------------------------------

const (
	colorBase     = "#1e1e2e"
	colorMantle   = "#181825"
	colorSurface0 = "#313244"
	colorOverlay1 = "#7f849c"
	colorBlue     = "#89b4fa"
	colorGreen    = "#a6e3a1"
	colorLavender = "#b4befe"
)

type theme struct {
	backdrop string
	card     string
	text     string
	accent   string
}

// probeBackground asks the terminal for its background colour.
var probeBackground = func() termenv.Color {
	return termenv.NewOutput(os.Stdout).BackgroundColor()
}

func newTheme(cfg config.ThemeConfig) theme {
	t := theme{
		backdrop: cfg.Backdrop,
		card:     cfg.Card,
		text:     cfg.Text,
		accent:   cfg.Accent,
	}
	if strings.EqualFold(strings.TrimSpace(t.backdrop), "auto") || t.backdrop == "" {
		t.backdrop = backdropFromTerminal()
	}
	return t
}

func backdropFromTerminal() string {
	c := probeBackground()
	if c == nil {
		return colorBase
	}
	if _, ok := c.(termenv.NoColor); ok {
		return colorBase
	}
	rgb := termenv.ConvertToRGB(c)
	if rgb == (colorful.Color{}) {
		return colorBase
	}
	return rgb.Hex()
}

var (
	statusBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen)).Background(lipgloss.Color(colorSurface0)).Padding(0, 1)
	helpBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorOverlay1)).Background(lipgloss.Color(colorMantle)).Padding(0, 1)
	thumbStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlue))
	thumbBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorLavender))
)

// cardStyles are the card colours faded toward the backdrop by opacity.
type cardStyles struct {
	border   lipgloss.Style
	body     lipgloss.Style
	header   lipgloss.Style
	picture  lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
}

func (t theme) faded(opacity float64) cardStyles {
	bg := widgets.Fade(t.card, t.backdrop, opacity)
	fg := widgets.Fade(t.text, t.backdrop, opacity)
	body := lipgloss.NewStyle().Foreground(fg).Background(bg)
	return cardStyles{
		border:   body,
		body:     body,
		header:   body.Bold(true),
		picture:  lipgloss.NewStyle().Foreground(widgets.Fade(colorBlue, t.backdrop, opacity)).Background(bg),
		item:     body,
		selected: body.Bold(true).Foreground(widgets.Fade(t.accent, t.backdrop, opacity)),
	}
}

func (t theme) backdropStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(t.backdrop))
}
