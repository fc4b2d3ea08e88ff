package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay composites overlay on top of base with its top-left corner at
// cell (x, y). Both are line-based grids; the result has exactly height lines
// of width cells. Overlay cells that fall off the canvas are dropped.
func Overlay(base, overlay string, x, y, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := splitToLines(base, height)
	for i := range baseLines {
		baseLines[i] = padRightANSI(baseLines[i], width)
	}
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= height || x >= width {
			continue
		}
		target := baseLines[row]
		segment := padRight(line, overlayWidth)
		if x < 0 {
			segment = dropColumns(segment, -x)
		}
		start := max(0, x)
		left := ansi.Truncate(target, start, "")
		segment = ansi.Truncate(segment, width-start, "")
		end := start + ansi.StringWidth(segment)
		right := ansi.TruncateLeft(target, end, "")
		baseLines[row] = left + segment + right
	}
	return strings.Join(baseLines, "\n")
}

// Canvas returns height lines of width cells rendered with fill.
func Canvas(width, height int, fill func(string) string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	if fill != nil {
		line = fill(line)
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
