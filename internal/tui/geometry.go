package tui

import (
	"github.com/jask/holdmenu/internal/layout"
	"github.com/jask/holdmenu/widgets"
)

// Rect is a half-open cell rectangle used for drawing.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Contains(p layout.Point) bool {
	return !r.Empty() && p.PageX >= r.X && p.PageX < r.X+r.W && p.PageY >= r.Y && p.PageY < r.Y+r.H
}

const (
	chromeLines = 2 // help + status at the bottom

	thumbW = 16
	thumbH = 8

	// border(2) + header + divider + picture + divider + footer
	minCardH = 7
)

type itemCell struct {
	ID  layout.ItemID
	Box layout.BoundingBox
}

type geometry struct {
	Width, Height int
	Thumb         Rect
	Card          Rect
	Picture       Rect
	Footer        Rect
	Items         []itemCell
}

func footerStack() widgets.HStack {
	ids := layout.Items()
	ws := make([]widgets.Widget, len(ids))
	for i, id := range ids {
		ws[i] = widgets.Label{Text: id.Label()}
	}
	return widgets.HStack{Widgets: ws}
}

func minCardW() int {
	w := 0
	for _, id := range layout.Items() {
		w = max(w, len(id.Label()))
	}
	return w*len(layout.Items()) + 2
}

// computeGeometry lays the screen out: a thumbnail centred in the area above
// the chrome lines and a card sized by percentage, also centred.
func computeGeometry(width, height, widthPct, heightPct int) geometry {
	g := geometry{Width: width, Height: height}
	usable := height - chromeLines
	if width <= 0 || usable <= 0 {
		return g
	}

	tw, th := min(thumbW, width), min(thumbH, usable)
	if tw >= 4 && th >= 3 {
		g.Thumb = Rect{X: (width - tw) / 2, Y: (usable - th) / 2, W: tw, H: th}
	}

	cw, ch := width*widthPct/100, usable*heightPct/100
	if cw < minCardW() || ch < minCardH {
		return g
	}
	g.Card = Rect{X: (width - cw) / 2, Y: (usable - ch) / 2, W: cw, H: ch}
	g.Picture = Rect{X: g.Card.X + 1, Y: g.Card.Y + 3, W: cw - 2, H: ch - minCardH + 1}
	g.Footer = Rect{X: g.Card.X + 1, Y: g.Card.Y + ch - 2, W: cw - 2, H: 1}

	// Boxes span cell edges: w cells from x reach x+w-1, and containment is
	// inclusive, so each box covers only its own cells.
	offset := 0
	for i, w := range footerStack().Widths(g.Footer.W) {
		g.Items = append(g.Items, itemCell{
			ID: layout.Items()[i],
			Box: layout.BoundingBox{
				X:      offset,
				Y:      0,
				Width:  w - 1,
				Height: g.Footer.H - 1,
				PageX:  g.Footer.X + offset,
				PageY:  g.Footer.Y,
			},
		})
		offset += w
	}
	return g
}
