package layout

// ItemID names one of the actions in the popup footer.
type ItemID string

const (
	None    ItemID = ""
	Like    ItemID = "like"
	Comment ItemID = "comment"
	Share   ItemID = "share"
)

var items = []ItemID{Like, Comment, Share}

// Items returns the footer actions in panel order.
func Items() []ItemID {
	out := make([]ItemID, len(items))
	copy(out, items)
	return out
}

func (id ItemID) Valid() bool {
	switch id {
	case Like, Comment, Share:
		return true
	}
	return false
}

// Label is the text shown for the item in the footer.
func (id ItemID) Label() string {
	switch id {
	case Like:
		return "Like"
	case Comment:
		return "Comment"
	case Share:
		return "Share"
	}
	return ""
}

func (id ItemID) String() string {
	if id == None {
		return "none"
	}
	return string(id)
}

// BoundingBox is the last measured rectangle of an item. X and Y are offsets
// inside the parent row; PageX, PageY, Width and Height are screen cells.
type BoundingBox struct {
	X, Y          int
	Width, Height int
	PageX, PageY  int
}

// Contains reports whether p lies inside the box. All four edges are inclusive.
func (b BoundingBox) Contains(p Point) bool {
	return b.PageX <= p.PageX && p.PageX <= b.PageX+b.Width &&
		b.PageY <= p.PageY && p.PageY <= b.PageY+b.Height
}

// Point is a pointer sample in screen cells.
type Point struct {
	PageX, PageY int
}

type Entry struct {
	ID  ItemID
	Box BoundingBox
}

// Registry holds the latest bounding box per item, ordered by first record.
// It is owned by a single widget and is not safe for concurrent use.
type Registry struct {
	entries []Entry
	index   map[ItemID]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[ItemID]int, len(items))}
}

// Record stores box for id. Overwriting keeps the original position so the
// first-measured item keeps priority in HitTest.
func (r *Registry) Record(id ItemID, box BoundingBox) {
	if !id.Valid() {
		return
	}
	if i, ok := r.index[id]; ok {
		r.entries[i].Box = box
		return
	}
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, Entry{ID: id, Box: box})
}

// Measure returns the callback the presentation layer invokes after each
// layout pass of item id.
func (r *Registry) Measure(id ItemID) func(BoundingBox) {
	return func(box BoundingBox) {
		r.Record(id, box)
	}
}

// Forget drops the entry for id. A later Record appends it at the end.
func (r *Registry) Forget(id ItemID) {
	i, ok := r.index[id]
	if !ok {
		return
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].ID] = j
	}
}

func (r *Registry) Lookup(id ItemID) (BoundingBox, bool) {
	i, ok := r.index[id]
	if !ok {
		return BoundingBox{}, false
	}
	return r.entries[i].Box, true
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Snapshot returns a copy of the entries in insertion order.
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// HitTest returns the first entry whose box contains p, or None.
func HitTest(entries []Entry, p Point) ItemID {
	for _, e := range entries {
		if e.Box.Contains(p) {
			return e.ID
		}
	}
	return None
}
