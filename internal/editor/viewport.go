package editor

import (
	"math"

	"github.com/example/easymark/internal/annotate"
)

// Viewport maps view positions into surface-local coordinates and owns the
// scroll offsets.
type Viewport interface {
	ToContent(p annotate.Point) annotate.Point
	ScrollBy(d annotate.Point)
	SetContentSize(w, h float64)
}

// ScrollRegion is a Viewport showing a content area through a window of a
// fixed size. Offsets are clamped so the content never scrolls past its
// edges, and content smaller than the window is centred.
type ScrollRegion struct {
	viewW, viewH       float64
	contentW, contentH float64
	offset             annotate.Point
}

// NewScrollRegion returns a region with the given window size and no content.
func NewScrollRegion(w, h float64) *ScrollRegion {
	return &ScrollRegion{viewW: w, viewH: h}
}

// Resize changes the window size.
func (r *ScrollRegion) Resize(w, h float64) {
	r.viewW, r.viewH = w, h
	r.clamp()
}

// ViewSize returns the window size.
func (r *ScrollRegion) ViewSize() (w, h float64) { return r.viewW, r.viewH }

func (r *ScrollRegion) SetContentSize(w, h float64) {
	r.contentW, r.contentH = w, h
	r.clamp()
}

// ContentSize returns the content size.
func (r *ScrollRegion) ContentSize() (w, h float64) { return r.contentW, r.contentH }

// Offset returns the scroll offsets.
func (r *ScrollRegion) Offset() annotate.Point { return r.offset }

// SetOffset moves to p, clamped to the scrollable range.
func (r *ScrollRegion) SetOffset(p annotate.Point) {
	r.offset = p
	r.clamp()
}

func (r *ScrollRegion) ScrollBy(d annotate.Point) {
	r.SetOffset(r.offset.Add(d))
}

// Max returns the largest allowed offsets.
func (r *ScrollRegion) Max() annotate.Point {
	return annotate.Pt(math.Max(0, r.contentW-r.viewW), math.Max(0, r.contentH-r.viewH))
}

// Origin is where content (0,0) sits in the window when nothing is scrolled.
// It is non-zero only along axes where the content is smaller than the window.
func (r *ScrollRegion) Origin() annotate.Point {
	return annotate.Pt(math.Max(0, (r.viewW-r.contentW)/2), math.Max(0, (r.viewH-r.contentH)/2))
}

func (r *ScrollRegion) ToContent(p annotate.Point) annotate.Point {
	return p.Sub(r.Origin()).Add(r.offset)
}

// ToView is the inverse of ToContent.
func (r *ScrollRegion) ToView(p annotate.Point) annotate.Point {
	return p.Sub(r.offset).Add(r.Origin())
}

func (r *ScrollRegion) clamp() {
	m := r.Max()
	r.offset.X = math.Min(math.Max(r.offset.X, 0), m.X)
	r.offset.Y = math.Min(math.Max(r.offset.Y, 0), m.Y)
}
