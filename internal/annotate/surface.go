package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// DefaultColor is the stroke colour used when none is configured.
var DefaultColor = color.RGBA{R: 0xff, A: 0xff}

// Surface holds the base image, the committed strokes, the stroke currently
// being drawn and the display scale. All stroke geometry is kept in image
// space so that zooming never touches it.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	base    *image.RGBA
	strokes []*Stroke
	active  *Stroke
	last    Point
	scale   float64
	color   color.RGBA

	// OnChange, if set, is called after every mutation that affects what
	// Render would draw.
	OnChange func()
}

// NewSurface returns an empty surface at scale 1.
func NewSurface() *Surface {
	return &Surface{scale: 1, color: DefaultColor}
}

func (s *Surface) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}

// SetImage replaces the base image with a copy of img and discards every
// stroke. The scale resets to 1.
func (s *Surface) SetImage(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrNoImage
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	s.base = rgba
	s.strokes = nil
	s.active = nil
	s.scale = 1
	s.changed()
	return nil
}

// HasImage reports whether a base image is set.
func (s *Surface) HasImage() bool { return s.base != nil }

// Image returns the base image without annotations. Callers must not
// modify it.
func (s *Surface) Image() *image.RGBA { return s.base }

// ScaleFactor returns the current display scale.
func (s *Surface) ScaleFactor() float64 { return s.scale }

// SetScaleFactor changes the display scale. Non-positive and non-finite
// values are rejected and the previous scale is kept.
func (s *Surface) SetScaleFactor(f float64) error {
	if !(f > 0) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScaleFactor, f)
	}
	if f == s.scale {
		return nil
	}
	s.scale = f
	s.changed()
	return nil
}

// ImageSize returns the unscaled base image size.
func (s *Surface) ImageSize() image.Point {
	if s.base == nil {
		return image.Point{}
	}
	return s.base.Bounds().Size()
}

// Size returns the scaled extent the surface occupies in view space.
func (s *Surface) Size() (w, h float64) {
	sz := s.ImageSize()
	return float64(sz.X) * s.scale, float64(sz.Y) * s.scale
}

// Color returns the stroke colour.
func (s *Surface) Color() color.RGBA { return s.color }

// SetColor changes the stroke colour for every stroke.
func (s *Surface) SetColor(c color.Color) {
	s.color = color.RGBAModel.Convert(c).(color.RGBA)
	s.changed()
}

// ViewToImage maps a surface-local position into image space.
func (s *Surface) ViewToImage(p Point) Point { return p.Div(s.scale) }

// ImageToView maps an image-space position into surface-local space.
func (s *Surface) ImageToView(p Point) Point { return p.Mul(s.scale) }

// BeginStroke starts a new active stroke at p (image space). penWidth is
// already in image units. Any unfinished stroke is dropped.
func (s *Surface) BeginStroke(p Point, penWidth float64) error {
	if s.base == nil {
		return ErrNoImage
	}
	st, err := newStrokeAt(p, penWidth)
	if err != nil {
		return err
	}
	s.active = st
	s.last = p
	s.changed()
	return nil
}

// ExtendStroke appends a segment from the last sampled position to p.
func (s *Surface) ExtendStroke(p Point) error {
	if s.active == nil {
		return ErrNoActiveStroke
	}
	if err := s.active.Append(s.last, p); err != nil {
		return err
	}
	s.last = p
	s.changed()
	return nil
}

// FinalizeStroke commits the active stroke.
func (s *Surface) FinalizeStroke() error {
	if s.active == nil {
		return ErrNoActiveStroke
	}
	s.active.Finalize()
	s.strokes = append(s.strokes, s.active)
	s.active = nil
	s.changed()
	return nil
}

// CancelStroke drops the active stroke without committing it.
func (s *Surface) CancelStroke() bool {
	if s.active == nil {
		return false
	}
	s.active = nil
	s.changed()
	return true
}

// UndoLast removes the most recently committed stroke. An active stroke is
// dropped as well. It reports whether anything changed.
func (s *Surface) UndoLast() bool {
	changed := s.active != nil
	s.active = nil
	if n := len(s.strokes); n > 0 {
		s.strokes[n-1] = nil
		s.strokes = s.strokes[:n-1]
		changed = true
	}
	if changed {
		s.changed()
	}
	return changed
}

// ClearAll removes every stroke. It reports whether anything changed.
func (s *Surface) ClearAll() bool {
	if len(s.strokes) == 0 && s.active == nil {
		return false
	}
	s.strokes = nil
	s.active = nil
	s.changed()
	return true
}

// Strokes returns the committed strokes, oldest first.
func (s *Surface) Strokes() []*Stroke {
	out := make([]*Stroke, len(s.strokes))
	copy(out, s.strokes)
	return out
}

// ActiveStroke returns the stroke being drawn, or nil.
func (s *Surface) ActiveStroke() *Stroke { return s.active }

// Render draws the base image scaled to Size, then committed strokes in
// order, then the active stroke.
func (s *Surface) Render(c Canvas) {
	if s.base == nil {
		return
	}
	w, h := s.Size()
	c.DrawImageRegion(image.Rect(0, 0, int(math.Round(w)), int(math.Round(h))), s.base)
	s.renderStrokes(c, s.scale)
}

func (s *Surface) renderStrokes(c Canvas, scale float64) {
	for _, st := range s.strokes {
		st.Render(c, scale, s.color)
	}
	if s.active != nil {
		s.active.Render(c, scale, s.color)
	}
}

// ExportFlattened returns a new image at the base image's native size with
// every committed stroke drawn at scale 1. It returns nil without an image.
func (s *Surface) ExportFlattened() *image.RGBA {
	if s.base == nil {
		return nil
	}
	out := image.NewRGBA(s.base.Bounds())
	draw.Draw(out, out.Bounds(), s.base, image.Point{}, draw.Src)
	c := NewRGBACanvas(out, image.Point{})
	for _, st := range s.strokes {
		st.Render(c, 1, s.color)
	}
	return out
}
