package annotate

import (
	"fmt"
	"image/color"
	"math"
)

// Stroke is one freehand mark: an ordered list of segments in image space
// drawn with a single pen width. Segments are appended while the gesture is
// in progress and never change afterwards.
type Stroke struct {
	width     float64
	origin    Point
	hasOrigin bool
	segments  []Segment
	finalized bool
}

// NewStroke returns an empty stroke with the given pen width in image units.
func NewStroke(width float64) (*Stroke, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: pen width %v", ErrInvalidGeometry, width)
	}
	return &Stroke{width: width}, nil
}

// newStrokeAt starts a stroke at p so that a gesture without movement still
// leaves a dot.
func newStrokeAt(p Point, width float64) (*Stroke, error) {
	s, err := NewStroke(width)
	if err != nil {
		return nil, err
	}
	s.origin = p
	s.hasOrigin = true
	return s, nil
}

// Append adds the segment p1→p2.
func (s *Stroke) Append(p1, p2 Point) error {
	if s.finalized {
		return fmt.Errorf("%w: stroke is finalized", ErrInvalidGeometry)
	}
	if !finite(p1) || !finite(p2) {
		return fmt.Errorf("%w: non-finite point", ErrInvalidGeometry)
	}
	if len(s.segments) == 0 && !s.hasOrigin {
		s.origin = p1
		s.hasOrigin = true
	}
	s.segments = append(s.segments, Segment{From: p1, To: p2})
	return nil
}

// Finalize freezes the stroke. Further Append calls fail.
func (s *Stroke) Finalize() { s.finalized = true }

// Finalized reports whether Finalize has been called.
func (s *Stroke) Finalized() bool { return s.finalized }

// Width returns the pen width in image units.
func (s *Stroke) Width() float64 { return s.width }

// Len returns the number of segments.
func (s *Stroke) Len() int { return len(s.segments) }

// Segments returns a copy of the stroke's segments.
func (s *Stroke) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Render replays the stroke onto c with every coordinate and the pen width
// multiplied by scale.
func (s *Stroke) Render(c Canvas, scale float64, col color.Color) {
	w := s.width * scale
	if len(s.segments) == 0 {
		if s.hasOrigin {
			p := s.origin.Mul(scale)
			c.DrawLine(p, p, w, col)
		}
		return
	}
	for _, seg := range s.segments {
		c.DrawLine(seg.From.Mul(scale), seg.To.Mul(scale), w, col)
	}
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
