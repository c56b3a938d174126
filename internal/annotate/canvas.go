package annotate

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Canvas is the drawing target used by Stroke and Surface rendering.
// Coordinates are surface-local: image space multiplied by the scale factor.
type Canvas interface {
	// DrawImageRegion draws src stretched into r.
	DrawImageRegion(r image.Rectangle, src image.Image)
	// DrawLine draws a round-capped line of the given width.
	DrawLine(from, to Point, width float64, col color.Color)
}

// RGBACanvas draws onto an *image.RGBA. Surface-local (0,0) lands on Origin
// in the destination; nothing is drawn outside the destination bounds.
type RGBACanvas struct {
	dst    *image.RGBA
	Origin image.Point
	z      *vector.Rasterizer
}

// NewRGBACanvas wraps dst. Pass dst.SubImage(...) to restrict drawing to a
// region.
func NewRGBACanvas(dst *image.RGBA, origin image.Point) *RGBACanvas {
	return &RGBACanvas{dst: dst, Origin: origin}
}

// Image returns the destination image.
func (c *RGBACanvas) Image() *image.RGBA { return c.dst }

func (c *RGBACanvas) DrawImageRegion(r image.Rectangle, src image.Image) {
	r = r.Add(c.Origin)
	if r.Empty() || !r.Overlaps(c.dst.Bounds()) {
		return
	}
	sb := src.Bounds()
	if r.Dx() == sb.Dx() && r.Dy() == sb.Dy() {
		draw.Draw(c.dst, r, src, sb.Min, draw.Over)
		return
	}
	xdraw.NearestNeighbor.Scale(c.dst, r, src, sb, xdraw.Over, nil)
}

func (c *RGBACanvas) DrawLine(from, to Point, width float64, col color.Color) {
	if !(width > 0) || !finite(from) || !finite(to) {
		return
	}
	o := FromImage(c.Origin)
	from, to = from.Add(o), to.Add(o)
	r := width / 2
	box := image.Rect(
		int(math.Floor(math.Min(from.X, to.X)-r)),
		int(math.Floor(math.Min(from.Y, to.Y)-r)),
		int(math.Ceil(math.Max(from.X, to.X)+r)),
		int(math.Ceil(math.Max(from.Y, to.Y)+r)),
	).Intersect(c.dst.Bounds())
	if box.Empty() {
		return
	}
	if c.z == nil {
		c.z = vector.NewRasterizer(box.Dx(), box.Dy())
	} else {
		c.z.Reset(box.Dx(), box.Dy())
	}
	c.z.DrawOp = draw.Over
	shift := FromImage(box.Min)
	capsule(c.z, from.Sub(shift), to.Sub(shift), r)
	c.z.Draw(c.dst, box, image.NewUniform(col), image.Point{})
}

// capsule adds the outline of a line with round caps, or a circle when the
// endpoints coincide.
func capsule(z *vector.Rasterizer, a, b Point, r float64) {
	steps := arcSteps(r)
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l < 1e-9 {
		for i := 0; i < 2*steps; i++ {
			t := math.Pi * float64(i) / float64(steps)
			x, y := a.X+r*math.Cos(t), a.Y+r*math.Sin(t)
			if i == 0 {
				z.MoveTo(float32(x), float32(y))
			} else {
				z.LineTo(float32(x), float32(y))
			}
		}
		z.ClosePath()
		return
	}
	n := Point{-d.Y / l, d.X / l}
	a0 := math.Atan2(n.Y, n.X)
	start := a.Add(n.Mul(r))
	z.MoveTo(float32(start.X), float32(start.Y))
	// cap around b from +n to -n
	for i := 0; i <= steps; i++ {
		t := a0 - math.Pi*float64(i)/float64(steps)
		z.LineTo(float32(b.X+r*math.Cos(t)), float32(b.Y+r*math.Sin(t)))
	}
	// cap around a from -n back to +n
	for i := 0; i <= steps; i++ {
		t := a0 - math.Pi - math.Pi*float64(i)/float64(steps)
		z.LineTo(float32(a.X+r*math.Cos(t)), float32(a.Y+r*math.Sin(t)))
	}
	z.ClosePath()
}

func arcSteps(r float64) int {
	n := int(math.Ceil(r))
	if n < 4 {
		return 4
	}
	if n > 32 {
		return 32
	}
	return n
}
