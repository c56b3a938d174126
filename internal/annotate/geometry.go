package annotate

import (
	"image"
	"math"
)

// Point is a 2D coordinate. Depending on context it lives in image space
// (unscaled, origin at the image's top-left) or in view space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul scales both components by k.
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Div divides both components by k.
func (p Point) Div(k float64) Point { return Point{p.X / k, p.Y / k} }

// Image rounds p to the nearest integer pixel position.
func (p Point) Image() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// FromImage converts an integer pixel position to a Point.
func FromImage(p image.Point) Point { return Point{float64(p.X), float64(p.Y)} }

// Segment is one straight piece of a stroke, in image space.
type Segment struct {
	From, To Point
}

// Rect is an axis-aligned rectangle with float coordinates.
type Rect struct {
	Min, Max Point
}

// Image rounds r to integer pixel bounds.
func (r Rect) Image() image.Rectangle {
	return image.Rectangle{Min: r.Min.Image(), Max: r.Max.Image()}
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }
