package editor

import (
	"log"

	"github.com/example/easymark/internal/annotate"
)

// Button is a set of pointer buttons.
type Button uint8

const (
	ButtonPrimary Button = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

type dragState int

const (
	idle dragState = iota
	drawing
	panning
)

type pointer struct {
	state dragState
	last  annotate.Point
}

func (p *pointer) reset() { p.state = idle }

// Press starts a gesture. button is the button that went down and buttons
// every button held after the press. Only a lone primary or middle button
// starts a gesture; anything else, including a press during a gesture,
// cancels back to idle. Positions are in viewport coordinates.
func (e *Editor) Press(pos annotate.Point, button, buttons Button) {
	if e.ptr.state != idle {
		e.cancel()
		return
	}
	if !e.surface.HasImage() {
		return
	}
	if buttons|button != button {
		return
	}
	switch {
	case button == ButtonPrimary && e.mode == ModeDraw:
		width := float64(e.penWidth) / e.surface.ScaleFactor()
		if err := e.surface.BeginStroke(e.toImage(pos), width); err != nil {
			log.Printf("begin stroke: %v", err)
			return
		}
		e.ptr.state = drawing
	case button == ButtonPrimary, button == ButtonMiddle:
		e.ptr.state = panning
	default:
		return
	}
	e.ptr.last = pos
}

// Move continues the current gesture. It is a no-op while idle.
func (e *Editor) Move(pos annotate.Point) {
	switch e.ptr.state {
	case drawing:
		if err := e.surface.ExtendStroke(e.toImage(pos)); err != nil {
			log.Printf("extend stroke: %v", err)
			e.ptr.reset()
			return
		}
	case panning:
		e.viewport.ScrollBy(e.ptr.last.Sub(pos))
		e.repaint()
	default:
		return
	}
	e.ptr.last = pos
}

// Release ends the current gesture. A stroke being drawn is committed.
func (e *Editor) Release(pos annotate.Point, button Button) {
	switch e.ptr.state {
	case drawing:
		if err := e.surface.FinalizeStroke(); err != nil {
			log.Printf("finalize stroke: %v", err)
		}
	case panning:
	default:
		return
	}
	e.ptr.reset()
}

// Wheel zooms by one step around pos: the image point under the cursor
// stays under the cursor. deltaSign > 0 zooms in.
func (e *Editor) Wheel(pos annotate.Point, deltaSign int) {
	if !e.surface.HasImage() || deltaSign == 0 {
		return
	}
	factor := ZoomStep
	if deltaSign < 0 {
		factor = 1 / ZoomStep
	}
	anchor := e.viewport.ToContent(pos)
	if err := e.surface.SetScaleFactor(e.surface.ScaleFactor() * factor); err != nil {
		log.Printf("zoom: %v", err)
		return
	}
	e.syncContentSize()
	e.viewport.ScrollBy(anchor.Mul(factor).Sub(anchor))
	e.scaleChanged()
}

func (e *Editor) cancel() {
	if e.ptr.state == drawing {
		e.surface.CancelStroke()
	}
	e.ptr.reset()
}

func (e *Editor) toImage(pos annotate.Point) annotate.Point {
	return e.surface.ViewToImage(e.viewport.ToContent(pos))
}
