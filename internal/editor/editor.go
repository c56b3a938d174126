// Package editor turns pointer, wheel and command input into changes of an
// annotate.Surface and reports the resulting state to listeners.
package editor

import (
	"image"
	"image/color"
	"log"

	"github.com/example/easymark/internal/annotate"
)

// ZoomStep is the scale multiplier applied per wheel notch.
const ZoomStep = 1.1

// Listener receives change notifications. Nil fields are skipped.
type Listener struct {
	ModeChanged     func(Mode)
	PenWidthChanged func(int)
	ScaleChanged    func(float64)
	Status          func(string)
	Repaint         func()
}

// Editor owns an annotation surface together with the mode, the pen width
// and the pointer gesture in progress.
//
// An Editor must only be used from one goroutine.
type Editor struct {
	surface   *annotate.Surface
	viewport  Viewport
	mode      Mode
	penWidths []int
	penWidth  int
	color     color.Color
	listeners []Listener
	ptr       pointer
}

// New returns an Editor without an image.
func New(opts ...Option) *Editor {
	e := &Editor{
		surface:   annotate.NewSurface(),
		mode:      ModeDraw,
		penWidths: append([]int(nil), DefaultPenWidths...),
		penWidth:  DefaultPenWidth,
		color:     annotate.DefaultColor,
	}
	for _, o := range opts {
		o(e)
	}
	if e.viewport == nil {
		e.viewport = NewScrollRegion(0, 0)
	}
	e.surface.SetColor(e.color)
	e.surface.OnChange = e.repaint
	return e
}

// AddListener registers l.
func (e *Editor) AddListener(l Listener) { e.listeners = append(e.listeners, l) }

// Surface gives read access to the annotation state for rendering.
func (e *Editor) Surface() *annotate.Surface { return e.surface }

// Viewport returns the viewport used for coordinate mapping.
func (e *Editor) Viewport() Viewport { return e.viewport }

func (e *Editor) HasImage() bool       { return e.surface.HasImage() }
func (e *Editor) ScaleFactor() float64 { return e.surface.ScaleFactor() }
func (e *Editor) Mode() Mode           { return e.mode }
func (e *Editor) PenWidth() int        { return e.penWidth }

// PenWidths returns the selectable pen widths.
func (e *Editor) PenWidths() []int { return append([]int(nil), e.penWidths...) }

// Dragging reports whether a pan or draw gesture is in progress.
func (e *Editor) Dragging() bool { return e.ptr.state != idle }

// SetImage replaces the base image. Strokes are discarded and the scale
// returns to 1.
func (e *Editor) SetImage(img image.Image) {
	old := e.surface.ScaleFactor()
	e.cancel()
	if err := e.surface.SetImage(img); err != nil {
		log.Printf("set image: %v", err)
		return
	}
	e.syncContentSize()
	if old != e.surface.ScaleFactor() {
		e.scaleChanged()
	}
}

// SetScaleFactor sets the display scale. Invalid values are logged and
// ignored.
func (e *Editor) SetScaleFactor(f float64) {
	old := e.surface.ScaleFactor()
	if err := e.surface.SetScaleFactor(f); err != nil {
		log.Printf("set scale: %v", err)
		return
	}
	if old == f {
		return
	}
	e.syncContentSize()
	e.scaleChanged()
}

// ResetScale shows the image at its actual size.
func (e *Editor) ResetScale() { e.SetScaleFactor(1) }

// SetPenWidth sets the displayed pen width for subsequent strokes.
func (e *Editor) SetPenWidth(w int) {
	if w <= 0 {
		log.Printf("set pen width: invalid width %d", w)
		return
	}
	if w == e.penWidth {
		return
	}
	e.penWidth = w
	for _, l := range e.listeners {
		if l.PenWidthChanged != nil {
			l.PenWidthChanged(w)
		}
	}
}

// StepPenWidth moves to the next (dir > 0) or previous (dir < 0) preset
// width. A width that is not a preset snaps to the nearest one in that
// direction.
func (e *Editor) StepPenWidth(dir int) {
	ws := e.penWidths
	switch {
	case dir > 0:
		for _, w := range ws {
			if w > e.penWidth {
				e.SetPenWidth(w)
				return
			}
		}
	case dir < 0:
		for i := len(ws) - 1; i >= 0; i-- {
			if ws[i] < e.penWidth {
				e.SetPenWidth(ws[i])
				return
			}
		}
	}
}

// SetMode changes the interaction mode. A drag already in progress keeps
// the mode it started with.
func (e *Editor) SetMode(m Mode) {
	if !m.valid() {
		log.Printf("set mode: invalid mode %d", int(m))
		return
	}
	if m == e.mode {
		return
	}
	e.mode = m
	for _, l := range e.listeners {
		if l.ModeChanged != nil {
			l.ModeChanged(m)
		}
	}
}

// ToggleMode switches between draw and pan.
func (e *Editor) ToggleMode() {
	if e.mode == ModeDraw {
		e.SetMode(ModePan)
	} else {
		e.SetMode(ModeDraw)
	}
}

// UndoLast removes the most recent stroke and abandons any gesture.
func (e *Editor) UndoLast() bool {
	e.ptr.reset()
	return e.surface.UndoLast()
}

// ClearAll removes every stroke.
func (e *Editor) ClearAll() bool {
	e.ptr.reset()
	return e.surface.ClearAll()
}

// ExportFlattened returns the image with all committed strokes burned in,
// or nil without an image.
func (e *Editor) ExportFlattened() *image.RGBA { return e.surface.ExportFlattened() }

// Announce reports a status message to listeners.
func (e *Editor) Announce(msg string) {
	for _, l := range e.listeners {
		if l.Status != nil {
			l.Status(msg)
		}
	}
}

func (e *Editor) syncContentSize() {
	w, h := e.surface.Size()
	e.viewport.SetContentSize(w, h)
}

func (e *Editor) scaleChanged() {
	f := e.surface.ScaleFactor()
	for _, l := range e.listeners {
		if l.ScaleChanged != nil {
			l.ScaleChanged(f)
		}
	}
}

func (e *Editor) repaint() {
	for _, l := range e.listeners {
		if l.Repaint != nil {
			l.Repaint()
		}
	}
}
