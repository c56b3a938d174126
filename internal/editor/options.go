package editor

import "image/color"

// DefaultPenWidths are the selectable pen widths in view pixels.
var DefaultPenWidths = []int{2, 3, 5, 7, 10, 14, 20}

// DefaultPenWidth is the initial pen width.
const DefaultPenWidth = 5

// Option configures an Editor.
type Option func(*Editor)

// WithPenWidths replaces the selectable pen widths. Non-positive entries are
// ignored; an empty result keeps the defaults.
func WithPenWidths(ws ...int) Option {
	return func(e *Editor) {
		var keep []int
		for _, w := range ws {
			if w > 0 {
				keep = append(keep, w)
			}
		}
		if len(keep) > 0 {
			e.penWidths = keep
		}
	}
}

// WithPenWidth sets the initial pen width.
func WithPenWidth(w int) Option {
	return func(e *Editor) {
		if w > 0 {
			e.penWidth = w
		}
	}
}

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(e *Editor) {
		if m.valid() {
			e.mode = m
		}
	}
}

// WithColor sets the stroke colour.
func WithColor(c color.Color) Option {
	return func(e *Editor) {
		if c != nil {
			e.color = c
		}
	}
}

// WithViewport replaces the default scroll region.
func WithViewport(v Viewport) Option {
	return func(e *Editor) {
		if v != nil {
			e.viewport = v
		}
	}
}

// WithListener registers l before any state is reported.
func WithListener(l Listener) Option {
	return func(e *Editor) { e.listeners = append(e.listeners, l) }
}
