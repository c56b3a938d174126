package appstate

import (
	"fmt"
	"math"
	"time"

	"github.com/example/easymark/internal/editor"
)

// statusTimeout is how long a transient status message stays visible.
const statusTimeout = 7 * time.Second

// statusBar mirrors the editor state shown at the bottom of the window.
type statusBar struct {
	mode         editor.Mode
	penWidth     int
	scale        float64
	message      string
	messageUntil time.Time
}

func newStatusBar(ed *editor.Editor) *statusBar {
	return &statusBar{mode: ed.Mode(), penWidth: ed.PenWidth(), scale: ed.ScaleFactor()}
}

// listener keeps the bar in sync with ed. onMessage runs after a message is
// recorded.
func (s *statusBar) listener(onMessage func(string)) editor.Listener {
	return editor.Listener{
		ModeChanged:     func(m editor.Mode) { s.mode = m },
		PenWidthChanged: func(w int) { s.penWidth = w },
		ScaleChanged:    func(f float64) { s.scale = f },
		Status: func(msg string) {
			s.show(msg, time.Now())
			if onMessage != nil {
				onMessage(msg)
			}
		},
	}
}

func (s *statusBar) show(msg string, now time.Time) {
	s.message = msg
	s.messageUntil = now.Add(statusTimeout)
}

// current returns the message still on display at now, if any.
func (s *statusBar) current(now time.Time) string {
	if s.message == "" || !now.Before(s.messageUntil) {
		return ""
	}
	return s.message
}

func (s *statusBar) labels() []string {
	return []string{
		fmt.Sprintf("Mode: %s", s.mode),
		fmt.Sprintf("Pen width: %dpx", s.penWidth),
		fmt.Sprintf("Scale: %d%%", int(math.Round(s.scale*100))),
	}
}
