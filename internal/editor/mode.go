package editor

import (
	"fmt"
	"strings"
)

// Mode selects what a primary-button drag does.
type Mode int

const (
	// ModeDraw makes a primary drag draw a stroke.
	ModeDraw Mode = iota
	// ModePan makes a primary drag scroll the view.
	ModePan
)

func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "Draw"
	case ModePan:
		return "Pan"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names used in configuration files and flags.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "draw", "pen":
		return ModeDraw, nil
	case "pan", "move":
		return ModePan, nil
	}
	return ModeDraw, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) valid() bool { return m == ModeDraw || m == ModePan }
