package config

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/example/easymark/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Paste bool
	Copy  bool
}

// Config holds the application configuration.
type Config struct {
	Theme     string
	Mode      string // "draw" or "pan"; empty keeps the editor default
	PenWidth  int    // 0 keeps the editor default
	PenWidths []int
	PenColor  *color.RGBA
	Notify    Notify
	Themes    map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Notify: Notify{
			Paste: false,
			Copy:  false,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.Mode != "" {
		fmt.Fprintf(&sb, "mode = %s\n", c.Mode)
	}
	if c.PenWidth > 0 {
		fmt.Fprintf(&sb, "pen_width = %d\n", c.PenWidth)
	}
	if len(c.PenWidths) > 0 {
		fmt.Fprintf(&sb, "pen_widths = %s\n", FormatWidths(c.PenWidths))
	}
	if c.PenColor != nil {
		fmt.Fprintf(&sb, "pen_color = %s\n", theme.FormatColor(*c.PenColor))
	}
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "paste = %v\n", c.Notify.Paste)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		theme.Fields(t, func(field string, col color.RGBA) {
			fmt.Fprintf(&sb, "%s: %s\n", field, theme.FormatColor(col))
		})
		sb.WriteString("\n")
	}

	return sb.String()
}

// ParseWidths parses a comma separated list of positive pen widths.
func ParseWidths(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid pen width %q: %w", f, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("pen width must be positive: %d", n)
		}
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}

// FormatWidths is the inverse of ParseWidths.
func FormatWidths(ws []int) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, ",")
}
