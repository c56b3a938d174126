package config

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
mode = Pan
pen_width = 7
pen_widths = 10, 2, 4
pen_color = orange

[notify]
paste = true
copy = false

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.Mode != "pan" {
		t.Errorf("Expected mode 'pan', got %q", cfg.Mode)
	}
	if cfg.PenWidth != 7 {
		t.Errorf("Expected pen_width 7, got %d", cfg.PenWidth)
	}
	if !reflect.DeepEqual(cfg.PenWidths, []int{2, 4, 10}) {
		t.Errorf("Unexpected pen_widths %v", cfg.PenWidths)
	}
	if cfg.PenColor == nil || *cfg.PenColor != (color.RGBA{0xff, 0xa5, 0x00, 0xff}) {
		t.Errorf("Unexpected pen_color %v", cfg.PenColor)
	}
	if !cfg.Notify.Paste {
		t.Error("Expected notify.paste to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}

	theme, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if theme.Background.R != 0x11 || theme.Background.G != 0x11 || theme.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", theme.Background)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"mode = erase",
		"pen_width = 0",
		"pen_widths = 3,x",
		"pen_color = #12",
		"[notify]\npaste = maybe",
		"[theme.bad]\nBackground = #XYZXYZ",
	} {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
mode = draw
pen_width = 14
pen_widths = 2,14,30
pen_color = #00FF0080

[notify]
paste = true
copy = true

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme || cfg.Mode != cfg2.Mode || cfg.PenWidth != cfg2.PenWidth {
		t.Errorf("Root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if !reflect.DeepEqual(cfg.PenWidths, cfg2.PenWidths) {
		t.Errorf("PenWidths mismatch: %v vs %v", cfg.PenWidths, cfg2.PenWidths)
	}
	if *cfg.PenColor != *cfg2.PenColor {
		t.Errorf("PenColor mismatch: %v vs %v", *cfg.PenColor, *cfg2.PenColor)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverrideAndSave(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "custom.rc")
	if err := os.WriteFile(path, []byte("pen_width = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader("v1.0.0", path)
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PenWidth != 3 {
		t.Errorf("Expected pen_width 3, got %d", cfg.PenWidth)
	}

	cfg.PenWidth = 10
	saved, err := l.Save(cfg)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved != path {
		t.Errorf("Expected save to %s, got %s", path, saved)
	}

	fresh := NewLoader("v1.0.0", "")
	if p := fresh.GetConfigPath(); p != "" {
		t.Errorf("Expected no config path, got %s", p)
	}
	saved, err = fresh.Save(cfg)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if want := filepath.Join(dir, ".config", "easymark", "config.rc"); saved != want {
		t.Errorf("Expected %s, got %s", want, saved)
	}
	again, err := fresh.Load()
	if err != nil || again.PenWidth != 10 {
		t.Errorf("Reload = %+v, %v", again, err)
	}
}

func TestParseWidths(t *testing.T) {
	ws, err := ParseWidths(" 5,3 , ,20")
	if err != nil {
		t.Fatal(err)
	}
	if FormatWidths(ws) != "3,5,20" {
		t.Errorf("Unexpected widths %v", ws)
	}
}
