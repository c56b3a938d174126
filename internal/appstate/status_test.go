package appstate

import (
	"reflect"
	"testing"
	"time"

	"github.com/example/easymark/internal/editor"
)

func TestStatusBarFollowsEditor(t *testing.T) {
	ed := editor.New()
	bar := newStatusBar(ed)
	var logged []string
	ed.AddListener(bar.listener(func(msg string) { logged = append(logged, msg) }))

	want := []string{"Mode: Draw", "Pen width: 5px", "Scale: 100%"}
	if got := bar.labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}

	ed.ToggleMode()
	ed.SetPenWidth(14)
	ed.SetScaleFactor(1.1 * 1.1)
	want = []string{"Mode: Pan", "Pen width: 14px", "Scale: 121%"}
	if got := bar.labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}

	ed.Announce("hello")
	if len(logged) != 1 || logged[0] != "hello" {
		t.Fatalf("message callback not called: %v", logged)
	}
}

func TestStatusMessageExpires(t *testing.T) {
	var bar statusBar
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if bar.current(now) != "" {
		t.Fatalf("expected no message")
	}
	bar.show("Image pasted from clipboard", now)
	if got := bar.current(now.Add(6 * time.Second)); got != "Image pasted from clipboard" {
		t.Fatalf("message should still show, got %q", got)
	}
	if got := bar.current(now.Add(statusTimeout)); got != "" {
		t.Fatalf("message should expire, got %q", got)
	}
}
