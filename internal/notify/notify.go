package notify

import (
	"fmt"
	"image"
	"log"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/example/easymark/internal/platform"
)

// previewSize bounds the notification icon in pixels.
const previewSize = 256

// Event identifies a notification trigger.
type Event string

const (
	// EventPaste emits a notification when an image is taken from the clipboard.
	EventPaste Event = "paste"
	// EventCopy emits a notification when the annotated image is copied.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title   string
	Timeout time.Duration
	Events  map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title:   "easymark",
		Timeout: 7 * time.Second,
		Events: map[Event]EventPreference{
			EventPaste: {Template: "Pasted %s from clipboard"},
			EventCopy:  {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads configuration from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("EASYMARK_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("EASYMARK_NOTIFY_PASTE_TEXT", EventPaste)
	apply("EASYMARK_NOTIFY_COPY_TEXT", EventCopy)
	return prefs
}

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    func(title, body string, opts platform.Options) error
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Timeout: prefs.Timeout, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Enabled reports whether event would produce a notification.
func (n *Notifier) Enabled(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

// Paste announces a pasted image, using it as the notification icon.
func (n *Notifier) Paste(img image.Image) {
	n.withPreview(EventPaste, img)
}

// Copy announces that img was placed on the clipboard.
func (n *Notifier) Copy(img image.Image) {
	n.withPreview(EventCopy, img)
}

func (n *Notifier) withPreview(event Event, img image.Image) {
	if !n.Enabled(event) {
		return
	}
	detail := "image"
	opts := platform.Options{Timeout: n.prefs.Timeout, Transient: true}
	if img != nil {
		b := img.Bounds()
		detail = fmt.Sprintf("%dx%d image", b.Dx(), b.Dy())
		if path, cleanup, err := createPreview(img); err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(event, detail, opts)
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) template(event Event) string {
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "easymark-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	b := img.Bounds()
	if b.Dx() > previewSize || b.Dy() > previewSize {
		img = imaging.Fit(img, previewSize, previewSize, imaging.Lanczos)
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
