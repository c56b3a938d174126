package appstate

import (
	"image"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/easymark/internal/annotate"
	"github.com/example/easymark/internal/clipboard"
	"github.com/example/easymark/internal/editor"
	"github.com/example/easymark/internal/notify"
	"github.com/example/easymark/internal/theme"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	maxWidth      = 1280
	maxHeight     = 800
)

// AppState holds the editor and the collaborators of the window.
type AppState struct {
	Editor    *editor.Editor
	Clipboard clipboard.Provider
	Notifier  *notify.Notifier
	Theme     *theme.Theme
	Title     string
	// Image, if set, is loaded when the window opens.
	Image image.Image

	region     *editor.ScrollRegion
	editorOpts []editor.Option

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithEditorOptions configures the editor created by New.
func WithEditorOptions(opts ...editor.Option) Option {
	return func(a *AppState) { a.editorOpts = append(a.editorOpts, opts...) }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(p clipboard.Provider) Option { return func(a *AppState) { a.Clipboard = p } }

// WithNotifier enables desktop notifications for paste and copy.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithTheme sets the colour theme.
func WithTheme(t *theme.Theme) Option {
	return func(a *AppState) {
		if t != nil {
			a.Theme = t
		}
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithImage sets the image shown when the window opens.
func WithImage(img image.Image) Option { return func(a *AppState) { a.Image = img } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Clipboard: clipboard.System(),
		Theme:     theme.Default(),
		Title:     "easymark",
	}
	for _, o := range opts {
		o(a)
	}
	a.region = editor.NewScrollRegion(defaultWidth, defaultHeight-statusHeight)
	a.Editor = editor.New(append(a.editorOpts, editor.WithViewport(a.region))...)
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main runs the window until it is closed or the quit action fires. Every
// editor call happens on this goroutine.
func (a *AppState) Main(s screen.Screen) {
	defer a.notifyClose()

	width, height := initialSize(a.Image)
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.Title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()

	ed := a.Editor
	a.region.Resize(float64(width), float64(max(0, height-statusHeight)))

	// pending coalesces repaint requests until the next paint event.
	pending := false
	requestPaint := func() {
		if pending {
			return
		}
		pending = true
		w.Send(paint.Event{})
	}

	status := newStatusBar(ed)
	ed.AddListener(status.listener(func(msg string) {
		log.Print(msg)
		time.AfterFunc(statusTimeout, func() { w.Send(paint.Event{}) })
	}))
	ed.AddListener(editor.Listener{
		ModeChanged:     func(editor.Mode) { requestPaint() },
		PenWidthChanged: func(int) { requestPaint() },
		ScaleChanged:    func(float64) { requestPaint() },
		Status:          func(string) { requestPaint() },
		Repaint:         requestPaint,
	})

	if a.Image != nil {
		ed.SetImage(a.Image)
	}
	if !ed.HasImage() {
		ed.Announce(msgWelcome)
	}

	quit := false
	centre := func() annotate.Point {
		vw, vh := a.region.ViewSize()
		return annotate.Pt(vw/2, vh/2)
	}
	actions := map[string]func(){
		actionPaste: func() {
			if img := Paste(ed, a.Clipboard); img != nil && a.Notifier.Enabled(notify.EventPaste) {
				go a.Notifier.Paste(img)
			}
		},
		actionCopy: func() {
			if flat := Copy(ed, a.Clipboard); flat != nil && a.Notifier.Enabled(notify.EventCopy) {
				go a.Notifier.Copy(flat)
			}
		},
		actionUndo:     func() { ed.UndoLast() },
		actionClear:    func() { ed.ClearAll() },
		actionActual:   ed.ResetScale,
		actionDraw:     func() { ed.SetMode(editor.ModeDraw) },
		actionPan:      func() { ed.SetMode(editor.ModePan) },
		actionToggle:   ed.ToggleMode,
		actionNarrower: func() { ed.StepPenWidth(-1) },
		actionWider:    func() { ed.StepPenWidth(1) },
		actionZoomIn:   func() { ed.Wheel(centre(), 1) },
		actionZoomOut:  func() { ed.Wheel(centre(), -1) },
		actionQuit:     func() { quit = true },
	}
	km := newKeymap(defaultBindings)

	var held editor.Button
	var cursor image.Point
	cursorIn := false

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			a.region.Resize(float64(width), float64(max(0, height-statusHeight)))
			requestPaint()
		case paint.Event:
			pending = false
			drawFrame(s, w, paintState{
				width:    width,
				height:   height,
				theme:    a.Theme,
				editor:   ed,
				region:   a.region,
				status:   status,
				cursor:   cursor,
				cursorIn: cursorIn,
				now:      time.Now(),
			})
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			name, ok := km.lookup(e)
			if !ok {
				continue
			}
			actions[name]()
			if quit {
				return
			}
		case mouse.Event:
			pos := annotate.Pt(float64(e.X), float64(e.Y))
			cursor = image.Pt(int(e.X), int(e.Y))
			cursorIn = cursor.In(viewRect(width, height))
			if e.Button.IsWheel() {
				if e.Direction == mouse.DirStep || e.Direction == mouse.DirPress {
					ed.Wheel(pos, wheelSign(e.Button))
				}
				continue
			}
			btn := editorButton(e.Button)
			switch e.Direction {
			case mouse.DirPress:
				held |= btn
				if !cursorIn && !ed.Dragging() {
					continue
				}
				ed.Press(pos, btn, held)
			case mouse.DirRelease:
				held &^= btn
				ed.Release(pos, btn)
			case mouse.DirNone:
				ed.Move(pos)
			}
			requestPaint()
		case error:
			log.Printf("window: %v", e)
		}
	}
}

func drawFrame(s screen.Screen, w screen.Window, st paintState) {
	if st.width <= 0 || st.height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	renderFrame(b.RGBA(), st)
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// initialSize fits the window to img within sensible bounds.
func initialSize(img image.Image) (int, int) {
	if img == nil || img.Bounds().Empty() {
		return defaultWidth, defaultHeight
	}
	b := img.Bounds()
	w := min(max(b.Dx(), 480), maxWidth)
	h := min(max(b.Dy()+statusHeight, 320), maxHeight)
	return w, h
}

func editorButton(b mouse.Button) editor.Button {
	switch b {
	case mouse.ButtonLeft:
		return editor.ButtonPrimary
	case mouse.ButtonRight:
		return editor.ButtonSecondary
	case mouse.ButtonMiddle:
		return editor.ButtonMiddle
	}
	return 0
}

func wheelSign(b mouse.Button) int {
	switch b {
	case mouse.ButtonWheelUp:
		return 1
	case mouse.ButtonWheelDown:
		return -1
	}
	return 0
}
