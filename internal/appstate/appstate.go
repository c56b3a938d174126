// Package appstate hosts the editor in a shiny window: it translates window
// events into editor input and paints the annotated image with a status bar.
package appstate

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/easymark/internal/annotate"
	"github.com/example/easymark/internal/editor"
	"github.com/example/easymark/internal/theme"
)

const (
	statusHeight  = 24
	statusPadding = 8
	checkerSize   = 8
)

var (
	statusFace  font.Face = basicfont.Face7x13
	welcomeFace font.Face = basicfont.Face7x13
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("parse font: %v", err)
		return
	}
	if face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 13, DPI: 72, Hinting: font.HintingFull}); err == nil {
		statusFace = face
	} else {
		log.Printf("font face: %v", err)
	}
	if face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 20, DPI: 72, Hinting: font.HintingFull}); err == nil {
		welcomeFace = face
	} else {
		log.Printf("font face: %v", err)
	}
}

// paintState is everything a frame needs. It is built on the event loop
// goroutine and only read while painting.
type paintState struct {
	width, height int
	theme         *theme.Theme
	editor        *editor.Editor
	region        *editor.ScrollRegion
	status        *statusBar
	cursor        image.Point
	cursorIn      bool
	now           time.Time
}

// viewRect is the window area the image is shown in.
func viewRect(width, height int) image.Rectangle {
	return image.Rect(0, 0, width, max(0, height-statusHeight))
}

// renderFrame paints a complete frame into dst.
func renderFrame(dst *image.RGBA, st paintState) {
	th := st.theme
	if th == nil {
		th = theme.Default()
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(th.Background), image.Point{}, draw.Src)

	view := viewRect(st.width, st.height).Intersect(dst.Bounds())
	surface := st.editor.Surface()
	if surface.HasImage() {
		origin := st.region.ToView(annotate.Point{}).Image()
		w, h := surface.Size()
		imgRect := image.Rect(0, 0, int(math.Round(w)), int(math.Round(h))).Add(origin).Intersect(view)
		drawCheckerboard(dst, imgRect, checkerSize, th.CheckerLight, th.CheckerDark)
		sub, ok := dst.SubImage(view).(*image.RGBA)
		if ok {
			surface.Render(annotate.NewRGBACanvas(sub, origin))
		}
		if st.cursorIn && st.cursor.In(view) {
			drawCursor(dst, st.cursor, st.editor, th.CursorOutline)
		}
	} else {
		drawCentredText(dst, view, msgWelcome, welcomeFace, th.Foreground)
	}

	drawStatusBar(dst, st, th)
}

// drawCheckerboard fills rect of dst with a checkerboard pattern of the given
// colors. size controls the checker square size.
func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	if rect.Empty() {
		return
	}
	lightSrc, darkSrc := image.NewUniform(light), image.NewUniform(dark)
	for y := rect.Min.Y - rect.Min.Y%size; y < rect.Max.Y; y += size {
		for x := rect.Min.X - rect.Min.X%size; x < rect.Max.X; x += size {
			src := lightSrc
			if ((x/size)+(y/size))%2 != 0 {
				src = darkSrc
			}
			cell := image.Rect(x, y, x+size, y+size).Intersect(rect)
			draw.Draw(dst, cell, src, image.Point{}, draw.Src)
		}
	}
}

// drawCursor outlines the pen footprint in draw mode and a cross in pan mode.
func drawCursor(dst *image.RGBA, p image.Point, ed *editor.Editor, col color.Color) {
	if ed.Mode() == editor.ModePan {
		for d := -6; d <= 6; d++ {
			dst.Set(p.X+d, p.Y, col)
			dst.Set(p.X, p.Y+d, col)
		}
		return
	}
	r := max(1, ed.PenWidth()/2)
	drawCircleThin(dst, p.X, p.Y, r, col)
}

func drawCircleThin(img *image.RGBA, cx, cy, r int, col color.Color) {
	x, y := r, 0
	err := 1 - r
	for x >= y {
		for _, pt := range [8][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}} {
			img.Set(cx+pt[0], cy+pt[1], col)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func drawCentredText(dst *image.RGBA, rect image.Rectangle, text string, face font.Face, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	m := face.Metrics()
	tw := d.MeasureString(text).Ceil()
	x := rect.Min.X + (rect.Dx()-tw)/2
	y := rect.Min.Y + (rect.Dy()-(m.Ascent+m.Descent).Ceil())/2 + m.Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// drawStatusBar shows the transient message on the left and the editor
// state on the right.
func drawStatusBar(dst *image.RGBA, st paintState, th *theme.Theme) {
	bar := image.Rect(0, st.height-statusHeight, st.width, st.height).Intersect(dst.Bounds())
	if bar.Empty() {
		return
	}
	draw.Draw(dst, bar, image.NewUniform(th.StatusBackground), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(bar.Min.X, bar.Min.Y, bar.Max.X, bar.Min.Y+1), image.NewUniform(th.StatusBorder), image.Point{}, draw.Src)

	m := statusFace.Metrics()
	baseline := bar.Min.Y + (statusHeight-(m.Ascent+m.Descent).Ceil())/2 + m.Ascent.Ceil()

	labels := strings.Join(st.status.labels(), "    ")
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusText), Face: statusFace}
	lw := d.MeasureString(labels).Ceil()
	d.Dot = fixed.P(bar.Max.X-lw-statusPadding, baseline)
	d.DrawString(labels)

	if msg := st.status.current(st.now); msg != "" {
		d = &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusMessage), Face: statusFace}
		d.Dot = fixed.P(bar.Min.X+statusPadding, baseline)
		d.DrawString(msg)
	}
}
