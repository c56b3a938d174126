package editor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/easymark/internal/annotate"
)

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

type events struct {
	modes  []Mode
	widths []int
	scales []float64
	status []string
	paints int
}

func (ev *events) listener() Listener {
	return Listener{
		ModeChanged:     func(m Mode) { ev.modes = append(ev.modes, m) },
		PenWidthChanged: func(w int) { ev.widths = append(ev.widths, w) },
		ScaleChanged:    func(f float64) { ev.scales = append(ev.scales, f) },
		Status:          func(s string) { ev.status = append(ev.status, s) },
		Repaint:         func() { ev.paints++ },
	}
}

func newTestEditor(t *testing.T, w, h int, opts ...Option) (*Editor, *ScrollRegion) {
	t.Helper()
	region := NewScrollRegion(800, 600)
	ed := New(append([]Option{WithViewport(region)}, opts...)...)
	ed.SetImage(blank(w, h))
	require.True(t, ed.HasImage())
	return ed, region
}

func drag(ed *Editor, button Button, pts ...annotate.Point) {
	ed.Press(pts[0], button, button)
	for _, p := range pts[1:] {
		ed.Move(p)
	}
	ed.Release(pts[len(pts)-1], button)
}

func TestDefaults(t *testing.T) {
	ed := New()
	assert.Equal(t, ModeDraw, ed.Mode())
	assert.Equal(t, 5, ed.PenWidth())
	assert.Equal(t, []int{2, 3, 5, 7, 10, 14, 20}, ed.PenWidths())
	assert.Equal(t, 1.0, ed.ScaleFactor())
	assert.False(t, ed.HasImage())
	assert.Equal(t, "Draw", ModeDraw.String())
	assert.Equal(t, "Pan", ModePan.String())
}

func TestOptions(t *testing.T) {
	ed := New(WithMode(ModePan), WithPenWidths(1, -4, 8), WithPenWidth(8), WithColor(color.Black))
	assert.Equal(t, ModePan, ed.Mode())
	assert.Equal(t, []int{1, 8}, ed.PenWidths())
	assert.Equal(t, 8, ed.PenWidth())
	assert.Equal(t, color.RGBA{A: 0xff}, ed.Surface().Color())
}

func TestZoomKeepsCursorAnchored(t *testing.T) {
	ed, region := newTestEditor(t, 1000, 1000)
	ed.Wheel(annotate.Pt(500, 500), 1)

	assert.InDelta(t, 1.1, ed.ScaleFactor(), 1e-9)
	assert.InDelta(t, 50, region.Offset().X, 1e-9)
	assert.InDelta(t, 50, region.Offset().Y, 1e-9)
	w, h := region.ContentSize()
	assert.InDelta(t, 1100, w, 1e-9)
	assert.InDelta(t, 1100, h, 1e-9)

	ed.Wheel(annotate.Pt(500, 500), -1)
	assert.InDelta(t, 1.0, ed.ScaleFactor(), 1e-9)
	assert.InDelta(t, 0, region.Offset().X, 1e-9)
}

func TestZoomAnchorUnderScroll(t *testing.T) {
	ed, region := newTestEditor(t, 2000, 2000)
	region.SetOffset(annotate.Pt(300, 200))
	cursor := annotate.Pt(100, 50)
	before := ed.Surface().ViewToImage(region.ToContent(cursor))

	ed.Wheel(cursor, 1)
	after := ed.Surface().ViewToImage(region.ToContent(cursor))
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
}

func TestWheelIgnoredWithoutImageOrDelta(t *testing.T) {
	ed := New()
	ed.Wheel(annotate.Pt(1, 1), 1)
	assert.Equal(t, 1.0, ed.ScaleFactor())

	ed, _ = newTestEditor(t, 10, 10)
	ed.Wheel(annotate.Pt(1, 1), 0)
	assert.Equal(t, 1.0, ed.ScaleFactor())
}

func TestPenWidthIsFixedInImageUnits(t *testing.T) {
	ed, _ := newTestEditor(t, 1000, 1000, WithPenWidth(10))
	ed.SetScaleFactor(2)
	drag(ed, ButtonPrimary, annotate.Pt(10, 10), annotate.Pt(40, 40))

	strokes := ed.Surface().Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, 5.0, strokes[0].Width())
	assert.Equal(t, []annotate.Segment{{From: annotate.Pt(5, 5), To: annotate.Pt(20, 20)}}, strokes[0].Segments())

	ed.SetScaleFactor(4)
	var c lineCanvas
	strokes[0].Render(&c, ed.ScaleFactor(), color.Black)
	assert.Equal(t, []float64{20}, c.widths)
}

func TestModeIsolation(t *testing.T) {
	ed, region := newTestEditor(t, 1000, 1000, WithMode(ModePan))
	drag(ed, ButtonPrimary, annotate.Pt(100, 100), annotate.Pt(95, 90), annotate.Pt(90, 80))
	assert.Empty(t, ed.Surface().Strokes())
	assert.Equal(t, annotate.Pt(10, 20), region.Offset())

	ed.SetMode(ModeDraw)
	drag(ed, ButtonPrimary, annotate.Pt(1, 1), annotate.Pt(2, 2), annotate.Pt(3, 3), annotate.Pt(4, 4))
	require.Len(t, ed.Surface().Strokes(), 1)
	assert.Equal(t, 3, ed.Surface().Strokes()[0].Len())
	assert.Equal(t, annotate.Pt(10, 20), region.Offset())
}

func TestMiddleButtonPansInDrawMode(t *testing.T) {
	ed, region := newTestEditor(t, 1000, 1000)
	drag(ed, ButtonMiddle, annotate.Pt(50, 50), annotate.Pt(20, 30))
	assert.Empty(t, ed.Surface().Strokes())
	assert.Equal(t, annotate.Pt(30, 20), region.Offset())
}

func TestModeSampledAtDragStart(t *testing.T) {
	ed, _ := newTestEditor(t, 100, 100)
	ed.Press(annotate.Pt(1, 1), ButtonPrimary, ButtonPrimary)
	ed.SetMode(ModePan)
	ed.Move(annotate.Pt(5, 5))
	ed.Release(annotate.Pt(5, 5), ButtonPrimary)
	require.Len(t, ed.Surface().Strokes(), 1)
	assert.Equal(t, 1, ed.Surface().Strokes()[0].Len())
}

func TestSecondButtonCancelsStroke(t *testing.T) {
	ed, _ := newTestEditor(t, 100, 100)
	ed.Press(annotate.Pt(1, 1), ButtonPrimary, ButtonPrimary)
	ed.Move(annotate.Pt(5, 5))
	ed.Press(annotate.Pt(5, 5), ButtonSecondary, ButtonPrimary|ButtonSecondary)
	assert.False(t, ed.Dragging())
	assert.Nil(t, ed.Surface().ActiveStroke())

	ed.Move(annotate.Pt(9, 9))
	ed.Release(annotate.Pt(9, 9), ButtonPrimary)
	assert.Empty(t, ed.Surface().Strokes())
}

func TestPressIgnoredCases(t *testing.T) {
	ed := New()
	ed.Press(annotate.Pt(1, 1), ButtonPrimary, ButtonPrimary)
	assert.False(t, ed.Dragging())

	ed, _ = newTestEditor(t, 100, 100)
	ed.Press(annotate.Pt(1, 1), ButtonSecondary, ButtonSecondary)
	assert.False(t, ed.Dragging())
	ed.Press(annotate.Pt(1, 1), ButtonPrimary, ButtonPrimary|ButtonMiddle)
	assert.False(t, ed.Dragging())

	ed.Release(annotate.Pt(1, 1), ButtonPrimary)
	ed.Move(annotate.Pt(2, 2))
	assert.Empty(t, ed.Surface().Strokes())
}

func TestClickLeavesDot(t *testing.T) {
	ed, _ := newTestEditor(t, 100, 100)
	drag(ed, ButtonPrimary, annotate.Pt(7, 8))
	require.Len(t, ed.Surface().Strokes(), 1)
	assert.Equal(t, 0, ed.Surface().Strokes()[0].Len())
}

func TestCentredImageMapping(t *testing.T) {
	ed, region := newTestEditor(t, 400, 300)
	assert.Equal(t, annotate.Pt(200, 150), region.Origin())
	drag(ed, ButtonPrimary, annotate.Pt(210, 160), annotate.Pt(220, 170))
	segs := ed.Surface().Strokes()[0].Segments()
	assert.Equal(t, annotate.Pt(10, 10), segs[0].From)
	assert.Equal(t, annotate.Pt(20, 20), segs[0].To)
}

func TestUndoSequence(t *testing.T) {
	ed, _ := newTestEditor(t, 100, 100)
	for i := 0; i < 3; i++ {
		f := float64(i * 10)
		drag(ed, ButtonPrimary, annotate.Pt(f, f), annotate.Pt(f+5, f+5))
	}
	all := ed.Surface().Strokes()
	require.Len(t, all, 3)

	assert.True(t, ed.UndoLast())
	assert.Equal(t, all[:2], ed.Surface().Strokes())
	assert.True(t, ed.UndoLast())
	assert.True(t, ed.UndoLast())
	assert.False(t, ed.UndoLast())

	drag(ed, ButtonPrimary, annotate.Pt(1, 1), annotate.Pt(2, 2))
	assert.True(t, ed.ClearAll())
	assert.False(t, ed.ClearAll())
}

func TestUndoDuringDragAbandonsGesture(t *testing.T) {
	ed, _ := newTestEditor(t, 100, 100)
	ed.Press(annotate.Pt(1, 1), ButtonPrimary, ButtonPrimary)
	ed.Move(annotate.Pt(3, 3))
	assert.True(t, ed.UndoLast())
	assert.False(t, ed.Dragging())
	ed.Move(annotate.Pt(6, 6))
	ed.Release(annotate.Pt(6, 6), ButtonPrimary)
	assert.Empty(t, ed.Surface().Strokes())
}

func TestSetImageResets(t *testing.T) {
	ed, region := newTestEditor(t, 1000, 1000)
	ed.SetScaleFactor(3)
	drag(ed, ButtonPrimary, annotate.Pt(1, 1), annotate.Pt(2, 2))
	ed.Press(annotate.Pt(5, 5), ButtonPrimary, ButtonPrimary)

	ed.SetImage(blank(50, 40))
	assert.Equal(t, 1.0, ed.ScaleFactor())
	assert.Empty(t, ed.Surface().Strokes())
	assert.False(t, ed.Dragging())
	w, h := region.ContentSize()
	assert.Equal(t, 50.0, w)
	assert.Equal(t, 40.0, h)

	ed.SetImage(nil)
	assert.Equal(t, image.Pt(50, 40), ed.Surface().ImageSize())
}

func TestNotificationsOnlyOnChange(t *testing.T) {
	var ev events
	ed := New(WithListener(ev.listener()))

	ed.SetMode(ModeDraw)
	ed.SetPenWidth(5)
	ed.SetScaleFactor(1)
	ed.SetScaleFactor(-2)
	ed.SetPenWidth(0)
	assert.Empty(t, ev.modes)
	assert.Empty(t, ev.widths)
	assert.Empty(t, ev.scales)

	ed.ToggleMode()
	ed.ToggleMode()
	ed.SetPenWidth(14)
	ed.SetScaleFactor(2)
	ed.Announce("hello")
	assert.Equal(t, []Mode{ModePan, ModeDraw}, ev.modes)
	assert.Equal(t, []int{14}, ev.widths)
	assert.Equal(t, []float64{2}, ev.scales)
	assert.Equal(t, []string{"hello"}, ev.status)
	assert.Equal(t, 2.0, ed.ScaleFactor())

	ed.ResetScale()
	assert.Equal(t, []float64{2, 1}, ev.scales)
}

func TestRepaintRequestedOnSurfaceChange(t *testing.T) {
	var ev events
	ed := New(WithListener(ev.listener()), WithViewport(NewScrollRegion(100, 100)))
	ed.SetImage(blank(10, 10))
	n := ev.paints
	assert.Positive(t, n)

	drag(ed, ButtonPrimary, annotate.Pt(1, 1), annotate.Pt(2, 2))
	assert.Greater(t, ev.paints, n)
}

func TestStepPenWidth(t *testing.T) {
	ed := New()
	ed.StepPenWidth(1)
	assert.Equal(t, 7, ed.PenWidth())
	ed.StepPenWidth(-1)
	ed.StepPenWidth(-1)
	assert.Equal(t, 3, ed.PenWidth())
	ed.SetPenWidth(20)
	ed.StepPenWidth(1)
	assert.Equal(t, 20, ed.PenWidth())
	ed.SetPenWidth(6)
	ed.StepPenWidth(1)
	assert.Equal(t, 7, ed.PenWidth())
}

func TestExportFlattenedThroughEditor(t *testing.T) {
	ed := New()
	assert.Nil(t, ed.ExportFlattened())
	ed, _ = newTestEditor(t, 30, 30)
	assert.Equal(t, image.Rect(0, 0, 30, 30), ed.ExportFlattened().Bounds())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Pan ")
	require.NoError(t, err)
	assert.Equal(t, ModePan, m)
	m, err = ParseMode("draw")
	require.NoError(t, err)
	assert.Equal(t, ModeDraw, m)
	_, err = ParseMode("erase")
	assert.Error(t, err)
}

type lineCanvas struct{ widths []float64 }

func (c *lineCanvas) DrawImageRegion(image.Rectangle, image.Image) {}

func (c *lineCanvas) DrawLine(_, _ annotate.Point, w float64, _ color.Color) {
	c.widths = append(c.widths, w)
}
