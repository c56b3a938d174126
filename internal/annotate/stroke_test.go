package annotate

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedLine struct {
	from, to Point
	width    float64
}

type recordingCanvas struct {
	images []image.Rectangle
	lines  []recordedLine
}

func (r *recordingCanvas) DrawImageRegion(rect image.Rectangle, _ image.Image) {
	r.images = append(r.images, rect)
}

func (r *recordingCanvas) DrawLine(from, to Point, width float64, _ color.Color) {
	r.lines = append(r.lines, recordedLine{from, to, width})
}

func TestNewStrokeRejectsBadWidth(t *testing.T) {
	for _, w := range []float64{0, -1} {
		_, err := NewStroke(w)
		assert.ErrorIs(t, err, ErrInvalidGeometry, "width %v", w)
	}
}

func TestStrokeAppendOnly(t *testing.T) {
	s, err := NewStroke(3)
	require.NoError(t, err)
	require.NoError(t, s.Append(Pt(0, 0), Pt(1, 1)))
	require.NoError(t, s.Append(Pt(1, 1), Pt(2, 3)))

	segs := s.Segments()
	segs[0].From = Pt(99, 99)
	assert.Equal(t, Pt(0, 0), s.Segments()[0].From, "Segments must return a copy")

	s.Finalize()
	assert.True(t, s.Finalized())
	assert.ErrorIs(t, s.Append(Pt(2, 3), Pt(4, 4)), ErrInvalidGeometry)
	assert.Equal(t, 2, s.Len())
}

func TestStrokeRenderScales(t *testing.T) {
	s, err := NewStroke(5)
	require.NoError(t, err)
	require.NoError(t, s.Append(Pt(10, 20), Pt(30, 40)))

	var c recordingCanvas
	s.Render(&c, 4, color.Black)
	require.Len(t, c.lines, 1)
	assert.Equal(t, Pt(40, 80), c.lines[0].from)
	assert.Equal(t, Pt(120, 160), c.lines[0].to)
	assert.Equal(t, 20.0, c.lines[0].width)

	var again recordingCanvas
	s.Render(&again, 4, color.Black)
	assert.Equal(t, c.lines, again.lines)
}

func TestStrokeWithoutSegmentsRendersDot(t *testing.T) {
	s, err := newStrokeAt(Pt(5, 6), 2)
	require.NoError(t, err)
	var c recordingCanvas
	s.Render(&c, 2, color.Black)
	require.Len(t, c.lines, 1)
	assert.Equal(t, Pt(10, 12), c.lines[0].from)
	assert.Equal(t, c.lines[0].from, c.lines[0].to)
	assert.Equal(t, 4.0, c.lines[0].width)
}
