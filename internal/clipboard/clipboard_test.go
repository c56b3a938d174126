package clipboard

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPNGRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 0xff})
	data, err := encodePNG(src)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := decodePNG(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := color.RGBAModel.Convert(img.At(2, 1)); got != (color.RGBA{R: 10, G: 20, B: 30, A: 0xff}) {
		t.Fatalf("pixel mismatch: %v", got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not a png")} {
		if _, err := decodePNG(data); !errors.Is(err, ErrNoImage) {
			t.Fatalf("decode %q: expected ErrNoImage, got %v", data, err)
		}
	}
}

func TestMemoryProvider(t *testing.T) {
	m := NewMemory(nil)
	if _, err := m.ReadImage(); !errors.Is(err, ErrNoImage) {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}

	src := image.NewRGBA(image.Rect(5, 5, 9, 8))
	if err := m.WriteImage(src); err != nil {
		t.Fatalf("write: %v", err)
	}
	src.SetRGBA(5, 5, color.RGBA{A: 0xff})
	img, err := m.ReadImage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("memory provider must keep its own copy")
	}

	m.WriteErr = errors.New("boom")
	if err := m.WriteImage(src); err == nil || err.Error() != "boom" {
		t.Fatalf("expected WriteErr, got %v", err)
	}
}
