// Package clipboard moves images between the editor and the system clipboard.
// Images travel as PNG.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"sync"
)

// ErrNoImage is returned when the clipboard holds no decodable image.
var ErrNoImage = errors.New("clipboard does not contain image data")

// Provider reads and writes clipboard images.
type Provider interface {
	ReadImage() (image.Image, error)
	WriteImage(img image.Image) error
}

type system struct{}

// System returns the provider backed by the platform clipboard.
func System() Provider { return system{} }

func (system) ReadImage() (image.Image, error) {
	data, err := readPNG()
	if err != nil {
		return nil, err
	}
	return decodePNG(data)
}

func (system) WriteImage(img image.Image) error {
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	return writePNG(data)
}

func encodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func decodePNG(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoImage, err)
	}
	return img, nil
}

// Memory is an in-process Provider. The zero value is empty.
type Memory struct {
	mu  sync.Mutex
	img *image.RGBA
	// WriteErr, if set, is returned by WriteImage.
	WriteErr error
}

// NewMemory returns a Memory holding a copy of img, or an empty one if img
// is nil.
func NewMemory(img image.Image) *Memory {
	m := &Memory{}
	if img != nil {
		m.img = cloneRGBA(img)
	}
	return m
}

func (m *Memory) ReadImage() (image.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.img == nil {
		return nil, ErrNoImage
	}
	return cloneRGBA(m.img), nil
}

func (m *Memory) WriteImage(img image.Image) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if img == nil {
		return ErrNoImage
	}
	m.mu.Lock()
	m.img = cloneRGBA(img)
	m.mu.Unlock()
	return nil
}

func cloneRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
