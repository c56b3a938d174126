package appstate

import (
	"fmt"
	"image"
	"log"

	"github.com/example/easymark/internal/clipboard"
	"github.com/example/easymark/internal/editor"
)

const (
	msgWelcome          = "Please paste source image to start"
	msgPasted           = "Image pasted from clipboard"
	msgNoClipboardImage = "Clipboard has no image"
	msgNothingToCopy    = "No image to copy"
	msgCopied           = "Image is copied to clipboard"
)

// Paste loads the clipboard image into ed. It returns the pasted image, or
// nil when the clipboard held none. The outcome is announced through ed.
func Paste(ed *editor.Editor, clip clipboard.Provider) image.Image {
	img, err := clip.ReadImage()
	if err == nil && (img == nil || img.Bounds().Empty()) {
		err = clipboard.ErrNoImage
	}
	if err != nil {
		log.Printf("paste: %v", err)
		ed.Announce(msgNoClipboardImage)
		return nil
	}
	ed.SetImage(img)
	ed.Announce(msgPasted)
	return img
}

// Copy places the flattened annotated image on the clipboard and returns
// it, or nil when nothing was copied. The outcome is announced through ed.
func Copy(ed *editor.Editor, clip clipboard.Provider) *image.RGBA {
	if !ed.HasImage() {
		ed.Announce(msgNothingToCopy)
		return nil
	}
	flat := ed.ExportFlattened()
	if err := clip.WriteImage(flat); err != nil {
		log.Printf("copy: %v", err)
		ed.Announce(fmt.Sprintf("Copy failed: %v", err))
		return nil
	}
	ed.Announce(msgCopied)
	return flat
}
