package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/example/easymark/internal/appstate"
	"github.com/example/easymark/internal/clipboard"
)

// editCmd opens the editor window.
type editCmd struct {
	*root
	fs       *flag.FlagSet
	paste    bool
	mode     string
	penWidth int
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	e := &editCmd{root: r, fs: fs}
	fs.BoolVar(&e.paste, "paste", false, "load the clipboard image on start")
	fs.StringVar(&e.mode, "mode", "", "initial mode: draw or pan")
	fs.IntVar(&e.penWidth, "pen-width", 0, "initial pen width in pixels")
	fs.Usage = usageFunc(e)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &UsageError{of: e}
		}
		return nil, fmt.Errorf("%w\n%s", err, (&UsageError{of: e}).Error())
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: e}
	}
	if e.penWidth < 0 {
		return nil, fmt.Errorf("pen width must be positive: %d", e.penWidth)
	}
	return e, nil
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func (e *editCmd) Run() error {
	opts, err := e.editorOptions(e.mode, e.penWidth)
	if err != nil {
		return err
	}
	clip := clipboard.System()

	var initial image.Image
	if e.paste {
		img, err := clip.ReadImage()
		if err != nil {
			log.Printf("paste on start: %v", err)
		} else {
			initial = img
		}
	}

	st := appstate.New(
		appstate.WithEditorOptions(opts...),
		appstate.WithClipboard(clip),
		appstate.WithNotifier(e.notifier),
		appstate.WithTheme(e.activeTheme),
		appstate.WithTitle(windowTitle(e.program)),
		appstate.WithImage(initial),
	)
	st.Run()
	return nil
}

func windowTitle(program string) string {
	if version == "dev" || version == "" {
		return program
	}
	return fmt.Sprintf("%s %s", program, version)
}
