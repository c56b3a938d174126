package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/example/easymark/internal/editor"
)

type widthsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseWidthsCmd(args []string, r *root) (*widthsCmd, error) {
	fs := flag.NewFlagSet("widths", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd := &widthsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: cmd}
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *widthsCmd) Run() error {
	opts, err := c.editorOptions("", 0)
	if err != nil {
		return err
	}
	ed := editor.New(opts...)
	fmt.Fprintln(c.out, "available pen widths (* marks the default width):")
	for _, width := range ed.PenWidths() {
		marker := " "
		if width == ed.PenWidth() {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %3dpx\n", marker, width)
	}
	return nil
}

func (c *widthsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
