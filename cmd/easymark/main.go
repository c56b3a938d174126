package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/example/easymark/internal/config"
	"github.com/example/easymark/internal/editor"
	"github.com/example/easymark/internal/notify"
	"github.com/example/easymark/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	out         io.Writer
	notifier    *notify.Notifier
	config      *config.Config
	pasteAlerts bool
	copyAlerts  bool
	themeName   string
	penWidths   string
	penColor    string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWithConfig(cfg)
}

func newRootWithConfig(cfg *config.Config) *root {
	r := &root{
		fs:       flag.NewFlagSet("easymark", flag.ContinueOnError),
		program:  "easymark",
		out:      os.Stdout,
		notifier: notify.New(notify.LoadPreferences()),
		config:   cfg,
	}
	r.fs.SetOutput(io.Discard)
	r.fs.BoolVar(&r.pasteAlerts, "notify-paste", cfg.Notify.Paste, "show a desktop notification after pasting an image")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, light, dark or a theme file)")
	r.fs.StringVar(&r.penWidths, "pen-widths", "", "comma separated pen widths offered by [ and ]")
	r.fs.StringVar(&r.penColor, "pen-color", "", "stroke color as #RRGGBB or a color name")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &UsageError{of: r}
		}
		return fmt.Errorf("%w\n%s", err, (&UsageError{of: r}).Error())
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventPaste, r.pasteAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := "edit"
	var subArgs []string
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "widths":
		cmd, err = parseWidthsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	case "help":
		err = &UsageError{of: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolveTheme picks the theme by flag, environment, then config file.
func (r *root) resolveTheme() *theme.Theme {
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("EASYMARK_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}

	if cfgTheme, ok := r.config.Themes[themeName]; ok {
		return cfgTheme
	}
	t, err := theme.NewLoader().Load(themeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, err)
		return theme.Default()
	}
	return t
}

// editorOptions merges config file settings with command line overrides.
func (r *root) editorOptions(mode string, penWidth int) ([]editor.Option, error) {
	var opts []editor.Option

	widths := r.config.PenWidths
	if strings.TrimSpace(r.penWidths) != "" {
		ws, err := config.ParseWidths(r.penWidths)
		if err != nil {
			return nil, err
		}
		widths = ws
	}
	if len(widths) > 0 {
		opts = append(opts, editor.WithPenWidths(widths...))
	}

	if penWidth <= 0 {
		penWidth = r.config.PenWidth
	}
	if penWidth > 0 {
		opts = append(opts, editor.WithPenWidth(penWidth))
	}

	if mode == "" {
		mode = r.config.Mode
	}
	if mode != "" {
		m, err := editor.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, editor.WithMode(m))
	}

	var col color.Color
	if r.config.PenColor != nil {
		col = *r.config.PenColor
	}
	if r.penColor != "" {
		c, err := theme.ParseColor(r.penColor)
		if err != nil {
			return nil, fmt.Errorf("pen color: %w", err)
		}
		col = c
	}
	if col != nil {
		opts = append(opts, editor.WithColor(col))
	}
	return opts, nil
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
