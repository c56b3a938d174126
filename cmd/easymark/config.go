package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/easymark/internal/config"
	"github.com/example/easymark/internal/theme"
)

type configCmd struct {
	*root
	fs *flag.FlagSet
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c := &configCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}

	cfg, err := c.effectiveConfig()
	if err != nil {
		return err
	}
	switch args[0] {
	case "print":
		fmt.Fprint(c.out, cfg.String())
		return nil
	case "save":
		return c.runSave(cfg)
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) runSave(cfg *config.Config) error {
	loader := config.NewLoader(version, configPathOverride)
	path, err := loader.Save(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return nil
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

// effectiveConfig is the loaded configuration with global flags applied.
func (r *root) effectiveConfig() (*config.Config, error) {
	cfg := *r.config
	if r.themeName != "" {
		cfg.Theme = r.themeName
	}
	cfg.Notify = config.Notify{Paste: r.pasteAlerts, Copy: r.copyAlerts}
	if strings.TrimSpace(r.penWidths) != "" {
		ws, err := config.ParseWidths(r.penWidths)
		if err != nil {
			return nil, err
		}
		cfg.PenWidths = ws
	}
	if r.penColor != "" {
		col, err := theme.ParseColor(r.penColor)
		if err != nil {
			return nil, fmt.Errorf("pen color: %w", err)
		}
		cfg.PenColor = &col
	}
	return &cfg, nil
}
