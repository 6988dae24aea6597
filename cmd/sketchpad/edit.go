package main

import (
	"flag"
	"fmt"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/window"
)

var runWindow = window.Run

type editCmd struct {
	*root
	fs      *flag.FlagSet
	file    string
	width   int
	height  int
	tool    string
	stroke  string
	fill    string
	line    float64
	saveDir string
	shadow  bool
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	c := &editCmd{root: r, fs: fs}
	w, h := r.canvasSize()
	pal := r.palette()
	fs.StringVar(&c.file, "file", "", "drawing to open and save (JSON)")
	fs.IntVar(&c.width, "width", w, "canvas width in pixels")
	fs.IntVar(&c.height, "height", h, "canvas height in pixels")
	fs.StringVar(&c.tool, "tool", r.config.Tool, "initial tool (see 'tools')")
	fs.StringVar(&c.stroke, "stroke", pal.Stroke, "stroke colour")
	fs.StringVar(&c.fill, "fill", pal.Fill, "fill colour for closed shapes")
	fs.Float64Var(&c.line, "line-width", pal.Width, "stroke width")
	fs.StringVar(&c.saveDir, "save-dir", r.config.SaveDir, "directory for unnamed drawings and exports")
	fs.BoolVar(&c.shadow, "shadow", false, "cast a drop shadow in PNG exports")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() == 1 && c.file == "" {
		c.file = fs.Arg(0)
	} else if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	for _, col := range []string{c.stroke, c.fill} {
		if _, err := render.ParseColor(col); err != nil {
			return nil, fmt.Errorf("edit: %w", err)
		}
	}
	if c.line <= 0 {
		return nil, fmt.Errorf("edit: line width must be positive, got %v", c.line)
	}
	return c, nil
}

func (c *editCmd) options() window.Options {
	pal := c.palette()
	pal.Stroke, pal.Fill, pal.Width = c.stroke, c.fill, c.line
	opts := window.Options{
		Path:     c.file,
		SaveDir:  c.saveDir,
		Width:    c.width,
		Height:   c.height,
		Tool:     c.tool,
		Palette:  pal,
		Theme:    c.currentTheme(),
		Notifier: c.notifier,
	}
	if c.shadow {
		opts.Shadow = render.DefaultShadowOptions()
	}
	return opts
}

func (c *editCmd) Run() error {
	s, err := window.NewSession(c.options())
	if err != nil {
		return err
	}
	runWindow(s)
	return nil
}

func (c *editCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *editCmd) Template() string {
	return "edit.txt"
}
