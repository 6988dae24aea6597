package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/sketchpad/internal/export"
	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/shape"
)

type renderCmd struct {
	*root
	fs         *flag.FlagSet
	file       string
	output     string
	width      int
	height     int
	background string
	shadow     bool
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	c := &renderCmd{root: r, fs: fs}
	w, h := r.canvasSize()
	fs.StringVar(&c.file, "file", "-", "drawing to render (JSON, - for stdin)")
	fs.StringVar(&c.output, "output", "", "output file, .png or .pdf")
	fs.IntVar(&c.width, "width", w, "page width in pixels")
	fs.IntVar(&c.height, "height", h, "page height in pixels")
	fs.StringVar(&c.background, "background", "", "background colour (defaults to the theme's canvas)")
	fs.BoolVar(&c.shadow, "shadow", false, "cast a drop shadow (PNG only)")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 || c.output == "" {
		return nil, &UsageError{of: c}
	}
	if _, err := export.FormatOf(c.output); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("render: page size must be positive, got %dx%d", c.width, c.height)
	}
	return c, nil
}

func readDrawing(path string) ([]shape.Shape, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read drawing: %w", err)
	}
	shapes, err := shape.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return shapes, nil
}

func (c *renderCmd) Run() error {
	shapes, err := readDrawing(c.file)
	if err != nil {
		return err
	}
	th := c.currentTheme()
	opts := export.Options{Width: c.width, Height: c.height, Background: th.Canvas}
	if c.background != "" {
		if opts.Background, err = render.ParseColor(c.background); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if c.shadow {
		opts.Shadow = render.DefaultShadowOptions()
		opts.Shadow.Color = th.Shadow
	}
	img, err := export.File(c.output, shapes, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "rendered %d shapes to %s\n", len(shapes), c.output)
	c.notifier.Export(c.output, img)
	return nil
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *renderCmd) Template() string {
	return "render.txt"
}
