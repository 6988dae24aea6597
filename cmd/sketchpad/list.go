package main

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/example/sketchpad/internal/shape"
	"github.com/example/sketchpad/internal/theme"
	"github.com/example/sketchpad/internal/tool"
	"github.com/example/sketchpad/internal/window"
)

type shapesCmd struct {
	*root
	fs   *flag.FlagSet
	file string
}

func parseShapesCmd(args []string, r *root) (*shapesCmd, error) {
	fs := flag.NewFlagSet("shapes", flag.ExitOnError)
	cmd := &shapesCmd{root: r, fs: fs}
	fs.StringVar(&cmd.file, "file", "-", "drawing to list (JSON, - for stdin)")
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *shapesCmd) Run() error {
	shapes, err := readDrawing(c.file)
	if err != nil {
		return err
	}
	if len(shapes) == 0 {
		fmt.Fprintln(c.out, "no shapes")
		return nil
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tVALID\tSTROKE\tWIDTH\tFILL")
	for i, s := range shapes {
		st := s.StrokeStyle()
		fill := "-"
		if f, ok := s.(shape.Filler); ok {
			fill = f.FillStyle().FillColor
		}
		fmt.Fprintf(tw, "%d\t%s\t%v\t%s\t%s\t%s\n", i, s.Kind(), s.Valid(), st.StrokeColor,
			strconv.FormatFloat(st.StrokeWidth, 'g', -1, 64), fill)
	}
	return tw.Flush()
}

func (c *shapesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *shapesCmd) Template() string {
	return "shapes.txt"
}

type toolsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseToolsCmd(args []string, r *root) (*toolsCmd, error) {
	fs := flag.NewFlagSet("tools", flag.ExitOnError)
	cmd := &toolsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *toolsCmd) Run() error {
	keys := make(map[string]string)
	for _, b := range window.Bindings() {
		keys[b.Action] = b.Shortcut.String()
	}
	fmt.Fprintln(c.out, "tools (* marks the default):")
	for _, name := range tool.Names() {
		marker := " "
		if name == tool.DefaultName {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %-12s key %s\n", marker, name, keys["tool:"+name])
	}
	fmt.Fprintln(c.out, "editor keys:")
	for _, b := range window.Bindings() {
		if strings.HasPrefix(b.Action, "tool:") {
			continue
		}
		fmt.Fprintf(c.out, "  %-14s %s\n", b.Shortcut, b.Action)
	}
	return nil
}

func (c *toolsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *toolsCmd) Template() string {
	return "tools.txt"
}

type themesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ExitOnError)
	cmd := &themesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *themesCmd) Run() error {
	fmt.Fprintln(c.out, "built-in themes:")
	for _, name := range theme.Names() {
		fmt.Fprintf(c.out, "  %s\n", name)
	}
	if len(c.config.Themes) == 0 {
		return nil
	}
	var names []string
	for name := range c.config.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(c.out, "config themes:")
	for _, name := range names {
		fmt.Fprintf(c.out, "  %s\n", name)
	}
	return nil
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *themesCmd) Template() string {
	return "themes.txt"
}
