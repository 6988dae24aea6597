package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/theme"
	"github.com/example/sketchpad/internal/tool"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

const (
	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	out          io.Writer
	notifier     *notify.Notifier
	config       *config.Config
	saveAlerts   bool
	copyAlerts   bool
	exportAlerts bool
	themeName    string
	activeTheme  *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) *root {
	sub := *r
	sub.program = strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &sub
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWith(cfg, notify.New(notify.LoadPreferences()), os.Stdout)
}

func newRootWith(cfg *config.Config, n *notify.Notifier, out io.Writer) *root {
	r := &root{
		fs:       flag.NewFlagSet("sketchpad", flag.ExitOnError),
		program:  "sketchpad",
		out:      out,
		notifier: n,
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a drawing")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.exportAlerts, "notify-export", cfg.Notify.Export, "show a desktop notification after exporting an image")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use ("+strings.Join(theme.Names(), ", ")+")")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
		r.notifier.Enable(notify.EventExport, r.exportAlerts)
	}

	themeName := r.config.ThemeName(r.themeName)
	t, err := r.config.LoadTheme(themeName, theme.NewLoader())
	if err != nil {
		if themeName != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, err)
		}
		t = theme.Default()
	}
	r.activeTheme = t

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r.subcommand(cmdName))
	case "render":
		cmd, err = parseRenderCmd(subArgs, r.subcommand(cmdName))
	case "shapes":
		cmd, err = parseShapesCmd(subArgs, r.subcommand(cmdName))
	case "tools":
		cmd, err = parseToolsCmd(subArgs, r.subcommand(cmdName))
	case "themes":
		cmd, err = parseThemesCmd(subArgs, r.subcommand(cmdName))
	case "config":
		cmd, err = parseConfigCmd(subArgs, r.subcommand(cmdName))
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	log.SetPrefix("sketchpad: ")
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

// palette merges config defaults over the built-in palette.
func (r *root) palette() tool.Palette {
	p := tool.DefaultPalette()
	if r.config.Stroke != "" {
		p.Stroke = r.config.Stroke
	}
	if r.config.Fill != "" {
		p.Fill = r.config.Fill
	}
	if r.config.Width > 0 {
		p.Width = r.config.Width
	}
	return p
}

// canvasSize returns the configured canvas size or the built-in default.
func (r *root) canvasSize() (int, int) {
	w, h := r.config.CanvasWidth, r.config.CanvasHeight
	if w <= 0 {
		w = defaultCanvasWidth
	}
	if h <= 0 {
		h = defaultCanvasHeight
	}
	return w, h
}

func (r *root) currentTheme() *theme.Theme {
	if r.activeTheme == nil {
		return theme.Default()
	}
	return r.activeTheme
}
