// Package config reads and writes the editor's rc file.
package config

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/theme"
)

// ThemeEnv names the environment variable consulted between the command line
// and the config file when choosing a theme.
const ThemeEnv = "SKETCHPAD_THEME"

// Notify holds notification settings.
type Notify struct {
	Save   bool
	Copy   bool
	Export bool
}

// Config holds the application configuration. Empty or zero fields mean the
// built-in default applies.
type Config struct {
	Theme        string
	SaveDir      string
	Tool         string
	Stroke       string
	Fill         string
	Width        float64
	CanvasWidth  int
	CanvasHeight int
	Notify       Notify
	Themes       map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Themes: make(map[string]*theme.Theme),
	}
}

// ThemeName resolves the theme to use. Precedence: flag > env > config.
func (c *Config) ThemeName(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(ThemeEnv); env != "" {
		return env
	}
	return c.Theme
}

// LoadTheme returns the named theme from the config's own [theme.*] blocks,
// falling back to l. An empty name yields the default theme.
func (c *Config) LoadTheme(name string, l *theme.Loader) (*theme.Theme, error) {
	if t, ok := c.Themes[name]; ok {
		return t, nil
	}
	return l.Load(name)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	writeString := func(key, v string) {
		if v != "" {
			fmt.Fprintf(&sb, "%s = %s\n", key, v)
		}
	}
	writeString("theme", c.Theme)
	writeString("save_dir", c.SaveDir)
	writeString("tool", c.Tool)
	writeString("stroke", c.Stroke)
	writeString("fill", c.Fill)
	if c.Width > 0 {
		fmt.Fprintf(&sb, "width = %s\n", strconv.FormatFloat(c.Width, 'g', -1, 64))
	}
	if c.CanvasWidth > 0 {
		fmt.Fprintf(&sb, "canvas_width = %d\n", c.CanvasWidth)
	}
	if c.CanvasHeight > 0 {
		fmt.Fprintf(&sb, "canvas_height = %d\n", c.CanvasHeight)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	sb.WriteString("\n")

	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		t.Colors(func(key string, col color.RGBA) {
			fmt.Fprintf(&sb, "%s: %s\n", key, theme.Hex(col))
		})
		sb.WriteString("\n")
	}

	return sb.String()
}
