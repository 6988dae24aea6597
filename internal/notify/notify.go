// Package notify raises desktop notifications after drawings are saved,
// copied or exported.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/sketchpad/internal/assets"
	"github.com/example/sketchpad/internal/platform"
)

const iconSize = 64

// Event identifies a notification trigger.
type Event string

const (
	// EventSave emits a notification when a drawing is written as JSON.
	EventSave Event = "save"
	// EventCopy emits a notification when a drawing is copied to the clipboard.
	EventCopy Event = "copy"
	// EventExport emits a notification when a drawing is rendered to a file.
	EventExport Event = "export"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title   string
	Timeout time.Duration
	Events  map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title:   platform.DefaultAppName,
		Timeout: 5 * time.Second,
		Events: map[Event]EventPreference{
			EventSave:   {Template: "Saved %s"},
			EventCopy:   {Template: "Copied %s to clipboard"},
			EventExport: {Template: "Exported %s"},
		},
	}
}

// LoadPreferences reads configuration from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SKETCHPAD_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	if v := strings.TrimSpace(os.Getenv("SKETCHPAD_NOTIFY_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			prefs.Timeout = d
		} else {
			log.Printf("notify: ignoring SKETCHPAD_NOTIFY_TIMEOUT: %v", err)
		}
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("SKETCHPAD_NOTIFY_SAVE_TEXT", EventSave)
	apply("SKETCHPAD_NOTIFY_COPY_TEXT", EventCopy)
	apply("SKETCHPAD_NOTIFY_EXPORT_TEXT", EventExport)
	return prefs
}

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    func(title, body string, opts platform.Options) error
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Timeout: prefs.Timeout, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Save sends a save notification including the written filename when available.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	opts, cleanup := n.withAppIcon()
	defer cleanup()
	n.dispatch(EventSave, absPath(path), opts)
}

// Copy sends a clipboard notification.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "drawing"
	}
	opts, cleanup := n.withAppIcon()
	defer cleanup()
	n.dispatch(EventCopy, detail, opts)
}

// withAppIcon returns options showing the application icon. The returned
// cleanup removes the temporary icon file.
func (n *Notifier) withAppIcon() (platform.Options, func()) {
	opts := n.options()
	icon, err := assets.IconImage(iconSize)
	if err != nil {
		log.Printf("notification icon: %v", err)
		return opts, func() {}
	}
	path, cleanup, err := createPreview(icon)
	if err != nil {
		log.Printf("notification icon: %v", err)
		return opts, func() {}
	}
	opts.IconPath = path
	return opts, cleanup
}

// Export sends an export notification. A PNG export is shown as its own
// icon. Otherwise img, when given, is the preview and the application icon
// is used without one.
func (n *Notifier) Export(path string, img image.Image) {
	if !n.enabledFor(EventExport) {
		return
	}
	opts := n.options()
	detail := absPath(path)
	switch {
	case strings.EqualFold(filepath.Ext(path), ".png"):
		if _, err := os.Stat(detail); err == nil {
			opts.IconPath = detail
		}
	case img != nil:
		if preview, cleanup, err := createPreview(img); err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = preview
		}
	default:
		var cleanup func()
		opts, cleanup = n.withAppIcon()
		defer cleanup()
	}
	n.dispatch(EventExport, detail, opts)
}

func absPath(path string) string {
	detail := strings.TrimSpace(path)
	if abs, err := filepath.Abs(detail); err == nil {
		return abs
	}
	return detail
}

func (n *Notifier) options() platform.Options {
	return platform.Options{AppName: n.prefs.Title, Timeout: n.prefs.Timeout}
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) template(event Event) string {
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "sketchpad-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
