package theme

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

// EmbeddedThemes holds the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Names lists the embedded theme names without their extension.
func Names() []string {
	entries, err := fs.ReadDir(EmbeddedThemes, "defaults")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".theme"); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
