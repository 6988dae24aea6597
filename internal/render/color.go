package render

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor converts a CSS style colour string into RGBA. It accepts SVG
// colour names and #rgb, #rgba, #rrggbb or #rrggbbaa hex values.
func ParseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if !strings.HasPrefix(spec, "#") {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	hex := spec[1:]
	switch len(hex) {
	case 3, 4:
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	var ch [4]uint8
	ch[3] = 255
	for i := 0; i*2 < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		ch[i] = uint8(v)
	}
	return premultiply(color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}), nil
}

func premultiply(c color.NRGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// colorCache memoises parsed shape colours. A string that fails to parse is
// logged once and then rendered as the fallback colour.
type colorCache struct {
	fallback color.RGBA
	parsed   map[string]color.RGBA
}

func newColorCache(fallback color.RGBA) *colorCache {
	return &colorCache{fallback: fallback, parsed: make(map[string]color.RGBA)}
}

func (c *colorCache) lookup(s string) color.RGBA {
	if col, ok := c.parsed[s]; ok {
		return col
	}
	col, err := ParseColor(s)
	if err != nil {
		log.Printf("render: %v, using fallback", err)
		col = c.fallback
	}
	c.parsed[s] = col
	return col
}
