package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is a 24-bit RGB cell color stored as 0xRRGGBB.
// Occupancy is derived entirely from comparing cell colors against the
// configured empty color, so two colors are equal only if all channels match.
type Color uint32

// Named colors used by the default sand palette.
const (
	ColorEmpty  Color = 0xefefef
	ColorYellow Color = 0xdbd848
	ColorBlue   Color = 0x1ac6ff
	ColorPink   Color = 0xff66ff
	ColorOrange Color = 0xff9933
	ColorGreen  Color = 0x00e600
	ColorWhite  Color = 0xf2f2f2
	ColorBlack  Color = 0x1a1a1a
	ColorBrown  Color = 0x7b481e
)

// RGB returns the red, green and blue channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Shade darkens the color toward black by amount in [0, 1], blending in Lab
// space. Zero returns the color unchanged.
func (c Color) Shade(amount float64) Color {
	if amount <= 0 {
		return c
	}
	amount = ClampF(amount, 0, 1)
	r, g, b := c.RGB()
	src := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	out := src.BlendLab(colorful.Color{}, amount).Clamped()
	or, og, ob := out.RGB255()
	return RGB(or, og, ob)
}

// RGB builds a Color from individual channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseColor parses "#rrggbb", "0xrrggbb" or bare "rrggbb".
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(raw, "#"):
		raw = raw[1:]
	case strings.HasPrefix(raw, "0x"), strings.HasPrefix(raw, "0X"):
		raw = raw[2:]
	}
	if len(raw) != 6 {
		return 0, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

// UnmarshalYAML accepts either a hex string or a YAML integer (0xefefef).
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!int" {
		var v uint32
		if err := node.Decode(&v); err != nil {
			return err
		}
		if v > 0xffffff {
			return fmt.Errorf("color %#x out of range", v)
		}
		*c = Color(v)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the color as a "#rrggbb" string.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}
