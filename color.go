package vaporgrid

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHex parses a hexadecimal color string ("#d53c3d", "d53c3d", or "0xd53c3d"). Alpha is set to 1.
func NewColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(hex), "#"), "0x")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: expected 6 hexadecimal digits", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return NewColor(
		float32((v>>16)&0xff)/255,
		float32((v>>8)&0xff)/255,
		float32(v&0xff)/255,
		1,
	), nil
}

// MultRGB returns a copy of the Color with the RGB components multiplied by the value given.
func (c Color) MultRGB(value float32) Color {
	c.R *= value
	c.G *= value
	c.B *= value
	return c
}

// ToRGBA64 converts the Color to a color.RGBA64 instance.
func (c Color) ToRGBA64() color.RGBA64 {
	return color.RGBA64{
		clampUint16(c.R * c.A),
		clampUint16(c.G * c.A),
		clampUint16(c.B * c.A),
		clampUint16(c.A),
	}
}

func clampUint16(v float32) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 65535
	}
	return uint16(v * 65535)
}
