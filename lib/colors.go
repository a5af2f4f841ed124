package lib

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	ColorWhite   = color.NRGBA{255, 255, 255, 255}
	ColorRedDark = color.NRGBA{204, 0, 0, 255}

	// Substituted when --bg or --fg can't be parsed.
	FallbackBackground = ColorRedDark
	FallbackForeground = ColorWhite
)

var ErrInvalidColor = errors.New("color must be #RRGGBB or #RRGGBBAA")

// ParseHexColor parses #RRGGBB or #RRGGBBAA. The leading # is optional.
// Six digit colors are fully opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var channels [4]uint8
	channels[3] = 255

	switch len(hex) {
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}

	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%q: bad %c channel: %w", s, "RGBA"[i], ErrInvalidColor)
		}
		channels[i] = uint8(v)
	}

	return color.NRGBA{channels[0], channels[1], channels[2], channels[3]}, nil
}

// ParseHexColorOr is ParseHexColor with a fallback in place of the error.
func ParseHexColorOr(s string, fallback color.NRGBA) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		log.WithError(err).WithField("fallback", FormatHexColor(fallback)).Debug("using fallback color")
		return fallback
	}
	return c
}

func FormatHexColor(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
