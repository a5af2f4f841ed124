package lib

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	for _, entry := range []struct {
		input    string
		expected color.NRGBA
	}{
		{"#cc0000", color.NRGBA{0xcc, 0x00, 0x00, 0xff}},
		{"cc0000", color.NRGBA{0xcc, 0x00, 0x00, 0xff}},
		{"#FFFFFF", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#12ab3C", color.NRGBA{0x12, 0xab, 0x3c, 0xff}},
		{"#11223344", color.NRGBA{0x11, 0x22, 0x33, 0x44}},
		{"aabbcc00", color.NRGBA{0xaa, 0xbb, 0xcc, 0x00}},
		{"  #000000  ", color.NRGBA{0, 0, 0, 0xff}},
	} {
		actual, err := ParseHexColor(entry.input)
		require.NoError(t, err, entry.input)
		assert.Equal(t, entry.expected, actual, entry.input)
	}
}

func TestParseHexColorAllBytes(t *testing.T) {
	for v := 0; v < 256; v++ {
		rgb := fmt.Sprintf("#%02x%02X%02x", v, 255-v, v/2)
		c, err := ParseHexColor(rgb)
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{uint8(v), uint8(255 - v), uint8(v / 2), 255}, c)

		rgba := fmt.Sprintf("%02x%02x%02x%02x", 255-v, v, v, v)
		c, err = ParseHexColor(rgba)
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{uint8(255 - v), uint8(v), uint8(v), uint8(v)}, c)
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"#",
		"notacolor",
		"#fff",
		"#12345",
		"#1234567",
		"#123456789",
		"#gg0000",
		"#00000z",
		"#+10000",
		"#-10000",
		"##cc0000",
		"#cc 000",
		"#ccé00",
	} {
		_, err := ParseHexColor(input)
		assert.ErrorIs(t, err, ErrInvalidColor, "%q", input)
	}
}

func TestParseHexColorOr(t *testing.T) {
	assert.Equal(t, FallbackBackground, ParseHexColorOr("notacolor", FallbackBackground))
	assert.Equal(t, FallbackForeground, ParseHexColorOr("#zzzzzz", FallbackForeground))
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, ParseHexColorOr("#010203", FallbackBackground))
}

func TestFormatHexColor(t *testing.T) {
	assert.Equal(t, "#cc0000", FormatHexColor(FallbackBackground))
	assert.Equal(t, "#01020304", FormatHexColor(color.NRGBA{1, 2, 3, 4}))
}
