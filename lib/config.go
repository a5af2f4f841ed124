package lib

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

const (
	DefaultText        = "Claude Code"
	DefaultBackground  = "#cc0000"
	DefaultForeground  = "#ffffff"
	DefaultFontSize    = 28.0
	DefaultWidth       = 260.0
	DefaultHeight      = 80.0
	DefaultWindowTitle = "Label"
	DefaultFont        = FontGoBold
)

// Options holds the raw command-line values before colors are resolved.
type Options struct {
	Text        string
	Background  string
	Foreground  string
	FontSize    float64
	Width       float64
	Height      float64
	Undecorated bool
	AlwaysOnTop bool
	Title       string
	Font        string
}

func DefaultOptions() Options {
	return Options{
		Text:       DefaultText,
		Background: DefaultBackground,
		Foreground: DefaultForeground,
		FontSize:   DefaultFontSize,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Title:      DefaultWindowTitle,
		Font:       DefaultFont,
	}
}

// Config is the resolved label configuration. It doesn't change after
// startup.
type Config struct {
	Text        string
	Background  color.NRGBA
	Foreground  color.NRGBA
	FontSize    float64
	Width       float64
	Height      float64
	Undecorated bool
	AlwaysOnTop bool
	Title       string
	Font        string
}

var ErrInvalidOption = errors.New("invalid option")

// Resolve validates opts and turns it into a Config. Bad colors are replaced
// with the fallback colors; everything else that is out of range is an error.
func (opts Options) Resolve() (Config, error) {
	if !isPositive(opts.FontSize) {
		return Config{}, fmt.Errorf("--font-size %v must be positive: %w", opts.FontSize, ErrInvalidOption)
	}
	if !isPositive(opts.Width) {
		return Config{}, fmt.Errorf("--width %v must be positive: %w", opts.Width, ErrInvalidOption)
	}
	if !isPositive(opts.Height) {
		return Config{}, fmt.Errorf("--height %v must be positive: %w", opts.Height, ErrInvalidOption)
	}
	if !IsKnownFont(opts.Font) {
		return Config{}, fmt.Errorf("--font %q must be one of %v: %w", opts.Font, FontNames(), ErrInvalidOption)
	}

	return Config{
		Text:        opts.Text,
		Background:  ParseHexColorOr(opts.Background, FallbackBackground),
		Foreground:  ParseHexColorOr(opts.Foreground, FallbackForeground),
		FontSize:    opts.FontSize,
		Width:       opts.Width,
		Height:      opts.Height,
		Undecorated: opts.Undecorated,
		AlwaysOnTop: opts.AlwaysOnTop,
		Title:       opts.Title,
		Font:        opts.Font,
	}, nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
