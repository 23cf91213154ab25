// Package theme provides named color palettes and per-component styling
// defaults for salt applications, loadable from YAML.
package theme

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cyypherus/salt/pkg/graphics"
)

// ButtonTheme defines default styling for clickable rectangles.
type ButtonTheme struct {
	// Fill is the resting background.
	Fill graphics.Color
	// HoverFill is the background while hovered.
	HoverFill graphics.Color
	// Stroke is the outline color.
	Stroke graphics.Color
	// Label is the text color.
	Label graphics.Color
	// StrokeWidth is the outline width.
	StrokeWidth float64
	// CornerRadius is the rx/ry corner rounding.
	CornerRadius float64
	// FontSize is the default label font size.
	FontSize float64
}

// CanvasTheme defines default styling for drawing surfaces.
type CanvasTheme struct {
	// Background is the surface fill.
	Background graphics.Color
	// Stroke is the default stroke color for user drawing.
	Stroke graphics.Color
	// StrokeWidth is the default drawing stroke width.
	StrokeWidth float64
}

// Theme bundles application-wide colors with component defaults.
type Theme struct {
	Name       string
	Background graphics.Color
	Text       graphics.Color
	Button     ButtonTheme
	Canvas     CanvasTheme
}

// DefaultLight returns the built-in light theme.
func DefaultLight() *Theme {
	return &Theme{
		Name:       "light",
		Background: graphics.ColorWhite,
		Text:       graphics.ColorBlack,
		Button: ButtonTheme{
			Fill:         graphics.RGB(0x66, 0x99, 0xFF),
			HoverFill:    graphics.RGB(0x55, 0x88, 0xEE),
			Stroke:       graphics.RGB(0x00, 0x00, 0x80),
			Label:        graphics.ColorWhite,
			StrokeWidth:  2,
			CornerRadius: 10,
			FontSize:     28,
		},
		Canvas: CanvasTheme{
			Background:  graphics.ColorWhite,
			Stroke:      graphics.ColorBlack,
			StrokeWidth: 10,
		},
	}
}

// DefaultDark returns the built-in dark theme.
func DefaultDark() *Theme {
	t := DefaultLight()
	t.Name = "dark"
	t.Background = graphics.RGB(0x12, 0x12, 0x12)
	t.Text = graphics.ColorWhite
	t.Button.Stroke = graphics.RGB(0x99, 0xBB, 0xFF)
	t.Canvas.Background = graphics.RGB(0x1E, 0x1E, 0x1E)
	t.Canvas.Stroke = graphics.ColorWhite
	return t
}

// Palette is a set of named colors loaded from configuration.
type Palette struct {
	Name   string
	Colors map[string]graphics.Color
	// Order preserves the declaration order of the palette file so color
	// pickers render stably.
	Order []string
}

// Color returns the named color, or fallback when absent.
func (p *Palette) Color(name string, fallback graphics.Color) graphics.Color {
	if p != nil {
		if c, ok := p.Colors[name]; ok {
			return c
		}
	}
	return fallback
}

// paletteFile is the YAML wire form of a palette.
type paletteFile struct {
	Name   string `yaml:"name"`
	Colors []struct {
		Name  string `yaml:"name"`
		Value string `yaml:"value"`
	} `yaml:"colors"`
}

// LoadPalette parses a palette from YAML data.
func LoadPalette(data []byte) (*Palette, error) {
	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	if len(file.Colors) == 0 {
		return nil, errors.New("palette defines no colors")
	}

	palette := &Palette{
		Name:   file.Name,
		Colors: make(map[string]graphics.Color, len(file.Colors)),
	}
	for _, entry := range file.Colors {
		if entry.Name == "" {
			return nil, errors.New("palette color with empty name")
		}
		c, err := ParseHex(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %w", entry.Name, err)
		}
		if _, dup := palette.Colors[entry.Name]; dup {
			return nil, fmt.Errorf("palette color %q declared twice", entry.Name)
		}
		palette.Colors[entry.Name] = c
		palette.Order = append(palette.Order, entry.Name)
	}
	return palette, nil
}

// LoadPaletteFile reads and parses a palette YAML file.
func LoadPaletteFile(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}
	return LoadPalette(data)
}

// ParseHex parses "#rgb", "#rrggbb", or "#rrggbbaa" color strings.
func ParseHex(s string) (graphics.Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return 0, fmt.Errorf("color %q must start with '#'", s)
	}
	expand := func(h string) string {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}
	switch len(hex) {
	case 3:
		hex = expand(hex) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("color %q has unsupported length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q is not valid hex: %w", s, err)
	}
	return graphics.RGBA(
		uint8(v>>24),
		uint8(v>>16),
		uint8(v>>8),
		uint8(v),
	), nil
}
