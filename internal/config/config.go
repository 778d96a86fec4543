package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/stickerpad/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Copy     bool
	Stickers bool
}

// Marker holds the marker tool settings.
type Marker struct {
	Thickness int
}

// Config holds the application configuration.
type Config struct {
	Theme       string
	StickerFile string
	Marker      Marker
	Notify      Notify
	Themes      map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Notify: Notify{
			Copy:     false,
			Stickers: false,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.StickerFile != "" {
		fmt.Fprintf(&sb, "sticker_file = %s\n", c.StickerFile)
	}
	sb.WriteString("\n")

	// Marker section
	if c.Marker.Thickness != 0 {
		sb.WriteString("[marker]\n")
		fmt.Fprintf(&sb, "thickness = %d\n", c.Marker.Thickness)
		sb.WriteString("\n")
	}

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "stickers = %v\n", c.Notify.Stickers)
	sb.WriteString("\n")

	// Themes sections
	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Background: %s\n", toHex(t.Background))
		fmt.Fprintf(&sb, "Canvas: %s\n", toHex(t.Canvas))
		fmt.Fprintf(&sb, "Ink: %s\n", toHex(t.Ink))
		fmt.Fprintf(&sb, "ToolbarBackground: %s\n", toHex(t.ToolbarBackground))
		fmt.Fprintf(&sb, "ButtonBackground: %s\n", toHex(t.ButtonBackground))
		fmt.Fprintf(&sb, "ButtonBackgroundHover: %s\n", toHex(t.ButtonBackgroundHover))
		fmt.Fprintf(&sb, "ButtonBackgroundPress: %s\n", toHex(t.ButtonBackgroundPress))
		fmt.Fprintf(&sb, "ButtonBackgroundDisabled: %s\n", toHex(t.ButtonBackgroundDisabled))
		fmt.Fprintf(&sb, "ButtonText: %s\n", toHex(t.ButtonText))
		fmt.Fprintf(&sb, "ButtonTextDisabled: %s\n", toHex(t.ButtonTextDisabled))
		fmt.Fprintf(&sb, "ButtonBorder: %s\n", toHex(t.ButtonBorder))
		fmt.Fprintf(&sb, "StatusBackground: %s\n", toHex(t.StatusBackground))
		fmt.Fprintf(&sb, "StatusText: %s\n", toHex(t.StatusText))
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c interface{ RGBA() (r, g, b, a uint32) }) string {
	if rgba, ok := c.(color.RGBA); ok {
		if rgba.A == 255 {
			return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
		}
		return fmt.Sprintf("#%02X%02X%02X%02X", rgba.R, rgba.G, rgba.B, rgba.A)
	}

	r, g, b, a := c.RGBA()
	if a == 0 {
		return "#00000000"
	}
	r8 := uint8(r >> 8)
	g8 := uint8(g >> 8)
	b8 := uint8(b >> 8)
	a8 := uint8(a >> 8)

	if a8 == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r8, g8, b8, a8)
}
