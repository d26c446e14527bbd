// Package config holds the session configuration for the Game of Life shell.
//
// A Config is a plain value. Screens that change settings build a new Config
// and hand it to the shell, which starts a fresh session from it.
package config

import (
	"fmt"
	"image/color"
	"strconv"

	"conway/internal/core"
)

const (
	// MinTPS and MaxTPS bound the generations-per-second setting.
	MinTPS = 1
	MaxTPS = 60

	// MinWindowWidth and MinWindowHeight are the smallest grid view, in
	// pixels, at which the menus stay readable.
	MinWindowWidth  = 240
	MinWindowHeight = 180
)

// Swatch is a named entry of the live-cell colour palette.
type Swatch struct {
	Name  string
	Color color.RGBA
}

// Palette lists the selectable live-cell colours in cycling order.
var Palette = []Swatch{
	{Name: "yellow", Color: color.RGBA{R: 255, G: 215, B: 0, A: 255}},
	{Name: "red", Color: color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	{Name: "green", Color: color.RGBA{R: 0, G: 255, B: 0, A: 255}},
	{Name: "blue", Color: color.RGBA{R: 0, G: 128, B: 255, A: 255}},
	{Name: "pink", Color: color.RGBA{R: 255, G: 105, B: 180, A: 255}},
}

// PaletteIndex returns the position of name in Palette, or -1.
func PaletteIndex(name string) int {
	for i, s := range Palette {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Config controls the grid, pacing and colours of a session.
type Config struct {
	Width    int
	Height   int
	CellSize int

	TPS int

	CellColor  string
	Background color.RGBA
	GridColor  color.RGBA

	Seed int64
	Soup core.Soup
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      100,
		Height:     60,
		CellSize:   10,
		TPS:        10,
		CellColor:  "yellow",
		Background: color.RGBA{R: 50, G: 0, B: 70, A: 255},
		GridColor:  color.RGBA{R: 80, G: 30, B: 90, A: 255},
		Seed:       42,
		Soup:       core.SoupUniform,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Merge(cfg)
}

// Merge returns a copy of c with the recognised keys of kv applied. Values
// that fail to parse or fall outside their bounds are ignored.
func (c Config) Merge(kv map[string]string) Config {
	if kv == nil {
		return c
	}
	if v, ok := kv["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := kv["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := kv["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := kv["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinTPS && parsed <= MaxTPS {
			c.TPS = parsed
		}
	}
	if v, ok := kv["color"]; ok && PaletteIndex(v) >= 0 {
		c.CellColor = v
	}
	if v, ok := kv["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := kv["soup"]; ok {
		if soup, ok := core.ParseSoup(v); ok {
			c.Soup = soup
		}
	}
	return c
}

// Validate reports the first constraint c violates.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("cell size %d must be positive", c.CellSize)
	case c.TPS < MinTPS || c.TPS > MaxTPS:
		return fmt.Errorf("tps %d out of range [%d,%d]", c.TPS, MinTPS, MaxTPS)
	case PaletteIndex(c.CellColor) < 0:
		return fmt.Errorf("unknown cell colour %q", c.CellColor)
	}
	if _, ok := core.ParseSoup(string(c.Soup)); !ok {
		return fmt.Errorf("unknown soup %q", c.Soup)
	}
	return nil
}

// WithTPS returns a copy of c using tps, clamped to [MinTPS, MaxTPS].
func (c Config) WithTPS(tps int) Config {
	c.TPS = TPSControl().Clamp(tps)
	return c
}

// WithCellColor returns a copy of c using the named palette colour. Unknown
// names leave the colour unchanged.
func (c Config) WithCellColor(name string) Config {
	if PaletteIndex(name) >= 0 {
		c.CellColor = name
	}
	return c
}

// NextColor returns the palette entry following the current cell colour.
func (c Config) NextColor() string {
	i := PaletteIndex(c.CellColor)
	return Palette[(i+1)%len(Palette)].Name
}

// CellRGBA resolves the live-cell colour, falling back to the first palette
// entry.
func (c Config) CellRGBA() color.RGBA {
	if i := PaletteIndex(c.CellColor); i >= 0 {
		return Palette[i].Color
	}
	return Palette[0].Color
}

// WindowSize returns the pixel dimensions of the grid view.
func (c Config) WindowSize() (int, int) {
	return c.Width * c.CellSize, c.Height * c.CellSize
}

// ValidateWindow reports whether the grid view is large enough to host the
// menus. Headless runs do not need it.
func (c Config) ValidateWindow() error {
	w, h := c.WindowSize()
	if w < MinWindowWidth || h < MinWindowHeight {
		return fmt.Errorf("window %dx%d is smaller than %dx%d; raise w, h or cell", w, h, MinWindowWidth, MinWindowHeight)
	}
	return nil
}

// TPSControl describes the bounded TPS setting for menus.
func TPSControl() core.ParameterControl {
	return core.ParameterControl{
		Key:    "tps",
		Label:  "TPS",
		Step:   1,
		Min:    MinTPS,
		Max:    MaxTPS,
		HasMin: true,
		HasMax: true,
	}
}
