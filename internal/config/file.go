package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"conway/internal/core"
)

// hclFile is the top-level structure of a configuration file.
type hclFile struct {
	Grid       *hclGrid `hcl:"grid,block"`
	TPS        *int     `hcl:"tps,optional"`
	CellColor  *string  `hcl:"cell_color,optional"`
	Background []int    `hcl:"background,optional"`
	GridColor  []int    `hcl:"grid_color,optional"`
	Seed       *int64   `hcl:"seed,optional"`
	Soup       *string  `hcl:"soup,optional"`
}

type hclGrid struct {
	Width    *int `hcl:"width,optional"`
	Height   *int `hcl:"height,optional"`
	CellSize *int `hcl:"cell_size,optional"`
}

// Load reads an HCL configuration file and layers it over DefaultConfig.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source and layers it over DefaultConfig. filename is only
// used in diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(), &raw)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}

	cfg, err := raw.apply(DefaultConfig())
	if err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	return cfg, nil
}

// evalContext exposes the palette so files can write cell_color = palette.pink.
func evalContext() *hcl.EvalContext {
	names := make(map[string]cty.Value, len(Palette))
	for _, s := range Palette {
		names[s.Name] = cty.StringVal(s.Name)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(names),
		},
	}
}

func (f hclFile) apply(c Config) (Config, error) {
	if f.Grid != nil {
		if f.Grid.Width != nil {
			c.Width = *f.Grid.Width
		}
		if f.Grid.Height != nil {
			c.Height = *f.Grid.Height
		}
		if f.Grid.CellSize != nil {
			c.CellSize = *f.Grid.CellSize
		}
	}
	if f.TPS != nil {
		c.TPS = *f.TPS
	}
	if f.CellColor != nil {
		c.CellColor = *f.CellColor
	}
	if f.Background != nil {
		rgba, err := parseRGB("background", f.Background)
		if err != nil {
			return c, err
		}
		c.Background = rgba
	}
	if f.GridColor != nil {
		rgba, err := parseRGB("grid_color", f.GridColor)
		if err != nil {
			return c, err
		}
		c.GridColor = rgba
	}
	if f.Seed != nil {
		c.Seed = *f.Seed
	}
	if f.Soup != nil {
		c.Soup = core.Soup(*f.Soup)
	}
	return c, nil
}

func parseRGB(name string, parts []int) (color.RGBA, error) {
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("%s must have 3 or 4 components, got %d", name, len(parts))
	}
	for _, p := range parts {
		if p < 0 || p > 255 {
			return color.RGBA{}, fmt.Errorf("%s component %d out of range [0,255]", name, p)
		}
	}
	c := color.RGBA{R: uint8(parts[0]), G: uint8(parts[1]), B: uint8(parts[2]), A: 255}
	if len(parts) == 4 {
		c.A = uint8(parts[3])
	}
	return c, nil
}
