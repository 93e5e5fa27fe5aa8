package shapes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ShapeDef is the YAML definition for one catalog entry's parameter
// overrides (e.g. shapes.yaml). Zero-value fields fall back to the
// generator's built-in default, so a definition only lists what it changes.
type ShapeDef struct {
	Type     string  `yaml:"type"`
	Size     float32 `yaml:"size,omitempty"`
	Length   float32 `yaml:"length,omitempty"`
	Width    float32 `yaml:"width,omitempty"`
	Height   float32 `yaml:"height,omitempty"`
	Depth    float32 `yaml:"depth,omitempty"`
	Radius   float32 `yaml:"radius,omitempty"`
	Segments int     `yaml:"segments,omitempty"`
	Steps    int     `yaml:"steps,omitempty"`
}

func (d ShapeDef) sizeOr(v float32) float32   { return or(d.Size, v) }
func (d ShapeDef) lengthOr(v float32) float32 { return or(d.Length, v) }
func (d ShapeDef) widthOr(v float32) float32  { return or(d.Width, v) }
func (d ShapeDef) heightOr(v float32) float32 { return or(d.Height, v) }
func (d ShapeDef) depthOr(v float32) float32  { return or(d.Depth, v) }
func (d ShapeDef) radiusOr(v float32) float32 { return or(d.Radius, v) }

func (d ShapeDef) segmentsOr(v int) int {
	if d.Segments > 0 {
		return d.Segments
	}
	return v
}

func (d ShapeDef) stepsOr(v int) int {
	if d.Steps > 0 {
		return d.Steps
	}
	return v
}

func or(v, fallback float32) float32 {
	if v > 0 {
		return v
	}
	return fallback
}

// Catalog holds per-kind parameter overrides keyed by type identifier.
// The zero Catalog is valid and means built-in defaults for every kind.
type Catalog struct {
	defs map[string]ShapeDef
}

// catalogFile is the YAML layout of a shape catalog file.
type catalogFile struct {
	Shapes []ShapeDef `yaml:"shapes"`
}

// LoadCatalog reads a shape catalog YAML file. Entries whose type identifier
// is not in the kind enumeration are kept but never looked up.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	c := Catalog{defs: make(map[string]ShapeDef, len(f.Shapes))}
	for _, d := range f.Shapes {
		c.defs[d.Type] = d
	}
	return c, nil
}

// For returns the override definition for k, or a zero ShapeDef when the
// catalog has none.
func (c Catalog) For(k Kind) ShapeDef {
	if c.defs == nil {
		return ShapeDef{}
	}
	return c.defs[k.String()]
}
