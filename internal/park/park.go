// Package park defines the input skatepark document and its JSON loading.
// All fields are optional in the file; defaults are resolved here, at the
// boundary, so downstream packages never see missing-field ambiguity.
package park

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"trueskate-exporter/internal/transform"
)

// DefaultName is used when the document has no park name.
const DefaultName = "My Skatepark"

// DefaultType is used when an object has no type identifier.
const DefaultType = "ground-flat"

// Park is a skatepark document: a name and an ordered object list. Object
// order is preserved through assembly and export, so the same document always
// produces the same file.
type Park struct {
	Name    string   `json:"name"`
	Objects []Object `json:"objects"`
}

// Object is one placed park object.
type Object struct {
	Type     string   `json:"type"`
	Position Position `json:"position"`
	Rotation Rotation `json:"rotation"`
	// Scale is a pointer so a missing field (default 1.0) can be told apart
	// from an explicit 0.
	Scale *float32 `json:"scale"`
}

// Position is an object's world offset in park units.
type Position struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Rotation is an object's rotation; only the Y axis is supported.
type Rotation struct {
	Y float32 `json:"y"`
}

// Placement returns the object's resolved world transform.
func (o Object) Placement() transform.Placement {
	scale := float32(1)
	if o.Scale != nil {
		scale = *o.Scale
	}
	return transform.Placement{
		X:         o.Position.X,
		Y:         o.Position.Y,
		Z:         o.Position.Z,
		RotationY: o.Rotation.Y,
		Scale:     scale,
	}
}

// Decode reads a park document from r and resolves defaults. A missing name
// becomes DefaultName, a missing object list becomes zero objects, and a
// missing object type becomes DefaultType. Malformed JSON is the only error.
func Decode(r io.Reader) (*Park, error) {
	var p Park
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("park: decode: %w", err)
	}
	p.applyDefaults()
	return &p, nil
}

// Load reads a park document from the file at path.
func Load(path string) (*Park, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("park: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

func (p *Park) applyDefaults() {
	if p.Name == "" {
		p.Name = DefaultName
	}
	for i := range p.Objects {
		if p.Objects[i].Type == "" {
			p.Objects[i].Type = DefaultType
		}
	}
}
