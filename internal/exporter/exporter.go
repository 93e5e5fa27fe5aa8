// Package exporter is the collaborator-facing entry point: it takes a park
// document and an output location, assembles the scene, and writes the
// geometry file and metadata descriptor. The only hard failure is being
// unable to write an output artifact; unknown object types are reported and
// skipped.
package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"trueskate-exporter/internal/park"
	"trueskate-exporter/internal/scene"
	"trueskate-exporter/internal/trueskate"
)

// texturesNote is written next to the output when the concrete texture is
// missing, listing the files the park still needs before it can be packaged.
const texturesNote = `Add the following texture files to this folder:
- concrete_gray.jpg (gray concrete texture)
- sky_top.jpg, sky_front.jpg, sky_back.jpg, sky_left.jpg, sky_right.jpg (skybox)
`

// Options tunes an export. The zero value is usable.
type Options struct {
	// Scene options are forwarded to assembly (ground size, shape catalog).
	Scene scene.Options
	// Logger receives progress and skip diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

// Export writes p's geometry file and _mod.json under outDir/<safe name> and
// returns that directory. The directory is created if needed. Skipped
// objects are logged, never fatal; any write failure is returned with the
// target path.
func Export(p *park.Park, outDir string, opts Options) (string, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	safeName := SafeName(p.Name)
	dir := filepath.Join(outDir, safeName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("export: create %s: %w", dir, err)
	}

	log.Info("exporting park", "name", p.Name, "objects", len(p.Objects), "dir", dir)

	s, diags := scene.Assemble(p, opts.Scene)
	for _, d := range diags {
		log.Warn("skipping object", "index", d.Index, "type", d.Type)
	}
	log.Debug("scene assembled", "meshes", len(s.Meshes), "vertices", s.VertexCount())

	txtName := safeName + ".txt"
	txtPath := filepath.Join(dir, txtName)
	if err := writeFile(txtPath, trueskate.GeometryText(s)); err != nil {
		return "", err
	}

	modPath := filepath.Join(dir, "_mod.json")
	if err := writeFile(modPath, trueskate.ModInfoText(p.Name, txtName)); err != nil {
		return "", err
	}

	// The exporter cannot produce textures; leave a note when the park
	// directory doesn't have them yet.
	if _, err := os.Stat(filepath.Join(dir, "concrete_gray.jpg")); os.IsNotExist(err) {
		notePath := filepath.Join(dir, "TEXTURES_NEEDED.txt")
		if err := writeFile(notePath, texturesNote); err != nil {
			return "", err
		}
	}

	log.Info("export complete", "geometry", txtName, "dir", dir)
	return dir, nil
}

// SafeName converts a park name into a filesystem-friendly directory name.
func SafeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
