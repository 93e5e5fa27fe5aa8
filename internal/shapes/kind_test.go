package shapes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromString(t *testing.T) {
	k, ok := KindFromString("quarter-pipe")
	require.True(t, ok)
	assert.Equal(t, KindQuarterPipe, k)
	assert.Equal(t, "quarter-pipe", k.String())

	_, ok = KindFromString("not-a-real-type")
	assert.False(t, ok)

	_, ok = KindFromString("")
	assert.False(t, ok)
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := KindFromString(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
}

func TestPlaceholderAliases(t *testing.T) {
	// Until dedicated geometry exists, these kinds reuse their nearest
	// neighbor's generator verbatim.
	assert.Equal(t, KindQuarterPipe.Generate(ShapeDef{}), KindHalfPipe.Generate(ShapeDef{}))
	assert.Equal(t, KindRailFlat.Generate(ShapeDef{}), KindRailDown.Generate(ShapeDef{}))
	assert.Equal(t, Stairs(4, 0.4, 1, 3), KindStairsHubba.Generate(ShapeDef{}))
}

func TestCatalogOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.yaml")
	data := `shapes:
  - type: quarter-pipe
    segments: 4
  - type: ledge
    length: 8
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)

	// segments=4 shrinks the quarter pipe's vertex count.
	m := KindQuarterPipe.Generate(cat.For(KindQuarterPipe))
	assert.Len(t, m.Vertices, 4*4+8)

	// Un-overridden parameters keep their built-in defaults.
	assert.Equal(t, float32(8), cat.For(KindLedge).lengthOr(defaultLedgeLength))
	assert.Equal(t, float32(defaultLedgeHeight), cat.For(KindLedge).heightOr(defaultLedgeHeight))

	// Kinds without an entry fall back entirely.
	assert.Equal(t, Bench(), KindBench.Generate(cat.For(KindBench)))
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestZeroCatalog(t *testing.T) {
	var cat Catalog
	assert.Equal(t, ShapeDef{}, cat.For(KindLedge))
}
