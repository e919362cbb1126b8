package def_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanchain/def"
	"github.com/katalvlaran/scanchain/geometry"
	"github.com/katalvlaran/scanchain/layout"
)

func TestParse_Small(t *testing.T) {
	d, err := newParser(t).ParseString(small)
	require.NoError(t, err)

	assert.Equal(t, "chip", d.Name)
	require.Len(t, d.Pins, 2)
	require.Len(t, d.Components, 2)
	assert.Equal(t, "im_psyched", d.Components[0].Model)

	die, ok := d.DieArea()
	require.True(t, ok)
	assert.Equal(t, geom.Rect{Max: geom.Coord{X: 1000, Y: 800}}, die)

	pts, err := d.Points()
	require.NoError(t, err)
	want := []geometry.Point{
		geometry.NewDriver("DRIVERPIN_0", 0, 100, geometry.InputDriver, 0),
		geometry.NewDriver("DRIVERPIN_16", 1000, 100, geometry.OutputDriver, 16),
		geometry.NewPoint("p1", 5, 6),
		geometry.NewPoint("p2", 7.5, -8),
	}
	assert.Equal(t, want, pts)
}

func TestParse_NoDieArea(t *testing.T) {
	d, err := newParser(t).ParseString("DESIGN x ;\nEND DESIGN\n")
	require.NoError(t, err)
	_, ok := d.DieArea()
	assert.False(t, ok)

	pts, err := d.Points()
	require.NoError(t, err)
	assert.Empty(t, pts)
}

func TestParse_Errors(t *testing.T) {
	p := newParser(t)

	// Syntax: missing semicolon after the component.
	_, err := p.ParseString("COMPONENTS 1 ;\np1 im_psyched + PLACED ( 1 2 ) N\nEND COMPONENTS\n")
	assert.Error(t, err)

	// Component without a location.
	d, err := p.ParseString("COMPONENTS 1 ;\np1 im_psyched + UNPLACED ;\nEND COMPONENTS\n")
	require.NoError(t, err)
	_, err = d.Points()
	assert.ErrorIs(t, err, def.ErrNoPlacement)

	// Driver with a foreign name.
	d, err = p.ParseString("PINS 1 ;\n- clk + DIRECTION INPUT + PLACED ( 0 0 ) N ;\nEND PINS\n")
	require.NoError(t, err)
	_, err = d.Points()
	assert.ErrorIs(t, err, def.ErrDriverName)

	d, err = p.ParseString("PINS 1 ;\n- DRIVERPIN_x + PLACED ( 0 0 ) N ;\nEND PINS\n")
	require.NoError(t, err)
	_, err = d.Points()
	assert.ErrorIs(t, err, def.ErrDriverName)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chip.def")
	require.NoError(t, os.WriteFile(path, []byte(small), 0o644))

	d, err := newParser(t).ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, d.Components, 2)

	_, err = newParser(t).ParseFile(filepath.Join(t.TempDir(), "missing.def"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestWriteDesign_RoundTrip writes a generated layout and parses it back.
func TestWriteDesign_RoundTrip(t *testing.T) {
	pts, err := layout.Generate(100, layout.WithSeed(9), layout.WithDie(1200, 900))
	require.NoError(t, err)
	die := geom.Rect{Max: geom.Coord{X: 1200, Y: 900}}

	var buf bytes.Buffer
	require.NoError(t, def.WriteDesign(&buf, "gen", die, pts))
	assert.True(t, strings.HasPrefix(buf.String(), "VERSION 5.8 ;\nDESIGN gen ;\n"))

	d, err := newParser(t).Parse("gen.def", &buf)
	require.NoError(t, err)
	assert.Equal(t, "gen", d.Name)

	got, err := d.Points()
	require.NoError(t, err)
	assert.Equal(t, pts, got)

	gotDie, ok := d.DieArea()
	require.True(t, ok)
	assert.Equal(t, die, gotDie)
}
