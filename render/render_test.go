package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanchain/chain"
	"github.com/katalvlaran/scanchain/geometry"
	"github.com/katalvlaran/scanchain/layout"
	"github.com/katalvlaran/scanchain/render"
	"github.com/katalvlaran/scanchain/router"
)

func TestChains(t *testing.T) {
	pts, err := layout.Generate(30, layout.WithSeed(2))
	require.NoError(t, err)
	res, err := router.Route(pts, router.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Chains(&buf, res.Set, render.DefaultOptions()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 16, strings.Count(out, "<polyline "))
	assert.Equal(t, 32+30, strings.Count(out, "<circle "))
	assert.Equal(t, 32, strings.Count(out, "fill='red'"))
	assert.Equal(t, 30, strings.Count(out, "fill='blue'"))
}

func TestChains_ViewBox(t *testing.T) {
	in := geometry.NewDriver("DRIVERPIN_0", 0, 0, geometry.InputDriver, 0)
	out := geometry.NewDriver("DRIVERPIN_16", 100, 50, geometry.OutputDriver, 16)
	set := chain.Set{chain.New(0, in, out)}

	var buf bytes.Buffer
	require.NoError(t, render.Chains(&buf, set, render.Options{Margin: 0.1}))

	// 10% of the larger side on every border; y flipped.
	assert.Contains(t, buf.String(), `viewBox="-10.000000 -10.000000 120.000000 70.000000"`)
	assert.Contains(t, buf.String(), "points='0.000000,50.000000 100.000000,0.000000'")
}

func TestChains_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Chains(&buf, nil, render.Options{}))
	assert.Contains(t, buf.String(), "<svg")
	assert.NotContains(t, buf.String(), "<polyline")
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestSVG_Error(t *testing.T) {
	svg := render.NewSVG(failWriter{})
	svg.Start(geom.Rect{Max: geom.Coord{X: 1, Y: 1}})
	svg.Circle(geom.Coord{}, 1, "fill:red")
	assert.ErrorIs(t, svg.End(), errWrite)
}

func TestSVG_Attrs(t *testing.T) {
	var buf bytes.Buffer
	svg := render.NewSVG(&buf)
	svg.Circle(geom.Coord{X: 1, Y: 2}, 3, "fill:red", "id='x'", "")
	require.NoError(t, svg.End())
	assert.Equal(t, "<circle cx='1.000000' cy='2.000000' r='3.000000' style='fill:red' id='x' />\n</svg>\n", buf.String())
}
