package chain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanchain/chain"
	"github.com/katalvlaran/scanchain/driver"
	"github.com/katalvlaran/scanchain/geometry"
	"github.com/katalvlaran/scanchain/layout"
)

// fixture returns a registry, three ordinary pins and a valid set that puts
// all of them into chain 0.
func fixture(t *testing.T) (*driver.Registry, []geometry.Point, chain.Set) {
	t.Helper()

	ds := layout.Drivers(170, 170)
	reg, err := driver.NewRegistry(ds)
	require.NoError(t, err)

	pins := []geometry.Point{
		geometry.NewPoint("a", 30, 10),
		geometry.NewPoint("b", 60, 10),
		geometry.NewPoint("c", 90, 10),
	}

	set := make(chain.Set, driver.Pairs)
	for i := 0; i < driver.Pairs; i++ {
		in, out := reg.Pair(i)
		set[i] = chain.New(i, in, out)
	}
	set[0].Points = []geometry.Point{reg.Input(0), pins[0], pins[1], pins[2], reg.Output(0)}

	return reg, pins, set
}

// TestChain_Length sums consecutive Euclidean distances.
func TestChain_Length(t *testing.T) {
	c := chain.Chain{Points: []geometry.Point{
		geometry.NewPoint("a", 0, 0),
		geometry.NewPoint("b", 3, 4),
		geometry.NewPoint("c", 3, 10),
	}}
	assert.Equal(t, 11.0, c.Length(nil))
	assert.Equal(t, 13.0, c.Length(geometry.Manhattan))
	assert.Equal(t, 2, c.Edges())
	require.Len(t, c.Interior(), 1)
	assert.Equal(t, "b", c.Interior()[0].Name)

	assert.Nil(t, chain.Chain{}.Interior())
	assert.Equal(t, 0, chain.Chain{}.Edges())
	assert.Equal(t, 0.0, chain.Chain{}.Length(nil))
}

// TestSet_Totals checks Lengths/Total/Pins on the fixture.
func TestSet_Totals(t *testing.T) {
	_, _, set := fixture(t)

	lengths := set.Lengths(nil)
	require.Len(t, lengths, driver.Pairs)
	// Chain 0 is a straight horizontal line at y=10 from x=0 to x=170.
	assert.InDelta(t, 170.0, lengths[0], 1e-9)

	var sum float64
	for _, l := range lengths {
		sum += l
	}
	assert.InDelta(t, sum, set.Total(nil), 1e-9)
	assert.InDelta(t, 16*170.0, set.Total(nil), 1e-9)
	assert.Equal(t, 3, set.Pins())
}

// TestRound stabilizes to 1e-9.
func TestRound(t *testing.T) {
	assert.Equal(t, 0.3, chain.Round(0.1+0.2))
	assert.Equal(t, math.Round(math.Pi*1e9)/1e9, chain.Round(math.Pi))
}

// TestValidate_OK accepts a well-formed set.
func TestValidate_OK(t *testing.T) {
	reg, pins, set := fixture(t)
	require.NoError(t, chain.Validate(set, reg, pins))
}

// TestValidate_Errors exercises every sentinel.
func TestValidate_Errors(t *testing.T) {
	reg, pins, set := fixture(t)

	err := chain.Validate(set[:15], reg, pins)
	assert.ErrorIs(t, err, chain.ErrChainCount)

	_, _, bad := fixture(t)
	bad[3].Points[0], bad[3].Points[1] = bad[3].Points[1], bad[3].Points[0]
	assert.ErrorIs(t, chain.Validate(bad, reg, pins), chain.ErrEndpoints)

	_, _, bad = fixture(t)
	bad[1].Points = []geometry.Point{reg.Input(1), reg.Input(2), reg.Output(1)}
	assert.ErrorIs(t, chain.Validate(bad, reg, pins), chain.ErrDriverInterior)

	_, _, bad = fixture(t)
	bad[1].Points = []geometry.Point{reg.Input(1), geometry.NewPoint("zz", 1, 1), reg.Output(1)}
	assert.ErrorIs(t, chain.Validate(bad, reg, pins), chain.ErrUnknownPin)

	_, _, bad = fixture(t)
	bad[1].Points = []geometry.Point{reg.Input(1), pins[0], reg.Output(1)}
	assert.ErrorIs(t, chain.Validate(bad, reg, pins), chain.ErrPinDuplicated)

	_, _, bad = fixture(t)
	bad[0].Points = []geometry.Point{reg.Input(0), pins[0], pins[1], reg.Output(0)}
	assert.ErrorIs(t, chain.Validate(bad, reg, pins), chain.ErrPinMissing)

	// Pair index must match the chain position.
	_, _, bad = fixture(t)
	bad[4].Pair = 5
	assert.ErrorIs(t, chain.Validate(bad, reg, pins), chain.ErrEndpoints)

	require.NoError(t, chain.Validate(set, reg, pins), "fixture must be untouched")
}

// TestValidate_Multiset accepts identical pins listed twice when routed twice.
func TestValidate_Multiset(t *testing.T) {
	reg, pins, set := fixture(t)
	pins = append(pins, pins[0])
	set[5].Points = []geometry.Point{reg.Input(5), pins[0], reg.Output(5)}
	require.NoError(t, chain.Validate(set, reg, pins))
}

// links returns the successor map of set, keyed by pin name.
func links(set chain.Set) (map[string]string, map[string]geometry.Point) {
	next := make(map[string]string)
	byName := make(map[string]geometry.Point)
	for _, c := range set {
		for i, p := range c.Points {
			byName[p.Name] = p
			if i+1 < len(c.Points) {
				next[p.Name] = c.Points[i+1].Name
			}
		}
	}

	return next, byName
}

// TestFromLinks_RoundTrip rebuilds the fixture from its link map.
func TestFromLinks_RoundTrip(t *testing.T) {
	reg, pins, set := fixture(t)
	next, byName := links(set)

	got, err := chain.FromLinks(next, reg, byName)
	require.NoError(t, err)
	assert.Equal(t, set, got)
	require.NoError(t, chain.Validate(got, reg, pins))
}

// TestFromLinks_Errors covers broken, looping and unknown links.
func TestFromLinks_Errors(t *testing.T) {
	reg, _, set := fixture(t)

	next, byName := links(set)
	delete(next, "b")
	_, err := chain.FromLinks(next, reg, byName)
	assert.ErrorIs(t, err, chain.ErrBrokenChain)

	next, byName = links(set)
	next["c"] = "a"
	_, err = chain.FromLinks(next, reg, byName)
	assert.ErrorIs(t, err, chain.ErrLoop)

	next, byName = links(set)
	delete(byName, "b")
	_, err = chain.FromLinks(next, reg, byName)
	assert.ErrorIs(t, err, chain.ErrUnknownPin)

	next, byName = links(set)
	next["a"] = reg.Input(3).Name
	_, err = chain.FromLinks(next, reg, byName)
	assert.ErrorIs(t, err, chain.ErrDriverInterior)
}
