package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanchain/driver"
	"github.com/katalvlaran/scanchain/geometry"
	"github.com/katalvlaran/scanchain/layout"
)

// TestNewRegistry_Pairing verifies the fixed i ↔ i+16 pairing.
func TestNewRegistry_Pairing(t *testing.T) {
	pts, err := layout.Generate(5)
	require.NoError(t, err)

	reg, err := driver.NewRegistry(pts)
	require.NoError(t, err)
	require.Equal(t, driver.Pairs, reg.Pairs())

	for i := 0; i < driver.Pairs; i++ {
		in, out := reg.Pair(i)
		assert.Equal(t, geometry.InputDriver, in.Role)
		assert.Equal(t, geometry.OutputDriver, out.Role)
		assert.Equal(t, i, in.Index)
		assert.Equal(t, i+driver.Pairs, out.Index)
		assert.Equal(t, driver.Pairing[i], out.Index)
		assert.Equal(t, out, reg.Driver(out.Index))
	}
	assert.Len(t, reg.Drivers(), driver.Count)
}

// TestNewRegistry_OrderIndependent shuffles drivers in the input; the registry
// must still index them by their fixed driver index.
func TestNewRegistry_OrderIndependent(t *testing.T) {
	ds := layout.Drivers(100, 100)
	rev := make([]geometry.Point, len(ds))
	for i := range ds {
		rev[len(ds)-1-i] = ds[i]
	}

	a, err := driver.NewRegistry(ds)
	require.NoError(t, err)
	b, err := driver.NewRegistry(rev)
	require.NoError(t, err)
	assert.Equal(t, a.Drivers(), b.Drivers())
	assert.Equal(t, ds[0], rev[len(rev)-1], "input slice must not be reordered")
}

// TestNewRegistry_TooFew is the configuration error: fewer than 32 drivers.
func TestNewRegistry_TooFew(t *testing.T) {
	ds := layout.Drivers(100, 100)

	_, err := driver.NewRegistry(ds[:31])
	assert.ErrorIs(t, err, driver.ErrTooFewDrivers)

	_, err = driver.NewRegistry([]geometry.Point{geometry.NewPoint("p", 1, 1)})
	assert.ErrorIs(t, err, driver.ErrTooFewDrivers)
}

// TestNewRegistry_Invalid covers the remaining sentinels.
func TestNewRegistry_Invalid(t *testing.T) {
	base := func() []geometry.Point { return layout.Drivers(100, 100) }

	extra := append(base(), geometry.NewDriver("X", 1, 1, geometry.InputDriver, 3))
	_, err := driver.NewRegistry(extra)
	assert.ErrorIs(t, err, driver.ErrTooManyDrivers)

	dup := base()
	dup[1] = geometry.NewDriver("DUP", 1, 1, geometry.InputDriver, 0)
	_, err = driver.NewRegistry(dup)
	assert.ErrorIs(t, err, driver.ErrDuplicateDriver)

	oob := base()
	oob[5] = geometry.NewDriver("OOB", 1, 1, geometry.InputDriver, 40)
	_, err = driver.NewRegistry(oob)
	assert.ErrorIs(t, err, driver.ErrDriverIndex)

	role := base()
	role[2] = geometry.NewDriver("BAD", 1, 1, geometry.OutputDriver, 2)
	_, err = driver.NewRegistry(role)
	assert.ErrorIs(t, err, driver.ErrDriverRole)
}
