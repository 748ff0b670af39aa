package ppmview

import (
	"path/filepath"
	"testing"

	"github.com/bodgit/ppmview/netpbm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.db")

	c, err := NewCatalog(file)
	require.NoError(t, err)

	e, err := c.Lookup("/nowhere.ppm")
	require.NoError(t, err)
	assert.Nil(t, e)

	b := Entry{Path: "/b.pbm", SHA1: "BB", Format: netpbm.MonochromeASCII, Width: 3, Height: 2, MaxColor: 1, Scale: 267}
	a := Entry{Path: "/a.ppm", SHA1: "AA", Format: netpbm.ColorBinary, Width: 200, Height: 100, MaxColor: 255, Scale: 4}
	require.NoError(t, c.Record(b))
	require.NoError(t, c.Record(a))

	entries, err := c.List()
	require.NoError(t, err)
	assert.Equal(t, []Entry{a, b}, entries)

	// Replaced by path
	a.SHA1, a.MaxColor = "CC", 15
	require.NoError(t, c.Record(a))
	e, err = c.Lookup("/a.ppm")
	require.NoError(t, err)
	assert.Equal(t, &a, e)
	require.NoError(t, c.Close())

	// Persisted
	c, err = NewCatalog(file)
	require.NoError(t, err)
	defer c.Close()

	entries, err = c.List()
	require.NoError(t, err)
	assert.Equal(t, []Entry{a, b}, entries)
}
