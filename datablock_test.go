package datablock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/datablock/core"
)

func newTestBlock(t *testing.T) *DataBlock {
	t.Helper()
	b := New()
	t.Cleanup(func() { b.Close() })
	return b
}

func TestNewAndClose(t *testing.T) {
	b := New()
	require.NotNil(t, b)

	require.NoError(t, b.Close())
	// Closing again is a no-op.
	require.NoError(t, b.Close())
}

func TestClosedBlock(t *testing.T) {
	b := New()
	require.NoError(t, b.Close())

	assert.False(t, b.Contains("s", "n"))
	assert.False(t, b.ContainsSection("s"))

	_, err := Get[int32](b, "s", "n")
	assert.ErrorIs(t, err, core.StatusBlockNull)

	err = Put(b, "s", "n", int32(1))
	assert.ErrorIs(t, err, core.StatusBlockNull)

	_, err = b.Type("s", "n")
	assert.ErrorIs(t, err, core.StatusBlockNull)
}

func TestClone_IndependentContent(t *testing.T) {
	b := newTestBlock(t)
	require.NoError(t, Put(b, "cosmo", "h0", 0.7))
	require.NoError(t, Put(b, "cosmo", "label", "fiducial"))

	dup := b.Clone()
	defer dup.Close()

	// Same content snapshot.
	v, err := Get[float64](dup, "cosmo", "h0")
	require.NoError(t, err)
	assert.Equal(t, 0.7, v)

	// Mutating the clone must not change values observed in the original.
	_, _, err = Insert(dup, "cosmo", "h0", 0.8)
	require.NoError(t, err)
	require.NoError(t, Put(dup, "cosmo", "extra", int32(1)))

	v, err = Get[float64](b, "cosmo", "h0")
	require.NoError(t, err)
	assert.Equal(t, 0.7, v)
	assert.False(t, b.Contains("cosmo", "extra"))
}

func TestClone_OfClosedPanics(t *testing.T) {
	b := New()
	require.NoError(t, b.Close())
	assert.Panics(t, func() { b.Clone() })
}

func TestType(t *testing.T) {
	b := newTestBlock(t)
	require.NoError(t, Put(b, "s", "d", 1.5))

	tag, err := b.Type("s", "d")
	require.NoError(t, err)
	assert.Equal(t, core.TypeDouble, tag)

	_, err = b.Type("s", "missing")
	assert.ErrorIs(t, err, core.StatusNameNotFound)
}

func TestIsType(t *testing.T) {
	b := newTestBlock(t)
	require.NoError(t, Put(b, "s", "d", 1.5))

	assert.True(t, IsType[float64](b, "s", "d"))
	assert.False(t, IsType[int32](b, "s", "d"))
	assert.False(t, IsType[float64](b, "s", "missing"))
}

func TestSectionsAndNames(t *testing.T) {
	b := newTestBlock(t)
	require.NoError(t, Put(b, "matter", "omega", 0.3))
	require.NoError(t, Put(b, "cosmo", "h0", 0.7))
	require.NoError(t, Put(b, "cosmo", "ns", 0.96))

	sections, err := b.Sections()
	require.NoError(t, err)
	assert.Equal(t, []string{"cosmo", "matter"}, sections)

	names, err := b.Names("cosmo")
	require.NoError(t, err)
	assert.Equal(t, []string{"h0", "ns"}, names)

	_, err = b.Names("nope")
	assert.ErrorIs(t, err, core.StatusSectionNotFound)

	assert.True(t, b.ContainsSection("cosmo"))
	assert.False(t, b.ContainsSection("nope"))
}

func TestDeleteSection(t *testing.T) {
	b := newTestBlock(t)
	require.NoError(t, Put(b, "cosmo", "h0", 0.7))
	require.NoError(t, Put(b, "matter", "omega", 0.3))

	require.NoError(t, b.DeleteSection("cosmo"))
	assert.False(t, b.ContainsSection("cosmo"))
	assert.True(t, b.ContainsSection("matter"))

	err := b.DeleteSection("cosmo")
	assert.ErrorIs(t, err, core.StatusSectionNotFound)
}

func TestCopySection(t *testing.T) {
	b := newTestBlock(t)
	require.NoError(t, Put(b, "src", "h0", 0.7))
	require.NoError(t, Put(b, "src", "label", "fiducial"))

	require.NoError(t, b.CopySection("src", "dst"))

	v, err := Get[string](b, "dst", "label")
	require.NoError(t, err)
	assert.Equal(t, "fiducial", v)

	err = b.CopySection("src", "dst")
	assert.ErrorIs(t, err, core.StatusNameAlreadyExists)

	err = b.CopySection("nope", "elsewhere")
	assert.ErrorIs(t, err, core.StatusSectionNotFound)
}
