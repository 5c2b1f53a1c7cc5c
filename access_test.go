package datablock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/datablock/core"
)

func TestPutGet(t *testing.T) {
	b := newTestBlock(t)
	numbers := []struct {
		name string
		val  int32
	}{{"one", 1}, {"two", 2}, {"three", 3}}

	for _, n := range numbers {
		require.NoError(t, Put(b, "my_section", n.name, n.val))
		assert.True(t, b.Contains("my_section", n.name))
	}

	for _, n := range numbers {
		got, err := Get[int32](b, "my_section", n.name)
		require.NoError(t, err)
		assert.Equal(t, n.val, got)

		_, err = Get[float64](b, "my_section", n.name)
		assert.ErrorIs(t, err, core.StatusWrongValueType)
	}

	for _, name := range []string{"four", "five", "six", "seven", "eight"} {
		_, err := Get[int32](b, "my_section", name)
		assert.ErrorIs(t, err, core.StatusNameNotFound)
		assert.False(t, b.Contains("my_section", name))
	}
}

func TestWrongType(t *testing.T) {
	b := newTestBlock(t)
	numbers := []struct {
		name string
		val  float64
	}{{"hello", 1.0}, {"there", 3.2}, {"pal", -1.324}}

	for _, n := range numbers {
		require.NoError(t, Put(b, "my_section", n.name, n.val))
	}

	for _, n := range numbers {
		_, err := Get[int32](b, "my_section", n.name)
		assert.ErrorIs(t, err, core.StatusWrongValueType)

		tag, err := b.Type("my_section", n.name)
		require.NoError(t, err)
		assert.Equal(t, core.TypeDouble, tag)
	}

	for _, name := range []string{"four", "five", "six", "seven", "eight"} {
		_, err := b.Type("my_section", name)
		assert.ErrorIs(t, err, core.StatusNameNotFound)
	}
}

func TestPut_Duplicate(t *testing.T) {
	b := newTestBlock(t)
	require.NoError(t, Put(b, "s", "n", int32(1)))

	err := Put(b, "s", "n", int32(2))
	assert.ErrorIs(t, err, core.StatusNameAlreadyExists)

	// Occupied regardless of type.
	err = Put(b, "s", "n", "text")
	assert.ErrorIs(t, err, core.StatusNameAlreadyExists)
}

func TestInsert_Replace(t *testing.T) {
	b := newTestBlock(t)
	numbers := []struct {
		name string
		val  int32
	}{{"one", 1}, {"two", 2}, {"three", 3}}

	for _, n := range numbers {
		require.NoError(t, Put(b, "my_section", n.name, n.val))
	}

	for _, n := range numbers {
		old, replaced, err := Insert(b, "my_section", n.name, n.val+1)
		require.NoError(t, err)
		assert.True(t, replaced)
		assert.Equal(t, n.val, old)

		got, err := Get[int32](b, "my_section", n.name)
		require.NoError(t, err)
		assert.Equal(t, n.val+1, got)
	}
}

func TestInsert_Absent(t *testing.T) {
	b := newTestBlock(t)

	old, replaced, err := Insert(b, "s", "fresh", 2.5)
	require.NoError(t, err)
	assert.False(t, replaced)
	assert.Zero(t, old)

	got, err := Get[float64](b, "s", "fresh")
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)
}

func TestInsert_WrongType(t *testing.T) {
	b := newTestBlock(t)
	require.NoError(t, Put(b, "s", "n", int32(1)))

	// The replace path pre-reads as the new type, which fails.
	_, _, err := Insert(b, "s", "n", 2.0)
	assert.ErrorIs(t, err, core.StatusWrongValueType)

	// Stored value is untouched.
	got, err := Get[int32](b, "s", "n")
	require.NoError(t, err)
	assert.Equal(t, int32(1), got)
}

func TestReplace_Absent(t *testing.T) {
	b := newTestBlock(t)

	_, err := Replace(b, "s", "missing", int32(1))
	assert.ErrorIs(t, err, core.StatusNameNotFound)
}

func TestPutGetVec(t *testing.T) {
	b := newTestBlock(t)
	data := []struct {
		name string
		val  []float64
	}{
		{"one", []float64{1.0, 2.0, 3.0}},
		{"two", []float64{0.0, 2.0, 4.0}},
		{"archnemesis", []float64{5.0, 6.0, 7.0}},
	}

	for _, d := range data {
		require.NoError(t, Put(b, "my_section", d.name, d.val))
		assert.True(t, b.Contains("my_section", d.name))
	}

	for _, d := range data {
		got, err := Get[[]float64](b, "my_section", d.name)
		require.NoError(t, err)
		assert.Equal(t, d.val, got)

		_, err = Get[float64](b, "my_section", d.name)
		assert.ErrorIs(t, err, core.StatusWrongValueType)
	}
}

func TestVec_IntAndComplex(t *testing.T) {
	b := newTestBlock(t)

	ints := []int32{4, -5, 6}
	require.NoError(t, Put(b, "s", "ints", ints))
	gotInts, err := Get[[]int32](b, "s", "ints")
	require.NoError(t, err)
	assert.Equal(t, ints, gotInts)

	complexes := []complex128{complex(1, 2), complex(-3, 0.5)}
	require.NoError(t, Put(b, "s", "cs", complexes))
	gotComplexes, err := Get[[]complex128](b, "s", "cs")
	require.NoError(t, err)
	assert.Equal(t, complexes, gotComplexes)

	// Arrays of different element types do not read as each other.
	_, err = Get[[]float64](b, "s", "ints")
	assert.ErrorIs(t, err, core.StatusWrongValueType)
}

func TestVec_EmptyDistinctFromAbsent(t *testing.T) {
	b := newTestBlock(t)

	require.NoError(t, Put(b, "s", "empty", []float64{}))
	got, err := Get[[]float64](b, "s", "empty")
	require.NoError(t, err)
	assert.Len(t, got, 0)
	assert.True(t, b.Contains("s", "empty"))

	_, err = Get[[]float64](b, "s", "absent")
	assert.ErrorIs(t, err, core.StatusNameNotFound)
}

func TestVec_ScalarReadAsArray(t *testing.T) {
	b := newTestBlock(t)
	require.NoError(t, Put(b, "s", "scalar", 1.0))

	// Present but not an array: the negative length probe resolves to
	// wrong-value-type, not name-not-found.
	_, err := Get[[]float64](b, "s", "scalar")
	assert.ErrorIs(t, err, core.StatusWrongValueType)
}

func TestPutGetString(t *testing.T) {
	b := newTestBlock(t)
	data := []struct {
		name string
		val  string
	}{
		{"a", "artichoke"},
		{"b", "bear"},
		{"c", "caterpillar"},
		{"d", "dandelion"},
	}

	for _, d := range data {
		require.NoError(t, Put(b, "my_section", d.name, d.val))
		assert.True(t, b.Contains("my_section", d.name))
	}

	for _, d := range data {
		got, err := Get[string](b, "my_section", d.name)
		require.NoError(t, err)
		assert.Equal(t, d.val, got)

		_, err = Get[float64](b, "my_section", d.name)
		assert.ErrorIs(t, err, core.StatusWrongValueType)
	}
}

func TestString_ReplaceReturnsOld(t *testing.T) {
	b := newTestBlock(t)
	require.NoError(t, Put(b, "s", "word", "first"))

	old, replaced, err := Insert(b, "s", "word", "second")
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, "first", old)

	got, err := Get[string](b, "s", "word")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestString_InvalidUTF8Rejected(t *testing.T) {
	b := newTestBlock(t)
	bad := string([]byte{0xff, 0xfe, 'x'})

	err := Put(b, "s", "word", bad)
	assert.ErrorIs(t, err, core.StatusValueNull)
	assert.False(t, b.Contains("s", "word"))

	require.NoError(t, Put(b, "s", "word", "fine"))
	_, err = Replace(b, "s", "word", bad)
	assert.ErrorIs(t, err, core.StatusValueNull)

	got, err := Get[string](b, "s", "word")
	require.NoError(t, err)
	assert.Equal(t, "fine", got)
}

func TestGetDefault(t *testing.T) {
	b := newTestBlock(t)

	v, usedDefault, err := GetDefault(b, "s", "missing", 2.5)
	require.NoError(t, err)
	assert.True(t, usedDefault)
	assert.Equal(t, 2.5, v)

	// The default read does not create the entry.
	assert.False(t, b.Contains("s", "missing"))

	require.NoError(t, Put(b, "s", "present", 1.5))
	v, usedDefault, err = GetDefault(b, "s", "present", 2.5)
	require.NoError(t, err)
	assert.False(t, usedDefault)
	assert.Equal(t, 1.5, v)

	// Wrong type is a real failure, never silently defaulted.
	_, _, err = GetDefault(b, "s", "present", int32(7))
	assert.ErrorIs(t, err, core.StatusWrongValueType)
}

func TestBoolAndComplexScalars(t *testing.T) {
	b := newTestBlock(t)

	require.NoError(t, Put(b, "s", "flag", true))
	flag, err := Get[bool](b, "s", "flag")
	require.NoError(t, err)
	assert.True(t, flag)

	want := complex(2.5, -0.5)
	require.NoError(t, Put(b, "s", "z", want))
	z, err := Get[complex128](b, "s", "z")
	require.NoError(t, err)
	assert.Equal(t, want, z)
}
