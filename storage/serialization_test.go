package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/datablock/core"
)

func TestValueTag(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want core.TypeTag
	}{
		{"int", MarshalInt(-12), core.TypeInt},
		{"bool", MarshalBool(true), core.TypeBool},
		{"double", MarshalDouble(3.5), core.TypeDouble},
		{"complex", MarshalComplex(complex(1, -2)), core.TypeComplex},
		{"string", MarshalString("artichoke"), core.TypeString},
		{"int array", MarshalIntArray([]int32{1, 2}), core.TypeIntArray},
		{"double array", MarshalDoubleArray(nil), core.TypeDoubleArray},
		{"complex array", MarshalComplexArray([]complex128{1i}), core.TypeComplexArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := ValueTag(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag)
		})
	}
}

func TestValueTag_Invalid(t *testing.T) {
	_, err := ValueTag(nil)
	assert.ErrorIs(t, err, ErrTruncatedValue)

	_, err = ValueTag([]byte{0xff})
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestScalarRoundTrip(t *testing.T) {
	i, err := UnmarshalInt(MarshalInt(-1000000))
	require.NoError(t, err)
	assert.Equal(t, int32(-1000000), i)

	b, err := UnmarshalBool(MarshalBool(true))
	require.NoError(t, err)
	assert.True(t, b)

	d, err := UnmarshalDouble(MarshalDouble(-1.324))
	require.NoError(t, err)
	assert.Equal(t, -1.324, d)

	c, err := UnmarshalComplex(MarshalComplex(complex(2.5, -7.25)))
	require.NoError(t, err)
	assert.Equal(t, complex(2.5, -7.25), c)
}

func TestStringPayload(t *testing.T) {
	payload, err := StringPayload(MarshalString("bear"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bear"), payload)

	payload, err = StringPayload(MarshalString(""))
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestArrayLen(t *testing.T) {
	n, err := ArrayLen(MarshalDoubleArray([]float64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = ArrayLen(MarshalIntArray(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = ArrayLen(MarshalDouble(1.0))
	assert.ErrorIs(t, err, ErrNotAnArray)
}

func TestArrayRoundTrip(t *testing.T) {
	ints := []int32{5, -6, 7}
	buf := make([]int32, 3)
	n, err := UnmarshalIntArray(MarshalIntArray(ints), buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, ints, buf)

	doubles := []float64{5.0, 6.0, 7.0}
	dbuf := make([]float64, 3)
	n, err = UnmarshalDoubleArray(MarshalDoubleArray(doubles), dbuf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, doubles, dbuf)

	complexes := []complex128{complex(1, 2), complex(-3, 4)}
	cbuf := make([]complex128, 2)
	n, err = UnmarshalComplexArray(MarshalComplexArray(complexes), cbuf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, complexes, cbuf)
}

func TestUnmarshalArray_BufferTooSmall(t *testing.T) {
	// A short buffer is not an error at this layer; the caller compares the
	// returned count against the buffer it passed.
	data := MarshalDoubleArray([]float64{1, 2, 3, 4})
	buf := make([]float64, 2)
	n, err := UnmarshalDoubleArray(data, buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []float64{0, 0}, buf)
}

func TestUnmarshal_Truncated(t *testing.T) {
	data := MarshalDoubleArray([]float64{1, 2, 3})
	buf := make([]float64, 3)
	_, err := UnmarshalDoubleArray(data[:len(data)-4], buf)
	assert.Error(t, err)

	_, err = UnmarshalComplex([]byte{byte(core.TypeComplex)})
	assert.ErrorIs(t, err, ErrTruncatedValue)
}
