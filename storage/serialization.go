// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/datablock/core"
)

// A stored value is one tag byte followed by the MUS-encoded payload.
// Arrays additionally carry a varint element count before the elements, so
// the length probe never has to decode the elements themselves.

// ValueTag reads the type tag of a stored value blob.
func ValueTag(data []byte) (core.TypeTag, error) {
	if len(data) < 1 {
		return core.TypeUnknown, ErrTruncatedValue
	}
	tag := core.TypeTag(data[0])
	if tag < core.TypeInt || tag > core.TypeBool {
		return core.TypeUnknown, ErrUnknownTag
	}
	return tag, nil
}

// MarshalInt serializes an int value blob.
func MarshalInt(v int32) []byte {
	buf := make([]byte, 1+varint.Int32.Size(v))
	buf[0] = byte(core.TypeInt)
	varint.Int32.Marshal(v, buf[1:])
	return buf
}

// UnmarshalInt deserializes an int payload. The tag byte must already have
// been checked.
func UnmarshalInt(data []byte) (int32, error) {
	if len(data) < 2 {
		return 0, ErrTruncatedValue
	}
	v, _, err := varint.Int32.Unmarshal(data[1:])
	return v, err
}

// MarshalBool serializes a bool value blob.
func MarshalBool(v bool) []byte {
	b := byte(0)
	if v {
		b = 1
	}
	return []byte{byte(core.TypeBool), b}
}

// UnmarshalBool deserializes a bool payload.
func UnmarshalBool(data []byte) (bool, error) {
	if len(data) < 2 {
		return false, ErrTruncatedValue
	}
	return data[1] != 0, nil
}

// MarshalDouble serializes a double value blob.
func MarshalDouble(v float64) []byte {
	buf := make([]byte, 1+raw.Float64.Size(v))
	buf[0] = byte(core.TypeDouble)
	raw.Float64.Marshal(v, buf[1:])
	return buf
}

// UnmarshalDouble deserializes a double payload.
func UnmarshalDouble(data []byte) (float64, error) {
	if len(data) < 2 {
		return 0, ErrTruncatedValue
	}
	v, _, err := raw.Float64.Unmarshal(data[1:])
	return v, err
}

// MarshalComplex serializes a complex value blob as two raw doubles.
func MarshalComplex(v complex128) []byte {
	re, im := real(v), imag(v)
	buf := make([]byte, 1+raw.Float64.Size(re)+raw.Float64.Size(im))
	buf[0] = byte(core.TypeComplex)
	n := raw.Float64.Marshal(re, buf[1:])
	raw.Float64.Marshal(im, buf[1+n:])
	return buf
}

// UnmarshalComplex deserializes a complex payload.
func UnmarshalComplex(data []byte) (complex128, error) {
	if len(data) < 2 {
		return 0, ErrTruncatedValue
	}
	re, n, err := raw.Float64.Unmarshal(data[1:])
	if err != nil {
		return 0, err
	}
	im, _, err := raw.Float64.Unmarshal(data[1+n:])
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// MarshalString serializes a string value blob. The payload is the raw bytes.
func MarshalString(v string) []byte {
	buf := make([]byte, 1+len(v))
	buf[0] = byte(core.TypeString)
	copy(buf[1:], v)
	return buf
}

// StringPayload returns the string bytes of a stored value blob without
// copying them.
func StringPayload(data []byte) ([]byte, error) {
	if len(data) < 1 {
		return nil, ErrTruncatedValue
	}
	return data[1:], nil
}

// ArrayLen reads the element count of a stored array blob.
func ArrayLen(data []byte) (int, error) {
	tag, err := ValueTag(data)
	if err != nil {
		return 0, err
	}
	if !tag.IsArray() {
		return 0, ErrNotAnArray
	}
	n, _, err := varint.Int.Unmarshal(data[1:])
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrTruncatedValue
	}
	return n, nil
}

// MarshalIntArray serializes an int array value blob.
func MarshalIntArray(v []int32) []byte {
	size := 1 + varint.Int.Size(len(v))
	for _, e := range v {
		size += varint.Int32.Size(e)
	}
	buf := make([]byte, size)
	buf[0] = byte(core.TypeIntArray)
	off := 1 + varint.Int.Marshal(len(v), buf[1:])
	for _, e := range v {
		off += varint.Int32.Marshal(e, buf[off:])
	}
	return buf
}

// UnmarshalIntArray deserializes an int array payload into buf.
// Returns the element count.
func UnmarshalIntArray(data []byte, buf []int32) (int, error) {
	count, err := ArrayLen(data)
	if err != nil {
		return 0, err
	}
	if count > len(buf) {
		return count, nil
	}
	off := 1 + varint.Int.Size(count)
	for i := 0; i < count; i++ {
		if off >= len(data) {
			return 0, ErrTruncatedValue
		}
		e, n, err := varint.Int32.Unmarshal(data[off:])
		if err != nil {
			return 0, err
		}
		buf[i] = e
		off += n
	}
	return count, nil
}

// MarshalDoubleArray serializes a double array value blob.
func MarshalDoubleArray(v []float64) []byte {
	size := 1 + varint.Int.Size(len(v)) + 8*len(v)
	buf := make([]byte, size)
	buf[0] = byte(core.TypeDoubleArray)
	off := 1 + varint.Int.Marshal(len(v), buf[1:])
	for _, e := range v {
		off += raw.Float64.Marshal(e, buf[off:])
	}
	return buf
}

// UnmarshalDoubleArray deserializes a double array payload into buf.
// Returns the element count.
func UnmarshalDoubleArray(data []byte, buf []float64) (int, error) {
	count, err := ArrayLen(data)
	if err != nil {
		return 0, err
	}
	if count > len(buf) {
		return count, nil
	}
	off := 1 + varint.Int.Size(count)
	for i := 0; i < count; i++ {
		if off >= len(data) {
			return 0, ErrTruncatedValue
		}
		e, n, err := raw.Float64.Unmarshal(data[off:])
		if err != nil {
			return 0, err
		}
		buf[i] = e
		off += n
	}
	return count, nil
}

// MarshalComplexArray serializes a complex array value blob.
func MarshalComplexArray(v []complex128) []byte {
	size := 1 + varint.Int.Size(len(v)) + 16*len(v)
	buf := make([]byte, size)
	buf[0] = byte(core.TypeComplexArray)
	off := 1 + varint.Int.Marshal(len(v), buf[1:])
	for _, e := range v {
		off += raw.Float64.Marshal(real(e), buf[off:])
		off += raw.Float64.Marshal(imag(e), buf[off:])
	}
	return buf
}

// UnmarshalComplexArray deserializes a complex array payload into buf.
// Returns the element count.
func UnmarshalComplexArray(data []byte, buf []complex128) (int, error) {
	count, err := ArrayLen(data)
	if err != nil {
		return 0, err
	}
	if count > len(buf) {
		return count, nil
	}
	off := 1 + varint.Int.Size(count)
	for i := 0; i < count; i++ {
		if off >= len(data) {
			return 0, ErrTruncatedValue
		}
		re, n, err := raw.Float64.Unmarshal(data[off:])
		if err != nil {
			return 0, err
		}
		off += n
		im, n, err := raw.Float64.Unmarshal(data[off:])
		if err != nil {
			return 0, err
		}
		off += n
		buf[i] = complex(re, im)
	}
	return count, nil
}
