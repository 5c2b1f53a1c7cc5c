package datablock

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/poiesic/datablock/core"
	"github.com/poiesic/datablock/storage"
)

// Value is the closed set of types a DataBlock can hold: the four scalar
// types, text, and one-dimensional arrays of the numeric types.
type Value interface {
	int32 | bool | float64 | complex128 | string | []int32 | []float64 | []complex128
}

// codec binds one Value type to its engine entry points and its type tag.
// The generic Get/Put/Replace/Insert functions are written once against a
// codec and resolve to the right engine calls through codecOf.
type codec[T Value] struct {
	tag     core.TypeTag
	get     func(storage.Engine, string, string) (T, core.Status)
	put     func(storage.Engine, string, string, T) core.Status
	replace func(storage.Engine, string, string, T) core.Status
}

// codecOf resolves the codec for T. The switch is the single place where
// Value types meet engine entry points.
func codecOf[T Value]() codec[T] {
	var zero T
	var c any
	switch any(zero).(type) {
	case int32:
		c = codec[int32]{
			tag:     core.TypeInt,
			get:     storage.Engine.GetInt,
			put:     storage.Engine.PutInt,
			replace: storage.Engine.ReplaceInt,
		}
	case bool:
		c = codec[bool]{
			tag:     core.TypeBool,
			get:     storage.Engine.GetBool,
			put:     storage.Engine.PutBool,
			replace: storage.Engine.ReplaceBool,
		}
	case float64:
		c = codec[float64]{
			tag:     core.TypeDouble,
			get:     storage.Engine.GetDouble,
			put:     storage.Engine.PutDouble,
			replace: storage.Engine.ReplaceDouble,
		}
	case complex128:
		c = codec[complex128]{
			tag:     core.TypeComplex,
			get:     storage.Engine.GetComplex,
			put:     storage.Engine.PutComplex,
			replace: storage.Engine.ReplaceComplex,
		}
	case string:
		c = codec[string]{
			tag:     core.TypeString,
			get:     getText,
			put:     storage.Engine.PutString,
			replace: storage.Engine.ReplaceString,
		}
	case []int32:
		c = codec[[]int32]{
			tag: core.TypeIntArray,
			get: func(eng storage.Engine, section, name string) ([]int32, core.Status) {
				return getArray(eng, section, name, storage.Engine.GetIntArray)
			},
			put:     storage.Engine.PutIntArray,
			replace: storage.Engine.ReplaceIntArray,
		}
	case []float64:
		c = codec[[]float64]{
			tag: core.TypeDoubleArray,
			get: func(eng storage.Engine, section, name string) ([]float64, core.Status) {
				return getArray(eng, section, name, storage.Engine.GetDoubleArray)
			},
			put:     storage.Engine.PutDoubleArray,
			replace: storage.Engine.ReplaceDoubleArray,
		}
	case []complex128:
		c = codec[[]complex128]{
			tag: core.TypeComplexArray,
			get: func(eng storage.Engine, section, name string) ([]complex128, core.Status) {
				return getArray(eng, section, name, storage.Engine.GetComplexArray)
			},
			put:     storage.Engine.PutComplexArray,
			replace: storage.Engine.ReplaceComplexArray,
		}
	default:
		panic(fmt.Sprintf("datablock: no codec for %T", zero))
	}
	return c.(codec[T])
}

// getArray reads a one-dimensional array: probe the length, size the buffer
// exactly, then bulk-read. A negative probe means absent or not an array of
// any element type; presence disambiguates the two.
func getArray[E int32 | float64 | complex128](eng storage.Engine, section, name string, bulk func(storage.Engine, string, string, []E) (int, core.Status)) ([]E, core.Status) {
	length := eng.ArrayLength(section, name)
	if length < 0 {
		if eng.HasValue(section, name) {
			return nil, core.StatusWrongValueType
		}
		return nil, core.StatusNameNotFound
	}
	buf := make([]E, length)
	n, st := bulk(eng, section, name, buf)
	if st != core.StatusSuccess {
		return nil, st
	}
	return buf[:n], core.StatusSuccess
}

// getText reads a string through the engine's leased-buffer protocol: copy
// the bytes out, hand the buffer back, then validate. Invalid UTF-8 means
// the engine broke its contract, which is not a recoverable error.
func getText(eng storage.Engine, section, name string) (string, core.Status) {
	buf, st := eng.GetString(section, name)
	if st != core.StatusSuccess {
		return "", st
	}
	s := string(buf)
	eng.ReleaseString(buf)
	if !utf8.ValidString(s) {
		panic("datablock: stored string is not valid UTF-8")
	}
	return s, core.StatusSuccess
}

// Get retrieves the value of type T at (section, name). An absent entry
// fails with StatusNameNotFound; an entry of another type fails with
// StatusWrongValueType.
func Get[T Value](b *DataBlock, section, name string) (T, error) {
	var zero T
	eng, err := b.engine()
	if err != nil {
		return zero, err
	}
	c := codecOf[T]()
	v, st := c.get(eng, section, name)
	if st != core.StatusSuccess {
		return zero, core.NewError(st).WithReason("could not get value at (section, name): (%s, %s)", section, name)
	}
	return v, nil
}

// GetDefault retrieves the value of type T at (section, name), substituting
// def when the entry is absent. The bool result reports whether the default
// was used. Any failure other than absence is returned unchanged.
func GetDefault[T Value](b *DataBlock, section, name string, def T) (T, bool, error) {
	v, err := Get[T](b, section, name)
	if err != nil {
		if errors.Is(err, core.StatusNameNotFound) {
			return def, true, nil
		}
		var zero T
		return zero, false, err
	}
	return v, false, nil
}

// Put stores a new value at (section, name). Fails with
// StatusNameAlreadyExists when the name already holds any value, regardless
// of its type.
func Put[T Value](b *DataBlock, section, name string, v T) error {
	eng, err := b.engine()
	if err != nil {
		return err
	}
	c := codecOf[T]()
	if st := c.put(eng, section, name, v); st != core.StatusSuccess {
		return core.NewError(st).WithReason("could not put value at (section, name): (%s, %s)", section, name)
	}
	return nil
}

// Replace overwrites the existing value of type T at (section, name) and
// returns the previous value. The pre-read propagates StatusNameNotFound for
// absent entries and StatusWrongValueType for entries of another type; if
// the write itself fails after a successful read, the write's error is
// returned and the pre-read value is discarded.
func Replace[T Value](b *DataBlock, section, name string, v T) (T, error) {
	var zero T
	eng, err := b.engine()
	if err != nil {
		return zero, err
	}
	c := codecOf[T]()
	old, st := c.get(eng, section, name)
	if st != core.StatusSuccess {
		return zero, core.NewError(st).WithReason("could not get value at (section, name): (%s, %s)", section, name)
	}
	if st := c.replace(eng, section, name, v); st != core.StatusSuccess {
		return zero, core.NewError(st).WithReason("could not replace value at (section, name): (%s, %s)", section, name)
	}
	return old, nil
}

// Insert stores v at (section, name), replacing any existing value of the
// same type. Returns the previous value and replaced=true when an entry was
// replaced; inserting into an absent name behaves exactly like Put and
// reports replaced=false. Replacing is two sequential engine calls, not an
// atomic operation; see the package concurrency note.
func Insert[T Value](b *DataBlock, section, name string, v T) (old T, replaced bool, err error) {
	if b.Contains(section, name) {
		old, err = Replace(b, section, name, v)
		if err != nil {
			var zero T
			return zero, false, err
		}
		return old, true, nil
	}
	return old, false, Put(b, section, name, v)
}

// IsType reports whether (section, name) holds a value of type T. Returns
// false both for absent entries and for entries of a different type.
func IsType[T Value](b *DataBlock, section, name string) bool {
	tag, err := b.Type(section, name)
	return err == nil && tag == codecOf[T]().tag
}
