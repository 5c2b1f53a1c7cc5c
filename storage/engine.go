package storage

import (
	"github.com/poiesic/datablock/core"
)

// Engine is the entry-point contract of a datablock storage engine. One
// Engine instance corresponds to one opaque handle: it is created by a
// backend constructor, duplicated only through Clone, and released exactly
// once through Close.
type Engine interface {
	// Close releases the engine's resources. Calling any other method after
	// Close reports StatusBlockNull.
	Close() core.Status

	// Clone produces an independent engine holding a deep copy of every
	// entry. Mutations on either side are invisible to the other.
	Clone() (Engine, core.Status)

	// HasSection reports whether any entry exists under section.
	HasSection(section string) bool

	// HasValue reports whether an entry exists at (section, name).
	HasValue(section, name string) bool

	// ValueType reports the stored type tag at (section, name).
	// StatusNameNotFound when absent.
	ValueType(section, name string) (core.TypeTag, core.Status)

	// ArrayLength reports the element count of the one-dimensional array at
	// (section, name), or a negative value when the entry is absent or not a
	// one-dimensional array. Callers disambiguate the two with HasValue.
	ArrayLength(section, name string) int

	GetInt(section, name string) (int32, core.Status)
	PutInt(section, name string, v int32) core.Status
	ReplaceInt(section, name string, v int32) core.Status

	GetBool(section, name string) (bool, core.Status)
	PutBool(section, name string, v bool) core.Status
	ReplaceBool(section, name string, v bool) core.Status

	GetDouble(section, name string) (float64, core.Status)
	PutDouble(section, name string, v float64) core.Status
	ReplaceDouble(section, name string, v float64) core.Status

	GetComplex(section, name string) (complex128, core.Status)
	PutComplex(section, name string, v complex128) core.Status
	ReplaceComplex(section, name string, v complex128) core.Status

	// GetIntArray fills buf with the stored elements and returns the element
	// count. StatusSizeInsufficient when len(buf) is smaller than the stored
	// array; the probe-then-get sequence in the wrapper normally prevents
	// that, but the engine still guards it.
	GetIntArray(section, name string, buf []int32) (int, core.Status)
	PutIntArray(section, name string, v []int32) core.Status
	ReplaceIntArray(section, name string, v []int32) core.Status

	GetDoubleArray(section, name string, buf []float64) (int, core.Status)
	PutDoubleArray(section, name string, v []float64) core.Status
	ReplaceDoubleArray(section, name string, v []float64) core.Status

	GetComplexArray(section, name string, buf []complex128) (int, core.Status)
	PutComplexArray(section, name string, v []complex128) core.Status
	ReplaceComplexArray(section, name string, v []complex128) core.Status

	// GetString returns a buffer owned by the engine's pool. The caller must
	// copy the bytes and then call ReleaseString with the same buffer.
	GetString(section, name string) ([]byte, core.Status)

	// ReleaseString returns a buffer obtained from GetString to the pool.
	ReleaseString(buf []byte)

	// PutString and ReplaceString require v to be valid UTF-8 and report
	// StatusValueNull otherwise. The engine therefore only ever stores valid
	// text, and readers may treat malformed stored bytes as corruption.
	PutString(section, name string, v string) core.Status
	ReplaceString(section, name string, v string) core.Status

	// Sections lists the distinct section names, sorted.
	Sections() ([]string, core.Status)

	// Names lists the entry names within section, sorted.
	// StatusSectionNotFound when the section does not exist.
	Names(section string) ([]string, core.Status)

	// DeleteSection removes every entry under section.
	// StatusSectionNotFound when the section does not exist.
	DeleteSection(section string) core.Status

	// CopySection duplicates every entry of src into dst.
	// StatusSectionNotFound when src does not exist; StatusNameAlreadyExists
	// when dst already holds an entry with a colliding name.
	CopySection(src, dst string) core.Status
}
