package badger

import (
	"github.com/poiesic/datablock/core"
	"github.com/poiesic/datablock/storage"
)

// getScalar reads and decodes the scalar at (section, name). One generic
// body serves every scalar type; the per-type methods below just bind the
// tag and the decoder.
func getScalar[T any](b *Block, section, name string, tag core.TypeTag, unmarshal func([]byte) (T, error)) (T, core.Status) {
	var zero T
	data, st := b.getBlob(section, name, tag)
	if st != core.StatusSuccess {
		return zero, st
	}
	v, err := unmarshal(data)
	if err != nil {
		return zero, core.StatusLogicError
	}
	return v, core.StatusSuccess
}

// GetInt reads the int at (section, name).
func (b *Block) GetInt(section, name string) (int32, core.Status) {
	return getScalar(b, section, name, core.TypeInt, storage.UnmarshalInt)
}

// PutInt stores a new int at (section, name).
func (b *Block) PutInt(section, name string, v int32) core.Status {
	return b.putBlob(section, name, storage.MarshalInt(v))
}

// ReplaceInt overwrites the int at (section, name).
func (b *Block) ReplaceInt(section, name string, v int32) core.Status {
	return b.replaceBlob(section, name, core.TypeInt, storage.MarshalInt(v))
}

// GetBool reads the bool at (section, name).
func (b *Block) GetBool(section, name string) (bool, core.Status) {
	return getScalar(b, section, name, core.TypeBool, storage.UnmarshalBool)
}

// PutBool stores a new bool at (section, name).
func (b *Block) PutBool(section, name string, v bool) core.Status {
	return b.putBlob(section, name, storage.MarshalBool(v))
}

// ReplaceBool overwrites the bool at (section, name).
func (b *Block) ReplaceBool(section, name string, v bool) core.Status {
	return b.replaceBlob(section, name, core.TypeBool, storage.MarshalBool(v))
}

// GetDouble reads the double at (section, name).
func (b *Block) GetDouble(section, name string) (float64, core.Status) {
	return getScalar(b, section, name, core.TypeDouble, storage.UnmarshalDouble)
}

// PutDouble stores a new double at (section, name).
func (b *Block) PutDouble(section, name string, v float64) core.Status {
	return b.putBlob(section, name, storage.MarshalDouble(v))
}

// ReplaceDouble overwrites the double at (section, name).
func (b *Block) ReplaceDouble(section, name string, v float64) core.Status {
	return b.replaceBlob(section, name, core.TypeDouble, storage.MarshalDouble(v))
}

// GetComplex reads the complex at (section, name).
func (b *Block) GetComplex(section, name string) (complex128, core.Status) {
	return getScalar(b, section, name, core.TypeComplex, storage.UnmarshalComplex)
}

// PutComplex stores a new complex at (section, name).
func (b *Block) PutComplex(section, name string, v complex128) core.Status {
	return b.putBlob(section, name, storage.MarshalComplex(v))
}

// ReplaceComplex overwrites the complex at (section, name).
func (b *Block) ReplaceComplex(section, name string, v complex128) core.Status {
	return b.replaceBlob(section, name, core.TypeComplex, storage.MarshalComplex(v))
}
