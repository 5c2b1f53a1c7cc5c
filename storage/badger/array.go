package badger

import (
	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/datablock/core"
	"github.com/poiesic/datablock/storage"
)

// ArrayLength reports the element count of the one-dimensional array at
// (section, name), or -1 when the entry is absent or not a one-dimensional
// array. The caller disambiguates absent from wrong-type with HasValue.
func (b *Block) ArrayLength(section, name string) int {
	if st := b.checkArgs(section, name); st != core.StatusSuccess {
		return -1
	}

	length := -1
	_ = b.withTx(func(tx *badger.Txn) error {
		data, st := readValue(tx, section, name)
		if st != core.StatusSuccess {
			return nil
		}
		if n, err := storage.ArrayLen(data); err == nil {
			length = n
		}
		return nil
	}, false)
	return length
}

// getArray reads and decodes the array at (section, name) into buf, sharing
// one body across the element types like getScalar does for scalars.
func getArray[T any](b *Block, section, name string, tag core.TypeTag, buf []T, unmarshal func([]byte, []T) (int, error)) (int, core.Status) {
	data, st := b.getBlob(section, name, tag)
	if st != core.StatusSuccess {
		return 0, st
	}
	n, err := unmarshal(data, buf)
	if err != nil {
		return 0, core.StatusLogicError
	}
	if n > len(buf) {
		return n, core.StatusSizeInsufficient
	}
	return n, core.StatusSuccess
}

// GetIntArray fills buf with the int array at (section, name).
func (b *Block) GetIntArray(section, name string, buf []int32) (int, core.Status) {
	return getArray(b, section, name, core.TypeIntArray, buf, storage.UnmarshalIntArray)
}

// PutIntArray stores a new int array at (section, name).
func (b *Block) PutIntArray(section, name string, v []int32) core.Status {
	return b.putBlob(section, name, storage.MarshalIntArray(v))
}

// ReplaceIntArray overwrites the int array at (section, name).
func (b *Block) ReplaceIntArray(section, name string, v []int32) core.Status {
	return b.replaceBlob(section, name, core.TypeIntArray, storage.MarshalIntArray(v))
}

// GetDoubleArray fills buf with the double array at (section, name).
func (b *Block) GetDoubleArray(section, name string, buf []float64) (int, core.Status) {
	return getArray(b, section, name, core.TypeDoubleArray, buf, storage.UnmarshalDoubleArray)
}

// PutDoubleArray stores a new double array at (section, name).
func (b *Block) PutDoubleArray(section, name string, v []float64) core.Status {
	return b.putBlob(section, name, storage.MarshalDoubleArray(v))
}

// ReplaceDoubleArray overwrites the double array at (section, name).
func (b *Block) ReplaceDoubleArray(section, name string, v []float64) core.Status {
	return b.replaceBlob(section, name, core.TypeDoubleArray, storage.MarshalDoubleArray(v))
}

// GetComplexArray fills buf with the complex array at (section, name).
func (b *Block) GetComplexArray(section, name string, buf []complex128) (int, core.Status) {
	return getArray(b, section, name, core.TypeComplexArray, buf, storage.UnmarshalComplexArray)
}

// PutComplexArray stores a new complex array at (section, name).
func (b *Block) PutComplexArray(section, name string, v []complex128) core.Status {
	return b.putBlob(section, name, storage.MarshalComplexArray(v))
}

// ReplaceComplexArray overwrites the complex array at (section, name).
func (b *Block) ReplaceComplexArray(section, name string, v []complex128) core.Status {
	return b.replaceBlob(section, name, core.TypeComplexArray, storage.MarshalComplexArray(v))
}
