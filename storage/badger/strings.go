package badger

import (
	"sync"
	"unicode/utf8"

	"github.com/poiesic/datablock/core"
	"github.com/poiesic/datablock/storage"
)

// String reads hand out buffers owned by this pool. The caller copies the
// bytes and returns the buffer with ReleaseString; the engine never frees a
// buffer it has handed out, and the caller never keeps one past the release.
var stringBytesPool = &sync.Pool{
	New: func() any {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

// GetString returns the string bytes at (section, name) in a pool-owned
// buffer. The caller must copy them out and then call ReleaseString with the
// same buffer.
func (b *Block) GetString(section, name string) ([]byte, core.Status) {
	data, st := b.getBlob(section, name, core.TypeString)
	if st != core.StatusSuccess {
		return nil, st
	}
	payload, err := storage.StringPayload(data)
	if err != nil {
		return nil, core.StatusLogicError
	}
	buf := *stringBytesPool.Get().(*[]byte)
	return append(buf[:0], payload...), core.StatusSuccess
}

// ReleaseString returns a buffer obtained from GetString to the pool.
func (b *Block) ReleaseString(buf []byte) {
	if buf == nil {
		return
	}
	buf = buf[:0]
	stringBytesPool.Put(&buf)
}

// PutString stores a new string at (section, name). The string must be valid
// UTF-8; a malformed string reports StatusValueNull and stores nothing.
func (b *Block) PutString(section, name string, v string) core.Status {
	if !utf8.ValidString(v) {
		return core.StatusValueNull
	}
	return b.putBlob(section, name, storage.MarshalString(v))
}

// ReplaceString overwrites the string at (section, name). The string must be
// valid UTF-8; a malformed string reports StatusValueNull and stores nothing.
func (b *Block) ReplaceString(section, name string, v string) core.Status {
	if !utf8.ValidString(v) {
		return core.StatusValueNull
	}
	return b.replaceBlob(section, name, core.TypeString, storage.MarshalString(v))
}
