package badger

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/poiesic/datablock/core"
	"github.com/poiesic/datablock/storage"
)

// Block is a storage engine backed by an in-memory BadgerDB instance. One
// Block corresponds to one opaque handle: it owns its database exclusively
// and releases it exactly once through Close.
type Block struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ storage.Engine = (*Block)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// NewBlock opens an empty in-memory engine.
func NewBlock() (*Block, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Block{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// null reports whether the handle is unusable: nil receiver or already closed.
func (b *Block) null() bool {
	return b == nil || b.db == nil || b.db.IsClosed()
}

// Close releases the underlying database. The release runs once; further
// calls and all other operations on a closed Block report StatusBlockNull.
func (b *Block) Close() core.Status {
	if b.null() {
		return core.StatusBlockNull
	}
	db := b.db
	b.db = nil
	if err := db.Close(); err != nil {
		b.logger.Error("closing block database", "error", err)
		return core.StatusLogicError
	}
	return core.StatusSuccess
}

// Clone produces an independent Block holding a deep copy of every entry.
func (b *Block) Clone() (storage.Engine, core.Status) {
	if b.null() {
		return nil, core.StatusBlockNull
	}

	dup, err := NewBlock()
	if err != nil {
		return nil, core.StatusMemoryAllocFailure
	}

	err = b.withTx(func(tx *badger.Txn) error {
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			key := item.KeyCopy(nil)
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := dup.db.Update(func(dtx *badger.Txn) error {
				return dtx.Set(key, value)
			}); err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		dup.Close()
		return nil, core.StatusMemoryAllocFailure
	}

	return dup, core.StatusSuccess
}

// withTx executes a function within a BadgerDB transaction.
// If isWrite is true, creates a read-write transaction.
// The transaction is automatically discarded if fn returns an error.
func (b *Block) withTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	tx := b.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}

// statusFrom maps a badger or serialization error to a status kind.
func statusFrom(err error) core.Status {
	switch err {
	case nil:
		return core.StatusSuccess
	case badger.ErrKeyNotFound:
		return core.StatusNameNotFound
	case badger.ErrTxnTooBig:
		return core.StatusMemoryAllocFailure
	default:
		return core.StatusLogicError
	}
}

// checkArgs validates the namespace arguments shared by every typed
// operation.
func (b *Block) checkArgs(section, name string) core.Status {
	if b.null() {
		return core.StatusBlockNull
	}
	if section == "" {
		return core.StatusSectionNull
	}
	if name == "" {
		return core.StatusNameNull
	}
	return core.StatusSuccess
}
