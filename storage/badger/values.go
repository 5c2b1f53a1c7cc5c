package badger

import (
	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/datablock/core"
	"github.com/poiesic/datablock/storage"
)

// readValue reads the raw value blob at (section, name) within tx.
func readValue(tx *badger.Txn, section, name string) ([]byte, core.Status) {
	item, err := tx.Get(makeValueKey(section, name))
	if err != nil {
		return nil, statusFrom(err)
	}
	data, err := item.ValueCopy(nil)
	if err != nil {
		return nil, core.StatusLogicError
	}
	return data, core.StatusSuccess
}

// getBlob reads the value blob at (section, name) and checks its type tag.
func (b *Block) getBlob(section, name string, want core.TypeTag) ([]byte, core.Status) {
	if st := b.checkArgs(section, name); st != core.StatusSuccess {
		return nil, st
	}

	var data []byte
	var st core.Status
	_ = b.withTx(func(tx *badger.Txn) error {
		data, st = readValue(tx, section, name)
		return nil
	}, false)
	if st != core.StatusSuccess {
		return nil, st
	}

	tag, err := storage.ValueTag(data)
	if err != nil {
		return nil, core.StatusLogicError
	}
	if tag != want {
		return nil, core.StatusWrongValueType
	}
	return data, core.StatusSuccess
}

// putBlob stores a new value blob at (section, name). Fails when any entry,
// of any type, already occupies the name.
func (b *Block) putBlob(section, name string, blob []byte) core.Status {
	if st := b.checkArgs(section, name); st != core.StatusSuccess {
		return st
	}

	st := core.StatusSuccess
	err := b.withTx(func(tx *badger.Txn) error {
		key := makeValueKey(section, name)
		if _, err := tx.Get(key); err == nil {
			st = core.StatusNameAlreadyExists
			return nil
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		if err := tx.Set(key, blob); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return statusFrom(err)
	}
	return st
}

// replaceBlob overwrites the value blob at (section, name). The entry must
// exist and already hold the same type tag as the replacement.
func (b *Block) replaceBlob(section, name string, want core.TypeTag, blob []byte) core.Status {
	if st := b.checkArgs(section, name); st != core.StatusSuccess {
		return st
	}

	st := core.StatusSuccess
	err := b.withTx(func(tx *badger.Txn) error {
		key := makeValueKey(section, name)
		item, err := tx.Get(key)
		if err != nil {
			st = statusFrom(err)
			return nil
		}
		err = item.Value(func(data []byte) error {
			tag, tagErr := storage.ValueTag(data)
			if tagErr != nil {
				st = core.StatusLogicError
			} else if tag != want {
				st = core.StatusWrongValueType
			}
			return nil
		})
		if err != nil {
			return err
		}
		if st != core.StatusSuccess {
			return nil
		}
		if err := tx.Set(key, blob); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return statusFrom(err)
	}
	return st
}
