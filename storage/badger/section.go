package badger

import (
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/datablock/core"
	"github.com/poiesic/datablock/storage"
)

// HasValue reports whether an entry exists at (section, name).
func (b *Block) HasValue(section, name string) bool {
	if b.checkArgs(section, name) != core.StatusSuccess {
		return false
	}
	found := false
	_ = b.withTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeValueKey(section, name)); err == nil {
			found = true
		}
		return nil
	}, false)
	return found
}

// HasSection reports whether any entry exists under section.
func (b *Block) HasSection(section string) bool {
	if b.null() || section == "" {
		return false
	}
	found := false
	_ = b.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeSectionPrefix(section)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		iter.Rewind()
		found = iter.Valid()
		return nil
	}, false)
	return found
}

// ValueType reports the stored type tag at (section, name).
func (b *Block) ValueType(section, name string) (core.TypeTag, core.Status) {
	if st := b.checkArgs(section, name); st != core.StatusSuccess {
		return core.TypeUnknown, st
	}

	tag := core.TypeUnknown
	st := core.StatusSuccess
	_ = b.withTx(func(tx *badger.Txn) error {
		data, readSt := readValue(tx, section, name)
		if readSt != core.StatusSuccess {
			st = readSt
			return nil
		}
		var err error
		tag, err = storage.ValueTag(data)
		if err != nil {
			st = core.StatusLogicError
		}
		return nil
	}, false)
	return tag, st
}

// Sections lists the distinct section names, sorted.
func (b *Block) Sections() ([]string, core.Status) {
	if b.null() {
		return nil, core.StatusBlockNull
	}

	seen := make(map[string]bool)
	err := b.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(valueKeyPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if section, _, ok := splitValueKey(iter.Item().Key()); ok {
				seen[section] = true
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, statusFrom(err)
	}

	sections := make([]string, 0, len(seen))
	for section := range seen {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	return sections, core.StatusSuccess
}

// Names lists the entry names within section, sorted.
func (b *Block) Names(section string) ([]string, core.Status) {
	if b.null() {
		return nil, core.StatusBlockNull
	}
	if section == "" {
		return nil, core.StatusSectionNull
	}

	var names []string
	err := b.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeSectionPrefix(section)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if _, name, ok := splitValueKey(iter.Item().Key()); ok {
				names = append(names, name)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, statusFrom(err)
	}
	if len(names) == 0 {
		return nil, core.StatusSectionNotFound
	}

	sort.Strings(names)
	return names, core.StatusSuccess
}

// DeleteSection removes every entry under section.
func (b *Block) DeleteSection(section string) core.Status {
	if b.null() {
		return core.StatusBlockNull
	}
	if section == "" {
		return core.StatusSectionNull
	}

	var keys [][]byte
	err := b.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeSectionPrefix(section)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		return nil
	}, false)
	if err != nil {
		return statusFrom(err)
	}
	if len(keys) == 0 {
		return core.StatusSectionNotFound
	}

	err = b.withTx(func(tx *badger.Txn) error {
		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	return statusFrom(err)
}

// CopySection duplicates every entry of src into dst. Entries already present
// in dst cause StatusNameAlreadyExists before anything is written.
func (b *Block) CopySection(src, dst string) core.Status {
	if b.null() {
		return core.StatusBlockNull
	}
	if src == "" || dst == "" {
		return core.StatusSectionNull
	}

	type entry struct {
		name string
		data []byte
	}
	var entries []entry

	st := core.StatusSuccess
	err := b.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeSectionPrefix(src)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			_, name, ok := splitValueKey(item.Key())
			if !ok {
				continue
			}
			if _, err := tx.Get(makeValueKey(dst, name)); err == nil {
				st = core.StatusNameAlreadyExists
				return nil
			}
			data, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			entries = append(entries, entry{name: name, data: data})
		}
		return nil
	}, false)
	if err != nil {
		return statusFrom(err)
	}
	if st != core.StatusSuccess {
		return st
	}
	if len(entries) == 0 {
		return core.StatusSectionNotFound
	}

	err = b.withTx(func(tx *badger.Txn) error {
		for _, e := range entries {
			if err := tx.Set(makeValueKey(dst, e.name), e.data); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	return statusFrom(err)
}
