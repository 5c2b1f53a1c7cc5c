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


// Package datablock provides a typed key/value store organized as a
// two-level (section, name) namespace. Values carry a runtime type tag;
// reads with a mismatched type fail rather than coerce. The generic
// Get/Put/Insert/Replace functions dispatch to the matching engine entry
// point for each supported type.
package datablock

import (
	"fmt"

	"github.com/poiesic/datablock/core"
	"github.com/poiesic/datablock/storage"
	"github.com/poiesic/datablock/storage/badger"
)

// DataBlock owns exactly one storage engine handle. The handle is never nil
// on a freshly constructed DataBlock; Close releases it exactly once, and a
// closed DataBlock reports StatusBlockNull from every typed operation.
//
// A DataBlock provides no internal synchronization. Share one across
// goroutines only behind an external lock, or give each goroutine its own
// Clone.
type DataBlock struct {
	eng storage.Engine
}

// New creates an empty DataBlock. Engine allocation is treated as
// infallible; in the rare case the underlying store cannot be created at
// all, New panics.
func New() *DataBlock {
	eng, err := badger.NewBlock()
	if err != nil {
		panic(fmt.Sprintf("datablock: creating storage engine: %v", err))
	}
	return &DataBlock{eng: eng}
}

// Clone produces an independent DataBlock with identical entries. The two
// blocks share nothing afterward: mutations on one are invisible to the
// other. Cloning is treated as infallible; cloning a closed DataBlock, or an
// engine-level copy failure, panics.
func (b *DataBlock) Clone() *DataBlock {
	eng, err := b.engine()
	if err != nil {
		panic("datablock: clone of closed DataBlock")
	}
	dup, st := eng.Clone()
	if st != core.StatusSuccess {
		panic(fmt.Sprintf("datablock: cloning storage engine: %v", st))
	}
	return &DataBlock{eng: dup}
}

// Close releases the underlying engine. The release runs once; closing an
// already-closed DataBlock is a no-op.
func (b *DataBlock) Close() error {
	if b == nil || b.eng == nil {
		return nil
	}
	eng := b.eng
	b.eng = nil
	if st := eng.Close(); st != core.StatusSuccess {
		return core.NewError(st).WithReason("could not close block")
	}
	return nil
}

// engine returns the owned handle, or a StatusBlockNull error when the
// DataBlock is nil or closed.
func (b *DataBlock) engine() (storage.Engine, error) {
	if b == nil || b.eng == nil {
		return nil, core.NewError(core.StatusBlockNull).WithReason("use of nil or closed DataBlock")
	}
	return b.eng, nil
}

// Contains reports whether an entry exists at (section, name).
// A closed DataBlock contains nothing.
func (b *DataBlock) Contains(section, name string) bool {
	eng, err := b.engine()
	if err != nil {
		return false
	}
	return eng.HasValue(section, name)
}

// ContainsSection reports whether the DataBlock holds any entry under
// section.
func (b *DataBlock) ContainsSection(section string) bool {
	eng, err := b.engine()
	if err != nil {
		return false
	}
	return eng.HasSection(section)
}

// Type reports the stored type tag at (section, name). An absent entry
// yields an error carrying StatusNameNotFound; any other engine failure is
// surfaced with its own status rather than folded into "absent".
func (b *DataBlock) Type(section, name string) (core.TypeTag, error) {
	eng, err := b.engine()
	if err != nil {
		return core.TypeUnknown, err
	}
	tag, st := eng.ValueType(section, name)
	if st != core.StatusSuccess {
		return core.TypeUnknown, core.NewError(st).WithReason("could not get type at (section, name): (%s, %s)", section, name)
	}
	return tag, nil
}

// Sections lists the distinct section names, sorted.
func (b *DataBlock) Sections() ([]string, error) {
	eng, err := b.engine()
	if err != nil {
		return nil, err
	}
	sections, st := eng.Sections()
	if st != core.StatusSuccess {
		return nil, core.NewError(st).WithReason("could not list sections")
	}
	return sections, nil
}

// Names lists the entry names within section, sorted. An unknown section
// yields an error carrying StatusSectionNotFound.
func (b *DataBlock) Names(section string) ([]string, error) {
	eng, err := b.engine()
	if err != nil {
		return nil, err
	}
	names, st := eng.Names(section)
	if st != core.StatusSuccess {
		return nil, core.NewError(st).WithReason("could not list names in section %s", section)
	}
	return names, nil
}

// DeleteSection removes every entry under section.
func (b *DataBlock) DeleteSection(section string) error {
	eng, err := b.engine()
	if err != nil {
		return err
	}
	if st := eng.DeleteSection(section); st != core.StatusSuccess {
		return core.NewError(st).WithReason("could not delete section %s", section)
	}
	return nil
}

// CopySection duplicates every entry of src into dst. Names already present
// in dst make the whole copy fail before anything is written.
func (b *DataBlock) CopySection(src, dst string) error {
	eng, err := b.engine()
	if err != nil {
		return err
	}
	if st := eng.CopySection(src, dst); st != core.StatusSuccess {
		return core.NewError(st).WithReason("could not copy section %s to %s", src, dst)
	}
	return nil
}
