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


package core

// Status is the outcome code of a single engine operation. The set of codes
// is closed; every engine entry point reports exactly one of these.
type Status int32

const (
	// StatusSuccess indicates the operation completed.
	StatusSuccess Status = iota

	// StatusBlockNull indicates the block handle was nil or already closed.
	StatusBlockNull

	// StatusSectionNull indicates a missing section argument.
	StatusSectionNull

	// StatusSectionNotFound indicates the named section does not exist.
	StatusSectionNotFound

	// StatusNameNull indicates a missing name argument.
	StatusNameNull

	// StatusNameNotFound indicates no entry exists at (section, name).
	StatusNameNotFound

	// StatusNameAlreadyExists indicates a put collided with an existing entry.
	StatusNameAlreadyExists

	// StatusValueNull indicates a missing or malformed value argument, such
	// as a string that is not valid UTF-8.
	StatusValueNull

	// StatusWrongValueType indicates the stored entry has a different type tag
	// than the one requested.
	StatusWrongValueType

	// StatusMemoryAllocFailure indicates the engine could not allocate storage.
	StatusMemoryAllocFailure

	// StatusSizeNull indicates a missing size argument.
	StatusSizeNull

	// StatusSizeNonPositive indicates a non-positive size argument.
	StatusSizeNonPositive

	// StatusSizeInsufficient indicates the supplied buffer is smaller than the
	// stored array.
	StatusSizeInsufficient

	// StatusNDimNonPositive indicates a non-positive dimension count.
	StatusNDimNonPositive

	// StatusNDimOverflow indicates a dimension count beyond what the engine
	// supports.
	StatusNDimOverflow

	// StatusNDimMismatch indicates a dimension count differing from the stored
	// entry's.
	StatusNDimMismatch

	// StatusExtentsNull indicates missing array extents.
	StatusExtentsNull

	// StatusExtentsMismatch indicates array extents differing from the stored
	// entry's.
	StatusExtentsMismatch

	// StatusLogicError indicates an internal engine invariant was violated.
	StatusLogicError

	// StatusUsedDefault is a soft success: the entry was absent and a caller
	// supplied default was substituted.
	StatusUsedDefault
)

var statusNames = map[Status]string{
	StatusSuccess:            "success",
	StatusBlockNull:          "block handle is null",
	StatusSectionNull:        "section is null",
	StatusSectionNotFound:    "section not found",
	StatusNameNull:           "name is null",
	StatusNameNotFound:       "name not found",
	StatusNameAlreadyExists:  "name already exists",
	StatusValueNull:          "value is null or malformed",
	StatusWrongValueType:     "wrong value type",
	StatusMemoryAllocFailure: "memory allocation failure",
	StatusSizeNull:           "size is null",
	StatusSizeNonPositive:    "size is non-positive",
	StatusSizeInsufficient:   "size is insufficient",
	StatusNDimNonPositive:    "dimension count is non-positive",
	StatusNDimOverflow:       "dimension count overflow",
	StatusNDimMismatch:       "dimension count mismatch",
	StatusExtentsNull:        "extents are null",
	StatusExtentsMismatch:    "extents mismatch",
	StatusLogicError:         "logic error",
	StatusUsedDefault:        "used default value",
}

// String returns a short human-readable description of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown status"
}

// Error makes a Status usable as an error value, so callers can branch on a
// specific kind with errors.Is.
func (s Status) Error() string {
	return s.String()
}
