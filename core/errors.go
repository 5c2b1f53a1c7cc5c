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

import "fmt"

// Error is a failed operation outcome: a status kind plus an optional reason
// naming the operation and the (section, name) involved. Immutable once
// constructed.
type Error struct {
	Kind   Status
	Reason string
}

// NewError returns an Error for the given status kind with no reason attached.
func NewError(kind Status) *Error {
	return &Error{Kind: kind}
}

// WithReason returns a copy of the error annotated with a formatted reason.
func (e *Error) WithReason(format string, args ...any) *Error {
	return &Error{Kind: e.Kind, Reason: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return e.Kind.String()
}

// Unwrap exposes the status kind so errors.Is(err, core.StatusNameNotFound)
// and friends work on wrapped errors.
func (e *Error) Unwrap() error {
	return e.Kind
}

// StatusOf extracts the status kind from an error produced by this package.
// Returns StatusLogicError for foreign errors and StatusSuccess for nil.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	if s, ok := err.(Status); ok {
		return s
	}
	return StatusLogicError
}
