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


package storage

import "errors"

var (
	// ErrTruncatedValue indicates a stored value blob was shorter than its
	// encoding requires.
	ErrTruncatedValue = errors.New("truncated value")

	// ErrUnknownTag indicates a stored value blob carries an unrecognized
	// type tag.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrNotAnArray indicates an array operation was attempted on a scalar
	// or string value blob.
	ErrNotAnArray = errors.New("value is not an array")
)
