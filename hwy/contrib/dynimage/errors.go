// Copyright 2025 go-highway Authors
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

package dynimage

import "errors"

// Every message is prefixed with "dynimage: ". Functions wrap these with
// fmt.Errorf("%w: ...") to add the offending values.
var (
	// ErrSizeMismatch is returned when the target's channel count or element
	// byte size differs from the descriptor's.
	ErrSizeMismatch = errors.New("dynimage: pixel size different")

	// ErrTypeMismatch is returned when the descriptor's element kind is known
	// and differs from the target element type's kind.
	ErrTypeMismatch = errors.New("dynimage: wrong type")

	// ErrPointerOutOfRange is returned when a row would not fit in the row
	// stride, an extent is negative, or a sub-rectangle leaves the image.
	ErrPointerOutOfRange = errors.New("dynimage: width exceeds row stride")

	// ErrUnsupportedFormat is returned by external reconstructions when no
	// native format code matches the descriptor.
	ErrUnsupportedFormat = errors.New("dynimage: wrong image type")
)
