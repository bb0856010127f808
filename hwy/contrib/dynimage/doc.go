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

// Package dynimage erases the static type of pixel views.
//
// An Info records what a strongly typed view knows at compile time (width,
// height, channel count, element kind and size, base address and row step)
// as plain runtime values. Ptr[A] wraps one Info and converts it back into
// typed views after checking that the target type fits:
//
//	rgb := image.New[uint8, image.C3](640, 480)
//	d := dynimage.FromPtr(rgb.Ptr())            // Dynamic, shape known at runtime
//	p, err := dynimage.ToPtr[uint8, image.C3](d) // checked, zero copy
//
// No pixel is ever copied: every conversion aliases the original buffer.
// The buffer must outlive every Info, Ptr and view derived from it.
//
// # Access
//
// Ptr is parameterised by an access tag. Dynamic (Ptr[Mutable]) can be
// turned back into writable views; ConstDynamic (Ptr[ReadOnly]) only into
// read-only ones. Dynamic.Const widens a Dynamic into a ConstDynamic; there
// is no way back.
//
// # External Representations
//
// Buffers owned by other libraries enter through the Source interface. The
// ipl, cvmat and stdimage subpackages implement it for their formats and
// provide the reverse conversions; this package depends on none of them.
//
// # Errors
//
// Failed conversions return an error wrapping one of ErrSizeMismatch,
// ErrTypeMismatch, ErrPointerOutOfRange or ErrUnsupportedFormat; match them
// with errors.Is.
package dynimage
