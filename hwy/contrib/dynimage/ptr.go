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

import (
	"unsafe"

	"github.com/ajroetker/go-dynimage/hwy/contrib/image"
)

// Mutable tags a Ptr that may be reconstructed into writable views.
type Mutable struct{}

// ReadOnly tags a Ptr that may only be reconstructed into read-only views.
type ReadOnly struct{}

// Access is the closed set of access tags.
type Access interface {
	Mutable | ReadOnly
}

// Ptr is a runtime-typed, non-owning view of a pixel buffer. It holds one
// Info by value and is never modified after construction.
type Ptr[A Access] struct {
	info Info
}

type (
	// Dynamic is a writable runtime-typed view.
	Dynamic = Ptr[Mutable]
	// ConstDynamic is a read-only runtime-typed view.
	ConstDynamic = Ptr[ReadOnly]
)

// Source is implemented by anything that can describe its pixels as an
// Info. External image representations plug in through it. Ptr is not a
// Source: a ConstDynamic must never be rewrapped as a Dynamic.
type Source interface {
	DynamicInfo() Info
}

// New builds a Dynamic from explicit fields; see NewInfo.
func New(width, height, channels int, kind Kind, elemSize int, data unsafe.Pointer, rowStride int) (Dynamic, error) {
	info, err := NewInfo(width, height, channels, kind, elemSize, data, rowStride)
	if err != nil {
		return Dynamic{}, err
	}
	return Dynamic{info: info}, nil
}

// NewConst builds a ConstDynamic from explicit fields; see NewInfo.
func NewConst(width, height, channels int, kind Kind, elemSize int, data unsafe.Pointer, rowStride int) (ConstDynamic, error) {
	info, err := NewInfo(width, height, channels, kind, elemSize, data, rowStride)
	if err != nil {
		return ConstDynamic{}, err
	}
	return ConstDynamic{info: info}, nil
}

// From wraps the description of src in a Dynamic.
func From(src Source) Dynamic {
	return Dynamic{info: src.DynamicInfo()}
}

// FromConst wraps the description of src in a ConstDynamic.
func FromConst(src Source) ConstDynamic {
	return ConstDynamic{info: src.DynamicInfo()}
}

// Info returns a copy of the wrapped descriptor.
func (p Ptr[A]) Info() Info { return p.info }

// Width returns the width in pixels.
func (p Ptr[A]) Width() int { return p.info.Width }

// Height returns the height in pixels.
func (p Ptr[A]) Height() int { return p.info.Height }

// Size returns the width×height pair.
func (p Ptr[A]) Size() image.Size { return p.info.Size() }

// Channels returns the number of interleaved components per pixel.
func (p Ptr[A]) Channels() int { return p.info.Channels }

// Kind returns the component kind.
func (p Ptr[A]) Kind() Kind { return p.info.Kind }

// ElemSize returns the byte size of one component.
func (p Ptr[A]) ElemSize() int { return p.info.ElemSize }

// Data returns the address of pixel (0, 0).
func (p Ptr[A]) Data() unsafe.Pointer { return p.info.Data }

// RowStride returns the byte distance between row starts.
func (p Ptr[A]) RowStride() int { return p.info.RowStride }

// IsEmpty reports whether the view has no pixels.
func (p Ptr[A]) IsEmpty() bool { return p.info.IsEmpty() }

// Const widens p to a read-only view.
func (p Ptr[A]) Const() ConstDynamic {
	return ConstDynamic{info: p.info}
}

// Sub returns a view of r with the same access as p. r must lie within
// the bounds of p.
func (p Ptr[A]) Sub(r image.Rect) (Ptr[A], error) {
	info, err := p.info.Sub(r)
	if err != nil {
		return Ptr[A]{}, err
	}
	return Ptr[A]{info: info}, nil
}

func (p Ptr[A]) String() string {
	return p.info.String()
}
