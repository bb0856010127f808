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

package image

import (
	"unsafe"

	"github.com/ajroetker/go-dynimage/hwy"
)

// Channels is a compile-time channel count. Implementations are empty
// structs whose Count method returns a constant.
type Channels interface {
	Count() int
}

// Channel count tags.
type (
	C1 struct{}
	C2 struct{}
	C3 struct{}
	C4 struct{}
)

func (C1) Count() int { return 1 }
func (C2) Count() int { return 2 }
func (C3) Count() int { return 3 }
func (C4) Count() int { return 4 }

// ChannelCount returns the channel count carried by C.
func ChannelCount[C Channels]() int {
	var c C
	return c.Count()
}

// Size is a width×height pair in pixels.
type Size struct {
	Width, Height int
}

// Area returns Width*Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Ptr is a writable, non-owning view over interleaved pixels of C
// components of type T. Consecutive rows start MoveStep() bytes apart.
type Ptr[T hwy.Lanes, C Channels] struct {
	data   unsafe.Pointer
	step   int
	width  int
	height int
}

// NewPtr creates a view over the pixels starting at data. step is the byte
// distance between rows; 0 means tightly packed. A nil data pointer or a
// non-positive extent yields an empty view.
func NewPtr[T hwy.Lanes, C Channels](data *T, step, width, height int) Ptr[T, C] {
	if data == nil || width <= 0 || height <= 0 {
		return Ptr[T, C]{}
	}
	packed := width * ChannelCount[C]() * hwy.SizeOf[T]()
	if step == 0 {
		step = packed
	}
	if step < packed {
		return Ptr[T, C]{}
	}
	return Ptr[T, C]{
		data:   unsafe.Pointer(data),
		step:   step,
		width:  width,
		height: height,
	}
}

// FromSlice creates a view over pix. step is in bytes, 0 means packed.
// It returns an empty view when pix is too short for the requested shape.
func FromSlice[T hwy.Lanes, C Channels](pix []T, width, height, step int) Ptr[T, C] {
	if len(pix) == 0 || width <= 0 || height <= 0 {
		return Ptr[T, C]{}
	}
	elem := hwy.SizeOf[T]()
	packed := width * ChannelCount[C]() * elem
	if step == 0 {
		step = packed
	}
	if step < packed || len(pix)*elem < (height-1)*step+packed {
		return Ptr[T, C]{}
	}
	return NewPtr[T, C](&pix[0], step, width, height)
}

// Width returns the view width in pixels.
func (p Ptr[T, C]) Width() int { return p.width }

// Height returns the view height in pixels.
func (p Ptr[T, C]) Height() int { return p.height }

// Size returns the view extents.
func (p Ptr[T, C]) Size() Size { return Size{Width: p.width, Height: p.height} }

// ChannelSize returns the number of interleaved components per pixel.
func (p Ptr[T, C]) ChannelSize() int { return ChannelCount[C]() }

// ElemSize returns the byte size of one component.
func (p Ptr[T, C]) ElemSize() int { return hwy.SizeOf[T]() }

// Data returns the address of pixel (0, 0).
func (p Ptr[T, C]) Data() unsafe.Pointer { return p.data }

// MoveStep returns the byte distance between the starts of two rows.
func (p Ptr[T, C]) MoveStep() int { return p.step }

// IsEmpty reports whether the view covers no pixels.
func (p Ptr[T, C]) IsEmpty() bool {
	return p.data == nil || p.width == 0 || p.height == 0
}

// Row returns the components of row y, width*C values long.
// Writes through the slice land in the underlying buffer.
func (p Ptr[T, C]) Row(y int) []T {
	if y < 0 || y >= p.height || p.data == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Add(p.data, y*p.step)), p.width*ChannelCount[C]())
}

// Pixel returns the C components of pixel (x, y).
func (p Ptr[T, C]) Pixel(x, y int) []T {
	if x < 0 || x >= p.width {
		return nil
	}
	row := p.Row(y)
	if row == nil {
		return nil
	}
	ch := ChannelCount[C]()
	return row[x*ch : (x+1)*ch : (x+1)*ch]
}

// At returns component c of pixel (x, y), or zero when out of bounds.
func (p Ptr[T, C]) At(x, y, c int) T {
	px := p.Pixel(x, y)
	if c < 0 || c >= len(px) {
		var zero T
		return zero
	}
	return px[c]
}

// Set sets component c of pixel (x, y). Out-of-bounds writes are ignored.
func (p Ptr[T, C]) Set(x, y, c int, value T) {
	px := p.Pixel(x, y)
	if c < 0 || c >= len(px) {
		return
	}
	px[c] = value
}

// Fill sets every component of every pixel to value. Row padding is
// left untouched.
func (p Ptr[T, C]) Fill(value T) {
	for y := range p.height {
		row := p.Row(y)
		for i := range row {
			row[i] = value
		}
	}
}

// Bounds returns the bounding rectangle of the view.
func (p Ptr[T, C]) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: p.width, Y1: p.height}
}

// Sub returns a view of r clipped to the view bounds. The result shares
// memory and row step with p.
func (p Ptr[T, C]) Sub(r Rect) Ptr[T, C] {
	r = r.Intersect(p.Bounds())
	if r.IsEmpty() || p.data == nil {
		return Ptr[T, C]{}
	}
	offset := r.Y0*p.step + r.X0*ChannelCount[C]()*hwy.SizeOf[T]()
	return Ptr[T, C]{
		data:   unsafe.Add(p.data, offset),
		step:   p.step,
		width:  r.Width(),
		height: r.Height(),
	}
}

// Const returns a read-only view of the same pixels.
func (p Ptr[T, C]) Const() ConstPtr[T, C] {
	return ConstPtr[T, C]{p: p}
}

// ConstPtr is a read-only view over interleaved pixels. It has no method
// that hands out writable memory.
type ConstPtr[T hwy.Lanes, C Channels] struct {
	p Ptr[T, C]
}

// NewConstPtr creates a read-only view. See NewPtr for the arguments.
func NewConstPtr[T hwy.Lanes, C Channels](data *T, step, width, height int) ConstPtr[T, C] {
	return NewPtr[T, C](data, step, width, height).Const()
}

// Width returns the view width in pixels.
func (p ConstPtr[T, C]) Width() int { return p.p.width }

// Height returns the view height in pixels.
func (p ConstPtr[T, C]) Height() int { return p.p.height }

// Size returns the view extents.
func (p ConstPtr[T, C]) Size() Size { return p.p.Size() }

// ChannelSize returns the number of interleaved components per pixel.
func (p ConstPtr[T, C]) ChannelSize() int { return ChannelCount[C]() }

// ElemSize returns the byte size of one component.
func (p ConstPtr[T, C]) ElemSize() int { return hwy.SizeOf[T]() }

// Data returns the address of pixel (0, 0). It is meant for identity
// checks and for handing the buffer to other read-only consumers.
func (p ConstPtr[T, C]) Data() unsafe.Pointer { return p.p.data }

// MoveStep returns the byte distance between the starts of two rows.
func (p ConstPtr[T, C]) MoveStep() int { return p.p.step }

// IsEmpty reports whether the view covers no pixels.
func (p ConstPtr[T, C]) IsEmpty() bool { return p.p.IsEmpty() }

// At returns component c of pixel (x, y), or zero when out of bounds.
func (p ConstPtr[T, C]) At(x, y, c int) T { return p.p.At(x, y, c) }

// AppendRow appends the components of row y to dst and returns the result.
func (p ConstPtr[T, C]) AppendRow(dst []T, y int) []T {
	return append(dst, p.p.Row(y)...)
}

// Bounds returns the bounding rectangle of the view.
func (p ConstPtr[T, C]) Bounds() Rect { return p.p.Bounds() }

// Sub returns a read-only view of r clipped to the view bounds.
func (p ConstPtr[T, C]) Sub(r Rect) ConstPtr[T, C] {
	return ConstPtr[T, C]{p: p.p.Sub(r)}
}

// SameSize returns true if both views have the same dimensions.
func SameSize[T, U hwy.Lanes, C, D Channels](a Ptr[T, C], b Ptr[U, D]) bool {
	return a.width == b.width && a.height == b.height
}
