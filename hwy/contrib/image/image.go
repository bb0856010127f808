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
	"fmt"

	"github.com/ajroetker/go-dynimage/hwy"
)

// Image owns an interleaved pixel buffer whose rows are aligned for SIMD
// processing. Use Ptr or ConstPtr to look at it.
type Image[T hwy.Lanes, C Channels] struct {
	data   []T
	width  int
	height int
	stride int // elements per row (includes padding)
}

type options struct {
	rowAlign int
}

// Option configures New.
type Option func(*options)

// WithRowAlign pads every row to a multiple of align bytes.
// It panics if align is not positive.
func WithRowAlign(align int) Option {
	if align <= 0 {
		panic(fmt.Sprintf("image: WithRowAlign(%d): align must be > 0", align))
	}
	return func(o *options) { o.rowAlign = align }
}

// WithPacked disables row padding.
func WithPacked() Option {
	return func(o *options) { o.rowAlign = 1 }
}

// New creates a zeroed image with the specified dimensions.
// Rows are aligned to hwy.RowAlign() bytes unless an option says otherwise.
func New[T hwy.Lanes, C Channels](width, height int, opts ...Option) *Image[T, C] {
	if width <= 0 || height <= 0 {
		return &Image[T, C]{}
	}
	o := options{rowAlign: hwy.RowAlign()}
	for _, opt := range opts {
		opt(&o)
	}

	elem := hwy.SizeOf[T]()
	bytesPerRow := hwy.AlignUp(width*ChannelCount[C]()*elem, o.rowAlign)
	stride := (bytesPerRow + elem - 1) / elem

	return &Image[T, C]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// Width returns the image width in pixels.
func (img *Image[T, C]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T, C]) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T, C]) Stride() int {
	return img.stride
}

// BytesPerRow returns the number of bytes per row (including padding).
func (img *Image[T, C]) BytesPerRow() int {
	return img.stride * hwy.SizeOf[T]()
}

// Pix returns the whole backing slice, padding included.
func (img *Image[T, C]) Pix() []T {
	return img.data
}

// Ptr returns a writable view of the image.
func (img *Image[T, C]) Ptr() Ptr[T, C] {
	if len(img.data) == 0 {
		return Ptr[T, C]{}
	}
	return NewPtr[T, C](&img.data[0], img.BytesPerRow(), img.width, img.height)
}

// ConstPtr returns a read-only view of the image.
func (img *Image[T, C]) ConstPtr() ConstPtr[T, C] {
	return img.Ptr().Const()
}

// Clone creates a deep copy of the image.
func (img *Image[T, C]) Clone() *Image[T, C] {
	clone := &Image[T, C]{
		data:   make([]T, len(img.data)),
		width:  img.width,
		height: img.height,
		stride: img.stride,
	}
	copy(clone.data, img.data)
	return clone
}

// Clear sets all components, padding included, to zero.
func (img *Image[T, C]) Clear() {
	clear(img.data)
}

// Bounds returns the bounding rectangle of the image.
func (img *Image[T, C]) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// XYWH builds a Rect from an origin and extents.
func XYWH(x, y, w, h int) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X0, other.X0)
	y0 := max(r.Y0, other.Y0)
	x1 := min(r.X1, other.X1)
	y1 := min(r.Y1, other.Y1)
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// In reports whether r lies entirely inside other. Empty rectangles are
// inside everything.
func (r Rect) In(other Rect) bool {
	if r.IsEmpty() {
		return true
	}
	return r.X0 >= other.X0 && r.Y0 >= other.Y0 && r.X1 <= other.X1 && r.Y1 <= other.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}
