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
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-dynimage/hwy/contrib/image"
)

// Info is the runtime description of an interleaved pixel buffer.
//
// Info does not own Data. A valid Info satisfies
// RowStride >= Width*Channels*ElemSize; NewInfo enforces it, adapters
// produce it by construction.
type Info struct {
	Width     int            // pixels per row
	Height    int            // rows
	Channels  int            // interleaved components per pixel
	Kind      Kind           // component kind, Unknown if unchecked
	ElemSize  int            // bytes per component
	Data      unsafe.Pointer // address of pixel (0, 0)
	RowStride int            // bytes between row starts
}

// NewInfo builds an Info from explicit fields. A zero rowStride is replaced
// by the packed row size; a smaller non-zero one fails with
// ErrPointerOutOfRange, as do negative extents.
func NewInfo(width, height, channels int, kind Kind, elemSize int, data unsafe.Pointer, rowStride int) (Info, error) {
	if width < 0 || height < 0 || channels < 0 || elemSize < 0 || rowStride < 0 {
		return Info{}, fmt.Errorf("%w: negative extent in %dx%dx%d, %d-byte elements, stride %d",
			ErrPointerOutOfRange, width, height, channels, elemSize, rowStride)
	}
	info := Info{
		Width:     width,
		Height:    height,
		Channels:  channels,
		Kind:      kind,
		ElemSize:  elemSize,
		Data:      data,
		RowStride: rowStride,
	}
	packed := info.PackedRowBytes()
	if info.RowStride == 0 {
		info.RowStride = packed
	}
	if info.RowStride < packed {
		return Info{}, fmt.Errorf("%w: row needs %d bytes, stride is %d", ErrPointerOutOfRange, packed, info.RowStride)
	}
	return info, nil
}

// PixelBytes returns the size of one pixel in bytes.
func (i Info) PixelBytes() int {
	return i.Channels * i.ElemSize
}

// PackedRowBytes returns the size of one row without padding.
func (i Info) PackedRowBytes() int {
	return i.Width * i.PixelBytes()
}

// Size returns the extents.
func (i Info) Size() image.Size {
	return image.Size{Width: i.Width, Height: i.Height}
}

// IsEmpty reports whether the described buffer has no pixels.
func (i Info) IsEmpty() bool {
	return i.Data == nil || i.Width == 0 || i.Height == 0 || i.PixelBytes() == 0
}

// ByteLen returns the number of bytes from Data to the end of the last
// pixel of the last row. Padding after the last row is not included.
func (i Info) ByteLen() int {
	if i.IsEmpty() {
		return 0
	}
	return (i.Height-1)*i.RowStride + i.PackedRowBytes()
}

// Bytes returns the described memory as a byte slice aliasing Data.
func (i Info) Bytes() []byte {
	n := i.ByteLen()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(i.Data), n)
}

// Sub returns the description of r inside i. The result shares Data's
// memory and RowStride. r must lie within the bounds of i.
func (i Info) Sub(r image.Rect) (Info, error) {
	bounds := image.Rect{X1: i.Width, Y1: i.Height}
	if !r.In(bounds) {
		return Info{}, fmt.Errorf("%w: %v is outside %v", ErrPointerOutOfRange, r, bounds)
	}
	if r.IsEmpty() {
		sub := i
		sub.Width, sub.Height, sub.Data = 0, 0, nil
		return sub, nil
	}
	sub := i
	sub.Width = r.Width()
	sub.Height = r.Height()
	if i.Data != nil {
		sub.Data = unsafe.Add(i.Data, r.Y0*i.RowStride+r.X0*i.PixelBytes())
	}
	return sub, nil
}

func (i Info) String() string {
	return fmt.Sprintf("%dx%d ch=%d %s/%dB stride=%d", i.Width, i.Height, i.Channels, i.Kind, i.ElemSize, i.RowStride)
}
