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

	"github.com/ajroetker/go-dynimage/hwy"
	"github.com/ajroetker/go-dynimage/hwy/contrib/image"
	"github.com/ajroetker/go-dynimage/hwy/contrib/tensor"
)

// InfoOf describes a typed view. It never fails: a typed view is well
// formed by construction.
func InfoOf[T hwy.Lanes, C image.Channels](p image.Ptr[T, C]) Info {
	return Info{
		Width:     p.Width(),
		Height:    p.Height(),
		Channels:  p.ChannelSize(),
		Kind:      KindOf[T](),
		ElemSize:  p.ElemSize(),
		Data:      p.Data(),
		RowStride: p.MoveStep(),
	}
}

// ConstInfoOf describes a read-only typed view.
func ConstInfoOf[T hwy.Lanes, C image.Channels](p image.ConstPtr[T, C]) Info {
	return Info{
		Width:     p.Width(),
		Height:    p.Height(),
		Channels:  p.ChannelSize(),
		Kind:      KindOf[T](),
		ElemSize:  p.ElemSize(),
		Data:      p.Data(),
		RowStride: p.MoveStep(),
	}
}

// TensorInfoOf describes a height×width×channels tensor view.
func TensorInfoOf[T hwy.Lanes](t tensor.Tensor3[T]) Info {
	shape, strides := t.Shape(), t.Strides()
	return Info{
		Width:     shape[1],
		Height:    shape[0],
		Channels:  shape[2],
		Kind:      KindOf[T](),
		ElemSize:  hwy.SizeOf[T](),
		Data:      t.Data(),
		RowStride: strides[0],
	}
}

// Tensor2InfoOf describes a rank-2 tensor as a single-channel image: one
// row per outer element, one pixel per inner element.
func Tensor2InfoOf[T hwy.Lanes](t tensor.Tensor2[T]) Info {
	return Info{
		Width:     t.Inner().Size(),
		Height:    t.Size(),
		Channels:  1,
		Kind:      KindOf[T](),
		ElemSize:  hwy.SizeOf[T](),
		Data:      t.Data(),
		RowStride: t.Step(),
	}
}

// FromPtr erases the static type of a writable view.
func FromPtr[T hwy.Lanes, C image.Channels](p image.Ptr[T, C]) Dynamic {
	return Dynamic{info: InfoOf(p)}
}

// FromConstPtr erases the static type of a read-only view.
func FromConstPtr[T hwy.Lanes, C image.Channels](p image.ConstPtr[T, C]) ConstDynamic {
	return ConstDynamic{info: ConstInfoOf(p)}
}

// FromImage erases the static type of an owning image.
func FromImage[T hwy.Lanes, C image.Channels](img *image.Image[T, C]) Dynamic {
	return FromPtr(img.Ptr())
}

// FromTensor erases the static type of a height×width×channels tensor.
// Pixels must be packed within each row, which an Info cannot describe
// otherwise, and rows must not overlap.
func FromTensor[T hwy.Lanes](t tensor.Tensor3[T]) (Dynamic, error) {
	info := TensorInfoOf(t)
	if pixel := t.Strides()[1]; info.Width > 1 && pixel != info.PixelBytes() {
		return Dynamic{}, fmt.Errorf("%w: pixels are %d bytes apart, %d bytes wide", ErrSizeMismatch, pixel, info.PixelBytes())
	}
	if err := checkLayout(info); err != nil {
		return Dynamic{}, err
	}
	return Dynamic{info: info}, nil
}

// FromTensor2 erases the static type of a rank-2 tensor, described as a
// single-channel image. Rows must not overlap.
func FromTensor2[T hwy.Lanes](t tensor.Tensor2[T]) (Dynamic, error) {
	info := Tensor2InfoOf(t)
	if err := checkLayout(info); err != nil {
		return Dynamic{}, err
	}
	return Dynamic{info: info}, nil
}
