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

// checkElem verifies that T can read the components described by info.
// Sizes are compared first, so a size mismatch is reported even when the
// kinds disagree too.
func checkElem[T hwy.Lanes](info Info) error {
	if size := hwy.SizeOf[T](); size != info.ElemSize {
		return fmt.Errorf("%w: descriptor has %d-byte components, target has %d", ErrSizeMismatch, info.ElemSize, size)
	}
	if want := KindOf[T](); info.Kind != Unknown && info.Kind != want {
		return fmt.Errorf("%w: descriptor holds %s, target holds %s", ErrTypeMismatch, info.Kind, want)
	}
	return checkLayout(info)
}

// checkLayout verifies the row invariant of info. Descriptors built by
// NewInfo always pass; those supplied through a Source may not.
func checkLayout(info Info) error {
	if info.Width < 0 || info.Height < 0 || info.Channels < 0 || info.RowStride < 0 {
		return fmt.Errorf("%w: negative extent in %v", ErrPointerOutOfRange, info)
	}
	if packed := info.PackedRowBytes(); info.RowStride < packed {
		return fmt.Errorf("%w: row needs %d bytes, stride is %d", ErrPointerOutOfRange, packed, info.RowStride)
	}
	return nil
}

func checkPixel[T hwy.Lanes, C image.Channels](info Info) error {
	if ch := image.ChannelCount[C](); ch != info.Channels {
		return fmt.Errorf("%w: descriptor has %d channels, target has %d", ErrSizeMismatch, info.Channels, ch)
	}
	return checkElem[T](info)
}

func ptrOf[T hwy.Lanes, C image.Channels](info Info) image.Ptr[T, C] {
	return image.NewPtr[T, C]((*T)(info.Data), info.RowStride, info.Width, info.Height)
}

func tensorOf[T hwy.Lanes](info Info) tensor.Tensor3[T] {
	return tensor.Make3(
		tensor.Make2(
			tensor.Make1((*T)(info.Data), info.Channels),
			info.Width,
			0,
		),
		info.Height,
		info.RowStride,
	)
}

// ToPtr reconstructs a writable typed view. It fails with ErrSizeMismatch
// when C or the size of T disagree with d, with ErrTypeMismatch when d's
// kind is known and differs from T's, and with ErrPointerOutOfRange when
// d's row stride is shorter than a packed row. The view aliases d's buffer.
func ToPtr[T hwy.Lanes, C image.Channels](d Dynamic) (image.Ptr[T, C], error) {
	if err := checkPixel[T, C](d.info); err != nil {
		return image.Ptr[T, C]{}, err
	}
	return ptrOf[T, C](d.info), nil
}

// ToConstPtr reconstructs a read-only typed view from either kind of Ptr,
// with the same checks as ToPtr.
func ToConstPtr[T hwy.Lanes, C image.Channels, A Access](d Ptr[A]) (image.ConstPtr[T, C], error) {
	if err := checkPixel[T, C](d.info); err != nil {
		return image.ConstPtr[T, C]{}, err
	}
	return ptrOf[T, C](d.info).Const(), nil
}

// ToTensor reconstructs a writable height×width×channels tensor. Only the
// component type is checked; the channel count becomes the innermost
// extent.
func ToTensor[T hwy.Lanes](d Dynamic) (tensor.Tensor3[T], error) {
	if err := checkElem[T](d.info); err != nil {
		return tensor.Tensor3[T]{}, err
	}
	return tensorOf[T](d.info), nil
}

// ToConstTensor reconstructs a read-only tensor from either kind of Ptr.
func ToConstTensor[T hwy.Lanes, A Access](d Ptr[A]) (tensor.ConstTensor3[T], error) {
	if err := checkElem[T](d.info); err != nil {
		return tensor.ConstTensor3[T]{}, err
	}
	return tensorOf[T](d.info).Const(), nil
}
