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

package stdimage

import (
	"fmt"
	"image"

	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage"
)

// FormatOf picks the default format for a component layout. It reports
// false when no format has the layout or the components are not unsigned.
func FormatOf(info dynimage.Info) (Format, bool) {
	if info.Kind != dynimage.Uint && info.Kind != dynimage.Unknown {
		return FormatInvalid, false
	}
	switch {
	case info.ElemSize == 1 && info.Channels == 1:
		return FormatGray, true
	case info.ElemSize == 1 && info.Channels == 3:
		return FormatRGB24, true
	case info.ElemSize == 1 && info.Channels == 4:
		return FormatRGBA, true
	case info.ElemSize == 2 && info.Channels == 1:
		return FormatGray16, true
	case info.ElemSize == 2 && info.Channels == 4:
		return FormatRGBA64, true
	}
	return FormatInvalid, false
}

func checkFormat(info dynimage.Info, f Format) error {
	if info.Kind != dynimage.Uint && info.Kind != dynimage.Unknown {
		return fmt.Errorf("%w: %s components cannot be %s", dynimage.ErrUnsupportedFormat, info.Kind, f)
	}
	channels, elemSize := f.Layout()
	if f == FormatInvalid || channels != info.Channels || elemSize != info.ElemSize {
		return fmt.Errorf("%w: %d-channel %d-byte pixels cannot be %s", dynimage.ErrUnsupportedFormat, info.Channels, info.ElemSize, f)
	}
	return nil
}

// ToBitmap describes the memory of d as a Bitmap in its default format.
func ToBitmap(d dynimage.Dynamic) (Bitmap, error) {
	f, ok := FormatOf(d.Info())
	if !ok {
		return nil, fmt.Errorf("%w: no format for %s", dynimage.ErrUnsupportedFormat, d)
	}
	return toBitmap(d.Info(), f), nil
}

func toBitmap(info dynimage.Info, f Format) Bitmap {
	return NewBitmap(info.Width, info.Height, f, info.RowStride, info.Bytes())
}

// ToImage returns a standard library image aliasing the memory of d, in
// the default format for d's layout. Three-channel pixels have no standard
// library type and fail with dynimage.ErrUnsupportedFormat.
func ToImage(d dynimage.Dynamic) (image.Image, error) {
	f, ok := FormatOf(d.Info())
	if !ok || f == FormatRGB24 {
		return nil, fmt.Errorf("%w: no image type for %s", dynimage.ErrUnsupportedFormat, d)
	}
	return ToImageFormat(d, f)
}

// ToImageFormat returns a standard library image of format f aliasing the
// memory of d. d's layout must match f. FormatPaletted gets an empty
// palette.
func ToImageFormat(d dynimage.Dynamic, f Format) (image.Image, error) {
	info := d.Info()
	if err := checkFormat(info, f); err != nil {
		return nil, err
	}
	pix := info.Bytes()
	stride := info.RowStride
	rect := image.Rect(0, 0, info.Width, info.Height)
	switch f {
	case FormatGray:
		return &image.Gray{Pix: pix, Stride: stride, Rect: rect}, nil
	case FormatAlpha:
		return &image.Alpha{Pix: pix, Stride: stride, Rect: rect}, nil
	case FormatPaletted:
		return &image.Paletted{Pix: pix, Stride: stride, Rect: rect}, nil
	case FormatRGBA:
		return &image.RGBA{Pix: pix, Stride: stride, Rect: rect}, nil
	case FormatNRGBA:
		return &image.NRGBA{Pix: pix, Stride: stride, Rect: rect}, nil
	case FormatCMYK:
		return &image.CMYK{Pix: pix, Stride: stride, Rect: rect}, nil
	case FormatGray16:
		return &image.Gray16{Pix: pix, Stride: stride, Rect: rect}, nil
	case FormatAlpha16:
		return &image.Alpha16{Pix: pix, Stride: stride, Rect: rect}, nil
	case FormatRGBA64:
		return &image.RGBA64{Pix: pix, Stride: stride, Rect: rect}, nil
	case FormatNRGBA64:
		return &image.NRGBA64{Pix: pix, Stride: stride, Rect: rect}, nil
	}
	return nil, fmt.Errorf("%w: %s has no image type", dynimage.ErrUnsupportedFormat, f)
}
