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

// Package stdimage connects pixel-format-tagged bitmaps, and the image types
// of the standard library, to dynimage.
//
// A Bitmap exposes its pixel format as a Format, its bytes and its per-row
// byte count. Wrap adapts *image.RGBA, *image.Gray and the other concrete
// standard library images without copying:
//
//	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
//	b, _ := stdimage.Wrap(img)
//	d := dynimage.From(stdimage.Source(b)) // 640x480, 4 channels, 1-byte uint
//
// Every format is unsigned: the components are uint8, or big-endian uint16
// for the 16-bit formats. A typed view of a 16-bit format reads the raw
// bytes in host order; no byte swapping is performed.
package stdimage

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage"
)

// Format names a pixel byte layout.
type Format int

const (
	FormatInvalid Format = iota
	FormatGray
	FormatAlpha
	FormatPaletted
	FormatRGBA
	FormatNRGBA
	FormatCMYK
	FormatGray16
	FormatAlpha16
	FormatRGBA64
	FormatNRGBA64
	FormatRGB24
)

var formatNames = map[Format]string{
	FormatInvalid:  "invalid",
	FormatGray:     "gray",
	FormatAlpha:    "alpha",
	FormatPaletted: "paletted",
	FormatRGBA:     "rgba",
	FormatNRGBA:    "nrgba",
	FormatCMYK:     "cmyk",
	FormatGray16:   "gray16",
	FormatAlpha16:  "alpha16",
	FormatRGBA64:   "rgba64",
	FormatNRGBA64:  "nrgba64",
	FormatRGB24:    "rgb24",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Layout returns the channel count and component byte size of f. Formats
// sharing a byte layout share an entry; anything else, including formats
// added after this table, is treated as 4 one-byte channels.
func (f Format) Layout() (channels, elemSize int) {
	switch f {
	case FormatGray, FormatAlpha, FormatPaletted:
		return 1, 1
	case FormatRGBA, FormatNRGBA, FormatCMYK:
		return 4, 1
	case FormatGray16, FormatAlpha16:
		return 1, 2
	case FormatRGBA64, FormatNRGBA64:
		return 4, 2
	case FormatRGB24:
		return 3, 1
	default:
		return 4, 1
	}
}

// Bitmap is a pixel-format-tagged image with interleaved rows.
type Bitmap interface {
	// Bounds returns the pixel extents; only Dx and Dy are used.
	Bounds() image.Rectangle
	// Format returns the pixel layout.
	Format() Format
	// BytesPerLine returns the byte distance between row starts.
	BytesPerLine() int
	// Bits returns the pixel bytes, starting at the top-left pixel.
	Bits() []byte
}

type bitmap struct {
	bounds image.Rectangle
	format Format
	stride int
	pix    []byte
}

func (b bitmap) Bounds() image.Rectangle { return b.bounds }
func (b bitmap) Format() Format          { return b.format }
func (b bitmap) BytesPerLine() int       { return b.stride }
func (b bitmap) Bits() []byte            { return b.pix }

// NewBitmap wraps raw bytes as a Bitmap of the given format.
func NewBitmap(width, height int, format Format, stride int, pix []byte) Bitmap {
	return bitmap{bounds: image.Rect(0, 0, width, height), format: format, stride: stride, pix: pix}
}

// Wrap adapts a standard library image. The result aliases img's pixels.
// It fails with dynimage.ErrUnsupportedFormat for images without a single
// interleaved pixel buffer, such as *image.YCbCr.
func Wrap(img image.Image) (Bitmap, error) {
	switch m := img.(type) {
	case Bitmap:
		return m, nil
	case *image.Gray:
		return bitmap{m.Rect, FormatGray, m.Stride, m.Pix}, nil
	case *image.Alpha:
		return bitmap{m.Rect, FormatAlpha, m.Stride, m.Pix}, nil
	case *image.Paletted:
		return bitmap{m.Rect, FormatPaletted, m.Stride, m.Pix}, nil
	case *image.RGBA:
		return bitmap{m.Rect, FormatRGBA, m.Stride, m.Pix}, nil
	case *image.NRGBA:
		return bitmap{m.Rect, FormatNRGBA, m.Stride, m.Pix}, nil
	case *image.CMYK:
		return bitmap{m.Rect, FormatCMYK, m.Stride, m.Pix}, nil
	case *image.Gray16:
		return bitmap{m.Rect, FormatGray16, m.Stride, m.Pix}, nil
	case *image.Alpha16:
		return bitmap{m.Rect, FormatAlpha16, m.Stride, m.Pix}, nil
	case *image.RGBA64:
		return bitmap{m.Rect, FormatRGBA64, m.Stride, m.Pix}, nil
	case *image.NRGBA64:
		return bitmap{m.Rect, FormatNRGBA64, m.Stride, m.Pix}, nil
	default:
		return nil, fmt.Errorf("%w: %T has no interleaved pixel buffer", dynimage.ErrUnsupportedFormat, img)
	}
}

// Info describes b. Kind is always dynimage.Uint.
func Info(b Bitmap) dynimage.Info {
	channels, elemSize := b.Format().Layout()
	bounds := b.Bounds()
	info := dynimage.Info{
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Channels:  channels,
		Kind:      dynimage.Uint,
		ElemSize:  elemSize,
		RowStride: b.BytesPerLine(),
	}
	if bits := b.Bits(); len(bits) > 0 {
		info.Data = unsafe.Pointer(&bits[0])
	}
	return info
}

// InfoOf wraps img and describes it.
func InfoOf(img image.Image) (dynimage.Info, error) {
	b, err := Wrap(img)
	if err != nil {
		return dynimage.Info{}, err
	}
	return Info(b), nil
}

type source struct {
	b Bitmap
}

func (s source) DynamicInfo() dynimage.Info { return Info(s.b) }

// Source returns a dynimage.Source describing b.
func Source(b Bitmap) dynimage.Source {
	return source{b: b}
}
