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

package ipl

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage"
)

type depthEntry struct {
	depth Depth
	kind  dynimage.Kind
	size  int
}

// depthTable maps every depth code with an unambiguous component type.
var depthTable = []depthEntry{
	{Depth8U, dynimage.Uint, 1},
	{Depth8S, dynimage.Int, 1},
	{Depth16U, dynimage.Uint, 2},
	{Depth16S, dynimage.Int, 2},
	{Depth32S, dynimage.Int, 4},
	{Depth32F, dynimage.Float32, 4},
	{Depth64F, dynimage.Float64, 8},
}

// KindOf returns the component kind and byte size of d. Depths outside the
// table are Unknown with a size derived from the bit width.
func KindOf(d Depth) (dynimage.Kind, int) {
	for _, e := range depthTable {
		if e.depth == d {
			return e.kind, e.size
		}
	}
	return dynimage.Unknown, max(d.Bits()/8, 1)
}

// DepthOf returns the depth code for components of the given kind and
// size. ok is false when no code matches.
func DepthOf(kind dynimage.Kind, size int) (d Depth, ok bool) {
	for _, e := range depthTable {
		if e.kind == kind && e.size == size {
			return e.depth, true
		}
	}
	return 0, false
}

// Info describes the whole image. The ROI is ignored.
func Info(img *Image) dynimage.Info {
	kind, size := KindOf(img.Depth)
	return dynimage.Info{
		Width:     img.Width,
		Height:    img.Height,
		Channels:  img.Channels,
		Kind:      kind,
		ElemSize:  size,
		Data:      img.ImageData,
		RowStride: img.WidthStep,
	}
}

// InfoROI describes the region of interest, or the whole image when there
// is none. The ROI is clipped to the image, also when it was assigned
// without SetROI. The result shares the image's memory and row step.
func InfoROI(img *Image) dynimage.Info {
	info := Info(img)
	if img.ROI == nil {
		return info
	}
	r := img.clip(*img.ROI)
	info.Width = r.Width
	info.Height = r.Height
	switch {
	case r.Width == 0 || r.Height == 0:
		info.Data = nil
	case info.Data != nil:
		info.Data = unsafe.Add(info.Data, r.YOffset*img.WidthStep+r.XOffset*info.PixelBytes())
	}
	return info
}

type source struct {
	img    *Image
	useROI bool
}

func (s source) DynamicInfo() dynimage.Info {
	if s.useROI {
		return InfoROI(s.img)
	}
	return Info(s.img)
}

// Source returns a dynimage.Source describing the whole image.
func Source(img *Image) dynimage.Source {
	return source{img: img}
}

// SourceROI returns a dynimage.Source describing the region of interest.
func SourceROI(img *Image) dynimage.Source {
	return source{img: img, useROI: true}
}

// ToImage builds a header over the memory described by d. It fails with
// dynimage.ErrUnsupportedFormat when no depth code matches d's components
// or the channel count is outside 1..MaxChannels.
func ToImage(d dynimage.Dynamic) (*Image, error) {
	if ch := d.Channels(); ch < 1 || ch > MaxChannels {
		return nil, fmt.Errorf("%w: %d channels, headers carry 1 to %d", dynimage.ErrUnsupportedFormat, ch, MaxChannels)
	}
	depth, ok := DepthOf(d.Kind(), d.ElemSize())
	if !ok {
		return nil, fmt.Errorf("%w: no depth for %d-byte %s components", dynimage.ErrUnsupportedFormat, d.ElemSize(), d.Kind())
	}
	return Header(d.Width(), d.Height(), depth, d.Channels(), d.Data(), d.RowStride()), nil
}
