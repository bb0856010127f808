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

// Package ipl connects IplImage-style bitmaps to dynimage.
//
// An Image is the classic bitmap header: extents, channel count, a depth
// code combining bit width and signedness, a row step and an optional
// region of interest. The pixels are never owned by the header.
//
//	img := ipl.NewImage(640, 480, ipl.Depth8U, 3)
//	img.SetROI(ipl.ROI{XOffset: 10, YOffset: 20, Width: 100, Height: 50})
//	d := dynimage.From(ipl.SourceROI(img)) // describes the ROI only
//	back, err := ipl.ToImage(d)            // 100x50 header over the same bytes
package ipl

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-dynimage/hwy"
)

// Depth is a bit width, with DepthSign set for signed integers.
type Depth uint32

// DepthSign marks signed depths.
const DepthSign Depth = 0x80000000

// MaxChannels is the largest channel count a header can carry.
const MaxChannels = 4

// Supported depth codes.
const (
	Depth8U  Depth = 8
	Depth8S  Depth = DepthSign | 8
	Depth16U Depth = 16
	Depth16S Depth = DepthSign | 16
	Depth32S Depth = DepthSign | 32
	Depth32F Depth = 32
	Depth64F Depth = 64
)

// Bits returns the bit width of one component.
func (d Depth) Bits() int {
	return int(d &^ DepthSign)
}

// Signed reports whether DepthSign is set.
func (d Depth) Signed() bool {
	return d&DepthSign != 0
}

func (d Depth) String() string {
	switch d {
	case Depth8U:
		return "8U"
	case Depth8S:
		return "8S"
	case Depth16U:
		return "16U"
	case Depth16S:
		return "16S"
	case Depth32S:
		return "32S"
	case Depth32F:
		return "32F"
	case Depth64F:
		return "64F"
	}
	if d.Signed() {
		return fmt.Sprintf("%dS?", d.Bits())
	}
	return fmt.Sprintf("%d?", d.Bits())
}

// ROI is a rectangle inside an Image.
type ROI struct {
	XOffset, YOffset int
	Width, Height    int
}

// Image is an IplImage-style bitmap header.
type Image struct {
	Width     int
	Height    int
	Channels  int
	Depth     Depth
	WidthStep int            // bytes between row starts
	ImageData unsafe.Pointer // first byte of row 0
	ROI       *ROI           // nil means the whole image
}

// rowAlign is the row alignment NewImage uses, as IplImage does by default.
const rowAlign = 4

// NewImage allocates a zeroed image with 4-byte aligned rows.
func NewImage(width, height int, depth Depth, channels int) *Image {
	step := hwy.AlignUp(width*channels*((depth.Bits()+7)/8), rowAlign)
	img := Header(width, height, depth, channels, nil, step)
	if n := step * height; n > 0 {
		buf := make([]byte, n)
		img.ImageData = unsafe.Pointer(&buf[0])
	}
	return img
}

// Header creates an image header over existing memory.
func Header(width, height int, depth Depth, channels int, data unsafe.Pointer, widthStep int) *Image {
	return &Image{
		Width:     width,
		Height:    height,
		Channels:  channels,
		Depth:     depth,
		WidthStep: widthStep,
		ImageData: data,
	}
}

// SetROI restricts the image to r clipped to the image bounds. A region
// outside the image leaves an empty ROI.
func (img *Image) SetROI(r ROI) {
	r = img.clip(r)
	img.ROI = &r
}

// clip intersects r with the image bounds. Offsets of an empty result are
// clamped into the image.
func (img *Image) clip(r ROI) ROI {
	w, h := max(img.Width, 0), max(img.Height, 0)
	x0 := min(max(r.XOffset, 0), w)
	y0 := min(max(r.YOffset, 0), h)
	x1 := min(max(r.XOffset+r.Width, x0), w)
	y1 := min(max(r.YOffset+r.Height, y0), h)
	if x1 <= x0 || y1 <= y0 {
		return ROI{XOffset: x0, YOffset: y0}
	}
	return ROI{XOffset: x0, YOffset: y0, Width: x1 - x0, Height: y1 - y0}
}

// ResetROI removes the region of interest.
func (img *Image) ResetROI() {
	img.ROI = nil
}

// Bytes returns the rows of the whole image, ignoring the ROI.
func (img *Image) Bytes() []byte {
	if img.ImageData == nil || img.Height <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(img.ImageData), img.WidthStep*img.Height)
}
