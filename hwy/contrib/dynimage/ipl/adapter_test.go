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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage"
	"github.com/ajroetker/go-dynimage/hwy/contrib/image"
)

func TestNewImage(t *testing.T) {
	img := NewImage(5, 3, Depth8U, 3)
	assert.Equal(t, 16, img.WidthStep, "15 bytes rounded to 4")
	assert.Len(t, img.Bytes(), 48)

	img = NewImage(3, 2, Depth16S, 1)
	assert.Equal(t, 8, img.WidthStep)
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 8, Depth8S.Bits())
	assert.True(t, Depth8S.Signed())
	assert.False(t, Depth32F.Signed())
	assert.Equal(t, "32S", Depth32S.String())
	assert.Equal(t, "24?", Depth(24).String())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		depth Depth
		kind  dynimage.Kind
		size  int
	}{
		{Depth8U, dynimage.Uint, 1},
		{Depth8S, dynimage.Int, 1},
		{Depth16U, dynimage.Uint, 2},
		{Depth16S, dynimage.Int, 2},
		{Depth32S, dynimage.Int, 4},
		{Depth32F, dynimage.Float32, 4},
		{Depth64F, dynimage.Float64, 8},
		{Depth(1), dynimage.Unknown, 1},
		{Depth(24), dynimage.Unknown, 3},
		{DepthSign | 64, dynimage.Unknown, 8},
	}
	for _, tt := range tests {
		t.Run(tt.depth.String(), func(t *testing.T) {
			kind, size := KindOf(tt.depth)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.size, size)

			if tt.kind == dynimage.Unknown {
				_, ok := DepthOf(kind, size)
				assert.False(t, ok)
				return
			}
			d, ok := DepthOf(kind, size)
			require.True(t, ok)
			assert.Equal(t, tt.depth, d)
		})
	}

	_, ok := DepthOf(dynimage.Uint, 4)
	assert.False(t, ok, "there is no unsigned 32-bit depth")
}

func TestInfo(t *testing.T) {
	img := NewImage(6, 4, Depth32F, 2)
	img.SetROI(ROI{XOffset: 1, YOffset: 1, Width: 2, Height: 2})

	info := Info(img)
	assert.Equal(t, dynimage.Info{
		Width: 6, Height: 4, Channels: 2, Kind: dynimage.Float32, ElemSize: 4,
		Data: img.ImageData, RowStride: 48,
	}, info)

	roi := InfoROI(img)
	assert.Equal(t, 2, roi.Width)
	assert.Equal(t, 2, roi.Height)
	assert.Equal(t, 48, roi.RowStride)
	assert.Equal(t, unsafe.Add(img.ImageData, 48+8), roi.Data)

	img.ResetROI()
	assert.Equal(t, info, InfoROI(img))
}

func TestROIRoundTrip(t *testing.T) {
	img := NewImage(8, 6, Depth8U, 3)
	full := dynimage.From(Source(img))
	p, err := dynimage.ToPtr[uint8, image.C3](full)
	require.NoError(t, err)
	for y := range 6 {
		for x := range 8 {
			p.Set(x, y, 0, uint8(10*y+x))
		}
	}

	img.SetROI(ROI{XOffset: 3, YOffset: 2, Width: 4, Height: 3})
	back, err := ToImage(dynimage.From(SourceROI(img)))
	require.NoError(t, err)

	assert.Equal(t, 4, back.Width)
	assert.Equal(t, 3, back.Height)
	assert.Equal(t, img.WidthStep, back.WidthStep)
	assert.Equal(t, Depth8U, back.Depth)
	assert.Nil(t, back.ROI)
	assert.Equal(t, uint8(23), *(*uint8)(back.ImageData), "pixel (0,0) is the ROI origin")

	q, err := dynimage.ToPtr[uint8, image.C3](dynimage.From(Source(back)))
	require.NoError(t, err)
	assert.Equal(t, uint8(10*4+6), q.At(3, 2, 0))
}

func TestToImage_Unsupported(t *testing.T) {
	buf := make([]byte, 16)
	d, err := dynimage.New(2, 2, 1, dynimage.Uint, 4, unsafe.Pointer(&buf[0]), 0)
	require.NoError(t, err)

	_, err = ToImage(d)
	require.ErrorIs(t, err, dynimage.ErrUnsupportedFormat)

	d, err = dynimage.New(2, 2, 1, dynimage.Unknown, 1, unsafe.Pointer(&buf[0]), 0)
	require.NoError(t, err)
	_, err = ToImage(d)
	require.ErrorIs(t, err, dynimage.ErrUnsupportedFormat)
}

func TestToImage_FromTypedView(t *testing.T) {
	src := image.New[int16, image.C2](5, 5)
	img, err := ToImage(dynimage.FromImage(src))
	require.NoError(t, err)

	assert.Equal(t, Depth16S, img.Depth)
	assert.Equal(t, 2, img.Channels)
	assert.Equal(t, src.BytesPerRow(), img.WidthStep)
	assert.Equal(t, unsafe.Pointer(&src.Pix()[0]), img.ImageData)
}

func TestSetROI_Clips(t *testing.T) {
	tests := []struct {
		name string
		roi  ROI
		want ROI
	}{
		{"inside", ROI{1, 1, 2, 2}, ROI{1, 1, 2, 2}},
		{"past bottom", ROI{3, 3, 1, 5}, ROI{3, 3, 1, 1}},
		{"past right", ROI{2, 0, 9, 4}, ROI{2, 0, 2, 4}},
		{"negative offset", ROI{-2, -1, 4, 3}, ROI{0, 0, 2, 2}},
		{"outside", ROI{6, 1, 2, 2}, ROI{4, 1, 0, 0}},
		{"negative extent", ROI{1, 1, -3, 2}, ROI{1, 1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(4, 4, Depth8U, 1)
			img.SetROI(tt.roi)
			require.NotNil(t, img.ROI)
			assert.Equal(t, tt.want, *img.ROI)
		})
	}
}

func TestInfoROI_StaysInBuffer(t *testing.T) {
	img := NewImage(4, 4, Depth8U, 1)
	buf := img.Bytes()
	buf[15] = 9

	img.SetROI(ROI{XOffset: 3, YOffset: 3, Width: 1, Height: 5})
	p, err := dynimage.ToPtr[uint8, image.C1](dynimage.From(SourceROI(img)))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Width())
	assert.Equal(t, 1, p.Height())
	assert.Equal(t, uint8(9), p.At(0, 0, 0))

	// Assigned directly, bypassing SetROI.
	img.ROI = &ROI{XOffset: 2, YOffset: 2, Width: 8, Height: 8}
	info := InfoROI(img)
	assert.Equal(t, 2, info.Width)
	assert.Equal(t, 2, info.Height)
	assert.Equal(t, unsafe.Pointer(&buf[10]), info.Data)
	assert.LessOrEqual(t, 10+info.ByteLen(), len(buf))

	img.ROI = &ROI{XOffset: 5, YOffset: 0, Width: 1, Height: 1}
	info = InfoROI(img)
	assert.True(t, info.IsEmpty())
	assert.Nil(t, info.Data)
}

func TestToImage_Channels(t *testing.T) {
	buf := make([]byte, 2*2*5)
	for _, ch := range []int{0, 5} {
		d, err := dynimage.New(2, 2, ch, dynimage.Uint, 1, unsafe.Pointer(&buf[0]), 0)
		require.NoError(t, err)
		_, err = ToImage(d)
		assert.ErrorIs(t, err, dynimage.ErrUnsupportedFormat, "%d channels", ch)
	}

	d, err := dynimage.New(2, 2, MaxChannels, dynimage.Uint, 1, unsafe.Pointer(&buf[0]), 0)
	require.NoError(t, err)
	img, err := ToImage(d)
	require.NoError(t, err)
	assert.Equal(t, MaxChannels, img.Channels)
}
