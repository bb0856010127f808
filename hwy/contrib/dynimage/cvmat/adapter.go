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

package cvmat

import (
	"fmt"

	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage"
)

type depthEntry struct {
	kind dynimage.Kind
	size int
}

var depthTable = map[int]depthEntry{
	Depth8U:  {dynimage.Uint, 1},
	Depth8S:  {dynimage.Int, 1},
	Depth16U: {dynimage.Uint, 2},
	Depth16S: {dynimage.Int, 2},
	Depth32S: {dynimage.Int, 4},
	Depth32F: {dynimage.Float32, 4},
	Depth64F: {dynimage.Float64, 8},
}

// KindOf returns the component kind and size for a depth code.
// Unrecognised depths are Unknown with size 1.
func KindOf(depth int) (dynimage.Kind, int) {
	if e, ok := depthTable[depth]; ok {
		return e.kind, e.size
	}
	return dynimage.Unknown, 1
}

// TypeOf returns the packed type matching info. ok is false when no depth
// code matches the kind and element size, or the channel count does not
// fit in a Type.
func TypeOf(info dynimage.Info) (t Type, ok bool) {
	if info.Channels < 1 || info.Channels > MaxChannels {
		return 0, false
	}
	for depth, e := range depthTable {
		if e.kind == info.Kind && e.size == info.ElemSize {
			return MakeType(depth, info.Channels), true
		}
	}
	return 0, false
}

// Info describes m.
func Info(m *Mat) dynimage.Info {
	kind, size := KindOf(m.Type.Depth())
	return dynimage.Info{
		Width:     m.Cols,
		Height:    m.Rows,
		Channels:  m.Type.Channels(),
		Kind:      kind,
		ElemSize:  size,
		Data:      m.Data,
		RowStride: m.Step,
	}
}

type source struct {
	m *Mat
}

func (s source) DynamicInfo() dynimage.Info { return Info(s.m) }

// Source returns a dynimage.Source describing m.
func Source(m *Mat) dynimage.Source {
	return source{m: m}
}

// ToMat builds a matrix header over the memory described by d. It fails
// with dynimage.ErrUnsupportedFormat when no type code matches.
func ToMat(d dynimage.Dynamic) (*Mat, error) {
	t, ok := TypeOf(d.Info())
	if !ok {
		return nil, fmt.Errorf("%w: no type for %d channels of %d-byte %s", dynimage.ErrUnsupportedFormat, d.Channels(), d.ElemSize(), d.Kind())
	}
	return FromData(d.Height(), d.Width(), t, d.Data(), d.RowStride()), nil
}
