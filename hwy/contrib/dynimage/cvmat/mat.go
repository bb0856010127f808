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

// Package cvmat connects matrices with a packed element type code to
// dynimage.
//
// A Type packs a depth code into its low three bits and the channel count
// minus one into the bits above:
//
//	t := cvmat.MakeType(cvmat.Depth16U, 3) // "16UC3"
//	t.Depth()    // Depth16U
//	t.Channels() // 3
package cvmat

import (
	"fmt"
	"unsafe"
)

// Depth codes. Depth16F has no dynimage kind and maps to Unknown.
const (
	Depth8U = iota
	Depth8S
	Depth16U
	Depth16S
	Depth32S
	Depth32F
	Depth64F
	Depth16F
)

const (
	cnShift   = 3
	depthMax  = 1 << cnShift
	depthMask = depthMax - 1
	// MaxChannels is the largest channel count a Type can carry.
	MaxChannels = 512
	cnMask      = (MaxChannels - 1) << cnShift
)

// Type is a packed depth and channel count.
type Type int32

// MakeType packs depth and channels. Channels must be in [1, MaxChannels].
func MakeType(depth, channels int) Type {
	return Type(depth&depthMask + (channels-1)<<cnShift)
}

// Depth returns the depth code.
func (t Type) Depth() int {
	return int(t) & depthMask
}

// Channels returns the channel count.
func (t Type) Channels() int {
	return (int(t)&cnMask)>>cnShift + 1
}

// ElemSize1 returns the byte size of one component, 0 for unknown depths.
func (t Type) ElemSize1() int {
	switch t.Depth() {
	case Depth8U, Depth8S:
		return 1
	case Depth16U, Depth16S, Depth16F:
		return 2
	case Depth32S, Depth32F:
		return 4
	case Depth64F:
		return 8
	default:
		return 0
	}
}

// ElemSize returns the byte size of one pixel.
func (t Type) ElemSize() int {
	return t.ElemSize1() * t.Channels()
}

var depthNames = [depthMax]string{"8U", "8S", "16U", "16S", "32S", "32F", "64F", "16F"}

func (t Type) String() string {
	return fmt.Sprintf("%sC%d", depthNames[t.Depth()], t.Channels())
}

// Mat is a 2D matrix header. Data is not owned.
type Mat struct {
	Rows int
	Cols int
	Type Type
	Step int // bytes between row starts
	Data unsafe.Pointer
}

// NewMat allocates a zeroed, packed matrix.
func NewMat(rows, cols int, t Type) *Mat {
	m := FromData(rows, cols, t, nil, 0)
	if n := m.Step * rows; n > 0 {
		buf := make([]byte, n)
		m.Data = unsafe.Pointer(&buf[0])
	}
	return m
}

// FromData creates a header over existing memory. A zero step means the
// rows are packed.
func FromData(rows, cols int, t Type, data unsafe.Pointer, step int) *Mat {
	if step == 0 {
		step = cols * t.ElemSize()
	}
	return &Mat{Rows: rows, Cols: cols, Type: t, Step: step, Data: data}
}

// Ptr returns the address of row y.
func (m *Mat) Ptr(y int) unsafe.Pointer {
	if m.Data == nil || y < 0 || y >= m.Rows {
		return nil
	}
	return unsafe.Add(m.Data, y*m.Step)
}
