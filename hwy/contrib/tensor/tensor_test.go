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

package tensor

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestMake3_Packed(t *testing.T) {
	buf := make([]int32, 2*3*4)
	for i := range buf {
		buf[i] = int32(i)
	}

	tt := Make3(Make2(Make1(&buf[0], 4), 3, 0), 2, 0)

	if diff := cmp.Diff([3]int{2, 3, 4}, tt.Shape()); diff != "" {
		t.Errorf("Shape mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([3]int{48, 16, 4}, tt.Strides()); diff != "" {
		t.Errorf("Strides mismatch (-want +got):\n%s", diff)
	}
	if got := tt.Value(1, 2, 3); got != 23 {
		t.Errorf("Value(1,2,3): got %d, want 23", got)
	}
	if got := tt.At(1).At(0).Slice(); !cmp.Equal(got, []int32{12, 13, 14, 15}) {
		t.Errorf("At(1).At(0): got %v", got)
	}
}

func TestMake3_Padded(t *testing.T) {
	// 2 rows of 3 pixels x 2 channels, rows 8 elements (32 bytes) apart
	buf := make([]float32, 16)
	tt := Make3(Make2(Make1(&buf[0], 2), 3, 0), 2, 32)

	tt.Set(1, 2, 1, 5)
	if buf[8+2*2+1] != 5 {
		t.Errorf("Set(1,2,1) landed elsewhere: %v", buf)
	}
	if got := tt.Value(1, 2, 1); got != 5 {
		t.Errorf("Value(1,2,1): got %v, want 5", got)
	}
	if tt.Data() != unsafe.Pointer(&buf[0]) {
		t.Error("Data should alias the buffer")
	}
}

func TestTensor3_OutOfRange(t *testing.T) {
	buf := make([]uint8, 12)
	tt := Make3(Make2(Make1(&buf[0], 3), 2, 0), 2, 0)

	if got := tt.Value(2, 0, 0); got != 0 {
		t.Errorf("Value(2,0,0): got %d, want 0", got)
	}
	if got := tt.Value(0, 0, 3); got != 0 {
		t.Errorf("Value(0,0,3): got %d, want 0", got)
	}
	tt.Set(0, 2, 0, 9)
	tt.Set(-1, 0, 0, 9)
	for i, b := range buf {
		if b != 0 {
			t.Errorf("buf[%d] = %d after out-of-range Set", i, b)
		}
	}
}

func TestEmpty(t *testing.T) {
	if tt := Make3(Make2(Make1[uint16](nil, 3), 2, 0), 2, 0); !tt.IsEmpty() {
		t.Error("Nil base should give an empty tensor")
	}
	buf := make([]uint16, 4)
	if tt := Make3(Make2(Make1(&buf[0], 2), 2, 0), 0, 0); !tt.IsEmpty() {
		t.Error("Zero outer size should give an empty tensor")
	}
}

func TestConstTensor3(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	c := Make3(Make2(Make1(&buf[0], 1), 2, 0), 2, 0).Const()

	if got := c.Value(1, 1, 0); got != 4 {
		t.Errorf("Value(1,1,0): got %v, want 4", got)
	}
	if diff := cmp.Diff([3]int{2, 2, 1}, c.Shape()); diff != "" {
		t.Errorf("Shape mismatch (-want +got):\n%s", diff)
	}
}
