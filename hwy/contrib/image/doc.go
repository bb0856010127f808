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

// Package image provides strongly typed, interleaved pixel views.
//
// The element type T and the channel count C are fixed at compile time:
//
//	rgb := image.New[uint8, image.C3](640, 480)
//	p := rgb.Ptr()
//	for y := range p.Height() {
//	    row := p.Row(y) // 640*3 uint8 values
//	    _ = row
//	}
//
// # Views
//
// Ptr[T, C] is a non-owning, writable view: a base pointer, a row step in
// bytes, a width and a height. ConstPtr[T, C] is the same view without any
// way to write through it. Image[T, C] owns its memory and hands out both.
//
// A view holds an ordinary pointer into its buffer, so Go-allocated memory
// stays reachable while a view exists. Memory from outside the Go heap must
// outlive every view derived from it.
//
// # Row Layout
//
// Rows of an Image are padded to the SIMD register width reported by
// hwy.RowAlign, so MoveStep() is usually larger than the packed row size.
// Use WithPacked to disable padding.
package image
