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

// Package tensor provides non-owning, strided views nested one dimension at
// a time.
//
// A rank-3 view of an interleaved image is built bottom-up: the innermost
// dimension is the channel vector of a pixel, the next one a row of pixels,
// the outermost the rows themselves, spaced by the image row step:
//
//	px := tensor.Make1(base, channels)
//	row := tensor.Make2(px, width, 0)      // packed pixels
//	t := tensor.Make3(row, height, step)   // padded rows
//	v := t.Value(y, x, c)
//
// Steps are in bytes. A step of 0 means "packed": the size of the inner
// view times its element count.
package tensor

import (
	"unsafe"

	"github.com/ajroetker/go-dynimage/hwy"
)

// Vector is a contiguous run of Size() elements.
type Vector[T hwy.Lanes] struct {
	data unsafe.Pointer
	size int
}

// Make1 creates a vector of size elements starting at data.
func Make1[T hwy.Lanes](data *T, size int) Vector[T] {
	if data == nil || size <= 0 {
		return Vector[T]{}
	}
	return Vector[T]{data: unsafe.Pointer(data), size: size}
}

// Size returns the number of elements.
func (v Vector[T]) Size() int { return v.size }

// Data returns the address of the first element.
func (v Vector[T]) Data() unsafe.Pointer { return v.data }

// Bytes returns the packed byte size of the vector.
func (v Vector[T]) Bytes() int { return v.size * hwy.SizeOf[T]() }

// Slice returns the elements as a slice aliasing the buffer.
func (v Vector[T]) Slice() []T {
	if v.data == nil {
		return nil
	}
	return unsafe.Slice((*T)(v.data), v.size)
}

// At returns element i, or zero when out of range.
func (v Vector[T]) At(i int) T {
	if i < 0 || i >= v.size || v.data == nil {
		var zero T
		return zero
	}
	return *(*T)(unsafe.Add(v.data, i*hwy.SizeOf[T]()))
}

// withData returns v rebased at p.
func (v Vector[T]) withData(p unsafe.Pointer) Vector[T] {
	v.data = p
	return v
}

// Tensor2 is Size() vectors spaced Step() bytes apart.
type Tensor2[T hwy.Lanes] struct {
	inner Vector[T]
	size  int
	step  int
}

// Make2 repeats inner size times, step bytes apart (0 means packed).
func Make2[T hwy.Lanes](inner Vector[T], size, step int) Tensor2[T] {
	if inner.data == nil || size <= 0 {
		return Tensor2[T]{}
	}
	if step == 0 {
		step = inner.Bytes()
	}
	return Tensor2[T]{inner: inner, size: size, step: step}
}

// Size returns the number of inner vectors.
func (t Tensor2[T]) Size() int { return t.size }

// Step returns the byte distance between inner vectors.
func (t Tensor2[T]) Step() int { return t.step }

// Data returns the address of the first element.
func (t Tensor2[T]) Data() unsafe.Pointer { return t.inner.data }

// Inner returns the first inner vector.
func (t Tensor2[T]) Inner() Vector[T] { return t.inner }

// At returns inner vector i, or an empty vector when out of range.
func (t Tensor2[T]) At(i int) Vector[T] {
	if i < 0 || i >= t.size {
		return Vector[T]{}
	}
	return t.inner.withData(unsafe.Add(t.inner.data, i*t.step))
}

// Bytes returns the byte span from the first to the last element.
func (t Tensor2[T]) Bytes() int {
	if t.size == 0 {
		return 0
	}
	return (t.size-1)*t.step + t.inner.Bytes()
}

func (t Tensor2[T]) withData(p unsafe.Pointer) Tensor2[T] {
	t.inner = t.inner.withData(p)
	return t
}

// Tensor3 is Size() rank-2 tensors spaced Step() bytes apart.
type Tensor3[T hwy.Lanes] struct {
	inner Tensor2[T]
	size  int
	step  int
}

// Make3 repeats inner size times, step bytes apart (0 means packed).
func Make3[T hwy.Lanes](inner Tensor2[T], size, step int) Tensor3[T] {
	if inner.inner.data == nil || size <= 0 {
		return Tensor3[T]{}
	}
	if step == 0 {
		step = inner.Bytes()
	}
	return Tensor3[T]{inner: inner, size: size, step: step}
}

// Size returns the number of inner tensors.
func (t Tensor3[T]) Size() int { return t.size }

// Step returns the byte distance between inner tensors.
func (t Tensor3[T]) Step() int { return t.step }

// Data returns the address of the first element.
func (t Tensor3[T]) Data() unsafe.Pointer { return t.inner.inner.data }

// Inner returns the first inner tensor.
func (t Tensor3[T]) Inner() Tensor2[T] { return t.inner }

// IsEmpty reports whether the tensor has no elements.
func (t Tensor3[T]) IsEmpty() bool { return t.size == 0 }

// Shape returns the extents, outermost first.
func (t Tensor3[T]) Shape() [3]int {
	return [3]int{t.size, t.inner.size, t.inner.inner.size}
}

// Strides returns the byte steps, outermost first.
func (t Tensor3[T]) Strides() [3]int {
	return [3]int{t.step, t.inner.step, hwy.SizeOf[T]()}
}

// At returns inner tensor i, or an empty tensor when out of range.
func (t Tensor3[T]) At(i int) Tensor2[T] {
	if i < 0 || i >= t.size {
		return Tensor2[T]{}
	}
	return t.inner.withData(unsafe.Add(t.Data(), i*t.step))
}

// Value returns element (i, j, k), or zero when out of range.
func (t Tensor3[T]) Value(i, j, k int) T {
	return t.At(i).At(j).At(k)
}

// Set writes element (i, j, k). Out-of-range writes are ignored.
func (t Tensor3[T]) Set(i, j, k int, value T) {
	v := t.At(i).At(j)
	if k < 0 || k >= v.size || v.data == nil {
		return
	}
	*(*T)(unsafe.Add(v.data, k*hwy.SizeOf[T]())) = value
}

// Const returns a read-only view of t.
func (t Tensor3[T]) Const() ConstTensor3[T] {
	return ConstTensor3[T]{t: t}
}

// ConstTensor3 is a read-only Tensor3.
type ConstTensor3[T hwy.Lanes] struct {
	t Tensor3[T]
}

// Size returns the outermost extent.
func (c ConstTensor3[T]) Size() int { return c.t.size }

// Data returns the address of the first element.
func (c ConstTensor3[T]) Data() unsafe.Pointer { return c.t.Data() }

// IsEmpty reports whether the tensor has no elements.
func (c ConstTensor3[T]) IsEmpty() bool { return c.t.IsEmpty() }

// Shape returns the extents, outermost first.
func (c ConstTensor3[T]) Shape() [3]int { return c.t.Shape() }

// Strides returns the byte steps, outermost first.
func (c ConstTensor3[T]) Strides() [3]int { return c.t.Strides() }

// Value returns element (i, j, k), or zero when out of range.
func (c ConstTensor3[T]) Value(i, j, k int) T { return c.t.Value(i, j, k) }
