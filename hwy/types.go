// Package hwy holds the element-type constraints shared by the image, tensor
// and dynimage packages, and the runtime SIMD width probe used to pad image
// rows.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-dynimage/hwy"
//
//	func rowBytes[T hwy.Lanes](width int) int {
//		return hwy.AlignUp(width*hwy.SizeOf[T](), hwy.RowAlign())
//	}
package hwy

import "unsafe"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// Every pixel component type in this module satisfies it.
type Lanes interface {
	Floats | Integers
}

// SizeOf returns the byte size of one T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
