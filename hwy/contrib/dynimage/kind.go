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

package dynimage

import "reflect"

// Kind classifies pixel components at runtime.
type Kind int

const (
	// Unknown means the element format is unchecked. Reconstruction only
	// verifies sizes for Unknown descriptors.
	Unknown Kind = iota
	// Int is any signed integer.
	Int
	// Uint is any unsigned integer.
	Uint
	// Float32 is a 4-byte IEEE float.
	Float32
	// Float64 is an 8-byte IEEE float.
	Float64
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// KindOf returns the Kind of T, classified by its underlying type: a
// defined type such as `type Gray uint8` is Uint. Non-numeric types are
// Unknown.
func KindOf[T any]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		return Unknown
	}
}
