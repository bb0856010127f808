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

// Package contrib holds the pixel-buffer packages built on hwy.
//
// # Subpackages
//
//   - image: typed, strided views of interleaved pixel rows, and an owning
//     Image whose rows are padded to the SIMD width
//   - tensor: one- to three-dimensional strided views
//   - dynimage: runtime-typed views that erase the component type and
//     channel count, with adapters for IPL headers (dynimage/ipl), OpenCV
//     matrices (dynimage/cvmat) and standard library images
//     (dynimage/stdimage)
//
// # Typed and runtime-typed views
//
//	import (
//	    "github.com/ajroetker/go-dynimage/hwy/contrib/dynimage"
//	    "github.com/ajroetker/go-dynimage/hwy/contrib/image"
//	)
//
//	img := image.New[float32, image.C3](640, 480)
//	d := dynimage.FromImage(img)              // erase T and C
//	p, err := dynimage.ToPtr[float32, image.C3](d) // recover them
//
// All views alias the memory they describe. None of them own it, copy it
// or synchronise access to it.
package contrib
