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

// Command dyninfo inspects and crops image files through runtime-typed
// pixel views.
//
// Usage:
//
//	dyninfo inspect photo.png scan.jpg           # table of pixel descriptors
//	dyninfo inspect -o json *.png                # one JSON object per file
//	dyninfo crop --rect 10,20,64,64 --out tile.png photo.png
//
// inspect decodes every file (PNG, JPEG and GIF), wraps the decoded pixels
// without copying and prints the dimensions, component layout and row
// stride, together with the matching OpenCV type and IPL depth codes.
// crop selects a region of interest through an IPL header and writes that
// region as PNG; the region is never copied before encoding.
package main

import "os"

func main() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}
