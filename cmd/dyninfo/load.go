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

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage"
	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage/stdimage"
)

// decoded is an image file wrapped as a Bitmap.
type decoded struct {
	path    string
	decoder string
	bitmap  stdimage.Bitmap
	img     image.Image
}

// loadBitmap decodes path and wraps its pixels. Images without a single
// interleaved buffer, like the YCbCr planes of a JPEG, are converted to
// RGBA first.
func loadBitmap(ctx context.Context, path string) (decoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return decoded{}, fmt.Errorf("opening %q failed: %w", path, err)
	}
	defer f.Close()

	img, name, err := image.Decode(f)
	if err != nil {
		return decoded{}, fmt.Errorf("decoding %q failed: %w", path, err)
	}

	b, err := stdimage.Wrap(img)
	if errors.Is(err, dynimage.ErrUnsupportedFormat) {
		loggerFrom(ctx).DebugContext(ctx, "converting to rgba", "file", path, "type", fmt.Sprintf("%T", img))
		rgba := image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
		img = rgba
		b, err = stdimage.Wrap(img)
	}
	if err != nil {
		return decoded{}, fmt.Errorf("wrapping %q failed: %w", path, err)
	}
	return decoded{path: path, decoder: name, bitmap: b, img: img}, nil
}
