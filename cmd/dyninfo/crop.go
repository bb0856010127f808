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
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage"
	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage/ipl"
	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage/stdimage"
)

const (
	flagRect = "rect"
	flagOut  = "out"
)

func newCrop() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crop --rect X,Y,W,H --out OUT.png FILE",
		Short: "Write a rectangular region of an image as PNG",
		Long: `Crop selects the region as the ROI of an IPL header over the decoded
pixels and encodes that region directly; the pixels are not copied before
encoding. The pixel format of the input is kept.`,
		Args:              cobra.ExactArgs(1),
		RunE:              runCrop,
		DisableAutoGenTag: true,
	}
	cmd.Flags().String(flagRect, "", "region as X,Y,W,H in pixels")
	cmd.Flags().String(flagOut, "", "output PNG file")
	_ = cmd.MarkFlagRequired(flagRect)
	_ = cmd.MarkFlagRequired(flagOut)
	return cmd
}

func runCrop(cmd *cobra.Command, args []string) error {
	rectFlag, err := cmd.Flags().GetString(flagRect)
	if err != nil {
		return fmt.Errorf("getting rect flag failed: %w", err)
	}
	out, err := cmd.Flags().GetString(flagOut)
	if err != nil {
		return fmt.Errorf("getting out flag failed: %w", err)
	}
	roi, err := parseROI(rectFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	d, err := loadBitmap(ctx, args[0])
	if err != nil {
		return err
	}
	cropped, err := crop(d, roi)
	if err != nil {
		return fmt.Errorf("cropping %q failed: %w", d.path, err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %q failed: %w", out, err)
	}
	if err := png.Encode(f, cropped); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %q failed: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q failed: %w", out, err)
	}
	loggerFrom(ctx).InfoContext(ctx, "cropped", "file", d.path, "rect", rectFlag, "out", out)
	return nil
}

// parseROI parses "X,Y,W,H".
func parseROI(s string) (ipl.ROI, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return ipl.ROI{}, fmt.Errorf("rect %q: want X,Y,W,H", s)
	}
	var errs []error
	v := lo.Map(parts, func(p string, _ int) int {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			errs = append(errs, err)
		}
		return n
	})
	if len(errs) > 0 {
		return ipl.ROI{}, fmt.Errorf("rect %q: %w", s, errs[0])
	}
	if lo.SomeBy(v, func(n int) bool { return n < 0 }) {
		return ipl.ROI{}, fmt.Errorf("rect %q: negative value", s)
	}
	return ipl.ROI{XOffset: v[0], YOffset: v[1], Width: v[2], Height: v[3]}, nil
}

// crop views the pixels of d through an IPL header restricted to roi and
// returns a standard library image over the same memory.
func crop(d decoded, roi ipl.ROI) (image.Image, error) {
	info := stdimage.Info(d.bitmap)
	bounds := image.Rect(0, 0, info.Width, info.Height)
	if r := image.Rect(roi.XOffset, roi.YOffset, roi.XOffset+roi.Width, roi.YOffset+roi.Height); !r.In(bounds) || r.Empty() {
		return nil, fmt.Errorf("%w: rect %v is outside %v", dynimage.ErrPointerOutOfRange, r, bounds)
	}

	hdr, err := ipl.ToImage(dynimage.From(stdimage.Source(d.bitmap)))
	if err != nil {
		return nil, err
	}
	hdr.SetROI(roi)

	out, err := stdimage.ToImageFormat(dynimage.From(ipl.SourceROI(hdr)), d.bitmap.Format())
	if err != nil {
		return nil, err
	}
	if p, ok := out.(*image.Paletted); ok {
		if src, ok := d.img.(*image.Paletted); ok {
			p.Palette = src.Palette
		}
	}
	return out, nil
}
