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
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage"
	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage/cvmat"
	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage/ipl"
	"github.com/ajroetker/go-dynimage/hwy/contrib/dynimage/stdimage"
)

const (
	flagOutput = "output"
	flagJobs   = "jobs"
)

// report describes the pixels of one decoded file.
type report struct {
	File      string `json:"file"`
	Decoder   string `json:"decoder"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Channels  int    `json:"channels"`
	Kind      string `json:"kind"`
	ElemSize  int    `json:"elemSize"`
	RowStride int    `json:"rowStride"`
	CVType    string `json:"cvType,omitempty"`
	IPLDepth  string `json:"iplDepth,omitempty"`

	info dynimage.Info
}

func newInspect() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Print the pixel descriptor of image files",
		Args:  cobra.MinimumNArgs(1),
		Example: strings.TrimSpace(`
dyninfo inspect photo.png
dyninfo inspect -o yaml a.png b.gif
dyninfo inspect --jobs 8 -o json frames/*.png
`),
		RunE:              runInspect,
		DisableAutoGenTag: true,
	}
	enumVarP(cmd.Flags(), flagOutput, "o", []string{"table", "json", "yaml"}, "output format")
	cmd.Flags().Int(flagJobs, 4, "maximum number of files decoded in parallel")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	output, err := enumGet(cmd.Flags(), flagOutput)
	if err != nil {
		return fmt.Errorf("getting output flag failed: %w", err)
	}
	jobs, err := cmd.Flags().GetInt(flagJobs)
	if err != nil {
		return fmt.Errorf("getting jobs flag failed: %w", err)
	}
	if jobs < 1 {
		return fmt.Errorf("--%s must be at least 1, got %d", flagJobs, jobs)
	}

	reports, err := inspectFiles(cmd.Context(), args, jobs)
	if err != nil {
		return err
	}
	data, err := encodeReports(output, reports)
	if err != nil {
		return fmt.Errorf("generating output failed: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("writing output failed: %w", err)
	}
	return nil
}

// inspectFiles decodes paths with at most jobs files in flight. Reports
// keep the order of paths.
func inspectFiles(ctx context.Context, paths []string, jobs int) ([]report, error) {
	logger := loggerFrom(ctx)
	reports := make([]report, len(paths))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, path := range paths {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			d, err := loadBitmap(egctx, path)
			if err != nil {
				return err
			}
			reports[i] = describe(d)
			logger.InfoContext(egctx, "inspected", "file", path, "descriptor", reports[i].info.String())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func describe(d decoded) report {
	info := stdimage.Info(d.bitmap)
	r := report{
		File:      d.path,
		Decoder:   d.decoder,
		Format:    d.bitmap.Format().String(),
		Width:     info.Width,
		Height:    info.Height,
		Channels:  info.Channels,
		Kind:      info.Kind.String(),
		ElemSize:  info.ElemSize,
		RowStride: info.RowStride,
		info:      info,
	}
	if t, ok := cvmat.TypeOf(info); ok {
		r.CVType = t.String()
	}
	if depth, ok := ipl.DepthOf(info.Kind, info.ElemSize); ok {
		r.IPLDepth = depth.String()
	}
	return r
}
