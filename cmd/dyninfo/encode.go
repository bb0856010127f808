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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"sigs.k8s.io/yaml"
)

func encodeReports(output string, reports []report) ([]byte, error) {
	var data []byte
	var err error
	switch output {
	case "json":
		data, err = encodeReportsAsNDJSON(reports)
	case "yaml":
		data, err = encodeReportsAsYAML(reports)
	case "table":
		data = encodeReportsAsTable(reports)
	default:
		err = fmt.Errorf("unknown output format: %q", output)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding reports as %q failed: %w", output, err)
	}
	return data, nil
}

func encodeReportsAsNDJSON(reports []report) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	for _, r := range reports {
		if err := encoder.Encode(r); err != nil {
			return nil, fmt.Errorf("encoding report for %q failed: %w", r.File, err)
		}
	}
	return buf.Bytes(), nil
}

func encodeReportsAsYAML(reports []report) ([]byte, error) {
	if len(reports) == 1 {
		return yaml.Marshal(reports[0])
	}
	return yaml.Marshal(reports)
}

func encodeReportsAsTable(reports []report) []byte {
	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"File", "Format", "Size", "Channels", "Component", "Stride", "CV", "IPL"})
	t.AppendRows(lo.Map(reports, func(r report, _ int) table.Row {
		return table.Row{
			r.File,
			r.Format,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Channels,
			fmt.Sprintf("%s %dB", r.Kind, r.ElemSize),
			r.RowStride,
			lo.Ternary(r.CVType == "", "-", r.CVType),
			lo.Ternary(r.IPLDepth == "", "-", r.IPLDepth),
		}
	}))
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
	return buf.Bytes()
}
