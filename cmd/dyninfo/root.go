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

	"github.com/spf13/cobra"
)

// New builds the dyninfo root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dyninfo [sub-command]",
		Short: "Inspect and crop images through runtime-typed pixel views",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := baseLogger(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, logger))
			return nil
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
	registerLoggingFlags(cmd.PersistentFlags())
	cmd.AddCommand(newInspect())
	cmd.AddCommand(newCrop())
	return cmd
}
