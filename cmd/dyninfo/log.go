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
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	logFormatFlag = "logformat"
	logLevelFlag  = "loglevel"
	logOutputFlag = "logoutput"
)

// registerLoggingFlags adds the persistent logging flags:
//
//	--logformat text|json
//	--loglevel warn|debug|info|error
//	--logoutput stderr|stdout
func registerLoggingFlags(fs *pflag.FlagSet) {
	enumVar(fs, logFormatFlag, []string{"text", "json"}, "log output format")
	enumVar(fs, logLevelFlag, []string{"warn", "debug", "info", "error"}, "logging level")
	enumVar(fs, logOutputFlag, []string{"stderr", "stdout"}, "log output destination")
}

// baseLogger builds a logger from the logging flags of cmd.
func baseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, err := enumGet(cmd.Flags(), logLevelFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to get log level: %w", err)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	format, err := enumGet(cmd.Flags(), logFormatFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to get log format: %w", err)
	}
	output, err := enumGet(cmd.Flags(), logOutputFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to get log output: %w", err)
	}

	var w io.Writer
	switch output {
	case "stdout":
		w = cmd.OutOrStdout()
	default:
		w = cmd.ErrOrStderr()
	}

	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}

type loggerKey struct{}

func withLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// loggerFrom returns the logger stored in ctx, or the default logger.
func loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
