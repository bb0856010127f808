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
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// enumFlag is a string flag restricted to a fixed set of values. The first
// option is the default.
type enumFlag struct {
	options []string
	value   string
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnum(options ...string) *enumFlag {
	if len(options) == 0 {
		panic("enum flag needs at least one option")
	}
	return &enumFlag{options: options, value: options[0]}
}

func (f *enumFlag) String() string { return f.value }

func (f *enumFlag) Set(v string) error {
	if !slices.Contains(f.options, v) {
		return fmt.Errorf("must be one of %s", strings.Join(f.options, "|"))
	}
	f.value = v
	return nil
}

func (f *enumFlag) Type() string { return "enum" }

func enumVar(fs *pflag.FlagSet, name string, options []string, usage string) {
	enumVarP(fs, name, "", options, usage)
}

func enumVarP(fs *pflag.FlagSet, name, shorthand string, options []string, usage string) {
	f := newEnum(options...)
	fs.VarP(f, name, shorthand, fmt.Sprintf("%s (one of %s)", usage, strings.Join(options, "|")))
}

func enumGet(fs *pflag.FlagSet, name string) (string, error) {
	flag := fs.Lookup(name)
	if flag == nil {
		return "", fmt.Errorf("flag %q not defined", name)
	}
	f, ok := flag.Value.(*enumFlag)
	if !ok {
		return "", fmt.Errorf("flag %q is not an enum", name)
	}
	return f.value, nil
}
