// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/seqguard/analyzer"
	"fillmore-labs.com/seqguard/analyzer/level"
)

// ConfigName is the name of the configuration file searched for.
const ConfigName = ".seqguard.yaml"

// File is the content of a configuration file. Unset values keep the analyzer defaults.
type File struct {
	Loops     *bool    `yaml:"loops,omitempty"`
	Callbacks *bool    `yaml:"callbacks,omitempty"`
	Generated *bool    `yaml:"generated,omitempty"`
	Reassign  string   `yaml:"reassign,omitempty"`
	LazyTypes []string `yaml:"lazy-types,omitempty"`
}

// DefaultFile returns a configuration with all values set to the analyzer defaults.
func DefaultFile() File {
	return File{
		Loops:     ptr(true),
		Callbacks: ptr(true),
		Generated: ptr(false),
		Reassign:  level.ReassignOrdered.String(),
	}
}

// LoadFile searches dir and its parents for a configuration file.
// It returns the empty [File] and path when none is found.
func LoadFile(dir string) (File, string, error) {
	for {
		path := filepath.Join(dir, ConfigName)

		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			f, err := ParseFile(data)
			if err != nil {
				return File{}, path, fmt.Errorf("%s: %w", path, err)
			}

			return f, path, nil

		case !errors.Is(err, fs.ErrNotExist):
			return File{}, path, err
		}

		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			return File{}, "", nil
		}

		dir = parent
	}
}

// ParseFile decodes and validates a configuration.
func ParseFile(data []byte) (File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}

	if _, err := f.Options(); err != nil {
		return File{}, err
	}

	return f, nil
}

// Merge returns f with the values set in o replacing its own.
func (f File) Merge(o File) File {
	if o.Loops != nil {
		f.Loops = o.Loops
	}

	if o.Callbacks != nil {
		f.Callbacks = o.Callbacks
	}

	if o.Generated != nil {
		f.Generated = o.Generated
	}

	if o.Reassign != "" {
		f.Reassign = o.Reassign
	}

	if len(o.LazyTypes) > 0 {
		f.LazyTypes = append(f.LazyTypes[:len(f.LazyTypes):len(f.LazyTypes)], o.LazyTypes...)
	}

	return f
}

// Options converts the configuration into analyzer options.
func (f File) Options() (analyzer.Options, error) {
	var opts analyzer.Options

	if f.Loops != nil {
		opts = append(opts, analyzer.WithLoops(*f.Loops))
	}

	if f.Callbacks != nil {
		opts = append(opts, analyzer.WithCallbacks(*f.Callbacks))
	}

	if f.Generated != nil {
		opts = append(opts, analyzer.WithGenerated(*f.Generated))
	}

	if f.Reassign != "" {
		var r level.Reassign
		if err := r.UnmarshalText([]byte(f.Reassign)); err != nil {
			return nil, err
		}

		opts = append(opts, analyzer.WithReassign(r))
	}

	if len(f.LazyTypes) > 0 {
		types := make([]analyzer.LazyType, 0, len(f.LazyTypes))

		for _, name := range f.LazyTypes {
			t, err := analyzer.ParseLazyType(name)
			if err != nil {
				return nil, err
			}

			types = append(types, t)
		}

		opts = append(opts, analyzer.WithLazyTypes(types...))
	}

	return opts, nil
}

// Marshal encodes the configuration as YAML.
func (f File) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(f); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func ptr[T any](v T) *T { return &v }
