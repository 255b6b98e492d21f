// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import (
	"fmt"

	seqguard "fillmore-labs.com/seqguard/analyzer"
	"fillmore-labs.com/seqguard/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Loops enables reports of lazy sequences re-evaluated in loops.
	Loops *bool `json:"loops,omitzero"`
	// Callbacks enables reports of lazy sequences re-evaluated in callbacks.
	Callbacks *bool `json:"callbacks,omitzero"`
	// Reassign selects how reassignments suppress diagnostics: ordered, any or ignore.
	Reassign *level.Reassign `json:"reassign,omitzero"`
	// LazyTypes are additional lazy sequence types, like "example.com/stream.Stream".
	LazyTypes []string `json:"lazy-types,omitzero"`
}

// Options converts [Settings] into a list of [seqguard.Option] for the seqguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]seqguard.Option, error) {
	var opts []seqguard.Option

	opts = appendOption(opts, s.Loops, seqguard.WithLoops)
	opts = appendOption(opts, s.Callbacks, seqguard.WithCallbacks)
	opts = appendOption(opts, s.Reassign, seqguard.WithReassign)

	if len(s.LazyTypes) > 0 {
		types := make([]seqguard.LazyType, 0, len(s.LazyTypes))

		for _, name := range s.LazyTypes {
			t, err := seqguard.ParseLazyType(name)
			if err != nil {
				return nil, fmt.Errorf("seqguard settings: %w", err)
			}

			types = append(types, t)
		}

		opts = append(opts, seqguard.WithLazyTypes(types...))
	}

	return opts, nil
}

// appendOption appends a non-nil setting to a [seqguard.Option] list.
func appendOption[T any](opts []seqguard.Option, value *T, constructor func(T) seqguard.Option) []seqguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
