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

// Package level defines textual configuration levels of the seqguard analyzer.
package level

import (
	"fmt"
	"strings"

	"fillmore-labs.com/seqguard/internal/config"
)

// Reassign specifies how reassignments inside a loop suppress diagnostics.
type Reassign uint8

const (
	// ReassignOrdered suppresses reads after an unconditional reassignment in the same iteration.
	ReassignOrdered Reassign = iota

	// ReassignAny suppresses all reads of a variable reassigned anywhere in the loop.
	ReassignAny

	// ReassignIgnore does not consider reassignments.
	ReassignIgnore
)

// FromConfig converts the internal representation.
func FromConfig(r config.Reassign) Reassign {
	switch r {
	case config.ReassignAny:
		return ReassignAny

	case config.ReassignIgnore:
		return ReassignIgnore

	default:
		return ReassignOrdered
	}
}

// Config returns the internal representation.
func (o Reassign) Config() config.Reassign {
	switch o {
	case ReassignAny:
		return config.ReassignAny

	case ReassignIgnore:
		return config.ReassignIgnore

	default:
		return config.ReassignOrdered
	}
}

// String returns the textual representation, or a placeholder for unknown levels.
func (o Reassign) String() string {
	b, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Reassign(%d)", uint8(o))
	}

	return string(b)
}

// MarshalText implements [encoding.TextMarshaler].
func (o Reassign) MarshalText() ([]byte, error) {
	switch o {
	case ReassignOrdered:
		return []byte("ordered"), nil

	case ReassignAny:
		return []byte("any"), nil

	case ReassignIgnore:
		return []byte("ignore"), nil

	default:
		return nil, fmt.Errorf("unknown reassign level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Reassign) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "ordered", "true", "on":
		*o = ReassignOrdered

	case "any":
		*o = ReassignAny

	case "ignore", "off", "false":
		*o = ReassignIgnore

	default:
		return fmt.Errorf("unknown reassign level %q", string(text))
	}

	return nil
}
