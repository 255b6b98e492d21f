// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"slices"
	"strconv"
	"strings"

	"fillmore-labs.com/seqguard/analyzer/level"
	"fillmore-labs.com/seqguard/internal/config"
	"fillmore-labs.com/seqguard/internal/lazy"
)

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "full", "Full":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// reassignValue is a [flag.Value] for the reassignment policy.
type reassignValue struct{ reassign *config.Reassign }

// Set implements [flag.Value].
func (f reassignValue) Set(s string) error {
	var l level.Reassign
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return err
	}

	*f.reassign = l.Config()

	return nil
}

// String implements [flag.Value].
func (f reassignValue) String() string {
	if f.reassign == nil {
		return ""
	}

	return level.FromConfig(*f.reassign).String()
}

// lazyTypesValue is a [flag.Value] adding comma-separated lazy sequence types.
type lazyTypesValue struct{ shapes *[]lazy.Shape }

// Set implements [flag.Value].
func (f lazyTypesValue) Set(s string) error {
	var shapes []lazy.Shape

	for name := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}

		shape, err := lazy.ParseShape(name)
		if err != nil {
			return err
		}

		shapes = append(shapes, shape)
	}

	*f.shapes = appendShapes(*f.shapes, shapes...)

	return nil
}

// String implements [flag.Value].
func (f lazyTypesValue) String() string {
	if f.shapes == nil {
		return ""
	}

	names := make([]string, 0, len(*f.shapes))
	for _, s := range *f.shapes {
		names = append(names, s.String())
	}

	return strings.Join(names, ",")
}

// appendShapes appends shapes not already present.
func appendShapes(shapes []lazy.Shape, add ...lazy.Shape) []lazy.Shape {
	for _, s := range add {
		if !slices.Contains(shapes, s) {
			shapes = append(shapes, s)
		}
	}

	return shapes
}
