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

package lazy

import (
	"errors"
	"fmt"
	"go/types"
	"strings"
)

// ErrInvalidShape is returned when a type name can't be parsed into a [Shape].
var ErrInvalidShape = errors.New("invalid lazy sequence type")

// Shape names the generic-erased definition of a lazily evaluated sequence type.
type Shape struct {
	Path string // Package path, e.g. "iter"
	Name string // Type name, e.g. "Seq"
}

// DefaultShapes returns the lazy sequence types of the standard library.
func DefaultShapes() []Shape {
	return []Shape{
		{Path: "iter", Name: "Seq"},
		{Path: "iter", Name: "Seq2"},
	}
}

// ParseShape parses a qualified type name like "iter.Seq" or "example.com/stream.Stream".
func ParseShape(s string) (Shape, error) {
	s = strings.TrimSpace(s)

	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 || strings.HasSuffix(s[:i], "/") {
		return Shape{}, fmt.Errorf("%w: %q, expected <package path>.<type name>", ErrInvalidShape, s)
	}

	return Shape{Path: s[:i], Name: s[i+1:]}, nil
}

// String returns the qualified type name.
func (s Shape) String() string {
	return s.Path + "." + s.Name
}

// matches reports whether the type name is the definition of this shape.
func (s Shape) matches(obj *types.TypeName) bool {
	pkg := obj.Pkg()

	return pkg != nil && obj.Name() == s.Name && pkg.Path() == s.Path
}
