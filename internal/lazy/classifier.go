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

// Package lazy classifies types as lazily evaluated sequences.
package lazy

import (
	"go/types"
	"slices"
)

// Classifier decides whether a type denotes a lazily evaluated sequence.
//
// The zero value recognizes no shapes, but still detects push iterator signatures in [Classifier.IsIterator].
type Classifier struct {
	shapes []Shape
}

// NewClassifier creates a [Classifier] recognizing the given shapes.
func NewClassifier(shapes ...Shape) Classifier {
	return Classifier{shapes: slices.Clone(shapes)}
}

// Shapes returns the recognized shapes.
func (c Classifier) Shapes() []Shape {
	return slices.Clone(c.shapes)
}

// IsLazy reports whether the declared type is an instantiation of one of the configured shapes.
//
// Distinct instantiations of the same generic type compare equal, since only
// the origin definition is considered. Concrete containers never match, even
// when they could be ranged over.
func (c Classifier) IsLazy(t types.Type) bool {
	if t == nil {
		return false
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Origin().Obj()

	return slices.ContainsFunc(c.shapes, func(s Shape) bool { return s.matches(obj) })
}

// IsIterator reports whether the type is lazy or its underlying type is a push iterator:
//
//	func(yield func() bool)
//	func(yield func(V) bool)
//	func(yield func(K, V) bool)
func (c Classifier) IsIterator(t types.Type) bool {
	if t == nil {
		return false
	}

	return c.IsLazy(t) || isPushIterator(t.Underlying())
}

func isPushIterator(t types.Type) bool {
	sig, ok := t.(*types.Signature)
	if !ok || sig.Params().Len() != 1 || sig.Results().Len() != 0 || sig.Variadic() {
		return false
	}

	yield, ok := sig.Params().At(0).Type().Underlying().(*types.Signature)
	if !ok || yield.Params().Len() > 2 || yield.Results().Len() != 1 || yield.Variadic() {
		return false
	}

	basic, ok := yield.Results().At(0).Type().Underlying().(*types.Basic)

	return ok && basic.Kind() == types.Bool
}
