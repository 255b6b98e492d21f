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

package callbacks

import (
	"iter"
	"slices"
)

// Stream is a fluent wrapper around a push iterator.
type Stream[T any] func(yield func(T) bool)

func From[T any](s iter.Seq[T]) Stream[T] { return Stream[T](s) }

func (s Stream[T]) Where(f func(T) bool) Stream[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if f(v) && !yield(v) {
				return
			}
		}
	}
}

func (s Stream[T]) Seq() iter.Seq[T] { return iter.Seq[T](s) }

func Filter[T any](s iter.Seq[T], f func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if f(v) && !yield(v) {
				return
			}
		}
	}
}

func Map[T, U any](s iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func repeat(v, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for range n {
			if !yield(v) {
				return
			}
		}
	}
}

func contains(s iter.Seq[int], v int) bool {
	for x := range s {
		if x == v {
			return true
		}
	}

	return false
}

func method() {
	ones, twos := From(repeat(1, 10)), repeat(2, 10)

	_ = ones.Where(func(o int) bool {
		return contains(twos, o) // want "Lazy sequence 'twos' is re-evaluated for every element of 'ones'"
	})
}

func fluent() {
	ones, twos := From(repeat(1, 10)), repeat(2, 10)

	_ = ones.Where(func(o int) bool { return o > 0 }).
		Where(func(o int) bool { return contains(twos, o) }) // want "for every element of 'ones'"
}

func function() {
	ones, twos := repeat(1, 10), repeat(2, 10)

	_ = Filter(ones, func(o int) bool { return contains(twos, o) }) // want "for every element of 'ones'"
}

func composition() {
	ones, twos := repeat(1, 10), repeat(2, 10)

	_ = Filter(Map(ones, func(o int) int { return o * 2 }), (func(o int) bool {
		return contains(twos, o) // want "for every element of 'ones'"
	}))
}

func push() {
	ones, twos := repeat(1, 10), repeat(2, 10)

	ones(func(o int) bool {
		return !contains(twos, o) // want "for every element of 'ones'"
	})
}

func materialized() {
	ones, twos := From(repeat(1, 10)), slices.Collect(repeat(2, 10))

	_ = ones.Where(func(o int) bool { return slices.Contains(twos, o) })
}

func sameReceiver() {
	twos := repeat(2, 10)

	_ = Filter(twos, func(o int) bool { return contains(twos, o) })
}

func eagerReceiver() {
	ones, twos := []int{1}, repeat(2, 10)

	_ = slices.ContainsFunc(ones, func(o int) bool { return contains(twos, o) })
}

func notArgument() {
	ones, twos := repeat(1, 10), repeat(2, 10)

	f := func(o int) bool { return contains(twos, o) }
	_ = Filter(ones, f)
}

func suppressed() {
	ones, twos := repeat(1, 10), repeat(2, 10)

	_ = Filter(ones, func(o int) bool {
		return contains(twos, o) //nolint:seqguard
	})
}

func loopInCallback() {
	ones, twos := repeat(1, 10), repeat(2, 10)

	_ = Filter(ones, func(o int) bool {
		for range o {
			if contains(twos, o) { // want "on every iteration of the range loop"
				return true
			}
		}

		return false
	})
}

func callbackParam() {
	seqs := Map(repeat(1, 10), func(n int) iter.Seq[int] { return repeat(n, 3) })

	_ = Filter(seqs, func(s iter.Seq[int]) bool { return contains(s, 1) })
}

func callbackLocal() {
	ones := repeat(1, 10)

	_ = Filter(ones, func(o int) bool {
		s := repeat(o, 3)

		return contains(s, 1)
	})
}
