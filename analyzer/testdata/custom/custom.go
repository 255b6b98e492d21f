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

package custom

type Stream[T any] func(yield func(T) bool)

func Of[T any](values ...T) Stream[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func (s Stream[T]) Any(f func(T) bool) bool {
	for v := range s {
		if f(v) {
			return true
		}
	}

	return false
}

type Opaque func(yield func(int) bool)

func loop() {
	ones, twos := Of(1, 2, 3), Of(2, 4)

	for o := range ones {
		if twos.Any(func(t int) bool { return t == o }) { // want "Lazy sequence 'twos' is re-evaluated on every iteration of the range loop"
			return
		}
	}
}

func callback() {
	ones, twos := Of(1, 2, 3), Of(2, 4)

	_ = ones.Any(func(o int) bool {
		for t := range twos { // want "Lazy sequence 'twos' is re-evaluated for every element of 'ones'"
			if t == o {
				return true
			}
		}

		return false
	})
}

func opaque(twos Opaque) {
	for range 3 {
		for t := range twos {
			_ = t
		}
	}
}
