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

package reassign

import "iter"

func repeat(v, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for range n {
			if !yield(v) {
				return
			}
		}
	}
}

func empty() iter.Seq[int] { return func(func(int) bool) {} }

func skip(s iter.Seq[int]) iter.Seq[int] {
	return func(yield func(int) bool) {
		first := true
		for v := range s {
			if first {
				first = false

				continue
			}

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

func before() {
	twos := repeat(2, 10)

	for range 3 {
		twos = empty()
		_ = contains(twos, 2)
	}
}

func after() {
	twos := repeat(2, 10)

	for range 3 {
		_ = contains(twos, 2) // want "Lazy sequence 'twos' is re-evaluated on every iteration of the range loop"
		twos = empty()
	}
}

func conditional(b bool) {
	twos := repeat(2, 10)

	for range 3 {
		if b {
			twos = empty()
		}
		_ = contains(twos, 2) // want "Lazy sequence 'twos' is re-evaluated"
	}
}

func block() {
	twos := repeat(2, 10)

	for range 3 {
		{
			twos = empty()
		}
		_ = contains(twos, 2)
	}
}

func growing() {
	twos := repeat(2, 10)

	for range 3 {
		twos = skip(twos) // want "Lazy sequence 'twos' is re-evaluated"
	}

	_ = twos
}

func header(seqs []iter.Seq[int]) {
	var s iter.Seq[int]

	for _, s = range seqs {
		_ = contains(s, 1)
	}
}

func nested() {
	twos := repeat(2, 10)

	for range 3 {
		twos = empty()
		for range 3 {
			_ = contains(twos, 2) // want "Lazy sequence 'twos' is re-evaluated"
		}
	}
}
