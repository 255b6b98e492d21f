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

package disabled

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

func filter(s iter.Seq[int], f func(int) bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := range s {
			if f(v) && !yield(v) {
				return
			}
		}
	}
}

func count(s iter.Seq[int]) (n int) {
	for range s {
		n++
	}

	return n
}

func loop() int {
	twos, total := repeat(2, 10), 0

	for range 3 {
		total += count(twos)
	}

	return total
}

func callback() iter.Seq[int] {
	ones, twos := repeat(1, 10), repeat(2, 10)

	return filter(ones, func(o int) bool { return count(twos) > o })
}
