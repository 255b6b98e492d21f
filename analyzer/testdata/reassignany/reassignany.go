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

package reassignany

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

func contains(s iter.Seq[int], v int) bool {
	for x := range s {
		if x == v {
			return true
		}
	}

	return false
}

func after() {
	twos, threes := repeat(2, 10), repeat(3, 10)

	for range 3 {
		_ = contains(twos, 2)
		_ = contains(threes, 3) // want "Lazy sequence 'threes' is re-evaluated"
		twos = nil
	}
}

func conditional(b bool) {
	twos := repeat(2, 10)

	for range 3 {
		if b {
			twos = repeat(2, 5)
		}
		_ = contains(twos, 2)
	}
}
