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

package loops

import (
	"iter"
	"slices"
)

func repeat(v, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for range n {
			if !yield(v) {
				return
			}
		}
	}
}

func pairs(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range n {
			if !yield(i, i*i) {
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

func rangeLoop() {
	ones, twos := repeat(1, 10), repeat(2, 10)

	for o := range ones {
		if contains(twos, o) { // want "Lazy sequence 'twos' is re-evaluated on every iteration of the range loop"
			return
		}
	}
}

func forLoop() {
	twos := repeat(2, 10)

	for i := 0; i < 10; i++ {
		_ = contains(twos, -i) // want "Lazy sequence 'twos' is re-evaluated on every iteration of the for loop"
	}
}

func forCondition() {
	ones, twos := repeat(1, 10), repeat(2, 10)

	for i := 0; !contains(ones, i); i++ {
		_ = contains(twos, i) // want "Lazy sequence 'twos' is re-evaluated on every iteration of the for loop"
	}
}

func rangeOperand() {
	twos := repeat(2, 10)

	for range 3 {
		for t := range twos { // want "Lazy sequence 'twos' is re-evaluated on every iteration of the range loop"
			_ = t
		}
	}
}

func directCall() {
	twos := repeat(2, 10)

	for range 3 {
		twos(func(int) bool { return false }) // want "Lazy sequence 'twos' is re-evaluated"
	}
}

func seq2(m map[int]int) {
	squares := pairs(10)

	for k, v := range m {
		for i, s := range squares { // want "Lazy sequence 'squares' is re-evaluated on every iteration of the range loop"
			_, _, _, _ = k, v, i, s
		}
	}
}

func parameter(twos iter.Seq[int]) {
	for i := range 3 {
		_ = contains((twos), i) // want "Lazy sequence 'twos' is re-evaluated"
	}
}

func materialized() {
	ones, twos := repeat(1, 10), slices.Collect(repeat(2, 10))

	for o := range ones {
		_ = slices.Contains(twos, o)
	}
}

func outermostOperand() {
	ones := repeat(1, 10)

	for o := range ones {
		_ = o
	}
}

func declaredInside() {
	for range 3 {
		twos := repeat(2, 10)
		_ = contains(twos, 2)
	}
}

func shadowed() {
	twos := repeat(2, 10)

	for range 3 {
		twos := repeat(3, 10)
		_ = contains(twos, 3)
	}

	_ = contains(twos, 2)
}

func nestedOverInner() {
	ones := repeat(1, 10)

	for o := range ones {
		threes := repeat(3, o)
		for t := range threes {
			_ = t
		}
	}
}

func nestedOnce() {
	twos := repeat(2, 10)

	for range 3 {
		for range 3 {
			_ = contains(twos, 2) // want "Lazy sequence 'twos' is re-evaluated on every iteration of the range loop"
		}
	}
}

func notForced() {
	twos := repeat(2, 10)

	var all []iter.Seq[int]
	for range 3 {
		if twos == nil {
			return
		}

		s := twos
		all = append(all, s)
	}

	_ = all
}

func typeSwitch(a any) {
	for range 3 {
		switch s := a.(type) {
		case iter.Seq[int]:
			_ = contains(s, 1)
		}
	}
}

func suppressed() {
	twos := repeat(2, 10)

	for range 3 {
		_ = contains(twos, 2) //nolint:seqguard
	}
}

//nolint:seqguard
func suppressedFunction() {
	twos := repeat(2, 10)

	for range 3 {
		_ = contains(twos, 2)
	}
}

var global = repeat(0, 10)

func packageLevel() {
	for range 3 {
		_ = contains(global, 0)
	}
}

func closure() {
	twos := repeat(2, 10)

	for range 3 {
		func() {
			_ = contains(twos, 2)
		}()
	}
}

var packageLiteral = func() {
	twos := repeat(2, 10)

	for range 3 {
		_ = contains(twos, 2) // want "Lazy sequence 'twos' is re-evaluated on every iteration of the range loop"
	}
}

var (
	nestedLiteral = []func(){
		func() {
			twos := repeat(2, 10)

			for range 3 {
				_ = contains(twos, 2) // want "Lazy sequence 'twos' is re-evaluated"
			}
		},
	}

	//nolint:seqguard
	suppressedLiteral = func() {
		twos := repeat(2, 10)

		for range 3 {
			_ = contains(twos, 2)
		}
	}
)
