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

// Package analyzer implements the seqguard static analysis pass.
//
// # Overview
//
// SeqGuard detects lazy sequences ([iter.Seq], [iter.Seq2] and configured
// types) that are evaluated again on every iteration of a loop or for every
// element of another sequence. A lazy sequence recomputes its elements each
// time it is ranged over, so forcing it in a repeating context multiplies the
// work and may observe different elements on each pass.
//
// # Example
//
// Loop:
//
//	twos := slices.Values([]int{2, 4})
//	for o := range ones {
//	    if contains(twos, o) { // twos is re-evaluated on every iteration
//	        // ...
//	    }
//	}
//
// Callback:
//
//	filtered := xiter.Filter(ones, func(o int) bool {
//	    return contains(twos, o) // twos is re-evaluated for every element of ones
//	})
//
// Collect the inner sequence once before the loop, e.g. with [slices.Collect],
// or annotate the line with //nolint:seqguard when the re-evaluation is intended.
//
// # Exclusions
//
// Sequences declared inside the loop body or as iteration variables are fresh
// on each iteration and not reported, as are parameters and locals of a
// callback. Only loop bodies repeat: a sequence in the condition of a for
// statement is not reported. A variable unconditionally reassigned in
// the loop body before it is read is not reported either. References that do not
// evaluate the sequence, like copies or comparisons with nil, are ignored.
package analyzer
