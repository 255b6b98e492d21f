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

package rule

//go:generate go tool stringer -type=Verdict

// Verdict is the terminal outcome of evaluating a reference.
type Verdict uint8

const (
	// NotBinding means the identifier is no local variable or parameter.
	NotBinding Verdict = iota

	// NotLazy means the variable's declared type is no lazy sequence.
	NotLazy

	// NotForced means the reference does not evaluate the sequence, like a copy or nil comparison.
	NotForced

	// Disabled means the check for the repeating context is disabled.
	Disabled

	// Excluded means the variable is declared by the loop or the enclosing callback.
	Excluded

	// Reassigned means the variable is reassigned in the loop before the reference.
	Reassigned

	// NoReceiver means the reference is outside loops and not in a callback of a lazy sequence.
	NoReceiver

	// SameReceiver means the reference is in a callback of the same sequence.
	SameReceiver

	// LoopRead means the sequence is re-evaluated on every loop iteration.
	LoopRead

	// CallbackRead means the sequence is re-evaluated for every element of another sequence.
	CallbackRead
)

// Reported reports whether the verdict results in a diagnostic.
func (v Verdict) Reported() bool {
	return v == LoopRead || v == CallbackRead
}
