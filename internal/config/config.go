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

package config

// CheckFlags selects the repeating contexts that are checked.
type CheckFlags uint8

const (
	// LoopCheck reports lazy sequences forced inside for and range loops.
	LoopCheck CheckFlags = 1 << iota

	// CallbackCheck reports lazy sequences forced inside callbacks passed to another lazy sequence.
	CallbackCheck
)

// Checks is the set of enabled checks.
type Checks = BitMask[CheckFlags]

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() Checks {
	return NewBitMask(LoopCheck | CallbackCheck)
}

// BehaviorFlags represents behavioral options for the analyzer.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota
)

// Behavior is the set of enabled behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask[BehaviorFlags]()
}

// Reassign selects how reassignments inside a loop body affect reported reads.
type Reassign uint8

const (
	// ReassignOrdered suppresses reads that follow an unconditional reassignment in the same iteration.
	ReassignOrdered Reassign = iota

	// ReassignAny exempts a variable that is reassigned anywhere in the loop.
	ReassignAny

	// ReassignIgnore does not track reassignments.
	ReassignIgnore
)
