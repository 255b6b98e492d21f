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

// Command seqguard reports lazy sequences re-evaluated in loops and callbacks.
//
// Usage:
//
//	seqguard [check] [flags] [packages...]
//	seqguard watch [flags] [packages...]
//	seqguard init
//	seqguard config
//
// The exit code is 3 when findings were reported and 1 on errors.
package main

import (
	"context"
	"os"
	"os/signal"

	"fillmore-labs.com/seqguard/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
