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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/seqguard/analyzer/level"
	"fillmore-labs.com/seqguard/internal/config"
	"fillmore-labs.com/seqguard/internal/lazy"
	"fillmore-labs.com/seqguard/internal/run"
)

// Option configures specific behavior of a [New] seqguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithLoops is an [Option] to configure whether sequences re-evaluated in loops are reported.
func WithLoops(loops bool) Option { return loopsOption{loops: loops} }

type loopsOption struct{ loops bool }

func (o loopsOption) apply(r *run.Options) {
	r.Checks.Set(config.LoopCheck, o.loops)
}

func (o loopsOption) LogAttr() slog.Attr {
	return slog.Bool("loops", o.loops)
}

// WithCallbacks is an [Option] to configure whether sequences re-evaluated in callbacks are reported.
func WithCallbacks(callbacks bool) Option { return callbacksOption{callbacks: callbacks} }

type callbacksOption struct{ callbacks bool }

func (o callbacksOption) apply(r *run.Options) {
	r.Checks.Set(config.CallbackCheck, o.callbacks)
}

func (o callbacksOption) LogAttr() slog.Attr {
	return slog.Bool("callbacks", o.callbacks)
}

// WithReassign is an [Option] to configure how reassignments inside loops suppress diagnostics.
func WithReassign(reassign level.Reassign) Option { return reassignOption{reassign: reassign} }

type reassignOption struct{ reassign level.Reassign }

func (o reassignOption) apply(r *run.Options) {
	r.Reassign = o.reassign.Config()
}

func (o reassignOption) LogAttr() slog.Attr {
	return slog.String("reassign", o.reassign.String())
}

// LazyType names a lazy sequence type by package path and type name.
type LazyType = lazy.Shape

// ParseLazyType parses a qualified type name like "example.com/stream.Stream".
func ParseLazyType(s string) (LazyType, error) {
	return lazy.ParseShape(s)
}

// WithLazyTypes is an [Option] to recognize additional lazy sequence types besides [iter.Seq] and [iter.Seq2].
func WithLazyTypes(types ...LazyType) Option { return lazyTypesOption{types: types} }

type lazyTypesOption struct{ types []LazyType }

func (o lazyTypesOption) apply(r *run.Options) {
	r.Shapes = appendShapes(r.Shapes, o.types...)
}

func (o lazyTypesOption) LogAttr() slog.Attr {
	names := make([]string, 0, len(o.types))
	for _, t := range o.types {
		names = append(names, t.String())
	}

	return slog.Any("lazy-types", names)
}
