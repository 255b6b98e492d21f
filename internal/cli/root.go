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

// Package cli implements the seqguard command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// settings are the global command line flags.
type settings struct {
	dir        string
	configPath string
	tests      bool
	json       bool
	verbose    bool

	loops     bool
	callbacks bool
	generated bool
	reassign  string
	lazyTypes []string

	logger *slog.Logger
	file   File // Effective configuration
	source string
}

// NewRoot creates the seqguard root command. Without a subcommand it runs check.
func NewRoot() *cobra.Command {
	s := &settings{}

	root := &cobra.Command{
		Use:           "seqguard [packages...]",
		Short:         "Detect lazy sequences re-evaluated in loops and callbacks",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runCheck(cmd, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&s.dir, "dir", "C", "", "run as if started in this directory")
	flags.StringVar(&s.configPath, "config", "", "configuration file (default: search for "+ConfigName+")")
	flags.BoolVar(&s.verbose, "verbose", false, "enable debug logging")

	flags.BoolVar(&s.loops, "loops", true, "report lazy sequences re-evaluated in loops")
	flags.BoolVar(&s.callbacks, "callbacks", true, "report lazy sequences re-evaluated in callbacks of other sequences")
	flags.BoolVar(&s.generated, "generated", false, "check generated files")
	flags.StringVar(&s.reassign, "reassign", "", "reassignments suppressing diagnostics in loops: ordered, any or ignore")
	flags.StringSliceVar(&s.lazyTypes, "lazy-type", nil, "additional lazy sequence type, like example.com/stream.Stream")

	root.Flags().BoolVar(&s.json, "json", false, "print findings as JSON")
	root.Flags().BoolVar(&s.tests, "tests", true, "include test files")

	root.AddCommand(
		newCheckCmd(s),
		newWatchCmd(s),
		newInitCmd(s),
		newConfigCmd(s),
	)

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	root := NewRoot()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)

	switch {
	case err == nil:
		return 0

	case errors.Is(err, ErrFindings):
		return 3

	default:
		fmt.Fprintln(root.ErrOrStderr(), "seqguard:", err)

		return 1
	}
}

// setup configures logging and resolves the effective configuration.
func (s *settings) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if s.verbose {
		level = slog.LevelDebug
	}

	s.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	dir := s.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		dir = wd
	}
	s.dir = dir

	var (
		file File
		err  error
	)

	if s.configPath != "" {
		file, err = readFile(s.configPath)
		s.source = s.configPath
	} else {
		file, s.source, err = LoadFile(dir)
	}

	if err != nil {
		return err
	}

	if s.source != "" {
		s.logger.Debug("Loaded configuration", slog.String("path", s.source))
	}

	s.file = file.Merge(s.flagFile(cmd))

	return nil
}

// flagFile returns the configuration values explicitly set on the command line.
func (s *settings) flagFile(cmd *cobra.Command) File {
	var f File

	flags := cmd.Flags()

	if flags.Changed("loops") {
		f.Loops = ptr(s.loops)
	}

	if flags.Changed("callbacks") {
		f.Callbacks = ptr(s.callbacks)
	}

	if flags.Changed("generated") {
		f.Generated = ptr(s.generated)
	}

	if flags.Changed("reassign") {
		f.Reassign = s.reassign
	}

	f.LazyTypes = s.lazyTypes

	return f
}

// runner creates a [runner] for the effective configuration.
func (s *settings) runner() (runner, error) {
	opts, err := s.file.Options()
	if err != nil {
		return runner{}, err
	}

	s.logger.Debug("Configuration", slog.Any("options", opts))

	return runner{dir: s.dir, tests: s.tests, opts: opts, logger: s.logger}, nil
}

// runCheck analyzes the packages once.
func (s *settings) runCheck(cmd *cobra.Command, args []string) error {
	r, err := s.runner()
	if err != nil {
		return err
	}

	findings, err := r.check(cmd.Context(), args)
	if err != nil {
		return err
	}

	if err := printFindings(cmd.OutOrStdout(), findings, s.json); err != nil {
		return err
	}

	if len(findings) > 0 {
		return fmt.Errorf("%d %w", len(findings), ErrFindings)
	}

	return nil
}

func newCheckCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Analyze packages once (default command)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runCheck(cmd, args)
		},
	}

	cmd.Flags().BoolVar(&s.json, "json", false, "print findings as JSON")
	cmd.Flags().BoolVar(&s.tests, "tests", true, "include test files")

	return cmd
}

func newWatchCmd(s *settings) *cobra.Command {
	w := watcher{debounce: defaultDebounce}

	cmd := &cobra.Command{
		Use:   "watch [packages...]",
		Short: "Analyze packages again whenever Go sources change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := s.runner()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			run := func() {
				findings, err := r.check(ctx, args)
				if err != nil {
					s.logger.ErrorContext(ctx, "Check failed", slog.Any("error", err))

					return
				}

				if err := printFindings(out, findings, false); err != nil {
					s.logger.ErrorContext(ctx, "Can't print findings", slog.Any("error", err))

					return
				}

				s.logger.InfoContext(ctx, "Check done", slog.Int("findings", len(findings)))
			}

			run()

			w.root, w.logger = s.dir, s.logger

			return w.watch(ctx, func(changed []string) {
				s.logger.InfoContext(ctx, "Sources changed", slog.String("files", strings.Join(changed, ", ")))
				run()
			})
		},
	}

	cmd.Flags().DurationVar(&w.debounce, "debounce", defaultDebounce, "quiet period before checking again")
	cmd.Flags().BoolVar(&s.tests, "tests", true, "include test files")

	return cmd
}

func newInitCmd(s *settings) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + ConfigName + " to the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := DefaultFile().Marshal()
			if err != nil {
				return err
			}

			path := filepath.Join(s.dir, ConfigName)

			flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
			if force {
				flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			}

			f, err := os.OpenFile(path, flag, 0o644)
			if err != nil {
				return err
			}

			if _, err := f.Write(data); err != nil {
				_ = f.Close()

				return err
			}

			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration")

	return cmd
}

func newConfigCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := s.file.Options(); err != nil {
				return err
			}

			data, err := DefaultFile().Merge(s.file).Marshal()
			if err != nil {
				return err
			}

			if s.source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", s.source)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}

// readFile reads an explicitly named configuration file.
func readFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	f, err := ParseFile(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}
