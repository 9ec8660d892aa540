// Copyright 2025 Naren Yellavula
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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/cybrota/ordset/avl"
)

const version = "v0.3.0"

const banner = `
 ordset  -  ordered sets on a self-balancing tree [Version: %s%s%s]

Copyright @ Naren Yellavula
`

func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// newRootCmd wires every subcommand around one configuration, loaded
// before any of them runs.
func newRootCmd() *cobra.Command {
	config := newDefaultConfig()
	logo := fmt.Sprintf(banner, Green, version, Reset)

	var (
		numeric  bool
		logLevel string
		logFile  string
	)

	rootCmd := &cobra.Command{
		Use:           "ordset",
		Version:       version,
		Short:         "Ordered sets on a self-balancing tree",
		Long:          logo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig()
			if err != nil {
				ordsLog.Warnf("%v, using default settings", err)
			}
			*config = *loaded

			if cmd.Flags().Changed("numeric") {
				config.Values.Numeric = numeric
			}
			if logLevel != "" {
				config.Log.Level = logLevel
			}
			if logFile != "" {
				config.Log.File = logFile
			}
			if err := setLogLevels(config.Log.Level); err != nil {
				return err
			}
			if config.Log.File != "" {
				if err := initLogRotator(config.Log.File); err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLogRotator()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&numeric, "numeric", false, "order values as integers")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: "+strings.Join(supportedLevels(), ", "))
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this rotating file")

	load := func(args []string) (store, LoadStats, error) {
		return loadFile(inputArg(args), config)
	}

	cmdSort := &cobra.Command{
		Use:   "sort [file]",
		Short: "Print the distinct values in ascending order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := load(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range s.Lines() {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	var copyExport bool
	cmdExport := &cobra.Command{
		Use:   "export [file]",
		Short: "Print the tree as a digraph of parent->child links",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := load(args)
			if err != nil {
				return err
			}
			export := exportString(s)
			io.WriteString(cmd.OutOrStdout(), export)
			if copyExport {
				if err := clipboard.WriteAll(export); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "📋 Copied %s%d links%s to clipboard.\n", Green, max(s.Count()-1, 0), Reset)
			}
			return nil
		},
	}
	cmdExport.Flags().BoolVar(&copyExport, "copy", false, "also copy the export to the clipboard")

	cmdStats := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print count, height, bounds and an invariant check",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, stats, err := load(args)
			if err != nil {
				return err
			}
			io.WriteString(cmd.OutOrStdout(), statsText(s, &stats))
			if err := s.Check(); err != nil {
				return err
			}
			return nil
		},
	}

	var queryValues []string
	cmdQuery := &cobra.Command{
		Use:   "query [file] --value v [--value v]...",
		Short: "Report whether each value is in the set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(queryValues) == 0 {
				return errors.New("at least one --value is required")
			}
			s, _, err := load(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range queryValues {
				found, err := s.HasString(v)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%t\n", v, found)
			}
			stats := s.Stats()
			ordsLog.Debugf("%d lookups: %d rejected by the filter, %d tree descents, %d false positives",
				stats.Lookups, stats.FilterRejects, stats.TreeLookups, stats.FalsePositive)
			return nil
		},
	}
	cmdQuery.Flags().StringArrayVar(&queryValues, "value", nil, "value to look up, repeatable")

	cmdPrint := &cobra.Command{
		Use:   "print [file]",
		Short: "Draw the tree sideways, right subtree on top",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := load(args)
			if err != nil {
				return err
			}
			io.WriteString(cmd.OutOrStdout(), printString(s))
			return nil
		},
	}

	var (
		historyExport bool
		historySince  string
		historyShell  string
	)
	cmdHistory := &cobra.Command{
		Use:   "history",
		Short: "Print the distinct commands of your shell history in order",
		Long:  fmt.Sprintf("%s\n%s", logo, "Reads ~/.zsh_history or ~/.bash_history, depending on $SHELL or --shell"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := parseSince(historySince)
			if err != nil {
				return err
			}
			shell := historyShell
			if shell == "" {
				shell = detectCurrentShell()
			}
			history, err := readShellHistory(shell)
			if err != nil {
				return err
			}

			tree := avl.New[string]()
			added := readHistoryIntoSet(history, since, tree)
			ordsLog.Debugf("%d distinct commands out of %d entries", added, len(history))

			out := cmd.OutOrStdout()
			if historyExport {
				return tree.Export(out)
			}
			for command := range tree.All() {
				fmt.Fprintln(out, command)
			}
			return nil
		},
	}
	cmdHistory.Flags().BoolVar(&historyExport, "export", false, "print the digraph export instead of the commands")
	cmdHistory.Flags().StringVar(&historySince, "since", "", "only commands run on or after this date (YYYY-MM-DD [hh:mm])")
	cmdHistory.Flags().StringVar(&historyShell, "shell", "", "bash or zsh, defaults to $SHELL")

	// the interactive commands start empty rather than wait on a terminal
	loadOrEmpty := func(args []string) (store, *LoadStats, error) {
		if len(args) == 0 {
			return newStore(config), nil, nil
		}
		s, stats, err := loadFile(args[0], config)
		if err != nil {
			return nil, nil, err
		}
		return s, &stats, nil
	}

	cmdBrowse := &cobra.Command{
		Use:   "browse [file]",
		Short: "Insert, remove and find values interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, stats, err := loadOrEmpty(args)
			if err != nil {
				return err
			}
			return runBrowser(s, newRenderCache(config.Browser.CacheMinutes), stats)
		},
	}

	cmdView := &cobra.Command{
		Use:   "view [file]",
		Short: "Show the tree as an expandable outline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := loadOrEmpty(args)
			if err != nil {
				return err
			}
			return runView(s, newRenderCache(config.Browser.CacheMinutes))
		},
	}

	var watchExport bool
	cmdWatch := &cobra.Command{
		Use:   "watch <file>",
		Short: "Reload a file on every write and report on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return runWatch(ctx, args[0], config, cmd.OutOrStdout(), watchExport)
		},
	}
	cmdWatch.Flags().BoolVar(&watchExport, "export", false, "print the digraph export after each reload")

	cmdSettings := &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration, creating ~/.ordset.yaml if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	cmdUsage := &cobra.Command{
		Use:   "usage",
		Short: "Print the ordset usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "Print the ordset version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(cmdSort, cmdExport, cmdStats, cmdQuery, cmdPrint, cmdHistory,
		cmdBrowse, cmdView, cmdWatch, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	err := newRootCmd().Execute()
	closeLogRotator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", Error, Reset, err)
		os.Exit(1)
	}
}
