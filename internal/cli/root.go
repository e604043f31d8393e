// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package cli implements the shtypes command tree.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gogpu/shtype/statictype"
)

// Version is reported by shtypes --version.
const Version = "0.1.0-dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Plain   bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the shtypes CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "shtypes",
		Short:   "Inspect the static shader type registry",
		Long:    "Inspect canonical type descriptors, their mangled names and the basic type short-code table.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
				statictype.SetLogger(l)
			} else {
				statictype.SetLogger(nil)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log registry activity to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().BoolVar(&opts.Plain, "plain", false, "disable table styling even on a terminal")

	cmd.AddCommand(NewMangleCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCodesCommand(opts))

	return cmd
}
