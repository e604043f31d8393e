// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/shtype/statictype"
	"github.com/gogpu/shtype/types"
)

// MangleOptions holds flags for the mangle command.
type MangleOptions struct {
	Precision string
	Qualifier string
}

// NewMangleCommand creates the mangle command.
func NewMangleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MangleOptions{}

	cmd := &cobra.Command{
		Use:   "mangle <basic> [primary [secondary]]",
		Short: "Intern a type and print its canonical descriptor",
		Long: `Intern the type described by a basic type, optional sizes and flags,
and print its mangled name and GLSL spelling.

Sizes default to 1. Matrices take the column count as primary size and the
row count as secondary size.`,
		Example: `  shtypes mangle float 3
  shtypes mangle float 2 3 --precision highp
  shtypes mangle int 2 --qualifier out`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKey(args, opts)
			if err != nil {
				return err
			}
			return runMangle(rootOpts, k, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Precision, "precision", "p", types.Undefined.String(), "precision (undefined|lowp|mediump|highp)")
	cmd.Flags().StringVarP(&opts.Qualifier, "qualifier", "q", types.Global.String(), "qualifier (global|out|uniform|...)")

	return cmd
}

func parseKey(args []string, opts *MangleOptions) (statictype.Key, error) {
	basic, err := types.ParseBasicType(args[0])
	if err != nil {
		return statictype.Key{}, err
	}
	precision, err := types.ParsePrecision(opts.Precision)
	if err != nil {
		return statictype.Key{}, err
	}
	qualifier, err := types.ParseQualifier(opts.Qualifier)
	if err != nil {
		return statictype.Key{}, err
	}

	sizes := [2]uint8{1, 1}
	for i, arg := range args[1:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return statictype.Key{}, fmt.Errorf("size %q: %w", arg, err)
		}
		if n < 1 || n > statictype.MaxSize {
			return statictype.Key{}, fmt.Errorf("size %d out of range [1,%d]", n, statictype.MaxSize)
		}
		sizes[i] = uint8(n)
	}

	k := statictype.Key{
		Basic:         basic,
		Precision:     precision,
		Qualifier:     qualifier,
		PrimarySize:   sizes[0],
		SecondarySize: sizes[1],
	}
	if err := k.Validate(); err != nil {
		return statictype.Key{}, err
	}
	return k, nil
}

func runMangle(opts *RootOptions, k statictype.Key, cmd *cobra.Command) error {
	rec := NewTypeRecord(statictype.Intern(k))
	return newFormatter(opts, cmd).Render(rec, typeRecordHeaders, [][]string{rec.row()})
}
