// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/shtype/statictype"
	"github.com/gogpu/shtype/types"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	Precompute bool
	Basic      string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List interned descriptors",
		Long: `List the descriptors held by the process-wide registry, ordered by
packed key. With --precompute (the default) the registry is populated with
the common descriptors first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Precompute, "precompute", true, "populate the registry before listing")
	cmd.Flags().StringVar(&opts.Basic, "basic", "", "only list descriptors of this basic type")

	return cmd
}

func runList(rootOpts *RootOptions, opts *ListOptions, cmd *cobra.Command) error {
	var filter *types.BasicType
	if opts.Basic != "" {
		b, err := types.ParseBasicType(opts.Basic)
		if err != nil {
			return err
		}
		filter = &b
	}

	if opts.Precompute {
		statictype.Precompute()
	}

	records := []TypeRecord{}
	var rows [][]string
	for _, t := range statictype.Default().Types() {
		if filter != nil && t.BasicType() != *filter {
			continue
		}
		rec := NewTypeRecord(t)
		records = append(records, rec)
		rows = append(rows, rec.row())
	}

	return newFormatter(rootOpts, cmd).Render(records, typeRecordHeaders, rows)
}
