// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/shtype/types"
)

// CodeRecord is one entry of the short-code table.
type CodeRecord struct {
	Basic string `json:"basic" yaml:"basic"`
	Code  string `json:"code,omitempty" yaml:"code,omitempty"`
}

// NewCodesCommand creates the codes command.
func NewCodesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "Print the basic type short-code table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []CodeRecord
			var rows [][]string
			for b := types.BasicType(0); int(b) < types.BasicTypeCount; b++ {
				rec := CodeRecord{Basic: b.String(), Code: types.ShortCode(b)}
				records = append(records, rec)
				code := rec.Code
				if code == "" {
					code = "-"
				}
				rows = append(rows, []string{rec.Basic, code})
			}
			return newFormatter(rootOpts, cmd).Render(records, []string{"BASIC", "CODE"}, rows)
		},
	}
}
