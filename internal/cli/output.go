// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/shtype/statictype"
	"github.com/gogpu/shtype/types"
)

// TypeRecord is the serialized form of a descriptor.
type TypeRecord struct {
	Basic       string `json:"basic" yaml:"basic"`
	Precision   string `json:"precision" yaml:"precision"`
	Qualifier   string `json:"qualifier" yaml:"qualifier"`
	Primary     uint8  `json:"primary" yaml:"primary"`
	Secondary   uint8  `json:"secondary" yaml:"secondary"`
	MangledName string `json:"mangled_name" yaml:"mangled_name"`
	GLSL        string `json:"glsl" yaml:"glsl"`
	Packed      uint32 `json:"packed" yaml:"packed"`
}

// NewTypeRecord describes t.
func NewTypeRecord(t *types.Type) TypeRecord {
	return TypeRecord{
		Basic:       t.BasicType().String(),
		Precision:   t.Precision().String(),
		Qualifier:   t.Qualifier().String(),
		Primary:     t.PrimarySize(),
		Secondary:   t.SecondarySize(),
		MangledName: t.MangledName(),
		GLSL:        t.String(),
		Packed:      statictype.KeyOf(t).Packed(),
	}
}

var typeRecordHeaders = []string{"BASIC", "PRECISION", "QUALIFIER", "SIZE", "MANGLED", "GLSL"}

func (r TypeRecord) row() []string {
	return []string{
		r.Basic,
		r.Precision,
		r.Qualifier,
		fmt.Sprintf("%dx%d", r.Primary, r.Secondary),
		r.MangledName,
		r.GLSL,
	}
}

// OutputFormatter renders command results as a table, JSON or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
	Styled bool
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	w := cmd.OutOrStdout()
	return &OutputFormatter{
		Format: opts.Format,
		Writer: w,
		Styled: !opts.Plain && isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Render writes data in the structured formats, or headers and rows as a
// table in text format.
func (f *OutputFormatter) Render(data any, headers []string, rows [][]string) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(f.Writer, f.table(headers, rows))
		return err
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func (f *OutputFormatter) table(headers []string, rows [][]string) string {
	if !f.Styled {
		var sb strings.Builder
		sb.WriteString(strings.Join(headers, "\t"))
		for _, row := range rows {
			sb.WriteByte('\n')
			sb.WriteString(strings.Join(row, "\t"))
		}
		return sb.String()
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
