// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"strings"
)

// Type is an immutable type descriptor.
//
// Matrices store the column count in PrimarySize and the row count in
// SecondarySize. Vectors have SecondarySize 1 and scalars have both sizes 1.
type Type struct {
	basic         BasicType
	precision     Precision
	qualifier     Qualifier
	primarySize   uint8
	secondarySize uint8
	mangledName   string
}

// New builds a descriptor from its attributes and precomputed mangled name.
// It performs no validation; callers that need canonical descriptors go
// through the statictype registry instead.
func New(b BasicType, p Precision, q Qualifier, primarySize, secondarySize uint8, mangledName string) *Type {
	return &Type{
		basic:         b,
		precision:     p,
		qualifier:     q,
		primarySize:   primarySize,
		secondarySize: secondarySize,
		mangledName:   mangledName,
	}
}

// BasicType returns the basic kind.
func (t *Type) BasicType() BasicType { return t.basic }

func (t *Type) Precision() Precision { return t.precision }
func (t *Type) Qualifier() Qualifier { return t.qualifier }
func (t *Type) PrimarySize() uint8 { return t.primarySize }
func (t *Type) SecondarySize() uint8 { return t.secondarySize }
func (t *Type) MangledName() string { return t.mangledName }
func (t *Type) IsScalar() bool { return t.primarySize == 1 && t.secondarySize == 1 }
func (t *Type) IsVector() bool { return t.primarySize > 1 && t.secondarySize == 1 }
func (t *Type) IsMatrix() bool { return t.primarySize > 1 && t.secondarySize > 1 }
func (t *Type) ObjectSize() int { return int(t.primarySize) * int(t.secondarySize) }

// Cols returns the column count of a matrix.
func (t *Type) Cols() uint8 {
	return t.primarySize
}

// Rows returns the row count of a matrix.
func (t *Type) Rows() uint8 {
	return t.secondarySize
}

// String returns the declaration spelling, e.g. "out highp vec3" or "mat2x3".
func (t *Type) String() string {
	var sb strings.Builder
	if kw := t.qualifier.keyword(); kw != "" {
		sb.WriteString(kw)
		sb.WriteByte(' ')
	}
	if t.precision != Undefined {
		sb.WriteString(t.precision.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(t.TypeName())
	return sb.String()
}

// TypeName returns the unqualified GLSL name of the type.
func (t *Type) TypeName() string {
	switch {
	case t.IsMatrix():
		return matrixName(t.basic, t.primarySize, t.secondarySize)
	case t.IsVector():
		return vectorName(t.basic, t.primarySize)
	case t.IsScalar():
		return t.basic.String()
	}
	// primarySize 1 with secondarySize > 1 has no GLSL spelling.
	return fmt.Sprintf("%s<%dx%d>", t.basic, t.primarySize, t.secondarySize)
}

// vectorPrefix returns the GLSL vector/matrix prefix for numeric kinds.
func vectorPrefix(b BasicType) (string, bool) {
	switch b {
	case Float:
		return "", true
	case Int:
		return "i", true
	case UInt:
		return "u", true
	case Bool:
		return "b", true
	}
	return "", false
}

func vectorName(b BasicType, size uint8) string {
	prefix, ok := vectorPrefix(b)
	if !ok {
		return fmt.Sprintf("%s<%d>", b, size)
	}
	return fmt.Sprintf("%svec%d", prefix, size)
}

func matrixName(b BasicType, cols, rows uint8) string {
	prefix, ok := vectorPrefix(b)
	if !ok {
		return fmt.Sprintf("%s<%dx%d>", b, cols, rows)
	}
	if cols == rows {
		return fmt.Sprintf("%smat%d", prefix, cols)
	}
	return fmt.Sprintf("%smat%dx%d", prefix, cols, rows)
}
