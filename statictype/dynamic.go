// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import (
	"go.uber.org/zap"

	"github.com/gogpu/shtype/types"
)

type getter func(types.BasicType, types.Precision, types.Qualifier) *types.Type

// vecMatTable is indexed by [secondary-1][primary-1].
var vecMatTable = [MaxSize][MaxSize]getter{
	{Get[D1, D1], Get[D2, D1], Get[D3, D1], Get[D4, D1]},
	{Get[D1, D2], Get[D2, D2], Get[D3, D2], Get[D4, D2]},
	{Get[D1, D3], Get[D2, D3], Get[D3, D3], Get[D4, D3]},
	{Get[D1, D4], Get[D2, D4], Get[D3, D4], Get[D4, D4]},
}

// GetForVecMat returns the descriptor for sizes known only at runtime.
// b must be Float, Int, UInt or Bool and both sizes must be in [1,4];
// anything else is a precondition violation and panics with an *Error.
func GetForVecMat(b types.BasicType, p types.Precision, q types.Qualifier, primarySize, secondarySize int) *types.Type {
	checkVecMatBasic(b)
	if secondarySize < 1 || secondarySize > MaxSize {
		panic(violation(newError(ErrSizeOutOfRange, "secondary size %d out of range [1,%d]", secondarySize, MaxSize),
			zap.Stringer("basic", b), zap.Int("secondary", secondarySize)))
	}
	return getForVecMatRow(&vecMatTable[secondarySize-1], b, p, q, primarySize)
}

// GetForVecMatBasic is GetForVecMat with undefined precision and global
// qualifier.
func GetForVecMatBasic(b types.BasicType, primarySize, secondarySize int) *types.Type {
	return GetForVecMat(b, types.Undefined, types.Global, primarySize, secondarySize)
}

// GetForVec returns the vector descriptor of the given size for a runtime
// qualifier. Only Global and ParamOut are supported.
func GetForVec(b types.BasicType, p types.Precision, q types.Qualifier, size int) *types.Type {
	checkVecMatBasic(b)
	switch q {
	case types.Global:
		return getForVecMatRow(&vecMatTable[0], b, p, types.Global, size)
	case types.ParamOut:
		return getForVecMatRow(&vecMatTable[0], b, p, types.ParamOut, size)
	default:
		panic(violation(newError(ErrUnsupportedQualifier, "qualifier %s not supported for vector lookup", q),
			zap.Stringer("basic", b), zap.Stringer("qualifier", q)))
	}
}

func getForVecMatRow(row *[MaxSize]getter, b types.BasicType, p types.Precision, q types.Qualifier, primarySize int) *types.Type {
	if primarySize < 1 || primarySize > MaxSize {
		panic(violation(newError(ErrSizeOutOfRange, "primary size %d out of range [1,%d]", primarySize, MaxSize),
			zap.Stringer("basic", b), zap.Int("primary", primarySize)))
	}
	return row[primarySize-1](b, p, q)
}

func checkVecMatBasic(b types.BasicType) {
	if !b.IsNumeric() {
		panic(violation(newError(ErrUnsupportedBasicType, "basic type %s has no vector or matrix form", b),
			zap.Stringer("basic", b)))
	}
}
