// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import (
	"go.uber.org/zap"

	"github.com/gogpu/shtype/types"
)

// MaxSize is the largest primary or secondary size.
const MaxSize = 4

// Key identifies one static type configuration.
type Key struct {
	Basic         types.BasicType
	Precision     types.Precision
	Qualifier     types.Qualifier
	PrimarySize   uint8
	SecondarySize uint8
}

// Validate reports whether k may be interned. The returned error, if any,
// is an *Error.
func (k Key) Validate() error {
	if err := k.validate(); err != nil {
		return err
	}
	return nil
}

func (k Key) validate() *Error {
	if k.PrimarySize < 1 || k.PrimarySize > MaxSize {
		return newError(ErrSizeOutOfRange, "primary size %d out of range [1,%d]", k.PrimarySize, MaxSize)
	}
	if k.SecondarySize < 1 || k.SecondarySize > MaxSize {
		return newError(ErrSizeOutOfRange, "secondary size %d out of range [1,%d]", k.SecondarySize, MaxSize)
	}
	if !types.HasShortCode(k.Basic) {
		return newError(ErrUnsupportedBasicType, "basic type %s has no static representation", k.Basic)
	}
	if !k.Precision.Valid() {
		return newError(ErrInvalidPrecision, "invalid precision %d", uint8(k.Precision))
	}
	if !k.Qualifier.Valid() {
		return newError(ErrInvalidQualifier, "invalid qualifier %d", uint8(k.Qualifier))
	}
	if n := mangledNameLen(k); n > MaxMangledNameLength {
		return newError(ErrMangledNameTooLong, "mangled name of %s is %d bytes, limit %d", k.Basic, n, MaxMangledNameLength)
	}
	return nil
}

// IsMatrix reports whether k describes a matrix.
func (k Key) IsMatrix() bool {
	return k.PrimarySize > 1 && k.SecondarySize > 1
}

// IsVector reports whether k describes a vector.
func (k Key) IsVector() bool {
	return k.PrimarySize > 1 && k.SecondarySize == 1
}

// Packed returns k as a single integer. The order of packed keys is the
// order of Registry.Types.
func (k Key) Packed() uint32 {
	return uint32(k.Basic)<<24 |
		uint32(k.Qualifier)<<16 |
		uint32(k.Precision)<<8 |
		uint32(k.PrimarySize-1)<<4 |
		uint32(k.SecondarySize-1)
}

// pageIndex and slotIndex locate k in a Registry. k must be valid.
func (k Key) pageIndex() int {
	return int(k.Basic)*types.QualifierCount + int(k.Qualifier)
}

func (k Key) slotIndex() int {
	return int(k.Precision)*MaxSize*MaxSize + int(k.PrimarySize-1)*MaxSize + int(k.SecondarySize-1)
}

// keyOf rebuilds the key stored at a registry position.
func keyOf(pageIndex, slotIndex int) Key {
	return Key{
		Basic:         types.BasicType(pageIndex / types.QualifierCount),
		Qualifier:     types.Qualifier(pageIndex % types.QualifierCount),
		Precision:     types.Precision(slotIndex / (MaxSize * MaxSize)),
		PrimarySize:   uint8(slotIndex/MaxSize%MaxSize) + 1,
		SecondarySize: uint8(slotIndex%MaxSize) + 1,
	}
}

func (k Key) fields() []zap.Field {
	return []zap.Field{
		zap.Stringer("basic", k.Basic),
		zap.Stringer("precision", k.Precision),
		zap.Stringer("qualifier", k.Qualifier),
		zap.Uint8("primary", k.PrimarySize),
		zap.Uint8("secondary", k.SecondarySize),
	}
}
