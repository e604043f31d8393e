// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import (
	"fmt"

	"go.uber.org/zap"
)

// ErrorKind categorizes precondition violations.
type ErrorKind uint8

const (
	// ErrSizeOutOfRange indicates a primary or secondary size outside [1,4].
	ErrSizeOutOfRange ErrorKind = iota

	// ErrUnsupportedBasicType indicates a basic type the entry point cannot
	// represent: one without a short code, or a non-numeric type passed to
	// the vector/matrix bridge.
	ErrUnsupportedBasicType

	// ErrUnsupportedQualifier indicates a qualifier other than global or out
	// passed to GetForVec.
	ErrUnsupportedQualifier

	// ErrInvalidPrecision indicates an undeclared precision value.
	ErrInvalidPrecision

	// ErrInvalidQualifier indicates an undeclared qualifier value.
	ErrInvalidQualifier

	// ErrMangledNameTooLong indicates a mangled name over MaxMangledNameLength.
	ErrMangledNameTooLong

	// ErrUnsupportedImage indicates a basic type that is not a generic image
	// placeholder passed to an image lookup.
	ErrUnsupportedImage
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrSizeOutOfRange:
		return "SizeOutOfRange"
	case ErrUnsupportedBasicType:
		return "UnsupportedBasicType"
	case ErrUnsupportedQualifier:
		return "UnsupportedQualifier"
	case ErrInvalidPrecision:
		return "InvalidPrecision"
	case ErrInvalidQualifier:
		return "InvalidQualifier"
	case ErrMangledNameTooLong:
		return "MangledNameTooLong"
	case ErrUnsupportedImage:
		return "UnsupportedImage"
	default:
		return "Unknown"
	}
}

// Error is a precondition violation. Lookups panic with an *Error; it is
// only returned as a value by Key.Validate.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("statictype %s: %s", e.Kind, e.Message)
}

// newError creates a new Error with the given kind and formatted message.
func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// violation logs err and returns it for the caller to panic with.
func violation(err *Error, fields ...zap.Field) *Error {
	fields = append(fields, zap.Stringer("kind", err.Kind))
	Logger().Error("statictype: precondition violation: "+err.Message, fields...)
	return err
}
