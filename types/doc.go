// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package types defines the type representation shared by the shader
// translator: basic types, precisions, qualifiers and the immutable Type
// descriptor.
//
// # Structure
//
// A Type is described by five attributes:
//   - BasicType: float, int, sampler2D, image3D, ...
//   - Precision: lowp, mediump, highp or unspecified
//   - Qualifier: storage or parameter qualifier (global, out, uniform, ...)
//   - PrimarySize: vector size, or column count for matrices
//   - SecondarySize: row count for matrices, 1 otherwise
//
// plus a mangled name used for overload resolution and symbol naming.
//
// Descriptors are never built ad hoc by compiler passes. The statictype
// package interns them so that pointer equality can stand in for structural
// equality.
//
// # Short codes
//
// Each basic type that can appear in a mangled name has a short code
// (see ShortCode). Codes are stable, unique, never start with the vector or
// matrix prefixes 'v' and 'm', and are at most MaxShortCodeLength bytes.
package types
