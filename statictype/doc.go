// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package statictype provides canonical instances of common type
// descriptors. Lookups with equal attributes return the same *types.Type,
// so compiler passes compare descriptors with == and print them through
// their mangled name.
//
// # Static lookups
//
// Sizes are type parameters restricted to D1..D4, so an out-of-range size
// is a compile error:
//
//	f := statictype.GetBasic(types.Float)                                   // float
//	v := statictype.GetBasicVec[statictype.D3](types.Float)                 // vec3
//	m := statictype.GetBasicMat[statictype.D2, statictype.D3](types.Float) // mat2x3
//	o := statictype.Get[statictype.D2, statictype.D1](types.Int, types.High, types.ParamOut)
//
// # Dynamic lookups
//
// GetForVecMat and GetForVec accept sizes and qualifiers known only at
// runtime and dispatch them onto the static lookups. GetForFloatImage,
// GetForIntImage and GetForUintImage resolve generic image placeholders.
// Inputs outside the supported domain are programming errors: the violation
// is logged through Logger and the call panics with an *Error.
//
// # Mangled names
//
// Every descriptor carries a mangled name of at most MaxMangledNameLength
// bytes:
//
//	float  -> "f1;"
//	vec3   -> "vf3;"
//	mat2x3 -> "mf2x3;"
//
// # Concurrency
//
// All functions are safe for concurrent use. Descriptors are created on
// first use with compare-and-swap and never change or go away afterwards.
// Precompute moves first-use construction of the common descriptors to
// start-up.
package statictype
