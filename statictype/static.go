// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import "github.com/gogpu/shtype/types"

// Dim is a static primary or secondary size. Its type set is closed, so a
// size outside [1,4] cannot be spelled: Get[D5, D1] does not compile.
type Dim interface {
	D1 | D2 | D3 | D4
	size() uint8
}

// Static sizes.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
)

func (D1) size() uint8 { return 1 }
func (D2) size() uint8 { return 2 }
func (D3) size() uint8 { return 3 }
func (D4) size() uint8 { return 4 }

// SizeOf returns the numeric value of a static size.
func SizeOf[D Dim]() uint8 {
	var d D
	return d.size()
}

// Get returns the fully qualified descriptor with primary size P and
// secondary size S.
//
//	vec3 := statictype.Get[statictype.D3, statictype.D1](types.Float, types.High, types.Global)
func Get[P, S Dim](b types.BasicType, p types.Precision, q types.Qualifier) *types.Type {
	return defaultRegistry.Intern(Key{
		Basic:         b,
		Precision:     p,
		Qualifier:     q,
		PrimarySize:   SizeOf[P](),
		SecondarySize: SizeOf[S](),
	})
}

// GetBasic returns the scalar descriptor of b with undefined precision and
// global qualifier.
func GetBasic(b types.BasicType) *types.Type {
	return Get[D1, D1](b, types.Undefined, types.Global)
}

// GetBasicVec is GetBasic for a vector of size P.
func GetBasicVec[P Dim](b types.BasicType) *types.Type {
	return Get[P, D1](b, types.Undefined, types.Global)
}

// GetBasicMat is GetBasic for a matrix with P columns and S rows.
func GetBasicMat[P, S Dim](b types.BasicType) *types.Type {
	return Get[P, S](b, types.Undefined, types.Global)
}

// GetQualified returns the scalar descriptor of b with qualifier q and
// undefined precision.
func GetQualified(b types.BasicType, q types.Qualifier) *types.Type {
	return Get[D1, D1](b, types.Undefined, q)
}

// GetQualifiedVec is GetQualified for a vector of size P.
func GetQualifiedVec[P Dim](b types.BasicType, q types.Qualifier) *types.Type {
	return Get[P, D1](b, types.Undefined, q)
}

// GetQualifiedMat is GetQualified for a matrix with P columns and S rows.
func GetQualifiedMat[P, S Dim](b types.BasicType, q types.Qualifier) *types.Type {
	return Get[P, S](b, types.Undefined, q)
}
