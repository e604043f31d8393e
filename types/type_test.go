// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	typ := New(Float, High, ParamOut, 3, 2, "mf3x2;")

	assert.Equal(t, Float, typ.BasicType())
	assert.Equal(t, High, typ.Precision())
	assert.Equal(t, ParamOut, typ.Qualifier())
	assert.Equal(t, uint8(3), typ.PrimarySize())
	assert.Equal(t, uint8(2), typ.SecondarySize())
	assert.Equal(t, uint8(3), typ.Cols())
	assert.Equal(t, uint8(2), typ.Rows())
	assert.Equal(t, "mf3x2;", typ.MangledName())
	assert.Equal(t, 6, typ.ObjectSize())
	assert.True(t, typ.IsMatrix())
	assert.False(t, typ.IsVector())
	assert.False(t, typ.IsScalar())
}

func TestType_String(t *testing.T) {
	tests := []struct {
		name     string
		typ      *Type
		expected string
	}{
		{"float", New(Float, Undefined, Global, 1, 1, ""), "float"},
		{"highp float", New(Float, High, Global, 1, 1, ""), "highp float"},
		{"vec2", New(Float, Undefined, Temporary, 2, 1, ""), "vec2"},
		{"ivec3", New(Int, Undefined, Global, 3, 1, ""), "ivec3"},
		{"uvec4", New(UInt, Undefined, Global, 4, 1, ""), "uvec4"},
		{"bvec2", New(Bool, Undefined, Global, 2, 1, ""), "bvec2"},
		{"mat3", New(Float, Undefined, Global, 3, 3, ""), "mat3"},
		{"mat2x4", New(Float, Undefined, Global, 2, 4, ""), "mat2x4"},
		{"out mediump vec3", New(Float, Medium, ParamOut, 3, 1, ""), "out mediump vec3"},
		{"inout int", New(Int, Undefined, ParamInOut, 1, 1, ""), "inout int"},
		{"uniform sampler2D", New(Sampler2D, Undefined, Uniform, 1, 1, ""), "uniform sampler2D"},
		{"const lowp float", New(Float, Low, Const, 1, 1, ""), "const lowp float"},
		{"builtin", New(Float, High, Position, 4, 1, ""), "highp vec4"},
		{"sampler vector", New(Sampler2D, Undefined, Global, 2, 1, ""), "sampler2D<2>"},
		{"column shape", New(Float, Undefined, Global, 1, 3, ""), "float<1x3>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
		})
	}
}
