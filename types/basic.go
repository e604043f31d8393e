// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import "fmt"

// BasicType represents the basic kind of a type.
type BasicType uint8

const (
	Void BasicType = iota
	Float
	Int
	UInt
	Bool
	AtomicCounter
	YuvCscStandardEXT

	// Float samplers
	Sampler2D
	Sampler3D
	SamplerCube
	Sampler2DArray
	SamplerExternalOES
	SamplerExternal2DY2YEXT
	Sampler2DRect
	Sampler2DMS

	// Integer samplers
	ISampler2D
	ISampler3D
	ISamplerCube
	ISampler2DArray
	ISampler2DMS

	// Unsigned integer samplers
	USampler2D
	USampler3D
	USamplerCube
	USampler2DArray
	USampler2DMS

	// Shadow samplers
	Sampler2DShadow
	SamplerCubeShadow
	Sampler2DArrayShadow

	// Images
	Image2D
	IImage2D
	UImage2D
	Image3D
	IImage3D
	UImage3D
	Image2DArray
	IImage2DArray
	UImage2DArray
	ImageCube
	IImageCube
	UImageCube

	// Generic image placeholders used by builtin function tables.
	// They resolve to a float, int or uint image kind.
	GImage2D
	GImage3D
	GImage2DArray
	GImageCube

	// Kinds with no static representation.
	Struct
	InterfaceBlock

	basicTypeCount
)

// BasicTypeCount is the number of declared basic types.
const BasicTypeCount = int(basicTypeCount)

// MaxShortCodeLength is the longest short code the table may hold.
const MaxShortCodeLength = 5

var basicTypeInfo = [basicTypeCount]struct {
	name string
	code string
}{
	Void:                    {"void", "z"},
	Float:                   {"float", "f"},
	Int:                     {"int", "i"},
	UInt:                    {"uint", "u"},
	Bool:                    {"bool", "b"},
	AtomicCounter:           {"atomic_uint", "ac"},
	YuvCscStandardEXT:       {"yuvCscStandardEXT", "ycs"},
	Sampler2D:               {"sampler2D", "s2"},
	Sampler3D:               {"sampler3D", "s3"},
	SamplerCube:             {"samplerCube", "sC"},
	Sampler2DArray:          {"sampler2DArray", "s2a"},
	SamplerExternalOES:      {"samplerExternalOES", "sext"},
	SamplerExternal2DY2YEXT: {"__samplerExternal2DY2YEXT", "sy2y"},
	Sampler2DRect:           {"sampler2DRect", "s2r"},
	Sampler2DMS:             {"sampler2DMS", "s2ms"},
	ISampler2D:              {"isampler2D", "is2"},
	ISampler3D:              {"isampler3D", "is3"},
	ISamplerCube:            {"isamplerCube", "isC"},
	ISampler2DArray:         {"isampler2DArray", "is2a"},
	ISampler2DMS:            {"isampler2DMS", "is2ms"},
	USampler2D:              {"usampler2D", "us2"},
	USampler3D:              {"usampler3D", "us3"},
	USamplerCube:            {"usamplerCube", "usC"},
	USampler2DArray:         {"usampler2DArray", "us2a"},
	USampler2DMS:            {"usampler2DMS", "us2ms"},
	Sampler2DShadow:         {"sampler2DShadow", "s2s"},
	SamplerCubeShadow:       {"samplerCubeShadow", "sCs"},
	Sampler2DArrayShadow:    {"sampler2DArrayShadow", "s2as"},
	Image2D:                 {"image2D", "im2"},
	IImage2D:                {"iimage2D", "iim2"},
	UImage2D:                {"uimage2D", "uim2"},
	Image3D:                 {"image3D", "im3"},
	IImage3D:                {"iimage3D", "iim3"},
	UImage3D:                {"uimage3D", "uim3"},
	Image2DArray:            {"image2DArray", "im2a"},
	IImage2DArray:           {"iimage2DArray", "iim2a"},
	UImage2DArray:           {"uimage2DArray", "uim2a"},
	ImageCube:               {"imageCube", "imC"},
	IImageCube:              {"iimageCube", "iimC"},
	UImageCube:              {"uimageCube", "uimC"},
	GImage2D:                {"gimage2D", "gim2"},
	GImage3D:                {"gimage3D", "gim3"},
	GImage2DArray:           {"gimage2DArray", "gim2a"},
	GImageCube:              {"gimageCube", "gimC"},
	Struct:                  {"struct", ""},
	InterfaceBlock:          {"interface block", ""},
}

// String returns the GLSL spelling of the basic type.
func (b BasicType) String() string {
	if b.Valid() {
		return basicTypeInfo[b].name
	}
	return fmt.Sprintf("BasicType(%d)", uint8(b))
}

// Valid reports whether b is a declared basic type.
func (b BasicType) Valid() bool {
	return b < basicTypeCount
}

// ShortCode returns the mangled-name code of b, or "" if b has no static
// representation.
func ShortCode(b BasicType) string {
	if !b.Valid() {
		return ""
	}
	return basicTypeInfo[b].code
}

// HasShortCode reports whether b can appear in a mangled name.
func HasShortCode(b BasicType) bool {
	return ShortCode(b) != ""
}

// IsSampler reports whether b is a sampler type.
func (b BasicType) IsSampler() bool {
	return b >= Sampler2D && b <= Sampler2DArrayShadow
}

// IsImage reports whether b is a concrete image type.
func (b BasicType) IsImage() bool {
	return b >= Image2D && b <= UImageCube
}

// IsGenericImage reports whether b is a generic image placeholder.
func (b BasicType) IsGenericImage() bool {
	return b >= GImage2D && b <= GImageCube
}

// IsNumeric reports whether b can form vectors and matrices.
func (b BasicType) IsNumeric() bool {
	switch b {
	case Float, Int, UInt, Bool:
		return true
	}
	return false
}

// ParseBasicType looks a basic type up by its GLSL spelling.
func ParseBasicType(s string) (BasicType, error) {
	for i := range basicTypeInfo {
		if basicTypeInfo[i].name == s {
			return BasicType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown basic type %q", s)
}
