// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Precision represents a GLSL ES precision qualifier.
type Precision uint8

const (
	Undefined Precision = iota
	Low
	Medium
	High

	precisionCount
)

// PrecisionCount is the number of declared precisions.
const PrecisionCount = int(precisionCount)

var precisionNames = [precisionCount]string{
	Undefined: "undefined",
	Low:       "lowp",
	Medium:    "mediump",
	High:      "highp",
}

func (p Precision) String() string {
	if p.Valid() {
		return precisionNames[p]
	}
	return fmt.Sprintf("Precision(%d)", uint8(p))
}

// Valid reports whether p is a declared precision.
func (p Precision) Valid() bool {
	return p < precisionCount
}

// ParsePrecision accepts the GLSL keyword ("highp") or "undefined".
func ParsePrecision(s string) (Precision, error) {
	for i, name := range precisionNames {
		if name == s {
			return Precision(i), nil
		}
	}
	return 0, fmt.Errorf("unknown precision %q", s)
}

// Qualifier represents a storage, parameter or builtin-variable qualifier.
type Qualifier uint8

const (
	Temporary Qualifier = iota
	Global
	Const
	Attribute
	VaryingIn
	VaryingOut
	Uniform
	Buffer
	Shared
	VertexIn
	VertexOut
	FragmentIn
	FragmentOut

	// Parameter qualifiers
	ParamIn
	ParamOut
	ParamInOut
	ParamConst

	// Builtin variables
	InstanceID
	VertexID
	Position
	PointSize
	FragCoord
	FrontFacing
	PointCoord
	FragColor
	FragData
	FragDepth
	NumWorkGroups
	WorkGroupSize
	WorkGroupID
	LocalInvocationID
	GlobalInvocationID
	LocalInvocationIndex

	qualifierCount
)

// QualifierCount is the number of declared qualifiers.
const QualifierCount = int(qualifierCount)

var qualifierNames = [qualifierCount]string{
	Temporary:            "temporary",
	Global:               "global",
	Const:                "const",
	Attribute:            "attribute",
	VaryingIn:            "varying_in",
	VaryingOut:           "varying_out",
	Uniform:              "uniform",
	Buffer:               "buffer",
	Shared:               "shared",
	VertexIn:             "vertex_in",
	VertexOut:            "vertex_out",
	FragmentIn:           "fragment_in",
	FragmentOut:          "fragment_out",
	ParamIn:              "in",
	ParamOut:             "out",
	ParamInOut:           "inout",
	ParamConst:           "const_in",
	InstanceID:           "gl_InstanceID",
	VertexID:             "gl_VertexID",
	Position:             "gl_Position",
	PointSize:            "gl_PointSize",
	FragCoord:            "gl_FragCoord",
	FrontFacing:          "gl_FrontFacing",
	PointCoord:           "gl_PointCoord",
	FragColor:            "gl_FragColor",
	FragData:             "gl_FragData",
	FragDepth:            "gl_FragDepth",
	NumWorkGroups:        "gl_NumWorkGroups",
	WorkGroupSize:        "gl_WorkGroupSize",
	WorkGroupID:          "gl_WorkGroupID",
	LocalInvocationID:    "gl_LocalInvocationID",
	GlobalInvocationID:   "gl_GlobalInvocationID",
	LocalInvocationIndex: "gl_LocalInvocationIndex",
}

func (q Qualifier) String() string {
	if q.Valid() {
		return qualifierNames[q]
	}
	return fmt.Sprintf("Qualifier(%d)", uint8(q))
}

// Valid reports whether q is a declared qualifier.
func (q Qualifier) Valid() bool {
	return q < qualifierCount
}

// IsParam reports whether q qualifies a function parameter.
func (q Qualifier) IsParam() bool {
	return q >= ParamIn && q <= ParamConst
}

// keyword returns the qualifier as written in source, or "" when the
// qualifier is implicit (globals, temporaries, builtins).
func (q Qualifier) keyword() string {
	switch q {
	case Const, ParamConst:
		return "const"
	case Attribute:
		return "attribute"
	case Uniform:
		return "uniform"
	case Buffer:
		return "buffer"
	case Shared:
		return "shared"
	case VaryingIn, VertexIn, FragmentIn, ParamIn:
		return "in"
	case VaryingOut, VertexOut, FragmentOut, ParamOut:
		return "out"
	case ParamInOut:
		return "inout"
	}
	return ""
}

// ParseQualifier looks a qualifier up by name.
func ParseQualifier(s string) (Qualifier, error) {
	for i, name := range qualifierNames {
		if name == s {
			return Qualifier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown qualifier %q", s)
}
