// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shtype/types"
)

// allKeys returns every valid key of the static domain.
func allKeys() []Key {
	var keys []Key
	for b := types.BasicType(0); int(b) < types.BasicTypeCount; b++ {
		if !types.HasShortCode(b) {
			continue
		}
		for q := types.Qualifier(0); int(q) < types.QualifierCount; q++ {
			for p := types.Precision(0); int(p) < types.PrecisionCount; p++ {
				for primary := uint8(1); primary <= MaxSize; primary++ {
					for secondary := uint8(1); secondary <= MaxSize; secondary++ {
						keys = append(keys, Key{b, p, q, primary, secondary})
					}
				}
			}
		}
	}
	return keys
}

func TestMangledName(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		expected string
	}{
		{"float", Key{types.Float, types.Undefined, types.Global, 1, 1}, "f1;"},
		{"vec3", Key{types.Float, types.Undefined, types.Global, 3, 1}, "vf3;"},
		{"mat2x3", Key{types.Float, types.Undefined, types.Global, 2, 3}, "mf2x3;"},
		{"mat4", Key{types.Float, types.High, types.Uniform, 4, 4}, "mf4x4;"},
		{"ivec2", Key{types.Int, types.Medium, types.ParamOut, 2, 1}, "vi2;"},
		{"uvec4", Key{types.UInt, types.Low, types.Global, 4, 1}, "vu4;"},
		{"bvec2", Key{types.Bool, types.Undefined, types.Temporary, 2, 1}, "vb2;"},
		{"void", Key{types.Void, types.Undefined, types.Global, 1, 1}, "z1;"},
		{"sampler2D", Key{types.Sampler2D, types.Undefined, types.Uniform, 1, 1}, "s21;"},
		{"usampler2DMS", Key{types.USampler2DMS, types.High, types.Uniform, 1, 1}, "us2ms1;"},
		{"uimage2DArray matrix", Key{types.UImage2DArray, types.Undefined, types.Global, 4, 4}, "muim2a4x4;"},
		{"primary 1 has no matrix form", Key{types.Float, types.Undefined, types.Global, 1, 3}, "f1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MangledName(tt.key))
		})
	}
}

func TestMangledName_IgnoresPrecisionAndQualifier(t *testing.T) {
	base := Key{types.Float, types.Undefined, types.Global, 3, 2}
	want := MangledName(base)
	for p := types.Precision(0); int(p) < types.PrecisionCount; p++ {
		for q := types.Qualifier(0); int(q) < types.QualifierCount; q++ {
			k := base
			k.Precision, k.Qualifier = p, q
			require.Equal(t, want, MangledName(k), "precision %s qualifier %s", p, q)
		}
	}
}

func TestAppendMangledName(t *testing.T) {
	dst := []byte("prefix:")
	dst = AppendMangledName(dst, Key{types.Int, types.High, types.Global, 3, 3})
	assert.Equal(t, "prefix:mi3x3;", string(dst))
}

func TestMangledName_LengthBound(t *testing.T) {
	longest := 0
	for _, k := range allKeys() {
		name := MangledName(k)
		require.LessOrEqual(t, len(name), MaxMangledNameLength, "key %+v name %q", k, name)
		require.Equal(t, len(name), mangledNameLen(k), "key %+v", k)
		longest = max(longest, len(name))
	}
	assert.Equal(t, MaxMangledNameLength, longest, "bound should be tight")
}

// Names are unique except for primary size 1 with secondary size > 1,
// which encodes like the scalar of the same basic type.
func TestMangledName_Unique(t *testing.T) {
	seen := make(map[string]Key)
	for _, k := range allKeys() {
		if k.Precision != types.Undefined || k.Qualifier != types.Global {
			continue
		}
		if k.PrimarySize == 1 && k.SecondarySize > 1 {
			scalar := k
			scalar.SecondarySize = 1
			assert.Equal(t, MangledName(scalar), MangledName(k))
			continue
		}
		name := MangledName(k)
		if prev, ok := seen[name]; ok {
			t.Fatalf("keys %+v and %+v share mangled name %q", prev, k, name)
		}
		seen[name] = k
	}
}

func TestMangledName_Golden(t *testing.T) {
	var buf bytes.Buffer
	for b := types.BasicType(0); int(b) < types.BasicTypeCount; b++ {
		if !types.HasShortCode(b) {
			continue
		}
		for secondary := uint8(1); secondary <= MaxSize; secondary++ {
			for primary := uint8(1); primary <= MaxSize; primary++ {
				k := Key{b, types.Undefined, types.Global, primary, secondary}
				fmt.Fprintf(&buf, "%-26s %dx%d %s\n", b, primary, secondary, MangledName(k))
			}
		}
	}

	g := goldie.New(t)
	g.Assert(t, "mangled_names", buf.Bytes())
}
