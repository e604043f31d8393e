// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shtype/types"
)

func TestPrecompute(t *testing.T) {
	Precompute()
	Precompute()

	for _, b := range bridgeBasicTypes {
		for _, q := range bridgeQualifiers {
			for secondary := uint8(1); secondary <= MaxSize; secondary++ {
				for primary := uint8(1); primary <= MaxSize; primary++ {
					k := Key{b, types.Undefined, q, primary, secondary}
					typ, ok := Default().Lookup(k)
					require.True(t, ok, "%+v not precomputed", k)
					assert.Same(t, GetForVecMat(b, types.Undefined, q, int(primary), int(secondary)), typ)
				}
			}
		}
	}

	for b := types.BasicType(0); int(b) < types.BasicTypeCount; b++ {
		k := Key{b, types.Undefined, types.Global, 1, 1}
		_, ok := Default().Lookup(k)
		assert.Equal(t, types.HasShortCode(b), ok, "scalar %s", b)
	}

	assert.GreaterOrEqual(t, Default().Count(),
		len(bridgeBasicTypes)*len(bridgeQualifiers)*MaxSize*MaxSize)
}
