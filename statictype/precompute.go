// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import (
	"sync"

	"go.uber.org/zap"

	"github.com/gogpu/shtype/types"
)

// Basic types and qualifiers reachable through GetForVecMat and GetForVec.
var (
	bridgeBasicTypes = [...]types.BasicType{types.Float, types.Int, types.UInt, types.Bool}
	bridgeQualifiers = [...]types.Qualifier{types.Global, types.ParamOut}
)

var precomputeOnce sync.Once

// Precompute populates the default registry with the descriptors compiler
// passes use most: every vector and matrix the runtime bridge can return at
// undefined precision, and the scalar global descriptor of every basic type
// with a static representation. Call it before concurrent compilation to
// move first-use construction out of the hot path. It is safe to call more
// than once.
func Precompute() {
	precomputeOnce.Do(func() {
		for _, b := range bridgeBasicTypes {
			for _, q := range bridgeQualifiers {
				for secondary := 1; secondary <= MaxSize; secondary++ {
					for primary := 1; primary <= MaxSize; primary++ {
						GetForVecMat(b, types.Undefined, q, primary, secondary)
					}
				}
			}
		}
		for b := types.BasicType(0); int(b) < types.BasicTypeCount; b++ {
			if types.HasShortCode(b) {
				GetBasic(b)
			}
		}
		Logger().Debug("statictype: precomputed descriptors",
			zap.Int("count", defaultRegistry.Count()))
	})
}
