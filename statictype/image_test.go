// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/shtype/types"
)

func TestGetForImage(t *testing.T) {
	tests := []struct {
		generic           types.BasicType
		float, sint, unsigned types.BasicType
	}{
		{types.GImage2D, types.Image2D, types.IImage2D, types.UImage2D},
		{types.GImage3D, types.Image3D, types.IImage3D, types.UImage3D},
		{types.GImage2DArray, types.Image2DArray, types.IImage2DArray, types.UImage2DArray},
		{types.GImageCube, types.ImageCube, types.IImageCube, types.UImageCube},
	}

	for _, tt := range tests {
		t.Run(tt.generic.String(), func(t *testing.T) {
			assert.Same(t, GetBasic(tt.float), GetForFloatImage(tt.generic))
			assert.Same(t, GetBasic(tt.sint), GetForIntImage(tt.generic))
			assert.Same(t, GetBasic(tt.unsigned), GetForUintImage(tt.generic))
			assert.True(t, GetForFloatImage(tt.generic).BasicType().IsImage())
		})
	}
}

func TestGetForImage_MangledNames(t *testing.T) {
	assert.Equal(t, "im21;", GetForFloatImage(types.GImage2D).MangledName())
	assert.Equal(t, "iim2a1;", GetForIntImage(types.GImage2DArray).MangledName())
	assert.Equal(t, "uimC1;", GetForUintImage(types.GImageCube).MangledName())
}

func TestGetForImage_Violations(t *testing.T) {
	for _, b := range []types.BasicType{types.Float, types.Image2D, types.Sampler2D, types.Struct} {
		t.Run(b.String(), func(t *testing.T) {
			requireViolation(t, ErrUnsupportedImage, func() { GetForFloatImage(b) })
			requireViolation(t, ErrUnsupportedImage, func() { GetForIntImage(b) })
			requireViolation(t, ErrUnsupportedImage, func() { GetForUintImage(b) })
		})
	}
}
