// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import (
	"go.uber.org/zap"

	"github.com/gogpu/shtype/types"
)

// imageSampling selects the concrete image kind for a generic placeholder.
type imageSampling uint8

const (
	imageFloat imageSampling = iota
	imageInt
	imageUint
)

var imageSamplingNames = [...]string{
	imageFloat: "float",
	imageInt:   "int",
	imageUint:  "uint",
}

// concreteImages maps each generic image placeholder to its float, int and
// uint image kinds.
var concreteImages = map[types.BasicType][3]types.BasicType{
	types.GImage2D:      {types.Image2D, types.IImage2D, types.UImage2D},
	types.GImage3D:      {types.Image3D, types.IImage3D, types.UImage3D},
	types.GImage2DArray: {types.Image2DArray, types.IImage2DArray, types.UImage2DArray},
	types.GImageCube:    {types.ImageCube, types.IImageCube, types.UImageCube},
}

// GetForFloatImage resolves a generic image placeholder to its float image
// descriptor, e.g. GImage2D to image2D.
func GetForFloatImage(b types.BasicType) *types.Type {
	return getForImage(b, imageFloat)
}

// GetForIntImage resolves a generic image placeholder to its signed integer
// image descriptor, e.g. GImage2D to iimage2D.
func GetForIntImage(b types.BasicType) *types.Type {
	return getForImage(b, imageInt)
}

// GetForUintImage resolves a generic image placeholder to its unsigned
// integer image descriptor, e.g. GImage2D to uimage2D.
func GetForUintImage(b types.BasicType) *types.Type {
	return getForImage(b, imageUint)
}

func getForImage(b types.BasicType, s imageSampling) *types.Type {
	kinds, ok := concreteImages[b]
	if !ok {
		panic(violation(newError(ErrUnsupportedImage, "basic type %s is not a generic image", b),
			zap.Stringer("basic", b), zap.String("sampling", imageSamplingNames[s])))
	}
	return GetBasic(kinds[s])
}
