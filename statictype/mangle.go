// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package statictype

import "github.com/gogpu/shtype/types"

// MaxMangledNameLength is the size of the longest mangled name: a 4x4
// matrix of the longest short code, including the ';' terminator.
const MaxMangledNameLength = 10

// longestMangledName is 'm' + code + "4x4;".
const longestMangledName = 1 + types.MaxShortCodeLength + len("4x4;")

// Fails to compile when the short-code limit outgrows the name buffer.
var _ [MaxMangledNameLength - longestMangledName]struct{}

func init() {
	for b := types.BasicType(0); int(b) < types.BasicTypeCount; b++ {
		if code := types.ShortCode(b); len(code) > types.MaxShortCodeLength {
			panic(newError(ErrMangledNameTooLong,
				"short code %q of %s exceeds %d bytes", code, b, types.MaxShortCodeLength))
		}
	}
}

// MangledName returns the canonical name of k. Precision and qualifier do
// not take part in the name.
//
//	(float, 1, 1) -> "f1;"
//	(float, 3, 1) -> "vf3;"
//	(float, 2, 3) -> "mf2x3;"
func MangledName(k Key) string {
	var buf [MaxMangledNameLength]byte
	return string(AppendMangledName(buf[:0], k))
}

// AppendMangledName appends the canonical name of k to dst.
// k must satisfy Validate.
func AppendMangledName(dst []byte, k Key) []byte {
	switch {
	case k.IsMatrix():
		dst = append(dst, 'm')
	case k.IsVector():
		dst = append(dst, 'v')
	}
	dst = append(dst, types.ShortCode(k.Basic)...)
	dst = append(dst, '0'+k.PrimarySize)
	if k.IsMatrix() {
		dst = append(dst, 'x', '0'+k.SecondarySize)
	}
	return append(dst, ';')
}

// mangledNameLen returns len(MangledName(k)) without building it.
func mangledNameLen(k Key) int {
	n := len(types.ShortCode(k.Basic)) + 2 // size digit and ';'
	if k.IsMatrix() {
		n += 3 // 'm', 'x' and the second digit
	} else if k.IsVector() {
		n++
	}
	return n
}

