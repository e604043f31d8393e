// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrecision(t *testing.T) {
	for p := Precision(0); p < precisionCount; p++ {
		got, err := ParsePrecision(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePrecision("superp")
	assert.Error(t, err)
	assert.Equal(t, "Precision(7)", Precision(7).String())
}

func TestParseQualifier(t *testing.T) {
	for q := Qualifier(0); q < qualifierCount; q++ {
		got, err := ParseQualifier(q.String())
		require.NoError(t, err, "%s", q)
		assert.Equal(t, q, got)
	}

	_, err := ParseQualifier("flat")
	assert.Error(t, err)
	assert.False(t, Qualifier(200).Valid())
}

func TestQualifier_IsParam(t *testing.T) {
	for _, q := range []Qualifier{ParamIn, ParamOut, ParamInOut, ParamConst} {
		assert.True(t, q.IsParam(), "%s", q)
	}
	for _, q := range []Qualifier{Global, Temporary, Uniform, FragColor} {
		assert.False(t, q.IsParam(), "%s", q)
	}
}
