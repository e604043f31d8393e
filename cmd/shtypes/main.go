// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command shtypes inspects the static shader type registry.
//
// Usage:
//
//	shtypes [--format text|json|yaml] <command>
//
// Examples:
//
//	shtypes mangle float 3                  # vf3;  vec3
//	shtypes mangle float 2 3 -p highp       # mf2x3;  highp mat2x3
//	shtypes list --basic int --format json  # interned int descriptors
//	shtypes codes                           # short-code table
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/shtype/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
