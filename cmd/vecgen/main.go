// Copyright 2025 go-vmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vecgen generates the per-arity method surface of the vec and mat
// packages.
//
// Each vector and matrix operation is implemented once, generic over the
// arity. Go has no way to attach those generic functions as methods of
// Vec2, Vec3 and Vec4 at once, so vecgen renders the thin forwarding methods
// from a template for N = 2, 3, 4.
//
// Usage:
//
//	vecgen -kind vec -output vec.gen.go
//	vecgen -kind mat -output mat.gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/vecgen -kind vec -output vec.gen.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var (
	kind       = flag.String("kind", "", "Surface to generate ("+strings.Join(Kinds, ", ")+") (required)")
	outputFile = flag.String("output", "", "Output file (default: <kind>.gen.go)")
	packageOut = flag.String("pkg", "", "Output package name (default: same as kind)")
	verbose    = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if *kind == "" {
		fmt.Fprintf(os.Stderr, "Error: -kind flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	out := *outputFile
	if out == "" {
		out = *kind + ".gen.go"
	}

	gen := &Generator{
		Kind:       *kind,
		OutputFile: out,
		PackageOut: *packageOut,
		Logger:     logger,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
