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

package main

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Kinds lists the surfaces vecgen can render, one template each.
var Kinds = []string{"vec", "mat"}

// axisNames are the component names in storage order.
var axisNames = []string{"X", "Y", "Z", "W"}

// Generator renders the per-arity method surface of one package.
type Generator struct {
	Kind       string // "vec" or "mat"
	OutputFile string
	PackageOut string // defaults to Kind
	Logger     *slog.Logger
}

// templateData is the root object passed to a template.
type templateData struct {
	Package string
	Arities []arity
}

// arity carries every string a template needs for one N, preformatted so the
// templates stay free of loops over components.
type arity struct {
	N        int
	NN       int    // N*N
	Vec      string // Vec3
	Mat      string // Mat3
	Params   string // x, y, z
	Lit      string // {x, y, z}
	SplatLit string // {s, s, s}
	MapLit   string // {f(v[0]), f(v[1]), f(v[2])}
	Values   string // v[0], v[1], v[2]
	Tuple    string // XYZ
	ColSplat string // {c, c, c}
	Cells    string // m00, m01, ..., m22
	CellLit  string // {{m00, m01, m02}, ...}
	Axes     []axis
	Ops      []op
	Unary    []unary
}

type axis struct {
	N       int
	Vec     string
	Name    string // X
	Lower   string // x
	Index   int
	Unit    string // {0: 1}
	NegUnit string // {0: -1}
}

type op struct {
	Vec    string
	Mat    string
	Name   string // Add
	Func   string // add
	Symbol string // +
}

type unary struct {
	Vec  string
	Name string
	Doc  string
}

var binaryOps = []struct{ name, fn, symbol string }{
	{"Add", "add", "+"},
	{"Sub", "sub", "-"},
	{"Mul", "mul", "*"},
	{"Div", "div", "/"},
	{"Rem", "rem", "%"},
}

var unaryOps = []struct{ name, doc string }{
	{"Abs", "returns the absolute value of every component."},
	{"Floor", "rounds every component down."},
	{"Ceil", "rounds every component up."},
	{"Round", "rounds every component to the nearest integer, half away from zero."},
	{"Trunc", "rounds every component toward zero."},
	{"Fract", "returns x - Trunc(x) for every component x."},
}

// newArity builds the template strings for an n-component vector and an
// n x n matrix.
func newArity(n int) arity {
	a := arity{
		N:   n,
		NN:  n * n,
		Vec: fmt.Sprintf("Vec%d", n),
		Mat: fmt.Sprintf("Mat%d", n),
	}

	lower := make([]string, n)
	splat := make([]string, n)
	mapped := make([]string, n)
	values := make([]string, n)
	cols := make([]string, n)
	var cells, cellCols []string
	for i := range n {
		lower[i] = strings.ToLower(axisNames[i])
		splat[i] = "s"
		mapped[i] = fmt.Sprintf("f(v[%d])", i)
		values[i] = fmt.Sprintf("v[%d]", i)
		cols[i] = "c"

		col := make([]string, n)
		for r := range n {
			col[r] = fmt.Sprintf("m%d%d", i, r)
		}
		cells = append(cells, col...)
		cellCols = append(cellCols, "{"+strings.Join(col, ", ")+"}")

		a.Axes = append(a.Axes, axis{
			N:       n,
			Vec:     a.Vec,
			Name:    axisNames[i],
			Lower:   lower[i],
			Index:   i,
			Unit:    fmt.Sprintf("{%d: 1}", i),
			NegUnit: fmt.Sprintf("{%d: -1}", i),
		})
	}

	a.Params = strings.Join(lower, ", ")
	a.Lit = "{" + a.Params + "}"
	a.SplatLit = "{" + strings.Join(splat, ", ") + "}"
	a.MapLit = "{" + strings.Join(mapped, ", ") + "}"
	a.Values = strings.Join(values, ", ")
	a.Tuple = strings.Join(axisNames[:n], "")
	a.ColSplat = "{" + strings.Join(cols, ", ") + "}"
	a.Cells = strings.Join(cells, ", ")
	a.CellLit = "{" + strings.Join(cellCols, ", ") + "}"

	for _, o := range binaryOps {
		a.Ops = append(a.Ops, op{Vec: a.Vec, Mat: a.Mat, Name: o.name, Func: o.fn, Symbol: o.symbol})
	}
	for _, u := range unaryOps {
		a.Unary = append(a.Unary, unary{Vec: a.Vec, Name: u.name, Doc: u.doc})
	}
	return a
}

// Render executes the template for g.Kind and returns formatted Go source.
func (g *Generator) Render() ([]byte, error) {
	if !isKnownKind(g.Kind) {
		return nil, fmt.Errorf("unknown kind %q (want one of %s)", g.Kind, strings.Join(Kinds, ", "))
	}

	tmpl, err := template.ParseFS(templateFS, "templates/"+g.Kind+".tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	data := templateData{Package: g.PackageOut}
	if data.Package == "" {
		data.Package = g.Kind
	}
	for n := 2; n <= 4; n++ {
		data.Arities = append(data.Arities, newArity(n))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", g.Kind, err)
	}
	g.logger().Debug("rendered template", "kind", g.Kind, "bytes", buf.Len())

	filename := g.OutputFile
	if filename == "" {
		filename = g.Kind + ".gen.go"
	}
	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return formatted, nil
}

// Run renders the template and writes the result to g.OutputFile.
func (g *Generator) Run() error {
	src, err := g.Render()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(g.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	g.logger().Info("wrote file", "path", g.OutputFile, "bytes", len(src))
	return nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func isKnownKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
