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

// Package mat provides square 2x2, 3x3 and 4x4 matrices generic over their
// scalar type.
//
// A matrix is an array of column vectors: m[c] is column c and m[c][r] is the
// cell in column c, row r. Arithmetic is element-wise only. Operations that
// take a vector broadcast it across every column:
//
//	m := mat.Identity3[float32]()
//	m.AddVec(vec.New3[float32](1, 2, 3)) // every column plus {1, 2, 3}
//
// This is not a matrix-vector product, and the package has no determinant,
// inverse, transpose or matrix multiplication.
package mat

//go:generate go run ../cmd/vecgen -kind mat -output mat.gen.go

import (
	"github.com/ajroetker/go-vmath/num"
	"github.com/ajroetker/go-vmath/vec"
)

// Mat2 is a 2x2 matrix stored as two columns.
type Mat2[T num.Scalar] [2]vec.Vec2[T]

// Mat3 is a 3x3 matrix stored as three columns.
type Mat3[T num.Scalar] [3]vec.Vec3[T]

// Mat4 is a 4x4 matrix stored as four columns.
type Mat4[T num.Scalar] [4]vec.Vec4[T]

type (
	Mat2f = Mat2[float32]
	Mat3f = Mat3[float32]
	Mat4f = Mat4[float32]

	Mat2d = Mat2[float64]
	Mat3d = Mat3[float64]
	Mat4d = Mat4[float64]
)
