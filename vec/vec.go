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

// Package vec provides fixed-size 2, 3 and 4 component vectors generic over
// their scalar type.
//
// Vectors are plain arrays, so they are values: assignment copies, == compares
// every component, and a Vec3[float32] occupies exactly 12 bytes with the
// components in x, y, z order. Conversion to and from arrays is a Go type
// conversion:
//
//	v := vec.New3[float32](1, 0, 0)
//	a := [3]float32(v)
//	w := vec.Vec3[float32](a)
//
// Every operation is component-wise unless documented otherwise:
//
//	a := vec.New2(1, 2)
//	b := vec.New2(3, 4)
//	a.Add(b)             // {4, 6}
//	a.MulScalar(10)      // {10, 20}
//	vec.ScalarSub(10, a) // {9, 8}
//
// Indexing follows Go array rules: an index outside [0, N) panics.
package vec

//go:generate go run ../cmd/vecgen -kind vec -output vec.gen.go

import "github.com/ajroetker/go-vmath/num"

// Vec2 is a 2-component vector: x, y.
type Vec2[T num.Scalar] [2]T

// Vec3 is a 3-component vector: x, y, z.
type Vec3[T num.Scalar] [3]T

// Vec4 is a 4-component vector: x, y, z, w.
type Vec4[T num.Scalar] [4]T

// Vector is a constraint satisfied by Vec2[T], Vec3[T] and Vec4[T].
type Vector[T num.Scalar] interface {
	~[2]T | ~[3]T | ~[4]T
}

// Single precision vectors.
type (
	Vec2f = Vec2[float32]
	Vec3f = Vec3[float32]
	Vec4f = Vec4[float32]
)

// Double precision vectors.
type (
	Vec2d = Vec2[float64]
	Vec3d = Vec3[float64]
	Vec4d = Vec4[float64]
)

// Integer vectors.
type (
	Vec2i = Vec2[int32]
	Vec3i = Vec3[int32]
	Vec4i = Vec4[int32]

	Vec2u = Vec2[uint32]
	Vec3u = Vec3[uint32]
	Vec4u = Vec4[uint32]
)
