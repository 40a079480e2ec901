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

// Package lane provides a fixed-width pack of scalars and batch kernels that
// process slices of vectors one pack at a time.
//
// The pack width follows the CPU: 64 bytes with AVX-512, 32 with AVX2 and 16
// otherwise. Setting VMATH_NO_SIMD forces the 16-byte scalar mode, which is
// useful for testing and debugging.
//
// The batch kernels work on slices of vec.Vec3 laid out as arrays of
// structures. They gather a pack of x, y and z components, operate on the
// packs, and finish any tail that does not fill a pack with the scalar vec
// methods:
//
//	lane.Normalize3(normals, normals)
//	lane.Dot3(shade, normals, lightDirs)
package lane

import "github.com/ajroetker/go-vmath/num"

// Vec is a pack of MaxLanes[T]() lanes. Create one with Load, Set or Zero.
type Vec[T num.Scalar] struct {
	data []T
}

// NumLanes returns the number of lanes in v.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lanes of v. It is meant for tests.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the lanes of v to dst.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Load reads up to MaxLanes[T]() values from src.
func Load[T num.Scalar](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes as many lanes of v as fit in dst.
func Store[T num.Scalar](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set returns a pack with every lane set to value.
func Set[T num.Scalar](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero returns a pack of zeros.
func Zero[T num.Scalar]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// One returns a pack of ones.
func One[T num.Scalar]() Vec[T] {
	return Set(num.One[T]())
}

// NegOne returns a pack of minus ones.
func NegOne[T num.Signed]() Vec[T] {
	return Set(num.NegOne[T]())
}

// The *Into helpers write into dst, which must have at least as many lanes
// as the operands. The batch kernels use them to run a whole pack step on
// reused buffers.

func addInto[T num.Scalar](dst, a, b Vec[T]) {
	for i := range a.data {
		dst.data[i] = a.data[i] + b.data[i]
	}
}

func subInto[T num.Scalar](dst, a, b Vec[T]) {
	for i := range a.data {
		dst.data[i] = a.data[i] - b.data[i]
	}
}

func mulInto[T num.Scalar](dst, a, b Vec[T]) {
	for i := range a.data {
		dst.data[i] = a.data[i] * b.data[i]
	}
}

func divInto[T num.Scalar](dst, a, b Vec[T]) {
	for i := range a.data {
		dst.data[i] = a.data[i] / b.data[i]
	}
}

func sqrtInto[T num.Scalar](dst, v Vec[T]) {
	for i, x := range v.data {
		dst.data[i] = num.Sqrt(x)
	}
}

// like returns a new pack with as many lanes as the shorter of a and b.
func like[T num.Scalar](a, b Vec[T]) (Vec[T], Vec[T], Vec[T]) {
	n := min(len(a.data), len(b.data))
	a, b = Vec[T]{data: a.data[:n]}, Vec[T]{data: b.data[:n]}
	return Vec[T]{data: make([]T, n)}, a, b
}

// Add returns a + b lane by lane.
func Add[T num.Scalar](a, b Vec[T]) Vec[T] {
	dst, a, b := like(a, b)
	addInto(dst, a, b)
	return dst
}

// Sub returns a - b lane by lane.
func Sub[T num.Scalar](a, b Vec[T]) Vec[T] {
	dst, a, b := like(a, b)
	subInto(dst, a, b)
	return dst
}

// Mul returns a * b lane by lane.
func Mul[T num.Scalar](a, b Vec[T]) Vec[T] {
	dst, a, b := like(a, b)
	mulInto(dst, a, b)
	return dst
}

// Div returns a / b lane by lane. Integer lanes panic on a zero divisor.
func Div[T num.Scalar](a, b Vec[T]) Vec[T] {
	dst, a, b := like(a, b)
	divInto(dst, a, b)
	return dst
}

// Min returns the smaller lane of a and b, or b when they compare false.
func Min[T num.Scalar](a, b Vec[T]) Vec[T] {
	dst, a, b := like(a, b)
	for i := range dst.data {
		if a.data[i] < b.data[i] {
			dst.data[i] = a.data[i]
		} else {
			dst.data[i] = b.data[i]
		}
	}
	return dst
}

// Max returns the larger lane of a and b, or b when they compare false.
func Max[T num.Scalar](a, b Vec[T]) Vec[T] {
	dst, a, b := like(a, b)
	for i := range dst.data {
		if a.data[i] > b.data[i] {
			dst.data[i] = a.data[i]
		} else {
			dst.data[i] = b.data[i]
		}
	}
	return dst
}

// Sqrt returns the square root of every lane.
func Sqrt[T num.Scalar](v Vec[T]) Vec[T] {
	dst := Vec[T]{data: make([]T, len(v.data))}
	sqrtInto(dst, v)
	return dst
}

// MulAdd returns a*b + c lane by lane.
func MulAdd[T num.Scalar](a, b, c Vec[T]) Vec[T] {
	dst, a, b := like(a, b)
	n := min(len(dst.data), len(c.data))
	dst.data = dst.data[:n]
	mulInto(dst, Vec[T]{data: a.data[:n]}, b)
	addInto(dst, dst, c)
	return dst
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T num.Scalar](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}
