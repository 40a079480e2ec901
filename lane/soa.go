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

package lane

import (
	"github.com/ajroetker/go-vmath/num"
	"github.com/ajroetker/go-vmath/vec"
)

// soa3 holds one pack worth of Vec3 components split by axis. The packs
// wrap one backing buffer that every step of a kernel reuses.
type soa3[T num.Scalar] struct {
	x, y, z Vec[T]
}

func newSoA3[T num.Scalar](lanes int) soa3[T] {
	buf := make([]T, 3*lanes)
	return soa3[T]{
		x: Vec[T]{data: buf[:lanes:lanes]},
		y: Vec[T]{data: buf[lanes : 2*lanes : 2*lanes]},
		z: Vec[T]{data: buf[2*lanes:]},
	}
}

// load gathers one pack of vectors from src.
func (s soa3[T]) load(src []vec.Vec3[T]) {
	for i := range s.x.data {
		s.x.data[i], s.y.data[i], s.z.data[i] = src[i][0], src[i][1], src[i][2]
	}
}

// store scatters one pack of vectors into dst.
func (s soa3[T]) store(dst []vec.Vec3[T]) {
	for i := range s.x.data {
		dst[i] = vec.Vec3[T]{s.x.data[i], s.y.data[i], s.z.data[i]}
	}
}

// dot3Into sets dst to the lane-wise dot product of a and b, summing
// x, y, z in that order like vec.Vec3.Dot. tmp is scratch.
func dot3Into[T num.Scalar](dst, tmp Vec[T], a, b soa3[T]) {
	mulInto(dst, a.x, b.x)
	mulInto(tmp, a.y, b.y)
	addInto(dst, dst, tmp)
	mulInto(tmp, a.z, b.z)
	addInto(dst, dst, tmp)
}

func checkLen(dst, src int) {
	if dst < src {
		panic("lane: dst is too short")
	}
}

func checkPair(a, b int) {
	if a != b {
		panic("lane: a and b differ in length")
	}
}

// Dot3 sets dst[i] to a[i].Dot(b[i]). It panics if a and b differ in length
// or dst is shorter than a.
func Dot3[T num.Scalar](dst []T, a, b []vec.Vec3[T]) {
	checkPair(len(a), len(b))
	checkLen(len(dst), len(a))

	lanes := MaxLanes[T]()
	sa, sb := newSoA3[T](lanes), newSoA3[T](lanes)
	d, tmp := Zero[T](), Zero[T]()
	i := 0
	for ; i+lanes <= len(a); i += lanes {
		sa.load(a[i:])
		sb.load(b[i:])
		dot3Into(d, tmp, sa, sb)
		Store(d, dst[i:])
	}
	for ; i < len(a); i++ {
		dst[i] = a[i].Dot(b[i])
	}
}

// Length3 sets dst[i] to src[i].Length(). It panics if dst is shorter than
// src.
func Length3[T num.Scalar](dst []T, src []vec.Vec3[T]) {
	checkLen(len(dst), len(src))

	lanes := MaxLanes[T]()
	s := newSoA3[T](lanes)
	l, tmp := Zero[T](), Zero[T]()
	i := 0
	for ; i+lanes <= len(src); i += lanes {
		s.load(src[i:])
		dot3Into(l, tmp, s, s)
		sqrtInto(l, l)
		Store(l, dst[i:])
	}
	for ; i < len(src); i++ {
		dst[i] = src[i].Length()
	}
}

// Normalize3 sets dst[i] to src[i].Normalize(). dst and src may be the same
// slice. It panics if dst is shorter than src.
func Normalize3[T num.Scalar](dst, src []vec.Vec3[T]) {
	checkLen(len(dst), len(src))

	lanes := MaxLanes[T]()
	s := newSoA3[T](lanes)
	l, tmp := Zero[T](), Zero[T]()
	i := 0
	for ; i+lanes <= len(src); i += lanes {
		s.load(src[i:])
		dot3Into(l, tmp, s, s)
		sqrtInto(l, l)
		divInto(s.x, s.x, l)
		divInto(s.y, s.y, l)
		divInto(s.z, s.z, l)
		s.store(dst[i:])
	}
	for ; i < len(src); i++ {
		dst[i] = src[i].Normalize()
	}
}

// Cross3 sets dst[i] to a[i].Cross(b[i]). dst may alias a or b. It panics if
// a and b differ in length or dst is shorter than a.
func Cross3[T num.Scalar](dst, a, b []vec.Vec3[T]) {
	checkPair(len(a), len(b))
	checkLen(len(dst), len(a))

	lanes := MaxLanes[T]()
	sa, sb, out := newSoA3[T](lanes), newSoA3[T](lanes), newSoA3[T](lanes)
	tmp := Zero[T]()
	i := 0
	for ; i+lanes <= len(a); i += lanes {
		sa.load(a[i:])
		sb.load(b[i:])
		mulInto(out.x, sa.y, sb.z)
		mulInto(tmp, sb.y, sa.z)
		subInto(out.x, out.x, tmp)
		mulInto(out.y, sa.z, sb.x)
		mulInto(tmp, sb.z, sa.x)
		subInto(out.y, out.y, tmp)
		mulInto(out.z, sa.x, sb.y)
		mulInto(tmp, sb.x, sa.y)
		subInto(out.z, out.z, tmp)
		out.store(dst[i:])
	}
	for ; i < len(a); i++ {
		dst[i] = a[i].Cross(b[i])
	}
}
