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

package vec

import "github.com/ajroetker/go-vmath/num"

// This file holds the single implementation of every vector operation. The
// functions are generic over the arity through Vector[T]; the methods in
// vec.gen.go only forward to them. The loops index with len(a) because a
// type set of differently sized arrays has no core type to range over.

func add[T num.Scalar, V Vector[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] += b[i]
	}
	return a
}

func sub[T num.Scalar, V Vector[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] -= b[i]
	}
	return a
}

func mul[T num.Scalar, V Vector[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] *= b[i]
	}
	return a
}

func div[T num.Scalar, V Vector[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] /= b[i]
	}
	return a
}

func rem[T num.Scalar, V Vector[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] = num.Rem(a[i], b[i])
	}
	return a
}

func addScalar[T num.Scalar, V Vector[T]](a V, s T) V {
	for i := 0; i < len(a); i++ {
		a[i] += s
	}
	return a
}

func subScalar[T num.Scalar, V Vector[T]](a V, s T) V {
	for i := 0; i < len(a); i++ {
		a[i] -= s
	}
	return a
}

func mulScalar[T num.Scalar, V Vector[T]](a V, s T) V {
	for i := 0; i < len(a); i++ {
		a[i] *= s
	}
	return a
}

func divScalar[T num.Scalar, V Vector[T]](a V, s T) V {
	for i := 0; i < len(a); i++ {
		a[i] /= s
	}
	return a
}

func remScalar[T num.Scalar, V Vector[T]](a V, s T) V {
	for i := 0; i < len(a); i++ {
		a[i] = num.Rem(a[i], s)
	}
	return a
}

// ScalarAdd returns s + v[i] for every component.
func ScalarAdd[T num.Scalar, V Vector[T]](s T, v V) V {
	for i := 0; i < len(v); i++ {
		v[i] = s + v[i]
	}
	return v
}

// ScalarSub returns s - v[i] for every component.
//
// Example:
//
//	vec.ScalarSub(float32(1), vec.New2[float32](0.25, 2)) // {0.75, -1}
func ScalarSub[T num.Scalar, V Vector[T]](s T, v V) V {
	for i := 0; i < len(v); i++ {
		v[i] = s - v[i]
	}
	return v
}

// ScalarMul returns s * v[i] for every component.
func ScalarMul[T num.Scalar, V Vector[T]](s T, v V) V {
	for i := 0; i < len(v); i++ {
		v[i] = s * v[i]
	}
	return v
}

// ScalarDiv returns s / v[i] for every component.
func ScalarDiv[T num.Scalar, V Vector[T]](s T, v V) V {
	for i := 0; i < len(v); i++ {
		v[i] = s / v[i]
	}
	return v
}

// ScalarRem returns the remainder of s / v[i] for every component.
func ScalarRem[T num.Scalar, V Vector[T]](s T, v V) V {
	for i := 0; i < len(v); i++ {
		v[i] = num.Rem(s, v[i])
	}
	return v
}

func neg[T num.Scalar, V Vector[T]](a V) V {
	for i := 0; i < len(a); i++ {
		a[i] = -a[i]
	}
	return a
}

// minOf and maxOf compare strictly: when the comparison is false, including
// equal values and NaN, b is returned.
func minOf[T num.Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxOf[T num.Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minV[T num.Scalar, V Vector[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] = minOf(a[i], b[i])
	}
	return a
}

func maxV[T num.Scalar, V Vector[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] = maxOf(a[i], b[i])
	}
	return a
}

// clamp is min(max(a, lo), hi). lo must not exceed hi in any component;
// when it does the result is hi in that component.
func clamp[T num.Scalar, V Vector[T]](a, lo, hi V) V {
	return minV[T](maxV[T](a, lo), hi)
}

func minElement[T num.Scalar, V Vector[T]](a V) T {
	m := a[0]
	for i := 1; i < len(a); i++ {
		m = minOf(m, a[i])
	}
	return m
}

func maxElement[T num.Scalar, V Vector[T]](a V) T {
	m := a[0]
	for i := 1; i < len(a); i++ {
		m = maxOf(m, a[i])
	}
	return m
}

func elementSum[T num.Scalar, V Vector[T]](a V) T {
	s := a[0]
	for i := 1; i < len(a); i++ {
		s += a[i]
	}
	return s
}

func elementProduct[T num.Scalar, V Vector[T]](a V) T {
	p := a[0]
	for i := 1; i < len(a); i++ {
		p *= a[i]
	}
	return p
}

func dot[T num.Scalar, V Vector[T]](a, b V) T {
	return elementSum[T](mul[T](a, b))
}

func length[T num.Scalar, V Vector[T]](a V) T {
	return num.Sqrt(dot[T](a, a))
}

// normalize divides by the length without checking it. A zero vector yields
// NaN components for floats and panics for integers.
func normalize[T num.Scalar, V Vector[T]](a V) V {
	return divScalar(a, length[T](a))
}

func apply[T num.Scalar, V Vector[T]](a V, f func(T) T) V {
	for i := 0; i < len(a); i++ {
		a[i] = f(a[i])
	}
	return a
}

// reflect returns a - 2*dot(a, n)*n. n is expected to be unit length.
func reflect[T num.Scalar, V Vector[T]](a, n V) V {
	two := num.Cast[T](2)
	return sub[T](a, mulScalar(n, two*dot[T](a, n)))
}

// refract returns the refraction direction of incident a through a surface
// with unit normal n and ratio of indices of refraction eta. On total
// internal reflection it returns the zero vector.
func refract[T num.Scalar, V Vector[T]](a, n V, eta T) V {
	one := num.One[T]()
	nDotI := dot[T](n, a)
	k := one - eta*eta*(one-nDotI*nDotI)
	if k >= 0 {
		return sub[T](mulScalar(a, eta), mulScalar(n, eta*nDotI+num.Sqrt(k)))
	}
	var zero V
	return zero
}
