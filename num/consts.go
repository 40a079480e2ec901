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

package num

import (
	"math"
	"unsafe"
)

// Zero returns the additive identity of T.
func Zero[T Scalar]() T {
	var zero T
	return zero
}

// One returns the multiplicative identity of T.
func One[T Scalar]() T {
	return 1
}

// NegOne returns -1 in T. Only types with a negation satisfy Signed.
func NegOne[T Signed]() T {
	return -1
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf[T Floats](sign int) T {
	return T(math.Inf(sign))
}

// NaN returns an IEEE 754 "not-a-number" value.
func NaN[T Floats]() T {
	return T(math.NaN())
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Scalar]() T {
	var zero T
	bits := 8 * unsafe.Sizeof(zero)
	switch {
	case IsFloat[T]() && bits == 32:
		m := float32(math.MaxFloat32)
		return T(m)
	case IsFloat[T]():
		m := math.MaxFloat64
		return T(m)
	case IsSigned[T]():
		m := int64(1)<<(bits-1) - 1
		return T(m)
	default:
		zero--
		return zero
	}
}

// MinValue returns the smallest finite value of T: -MaxValue for floats,
// the most negative value for signed integers and 0 for unsigned ones.
func MinValue[T Scalar]() T {
	switch {
	case IsFloat[T]():
		return -MaxValue[T]()
	case IsSigned[T]():
		return -MaxValue[T]() - 1
	default:
		return 0
	}
}

// Cast converts v to the scalar type To.
//
// It is a plain Go numeric conversion and is only lossless where that
// conversion is: small integer literals into any scalar type.
//
// Example:
//
//	two := num.Cast[float32](2) // float32(2)
func Cast[To, From Scalar](v From) To {
	return To(v)
}

// IsFloat reports whether T is a floating-point type.
//
// Works for named types (type Meters float64) where a type switch on any(x)
// would not match.
func IsFloat[T Scalar]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Scalar]() bool {
	var m T
	m--
	return m < 0
}
