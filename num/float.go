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

import "math"

// This file provides the elementary float operations. For floating-point T
// they follow the math package (IEEE 754); float32 values are widened to
// float64 and narrowed back, which is exact for every function here.
//
// Integer T are accepted so generic vector code does not need a second
// method set: an integer is already integral, so the rounding family is the
// identity, Fract is zero and Sqrt is the integer square root.

// Sqrt returns the square root of x. Sqrt of a negative float is NaN.
//
// For integers it is the exact floor of the root, computed without rounding
// through float64, and it panics if x is negative.
func Sqrt[T Scalar](x T) T {
	if IsFloat[T]() {
		return T(math.Sqrt(float64(x)))
	}
	if x < 0 {
		panic("num: square root of a negative integer")
	}
	return T(isqrt(uint64(x)))
}

// isqrt returns floor(sqrt(u)). The float64 estimate is off by at most one
// near 2^64 and is corrected in integer arithmetic.
func isqrt(u uint64) uint64 {
	r := min(uint64(math.Sqrt(float64(u))), math.MaxUint32)
	for r*r > u {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= u {
		r++
	}
	return r
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Scalar](x T) T {
	if !IsFloat[T]() {
		return x
	}
	return T(math.Floor(float64(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T Scalar](x T) T {
	if !IsFloat[T]() {
		return x
	}
	return T(math.Ceil(float64(x)))
}

// Round returns the nearest integer, rounding half away from zero.
//
// The rule is the same for every scalar type: Round(2.5) == 3,
// Round(-2.5) == -3.
func Round[T Scalar](x T) T {
	if !IsFloat[T]() {
		return x
	}
	return T(math.Round(float64(x)))
}

// Trunc returns the integer value of x, rounding toward zero.
func Trunc[T Scalar](x T) T {
	if !IsFloat[T]() {
		return x
	}
	return T(math.Trunc(float64(x)))
}

// Fract returns the fractional part x - Trunc(x). The result has the sign
// of x.
func Fract[T Scalar](x T) T {
	if !IsFloat[T]() {
		return 0
	}
	return x - T(math.Trunc(float64(x)))
}

// Abs returns the absolute value of x. Abs(-0.0) is +0.0.
func Abs[T Scalar](x T) T {
	if IsFloat[T]() {
		return T(math.Abs(float64(x)))
	}
	if x < 0 {
		return -x
	}
	return x
}

// Rem returns the remainder of a / b, with the sign of a.
//
// Floats use math.Mod. Integers use the % operator, so a zero divisor
// panics like any Go integer division.
func Rem[T Scalar](a, b T) T {
	switch {
	case IsFloat[T]():
		return T(math.Mod(float64(a), float64(b)))
	case IsSigned[T]():
		return T(int64(a) % int64(b))
	default:
		return T(uint64(a) % uint64(b))
	}
}
