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

// Package num provides the scalar capabilities that generic vector and
// matrix code is built on: identity constants, the elementary rounding and
// square-root functions, remainder and numeric casts.
//
// Every capability is a plain generic function resolved at instantiation,
// so asking for a capability a scalar type lacks is a compile error:
//
//	one := num.One[float32]()   // 1
//	neg := num.NegOne[int16]()  // -1
//	num.NegOne[uint8]()         // does not compile
//
// The constraint type sets are defined by this package by default. Building
// with -tags numtraits composes them from golang.org/x/exp/constraints
// instead, so code that already speaks that vocabulary can pass its own
// constraints through unchanged.
package num

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Signed is a constraint for types that have a negation: signed integers
// and floats.
type Signed interface {
	SignedInts | Floats
}

// Scalar is a constraint for every type that can be stored in a vector or
// matrix component.
type Scalar interface {
	Integers | Floats
}
