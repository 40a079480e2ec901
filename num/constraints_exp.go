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

//go:build numtraits

package num

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point types, delegated to
// constraints.Float.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer types, delegated to
// constraints.Signed.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer types, delegated to
// constraints.Unsigned.
type UnsignedInts interface {
	constraints.Unsigned
}
