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
	"os"
	"strconv"
	"unsafe"

	"github.com/ajroetker/go-vmath/num"
)

// DispatchLevel is the instruction set the pack width was chosen for.
type DispatchLevel int

const (
	// DispatchScalar means no SIMD was detected or VMATH_NO_SIMD is set.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 is the x86-64 baseline, 128-bit.
	DispatchSSE2

	// DispatchAVX2 is 256-bit.
	DispatchAVX2

	// DispatchAVX512 is 512-bit.
	DispatchAVX512

	// DispatchNEON is ARM ASIMD, 128-bit.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the pack width in bytes: 16, 32 or 64.
func CurrentWidth() int {
	return currentWidth
}

// NoSimdEnv reports whether the VMATH_NO_SIMD environment variable asks for
// scalar mode. Any non-empty value other than a false boolean counts.
func NoSimdEnv() bool {
	val := os.Getenv("VMATH_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setScalarMode keeps 16-byte packs so scalar mode processes the same
// number of lanes as SSE2 and NEON.
func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}

// MaxLanes returns the number of T lanes in a pack at the current width.
//
// For example, with AVX2 (32 bytes):
//   - float32: 8 lanes
//   - float64: 4 lanes
//   - int16: 16 lanes
func MaxLanes[T num.Scalar]() int {
	var zero T
	return currentWidth / int(unsafe.Sizeof(zero))
}
