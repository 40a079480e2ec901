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
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vmath/vec"
	"github.com/ajroetker/go-vmath/workerpool"
)

func approxEqual32(a, b, tol float32) bool {
	return float32(math.Abs(float64(a-b))) <= tol
}

func randomVecs(r *rand.Rand, n int) []vec.Vec3[float32] {
	out := make([]vec.Vec3[float32], n)
	for i := range out {
		out[i] = vec.New3(r.Float32()*2-1, r.Float32()*2-1, r.Float32()*2-1+0.01)
	}
	return out
}

// =============================================================================
// Dispatch
// =============================================================================

func TestDispatch(t *testing.T) {
	require.Contains(t, []int{16, 32, 64}, CurrentWidth())
	require.NotEqual(t, "unknown", CurrentLevel().String())
	require.Equal(t, CurrentWidth()/4, MaxLanes[float32]())
	require.Equal(t, CurrentWidth()/8, MaxLanes[float64]())
	require.Equal(t, CurrentWidth(), MaxLanes[uint8]())
}

func TestNoSimdEnv(t *testing.T) {
	for _, tt := range []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	} {
		t.Setenv("VMATH_NO_SIMD", tt.val)
		require.Equal(t, tt.want, NoSimdEnv(), "VMATH_NO_SIMD=%q", tt.val)
	}
}

// =============================================================================
// Pack operations
// =============================================================================

func TestPackIdentities(t *testing.T) {
	n := MaxLanes[int32]()
	require.Equal(t, n, Zero[int32]().NumLanes())
	for _, x := range One[int32]().Data() {
		require.Equal(t, int32(1), x)
	}
	for _, x := range NegOne[float64]().Data() {
		require.Equal(t, -1.0, x)
	}
	require.Equal(t, int32(0), ReduceSum(Zero[int32]()))
	require.Equal(t, int32(n), ReduceSum(One[int32]()))
}

func TestPackArithmetic(t *testing.T) {
	n := MaxLanes[float32]()
	src := make([]float32, n+3)
	for i := range src {
		src[i] = float32(i + 1)
	}
	a := Load(src)
	require.Equal(t, n, a.NumLanes())

	two := Set[float32](2)
	sum := Add(a, two)
	diff := Sub(a, two)
	prod := Mul(a, two)
	quot := Div(a, two)
	fma := MulAdd(a, two, One[float32]())
	lo := Min(a, Set[float32](3))
	hi := Max(a, Set[float32](3))
	root := Sqrt(Mul(a, a))
	for i := range n {
		x := src[i]
		require.Equal(t, x+2, sum.Data()[i])
		require.Equal(t, x-2, diff.Data()[i])
		require.Equal(t, x*2, prod.Data()[i])
		require.Equal(t, x/2, quot.Data()[i])
		require.Equal(t, 2*x+1, fma.Data()[i])
		require.Equal(t, min(x, 3), lo.Data()[i])
		require.Equal(t, max(x, 3), hi.Data()[i])
		require.Equal(t, x, root.Data()[i])
	}
	require.Equal(t, float32(n*(n+1)/2), ReduceSum(a))

	dst := make([]float32, n)
	prod.Store(dst)
	require.Equal(t, prod.Data(), dst)

	short := make([]float32, 1)
	Store(prod, short)
	require.Equal(t, float32(2), short[0])
}

func TestLoadShort(t *testing.T) {
	v := Load([]int16{7, 8})
	require.Equal(t, 2, v.NumLanes())
	require.Equal(t, int16(15), ReduceSum(v))
}

// =============================================================================
// Batch kernels
// =============================================================================

func TestDot3(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, MaxLanes[float32](), 3*MaxLanes[float32]() + 5} {
		a, b := randomVecs(r, n), randomVecs(r, n)
		dst := make([]float32, n)
		Dot3(dst, a, b)
		for i := range n {
			require.True(t, approxEqual32(a[i].Dot(b[i]), dst[i], 1e-6), "i=%d: got %v want %v", i, dst[i], a[i].Dot(b[i]))
		}
	}
}

func TestLength3Integer(t *testing.T) {
	src := make([]vec.Vec3[int64], 9)
	for i := range src {
		src[i] = vec.New3(int64(2*i), int64(3*i), int64(6*i))
	}
	dst := make([]int64, len(src))
	Length3(dst, src)
	for i := range src {
		require.Equal(t, int64(7*i), dst[i])
	}
}

func TestNormalize3InPlace(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	src := randomVecs(r, 4*MaxLanes[float32]()+1)
	want := make([]vec.Vec3[float32], len(src))
	for i, v := range src {
		want[i] = v.Normalize()
	}

	Normalize3(src, src)
	lengths := make([]float32, len(src))
	Length3(lengths, src)
	for i := range src {
		require.True(t, approxEqual32(1, lengths[i], 1e-5), "length %v", lengths[i])
		for c := range 3 {
			require.True(t, approxEqual32(want[i][c], src[i][c], 1e-6))
		}
	}
}

func TestCross3(t *testing.T) {
	n := 2*MaxLanes[float64]() + 1
	a := make([]vec.Vec3[float64], n)
	b := make([]vec.Vec3[float64], n)
	for i := range a {
		a[i] = vec.UnitX3[float64]().MulScalar(float64(i + 1))
		b[i] = vec.UnitY3[float64]()
	}
	dst := make([]vec.Vec3[float64], n)
	Cross3(dst, a, b)
	for i := range dst {
		require.Equal(t, vec.UnitZ3[float64]().MulScalar(float64(i+1)), dst[i])
	}

	// Aliasing the output with an input.
	Cross3(a, a, a)
	for i := range a {
		require.Equal(t, vec.Zero3[float64](), a[i])
	}
}

func TestKernelAllocationsIndependentOfLength(t *testing.T) {
	lanes := MaxLanes[float32]()
	r := rand.New(rand.NewPCG(11, 12))
	short, long := randomVecs(r, lanes), randomVecs(r, 64*lanes)
	dots := make([]float32, len(long))
	out := make([]vec.Vec3[float32], len(long))

	kernels := []struct {
		name string
		run  func(src []vec.Vec3[float32])
	}{
		{"Dot3", func(src []vec.Vec3[float32]) { Dot3(dots, src, src) }},
		{"Length3", func(src []vec.Vec3[float32]) { Length3(dots, src) }},
		{"Normalize3", func(src []vec.Vec3[float32]) { Normalize3(out, src) }},
		{"Cross3", func(src []vec.Vec3[float32]) { Cross3(out, src, src) }},
	}
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			one := testing.AllocsPerRun(20, func() { k.run(short) })
			many := testing.AllocsPerRun(20, func() { k.run(long) })
			require.Equal(t, one, many, "allocations grow with the number of packs")
		})
	}
}

func TestPackOpsShorterOperand(t *testing.T) {
	a := Load([]int32{1, 2, 3})
	b := Load([]int32{10, 20})
	require.Equal(t, []int32{11, 22}, Add(a, b).Data())
	require.Equal(t, []int32{10, 40}, Mul(b, Load([]int32{1, 2, 3})).Data())
	require.Equal(t, []int32{11, 42}, MulAdd(a, b, Load([]int32{1, 2, 3, 4})).Data())
}

func TestKernelLengthChecks(t *testing.T) {
	a := make([]vec.Vec3[float32], 3)
	require.PanicsWithValue(t, "lane: dst is too short", func() {
		Dot3(make([]float32, 2), a, a)
	})
	require.PanicsWithValue(t, "lane: a and b differ in length", func() {
		Cross3(a, a, a[:2])
	})
	require.PanicsWithValue(t, "lane: dst is too short", func() {
		Normalize3(a[:1], a)
	})
}

// =============================================================================
// Parallel kernels
// =============================================================================

func TestParallelKernels(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	r := rand.New(rand.NewPCG(5, 6))
	for _, n := range []int{17, minParallel + 33} {
		a, b := randomVecs(r, n), randomVecs(r, n)

		want := make([]float32, n)
		Dot3(want, a, b)
		got := make([]float32, n)
		ParallelDot3(pool, got, a, b)
		for i := range n {
			require.True(t, approxEqual32(want[i], got[i], 1e-6), "dot %d: %v vs %v", i, want[i], got[i])
		}

		wantN := make([]vec.Vec3[float32], n)
		Normalize3(wantN, a)
		ParallelNormalize3(pool, a, a)
		for i := range n {
			for c := range 3 {
				require.True(t, approxEqual32(wantN[i][c], a[i][c], 1e-6), "normalize %d: %v vs %v", i, wantN[i], a[i])
			}
		}
	}
}

func TestTransformContext(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	src := randomVecs(rand.New(rand.NewPCG(7, 8)), 1000)
	dst := make([]vec.Vec3[float32], len(src))
	err := TransformContext(context.Background(), pool, dst, src, func(v vec.Vec3[float32]) (vec.Vec3[float32], error) {
		return v.MulScalar(2), nil
	})
	require.NoError(t, err)
	for i := range src {
		require.Equal(t, src[i].MulScalar(2), dst[i])
	}
}

func TestTransformContextError(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	errDegenerate := errors.New("degenerate vector")
	src := make([]vec.Vec3[float64], 500)
	for i := range src {
		src[i] = vec.Splat3(1.0)
	}
	src[321] = vec.Zero3[float64]()

	dst := make([]vec.Vec3[float64], len(src))
	err := TransformContext(context.Background(), pool, dst, src, func(v vec.Vec3[float64]) (vec.Vec3[float64], error) {
		if v.LengthSquared() == 0 {
			return v, errDegenerate
		}
		return v.Normalize(), nil
	})
	require.ErrorIs(t, err, errDegenerate)
	require.ErrorContains(t, err, "element 321")
}

func TestTransformContextCanceled(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := make([]vec.Vec3[int], 10)
	err := TransformContext(ctx, pool, src, src, func(v vec.Vec3[int]) (vec.Vec3[int], error) {
		return v, nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkNormalize3(b *testing.B) {
	src := randomVecs(rand.New(rand.NewPCG(9, 10)), 1024)
	dst := make([]vec.Vec3[float32], len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Normalize3(dst, src)
	}
}

func BenchmarkNormalizeScalar(b *testing.B) {
	src := randomVecs(rand.New(rand.NewPCG(9, 10)), 1024)
	dst := make([]vec.Vec3[float32], len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, v := range src {
			dst[j] = v.Normalize()
		}
	}
}
