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

package mat

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vmath/vec"
)

func TestConstructors(t *testing.T) {
	c0, c1, c2 := vec.New3(1, 2, 3), vec.New3(4, 5, 6), vec.New3(7, 8, 9)
	m := FromCols3(c0, c1, c2)
	require.Equal(t, c1, m.Col(1))
	require.Equal(t, 8, m[2][1])

	// Each consecutive group of N cells is one column.
	require.Equal(t, m, New3(1, 2, 3, 4, 5, 6, 7, 8, 9))
	require.Equal(t, m, FromArray3([9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	require.Equal(t, [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Array())

	require.Equal(t, Mat2[float32]{{1, 0}, {0, 1}}, Identity2[float32]())
	require.Equal(t, FromDiagonal4(vec.New4[int8](1, 2, 3, 4)), Mat4[int8]{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 4},
	})
	require.Equal(t, Mat2[uint16]{}, Zero2[uint16]())
	require.Equal(t, Mat3[float64]{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, One3[float64]())
	require.Equal(t, Mat2[int64]{{-1, -1}, {-1, -1}}, NegOne2[int64]())
}

func TestArrayRoundTrip(t *testing.T) {
	var a [16]float32
	for i := range a {
		a[i] = float32(i) * 0.5
	}
	m := FromArray4(a)
	require.Equal(t, a, m.Array())
	require.Equal(t, float32(0.5*(2*4+3)), m[2][3])

	b := [4]int{9, -9, 3, 0}
	require.Equal(t, b, FromArray2(b).Array())
}

func TestColOutOfRangePanics(t *testing.T) {
	m := Identity2[int]()
	i := 2
	require.Panics(t, func() { _ = m.Col(i) })
}

func TestLayout(t *testing.T) {
	require.Equal(t, uintptr(16), unsafe.Sizeof(Mat2f{}))
	require.Equal(t, uintptr(36), unsafe.Sizeof(Mat3f{}))
	require.Equal(t, uintptr(128), unsafe.Sizeof(Mat4d{}))
}

func TestMatrixArithmetic(t *testing.T) {
	a := New2(1, 2, 3, 4)
	b := New2(5, 6, 7, 8)

	require.Equal(t, New2(6, 8, 10, 12), a.Add(b))
	require.Equal(t, New2(4, 4, 4, 4), b.Sub(a))
	require.Equal(t, New2(5, 12, 21, 32), a.Mul(b))
	require.Equal(t, New2(5, 3, 2, 2), b.Div(a))
	require.Equal(t, New2(0, 0, 1, 0), b.Rem(a))
}

func TestVectorBroadcast(t *testing.T) {
	m := Identity3[float32]()
	v := vec.New3[float32](1, 2, 3)

	// Every column gets v added; no matrix-vector product.
	want := Mat3[float32]{{2, 2, 3}, {1, 3, 3}, {1, 2, 4}}
	require.Equal(t, want, m.AddVec(v))
	require.Equal(t, Mat3[float32]{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, m.MulVec(v))
	require.Equal(t, Mat3[float32]{{0, -2, -3}, {-1, -1, -3}, {-1, -2, -2}}, m.SubVec(v))
	require.Equal(t, Mat3[float32]{{1, 0, 0}, {0, 0.5, 0}, {0, 0, 1.0 / 3}}, m.DivVec(v))
	require.Equal(t, Mat3[float32]{{0, 0, 0}, {0, 1, 0}, {0, 0, 1}}, m.RemVec(v))
}

func TestScalarArithmetic(t *testing.T) {
	m := New2[float64](1, -2, 3, 4)

	require.Equal(t, New2[float64](3, 0, 5, 6), m.AddScalar(2))
	require.Equal(t, New2[float64](0, -3, 2, 3), m.SubScalar(1))
	require.Equal(t, New2[float64](-2, 4, -6, -8), m.MulScalar(-2))
	require.Equal(t, New2(0.5, -1, 1.5, 2), m.DivScalar(2))
	require.Equal(t, New2[float64](1, -2, 0, 1), m.RemScalar(3))

	inf := m.DivScalar(0)
	require.True(t, math.IsInf(inf[0][0], 1))
	require.True(t, math.IsInf(inf[0][1], -1))
}

func TestAssign(t *testing.T) {
	m := Identity2[int]()
	m.AddAssign(One2[int]())
	require.Equal(t, New2(2, 1, 1, 2), m)

	m.MulVecAssign(vec.New2(3, 5))
	require.Equal(t, New2(6, 5, 3, 10), m)

	m.SubScalarAssign(1)
	m.RemScalarAssign(4)
	require.Equal(t, New2(1, 0, 2, 1), m)

	m.DivAssign(New2(1, 1, 2, 1))
	m.SubVecAssign(vec.New2(1, 0))
	m.MulScalarAssign(10)
	m.AddScalarAssign(1)
	m.SubAssign(New2(0, 0, 0, 1))
	m.RemAssign(New2(7, 7, 7, 7))
	m.AddVecAssign(vec.New2(1, 1))
	m.DivVecAssign(vec.New2(1, 2))
	m.DivScalarAssign(1)
	m.RemVecAssign(vec.New2(100, 100))
	m.MulAssign(One2[int]())
	require.Equal(t, New2(2, 1, 2, 2), m)
}

func TestMapApply(t *testing.T) {
	m := New2[float32](0.4, 1.6, -2.5, 3)
	require.Equal(t, New2[int32](0, 2, -3, 3), Map2(m, func(x float32) int32 {
		return int32(math.Round(float64(x)))
	}))
	require.Equal(t, New2[float32](0.8, 3.2, -5, 6), m.Map(func(x float32) float32 { return 2 * x }))

	n := Identity4[int]()
	n.Apply(func(x int) int { return x - 1 })
	require.Equal(t, NegOne4[int]().Add(Identity4[int]()), n)

	require.Equal(t, Identity3[float64](), Map3(Identity3[int](), func(x int) float64 { return float64(x) }))
}

func BenchmarkAddVec(b *testing.B) {
	m := Identity4[float32]()
	v := vec.Splat4[float32](0.5)
	for i := 0; i < b.N; i++ {
		m = m.AddVec(v)
	}
	_ = m
}
