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

// columns matches any array of N column vectors.
type columns[V any] interface {
	~[2]V | ~[3]V | ~[4]V
}

func zipCols[V any, M columns[V]](a, b M, f func(V, V) V) M {
	for i := 0; i < len(a); i++ {
		a[i] = f(a[i], b[i])
	}
	return a
}

func broadcastCol[V any, M columns[V]](a M, v V, f func(V, V) V) M {
	for i := 0; i < len(a); i++ {
		a[i] = f(a[i], v)
	}
	return a
}

func eachCol[V any, M columns[V]](a M, f func(V) V) M {
	for i := 0; i < len(a); i++ {
		a[i] = f(a[i])
	}
	return a
}
