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

// Cross returns the cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - o[1]*v[2],
		v[2]*o[0] - o[2]*v[0],
		v[0]*o[1] - o[0]*v[1],
	}
}

// Extend returns a Vec3 with v as x, y and the given z.
func (v Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{v[0], v[1], z}
}

// Extend returns a Vec4 with v as x, y, z and the given w.
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], w}
}

// Truncate drops the z component.
func (v Vec3[T]) Truncate() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// Truncate drops the w component.
func (v Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}
