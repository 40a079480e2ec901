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
	"fmt"

	"github.com/ajroetker/go-vmath/num"
	"github.com/ajroetker/go-vmath/vec"
	"github.com/ajroetker/go-vmath/workerpool"
)

// minParallel is the batch size below which the parallel kernels run on the
// caller's goroutine.
const minParallel = 4096

// ParallelDot3 is Dot3 split across the workers of pool.
func ParallelDot3[T num.Scalar](pool *workerpool.Pool, dst []T, a, b []vec.Vec3[T]) {
	checkPair(len(a), len(b))
	checkLen(len(dst), len(a))
	if len(a) < minParallel {
		Dot3(dst, a, b)
		return
	}
	pool.ParallelFor(len(a), func(start, end int) {
		Dot3(dst[start:end], a[start:end], b[start:end])
	})
}

// ParallelNormalize3 is Normalize3 split across the workers of pool.
func ParallelNormalize3[T num.Scalar](pool *workerpool.Pool, dst, src []vec.Vec3[T]) {
	checkLen(len(dst), len(src))
	if len(src) < minParallel {
		Normalize3(dst, src)
		return
	}
	pool.ParallelFor(len(src), func(start, end int) {
		Normalize3(dst[start:end], src[start:end])
	})
}

// TransformContext sets dst[i] to fn(src[i]) using the workers of pool. It
// stops at the first error or when ctx is done and returns that error; dst
// is then partially written.
func TransformContext[T num.Scalar](ctx context.Context, pool *workerpool.Pool, dst, src []vec.Vec3[T], fn func(vec.Vec3[T]) (vec.Vec3[T], error)) error {
	checkLen(len(dst), len(src))
	return pool.ParallelForContext(ctx, len(src), func(ctx context.Context, start, end int) error {
		for i := start; i < end; i++ {
			if (i-start)%256 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			v, err := fn(src[i])
			if err != nil {
				return fmt.Errorf("transform element %d: %w", i, err)
			}
			dst[i] = v
		}
		return nil
	})
}
