// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package verkletest holds test fixtures: deterministic value-sequence
// generators and random-subset index pickers. The root package's
// cross-width property test builds its scenarios from them; the other
// test files use their own local helpers.
package verkletest

import (
	"math/rand/v2"

	"github.com/kiln-verkle/kzgverkle/pcs"
)

// SequentialFr returns [0, 1, ..., n-1] as scalar-field elements.
func SequentialFr(n int) []pcs.Fr {
	values := make([]pcs.Fr, n)
	for i := range values {
		values[i].SetUint64(uint64(i))
	}
	return values
}

// OddsZeroedFr returns [0, 1, ..., n-1] with every odd position zeroed,
// the value pattern of the design's width=3 and width=5 batch scenarios.
func OddsZeroedFr(n int) []pcs.Fr {
	values := make([]pcs.Fr, n)
	for i := range values {
		if i%2 == 0 {
			values[i].SetUint64(uint64(i))
		}
	}
	return values
}

// RandomSubset deterministically picks a pseudo-random, duplicate-free
// subset of count indices from [0, n), seeded so a test run is
// reproducible across machines.
func RandomSubset(seed1, seed2 uint64, n, count int) []int {
	if count > n {
		count = n
	}
	rng := rand.New(rand.NewPCG(seed1, seed2))
	seen := make(map[int]struct{}, count)
	indices := make([]int, 0, count)
	for len(indices) < count {
		idx := rng.IntN(n)
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		indices = append(indices, idx)
	}
	return indices
}

// ClaimedFr gathers values at each index, in index order, the shape
// VerifyBatchProof expects for its claimedValues argument.
func ClaimedFr(values []pcs.Fr, indices []int) []pcs.Fr {
	out := make([]pcs.Fr, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}
	return out
}
