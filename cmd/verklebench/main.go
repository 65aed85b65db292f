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

// Command verklebench times tree construction, single-index proving,
// and batch proving/verification for a given width and leaf count. It
// is bench tooling only: nothing under this directory is part of the
// core, which depends on neither flags nor wall-clock measurement.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/kiln-verkle/kzgverkle/pcs"
	verkle "github.com/kiln-verkle/kzgverkle"
)

func main() {
	width := flag.Int("width", 8, "tree arity")
	leaves := flag.Int("n", 4096, "number of values in the tree")
	batch := flag.Int("batch", 200, "number of indices in the batch proof")
	flag.Parse()

	values := make([]pcs.Fr, *leaves)
	for i := range values {
		values[i].SetUint64(uint64(i))
	}

	start := time.Now()
	tree, err := verkle.New(values, *width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("build: width=%d n=%d depth=%d took %v\n", *width, *leaves, tree.Depth(), time.Since(start))

	start = time.Now()
	proof, err := tree.GenerateProof(0, values[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "single proof failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("single proof generate: took %v\n", time.Since(start))

	start = time.Now()
	ok := verkle.VerifyProof(tree.RootCommitment(), proof, *width)
	fmt.Printf("single proof verify: ok=%v took %v\n", ok, time.Since(start))

	count := *batch
	if count > *leaves {
		count = *leaves
	}
	rng := rand.New(rand.NewPCG(42, 7))
	seen := make(map[int]struct{}, count)
	indices := make([]int, 0, count)
	for len(indices) < count {
		idx := rng.IntN(*leaves)
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		indices = append(indices, idx)
	}
	claimed := make([]pcs.Fr, len(indices))
	for i, idx := range indices {
		claimed[i] = values[idx]
	}

	start = time.Now()
	batchProof, err := tree.GenerateBatchProof(indices, values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "batch proof failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("batch proof generate: |indices|=%d took %v\n", len(indices), time.Since(start))

	start = time.Now()
	ok = verkle.VerifyBatchProof(tree.RootCommitment(), batchProof, *width, indices, tree.Depth(), claimed)
	fmt.Printf("batch proof verify: ok=%v took %v\n", ok, time.Since(start))
}
