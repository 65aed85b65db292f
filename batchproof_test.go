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

package verkle

import (
	"math/rand/v2"
	"testing"

	"github.com/kiln-verkle/kzgverkle/pcs"
)

// oddsZeroed builds the [0..n) vector used by scenarios 1 and 2, with
// odd positions zeroed out.
func oddsZeroed(n int) []pcs.Fr {
	values := make([]pcs.Fr, n)
	for i := range values {
		if i%2 == 0 {
			values[i].SetUint64(uint64(i))
		}
	}
	return values
}

func claimedValues(values []pcs.Fr, indices []int) []pcs.Fr {
	out := make([]pcs.Fr, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}
	return out
}

// TestBatchProofWidthThreeScenario exercises scenario 1.
func TestBatchProofWidthThreeScenario(t *testing.T) {
	values := oddsZeroed(27)
	indices := []int{1, 2, 6, 12, 15, 16, 25}

	tree, err := New(values, 3)
	if err != nil {
		t.Fatal(err)
	}

	proof, err := tree.GenerateBatchProof(indices, values)
	if err != nil {
		t.Fatal(err)
	}

	claimed := claimedValues(values, indices)
	if !VerifyBatchProof(tree.RootCommitment(), proof, 3, indices, tree.Depth(), claimed) {
		t.Fatal("scenario 1 batch proof was rejected")
	}

	// Tamper with values[2] (2 -> 3) and re-verify with the new claim:
	// the proof's own linkage no longer matches the claimed value.
	tamperedClaimed := append([]pcs.Fr{}, claimed...)
	var three pcs.Fr
	three.SetUint64(3)
	for i, idx := range indices {
		if idx == 2 {
			tamperedClaimed[i] = three
		}
	}
	if VerifyBatchProof(tree.RootCommitment(), proof, 3, indices, tree.Depth(), tamperedClaimed) {
		t.Fatal("scenario 1 tampered claim was accepted")
	}
}

// TestBatchProofWidthFiveScenario exercises scenario 2.
func TestBatchProofWidthFiveScenario(t *testing.T) {
	values := oddsZeroed(3125)
	indices := []int{1, 2, 6, 12, 15, 16, 25, 33, 34, 35}

	tree, err := New(values, 5)
	if err != nil {
		t.Fatal(err)
	}
	proof, err := tree.GenerateBatchProof(indices, values)
	if err != nil {
		t.Fatal(err)
	}
	claimed := claimedValues(values, indices)
	if !VerifyBatchProof(tree.RootCommitment(), proof, 5, indices, tree.Depth(), claimed) {
		t.Fatal("scenario 2 batch proof was rejected")
	}
}

// TestBatchProofWidthTwoRandomSubsetScenario exercises scenario 3: a
// 20%-random subset of a width=2, N=4096 tree, whose depth must be 11.
func TestBatchProofWidthTwoRandomSubsetScenario(t *testing.T) {
	values := valuesOfLen(4096)
	tree, err := New(values, 2)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Depth() != 11 {
		t.Fatalf("Depth() = %d, want 11", tree.Depth())
	}

	rng := rand.New(rand.NewPCG(1, 2))
	seen := make(map[int]struct{})
	var indices []int
	for len(indices) < 4096/5 {
		idx := rng.IntN(4096)
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		indices = append(indices, idx)
	}

	proof, err := tree.GenerateBatchProof(indices, values)
	if err != nil {
		t.Fatal(err)
	}
	claimed := claimedValues(values, indices)
	if !VerifyBatchProof(tree.RootCommitment(), proof, 2, indices, tree.Depth(), claimed) {
		t.Fatal("scenario 3 batch proof was rejected")
	}
}

func TestBatchProofRootMismatchRejected(t *testing.T) {
	values := oddsZeroed(27)
	indices := []int{1, 2, 6}
	tree, err := New(values, 3)
	if err != nil {
		t.Fatal(err)
	}
	other, err := New(valuesOfLen(27), 3)
	if err != nil {
		t.Fatal(err)
	}

	proof, err := tree.GenerateBatchProof(indices, values)
	if err != nil {
		t.Fatal(err)
	}
	claimed := claimedValues(values, indices)
	if VerifyBatchProof(other.RootCommitment(), proof, 3, indices, tree.Depth(), claimed) {
		t.Fatal("verifying against an unrelated root must fail")
	}
}

// TestBatchProofLinkageRejection exercises the linkage-rejection
// property: tampering with a present internal slot's claimed value
// must cause verification to fail outright, rather than silently
// returning true the way a discarded b1 & b2 conjunction would.
func TestBatchProofLinkageRejection(t *testing.T) {
	values := oddsZeroed(27)
	indices := []int{1, 2, 6, 12, 15, 16, 25}
	tree, err := New(values, 3)
	if err != nil {
		t.Fatal(err)
	}
	proof, err := tree.GenerateBatchProof(indices, values)
	if err != nil {
		t.Fatal(err)
	}
	claimed := claimedValues(values, indices)
	if !VerifyBatchProof(tree.RootCommitment(), proof, 3, indices, tree.Depth(), claimed) {
		t.Fatal("untampered proof should verify")
	}

	tampered := make(BatchProof, len(proof))
	copy(tampered, proof)
	for slot, node := range tampered {
		if node == nil || len(node.Points) == 0 {
			continue
		}
		clone := *node
		clone.Points = append([]ProofPoint{}, node.Points...)
		var bump pcs.Fr
		bump.SetUint64(777)
		clone.Points[0].Value.Add(&clone.Points[0].Value, &bump)
		tampered[slot] = &clone
		break
	}

	if VerifyBatchProof(tree.RootCommitment(), tampered, 3, indices, tree.Depth(), claimed) {
		t.Fatal("tampering with a present slot's claimed value must be rejected")
	}
}

func TestBatchProofShapeMatchesTouchedSlots(t *testing.T) {
	values := oddsZeroed(27)
	indices := []int{1, 2, 6, 12, 15, 16, 25}
	tree, err := New(values, 3)
	if err != nil {
		t.Fatal(err)
	}
	proof, err := tree.GenerateBatchProof(indices, values)
	if err != nil {
		t.Fatal(err)
	}

	expected := touchedSlots(indices, 3, tree.Depth())
	presentCount := 0
	for _, node := range proof {
		if node != nil {
			presentCount++
		}
	}
	if presentCount != len(expected) {
		t.Fatalf("present slot count = %d, want %d", presentCount, len(expected))
	}

	total := internalSlotCount(3, tree.Depth()+1)
	if len(proof) != total {
		t.Fatalf("proof length = %d, want %d", len(proof), total)
	}
}
