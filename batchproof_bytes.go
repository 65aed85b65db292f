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
	"bytes"
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/kiln-verkle/kzgverkle/pcs"
)

// BatchProofBytes is the byte-mode counterpart of BatchProof.
type BatchProofBytes []*ProofNodeBytes

// GenerateBatchProof proves membership of values at every index in
// indices, in the byte-mode tree. values must be the tree's full
// leaf-value sequence, in the same order it was built with.
func (t *TreeBytes) GenerateBatchProof(indices []int, values [][]byte) (BatchProofBytes, error) {
	if len(indices) == 0 {
		return nil, errIndicesEmpty
	}
	if len(values) != t.leafSpan() {
		return nil, errValuesMismatch
	}
	for _, idx := range indices {
		if idx < 0 || idx >= t.leafSpan() {
			return nil, errIndexOutOfRange
		}
	}

	sInt := internalSlotCount(t.width, t.depth)
	touched := touchedSlots(indices, t.width, t.depth)
	total := internalSlotCount(t.width, t.depth+1)

	proof := make(BatchProofBytes, total)
	slots := make([]int, 0, len(touched))
	for slot := range touched {
		slots = append(slots, slot)
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, slot := range slots {
		slot, positions := slot, touched[slot]
		g.Go(func() error {
			node := t.arena[slot]

			points := make([]pcs.Point, len(positions))
			proofPoints := make([]ProofPointBytes, len(positions))
			for i, pos := range positions {
				var y []byte
				if node.isLeaf() {
					y = values[firstLeafIndex(slot, sInt, t.width)+pos]
				} else {
					child := t.arena[t.width*slot+1+pos]
					y = pcs.EncodeBytes(child.commitment)
				}
				points[i] = pcs.Point{X: pcs.DomainPoint(pos), Y: pcs.FrFromValueBytes(y)}
				proofPoints[i] = ProofPointBytes{Pos: pos, Value: y}
			}

			opening, err := t.params.Open(node.polynomial, points)
			if err != nil {
				return err
			}
			proof[slot] = &ProofNodeBytes{
				Commitment: node.commitment,
				Proof:      opening,
				Points:     proofPoints,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, proofGenerateError("aggregated_open", err)
	}
	return proof, nil
}

// VerifyBatchProofBytes is the byte-mode counterpart of
// VerifyBatchProof, including the linkage check and the actual
// conjunction across every present slot.
func VerifyBatchProofBytes(root pcs.Commitment, proof BatchProofBytes, width int, indices []int, depth int, claimedValues [][]byte) bool {
	if len(indices) != len(claimedValues) {
		return false
	}
	if len(proof) == 0 || proof[0] == nil {
		return false
	}
	if !commitmentsEqual(proof[0].Commitment, root) {
		return false
	}

	sInt := internalSlotCount(width, depth)
	total := internalSlotCount(width, depth+1)
	if len(proof) != total {
		return false
	}

	expected := touchedSlots(indices, width, depth)
	if !presentPatternMatchesBytes(proof, expected) {
		return false
	}

	params, err := getParameters(width)
	if err != nil {
		return false
	}

	for _, node := range proof {
		if node == nil {
			continue
		}
		points := make([]pcs.Point, len(node.Points))
		for i, pp := range node.Points {
			points[i] = pcs.Point{X: pcs.DomainPoint(pp.Pos), Y: pcs.FrFromValueBytes(pp.Value)}
		}
		if !params.Verify(node.Commitment, points, node.Proof) {
			return false
		}
	}

	valueAt := make(map[int][]byte, len(indices))
	for i, idx := range indices {
		valueAt[idx] = claimedValues[i]
	}

	for slot, node := range proof {
		if node == nil {
			continue
		}
		if slot < sInt {
			for _, pp := range node.Points {
				child := width*slot + 1 + pp.Pos
				if child >= len(proof) || proof[child] == nil {
					return false
				}
				expectedValue := pcs.EncodeBytes(proof[child].Commitment)
				if !bytes.Equal(pp.Value, expectedValue) {
					return false
				}
			}
		} else {
			first := firstLeafIndex(slot, sInt, width)
			for _, pp := range node.Points {
				want, ok := valueAt[first+pp.Pos]
				if !ok {
					return false
				}
				if !bytes.Equal(pp.Value, want) {
					return false
				}
			}
		}
	}
	return true
}

func presentPatternMatchesBytes(proof BatchProofBytes, expected map[int][]int) bool {
	presentCount := 0
	for slot, node := range proof {
		if node == nil {
			continue
		}
		presentCount++
		want, ok := expected[slot]
		if !ok {
			return false
		}
		got := make([]int, len(node.Points))
		for i, pp := range node.Points {
			got[i] = pp.Pos
		}
		sort.Ints(got)
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if got[i] != want[i] {
				return false
			}
		}
	}
	return presentCount == len(expected)
}
