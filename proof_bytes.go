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

	"github.com/kiln-verkle/kzgverkle/pcs"
)

// ProofPointBytes is the byte-mode counterpart of ProofPoint.
type ProofPointBytes struct {
	Pos   int
	Value []byte
}

// ProofNodeBytes is the byte-mode counterpart of ProofNode.
type ProofNodeBytes struct {
	Commitment pcs.Commitment
	Proof      pcs.OpeningProof
	Points     []ProofPointBytes
}

// ProofBytes is the byte-mode counterpart of Proof.
type ProofBytes []ProofNodeBytes

// GenerateProof proves that value sits at index in the byte-mode tree's
// value sequence.
func (t *TreeBytes) GenerateProof(index int, value []byte) (ProofBytes, error) {
	if index < 0 || index >= t.leafSpan() {
		return nil, errIndexOutOfRange
	}

	positions := pathPositions(index, t.width, t.depth)
	slots := slotPath(positions, t.width)

	proof := make(ProofBytes, t.depth+1)
	for l := 0; l <= t.depth; l++ {
		node := t.arena[slots[l]]

		var y []byte
		if l < t.depth {
			child := t.arena[slots[l+1]]
			y = pcs.EncodeBytes(child.commitment)
		} else {
			y = value
		}

		point := pcs.Point{X: pcs.DomainPoint(positions[l]), Y: pcs.FrFromValueBytes(y)}
		opening, err := t.params.Open(node.polynomial, []pcs.Point{point})
		if err != nil {
			return nil, proofGenerateError("open", err)
		}

		proof[l] = ProofNodeBytes{
			Commitment: node.commitment,
			Proof:      opening,
			Points:     []ProofPointBytes{{Pos: positions[l], Value: y}},
		}
	}
	return proof, nil
}

// VerifyProofBytes is the byte-mode counterpart of VerifyProof,
// including the same linkage check between consecutive levels.
func VerifyProofBytes(root pcs.Commitment, proof ProofBytes, width int) bool {
	if len(proof) == 0 {
		return false
	}
	if !commitmentsEqual(proof[0].Commitment, root) {
		return false
	}

	params, err := getParameters(width)
	if err != nil {
		return false
	}

	for i, node := range proof {
		if len(node.Points) != 1 {
			return false
		}
		point := pcs.Point{X: pcs.DomainPoint(node.Points[0].Pos), Y: pcs.FrFromValueBytes(node.Points[0].Value)}
		if !params.Verify(node.Commitment, []pcs.Point{point}, node.Proof) {
			return false
		}

		if i == 0 {
			continue
		}
		prev := proof[i-1]
		claimed := prev.Points[0].Value
		expected := pcs.EncodeBytes(node.Commitment)
		if !bytes.Equal(claimed, expected) {
			return false
		}
	}
	return true
}
