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

import "github.com/kiln-verkle/kzgverkle/pcs"

// ProofPoint is one claimed (position, value) pair opened at a node.
type ProofPoint struct {
	Pos   int
	Value pcs.Fr
}

// ProofNode is one opened node: its commitment, the aggregated opening
// proof covering every point in Points, and the points themselves in
// ascending position order.
type ProofNode struct {
	Commitment pcs.Commitment
	Proof      pcs.OpeningProof
	Points     []ProofPoint
}

// Proof is a single-index membership proof: one ProofNode per level,
// root first, leaf last.
type Proof []ProofNode

// GenerateProof proves that value sits at index in the tree's value
// sequence. It walks the root-to-leaf path, opening each node's
// polynomial at the single position the path takes through it.
func (t *Tree) GenerateProof(index int, value pcs.Fr) (Proof, error) {
	if index < 0 || index >= t.leafSpan() {
		return nil, errIndexOutOfRange
	}

	positions := pathPositions(index, t.width, t.depth)
	slots := slotPath(positions, t.width)

	proof := make(Proof, t.depth+1)
	for l := 0; l <= t.depth; l++ {
		node := t.arena[slots[l]]

		var y pcs.Fr
		if l < t.depth {
			child := t.arena[slots[l+1]]
			y = pcs.Encode(child.commitment)
		} else {
			y = value
		}

		point := pcs.Point{X: pcs.DomainPoint(positions[l]), Y: y}
		opening, err := t.params.Open(node.polynomial, []pcs.Point{point})
		if err != nil {
			return nil, proofGenerateError("open", err)
		}

		proof[l] = ProofNode{
			Commitment: node.commitment,
			Proof:      opening,
			Points:     []ProofPoint{{Pos: positions[l], Value: y}},
		}
	}
	return proof, nil
}

// leafSpan returns the number of values a full root-to-leaf path can
// address: width^(depth+1).
func (t *Tree) leafSpan() int {
	span := 1
	for i := 0; i <= t.depth; i++ {
		span *= t.width
	}
	return span
}

// VerifyProof checks a single-index proof against root, replaying the
// same root-to-leaf walk the prover took and additionally checking the
// linkage between consecutive levels: the reference sources several of
// this scheme is drawn from omit this check, which makes their
// verifiers unsound against an adversarial prover that opens a level to
// an arbitrary value unrelated to the next level's commitment.
func VerifyProof(root pcs.Commitment, proof Proof, width int) bool {
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
		point := pcs.Point{X: pcs.DomainPoint(node.Points[0].Pos), Y: node.Points[0].Value}
		if !params.Verify(node.Commitment, []pcs.Point{point}, node.Proof) {
			return false
		}

		if i == 0 {
			continue
		}
		prev := proof[i-1]
		claimed := prev.Points[0].Value
		expected := pcs.Encode(node.Commitment)
		if !claimed.Equal(&expected) {
			return false
		}
	}
	return true
}

func commitmentsEqual(a, b pcs.Commitment) bool {
	return a.Equal(&b)
}
