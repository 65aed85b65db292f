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

package pcs

import bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

// Verify checks that commitment opens to the claimed points under proof,
// via the pairing equation:
//
//	e(C - [R(tau)]_1, G2gen) == e(proof.Q, [Z(tau)]_2)
//
// where R interpolates points and Z is their vanishing polynomial. Both
// sides are reconstructible from public data alone: the verifier never
// needs poly itself, only the points and the commitment it was given.
func (p *Parameters) Verify(commitment Commitment, points []Point, proof OpeningProof) bool {
	if len(points) == 0 {
		return false
	}
	if err := checkDistinctX(points); err != nil {
		return false
	}

	r := interpolate(points)
	rCommitment, err := p.Commit(r)
	if err != nil {
		return false
	}
	lhs := g1Sub(commitment, rCommitment)

	z := vanishingPolynomial(xsOf(points))
	zCommitment, err := msmG2(p.g2, z)
	if err != nil {
		return false
	}

	_, _, _, g2Gen := bls12381.Generators()
	return pairingsEqual(lhs, g2Gen, proof.Q, zCommitment)
}
