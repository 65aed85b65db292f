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

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// msmG1 commits a coefficient vector against a matching prefix of the G1
// SRS via multi-scalar multiplication.
func msmG1(basis []bls12381.G1Affine, coeffs Polynomial) (bls12381.G1Affine, error) {
	n := len(coeffs)
	if n > len(basis) {
		return bls12381.G1Affine{}, errDegreeTooLarge
	}
	var out bls12381.G1Affine
	if _, err := out.MultiExp(basis[:n], coeffs, ecc.MultiExpConfig{}); err != nil {
		return bls12381.G1Affine{}, err
	}
	return out, nil
}

// msmG2 mirrors msmG1 in the second group; used to fold a vanishing
// polynomial's coefficients into [Z(tau)]_2 on the verifier side.
func msmG2(basis []bls12381.G2Affine, coeffs Polynomial) (bls12381.G2Affine, error) {
	n := len(coeffs)
	if n > len(basis) {
		return bls12381.G2Affine{}, errDegreeTooLarge
	}
	var out bls12381.G2Affine
	if _, err := out.MultiExp(basis[:n], coeffs, ecc.MultiExpConfig{}); err != nil {
		return bls12381.G2Affine{}, err
	}
	return out, nil
}

func g1Sub(a, b bls12381.G1Affine) bls12381.G1Affine {
	var ja, jb bls12381.G1Jac
	ja.FromAffine(&a)
	jb.FromAffine(&b)
	jb.Neg(&jb)
	ja.AddAssign(&jb)
	var out bls12381.G1Affine
	out.FromJacobian(&ja)
	return out
}

func g2Neg(a bls12381.G2Affine) bls12381.G2Affine {
	var out bls12381.G2Affine
	out.Neg(&a)
	return out
}

// pairingsEqual checks e(a1, a2) == e(b1, b2) via a single combined
// pairing-product check: e(a1, a2) * e(b1, -b2) == 1.
func pairingsEqual(a1 bls12381.G1Affine, a2 bls12381.G2Affine, b1 bls12381.G1Affine, b2 bls12381.G2Affine) bool {
	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{a1, b1},
		[]bls12381.G2Affine{a2, g2Neg(b2)},
	)
	if err != nil {
		return false
	}
	return ok
}
