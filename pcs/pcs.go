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

// Package pcs is the polynomial-commitment adapter that the verkle tree
// is built on: a KZG commitment scheme over the BLS12-381 pairing-friendly
// curve. The tree never reaches past this package's API into curve or
// field internals, except to call Encode/EncodeBytes on a Commitment.
package pcs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Fr is the scalar field of BLS12-381, the field every value and
// polynomial coefficient lives in.
type Fr = fr.Element

// Commitment is a group element binding a polynomial or a value vector.
type Commitment = bls12381.G1Affine

// Point is a claimed (position, value) pair to be opened against a
// node's polynomial.
type Point struct {
	X Fr
	Y Fr
}

// Polynomial is a dense, ascending-degree coefficient vector over Fr.
type Polynomial []Fr
