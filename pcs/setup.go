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
	"crypto/sha256"
	"fmt"
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Parameters is a node's trusted setup: the powers of a secret scalar
// tau, in both groups, derived once from a (seed, width) pair. Both the
// prover and the verifier regenerate these independently; Parameters
// carries no private state worth protecting beyond what toy setups
// always carry (the derivation is deterministic, not a real ceremony).
type Parameters struct {
	Width int
	g1    []bls12381.G1Affine // tau^0 .. tau^(width-1), in G1
	g2    []bls12381.G2Affine // tau^0 .. tau^width, in G2
}

// Setup derives the (width)-sized KZG parameters from seed. Calling
// Setup twice with the same (seed, width) always yields byte-identical
// parameters; this is what lets a verifier reconstruct them without
// access to the prover's copy.
func Setup(seed string, width int) (*Parameters, error) {
	if width < 2 {
		return nil, fmt.Errorf("pcs: width must be at least 2, got %d", width)
	}

	tau := deriveSecret(seed, width)

	_, _, g1Gen, g2Gen := bls12381.Generators()

	g1 := make([]bls12381.G1Affine, width)
	g2 := make([]bls12381.G2Affine, width+1)

	var pow Fr
	pow.SetOne()
	for i := 0; i < width; i++ {
		g1[i] = scalarMulG1(g1Gen, pow)
		g2[i] = scalarMulG2(g2Gen, pow)
		pow.Mul(&pow, &tau)
	}
	g2[width] = scalarMulG2(g2Gen, pow)

	return &Parameters{Width: width, g1: g1, g2: g2}, nil
}

// deriveSecret turns (seed, width) into the toxic-waste scalar tau via a
// plain hash-to-field. A production KZG setup would run an MPC ceremony
// and destroy tau; this is a reference instantiation, so a deterministic
// derivation stands in for it (same role as GetKZGConfig's hardcoded
// secret string in the teacher's legacy KZG path).
func deriveSecret(seed string, width int) Fr {
	h := sha256.Sum256([]byte(fmt.Sprintf("verkle-kzg-srs/%s/width=%d", seed, width)))
	var tau Fr
	tau.SetBigInt(new(big.Int).SetBytes(h[:]))
	return tau
}

func scalarMulG1(gen bls12381.G1Affine, s Fr) bls12381.G1Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var jac bls12381.G1Jac
	jac.ScalarMultiplication(&gen, &sBig)
	var aff bls12381.G1Affine
	aff.FromJacobian(&jac)
	return aff
}

func scalarMulG2(gen bls12381.G2Affine, s Fr) bls12381.G2Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var jac bls12381.G2Jac
	jac.ScalarMultiplication(&gen, &sBig)
	var aff bls12381.G2Affine
	aff.FromJacobian(&jac)
	return aff
}

type cacheKey struct {
	seed  string
	width int
}

var (
	paramsCache   = map[cacheKey]*Parameters{}
	paramsCacheMu sync.Mutex
)

// Cached lazily initializes and returns the shared Parameters for a
// given (seed, width) pair, following the teacher's GetKZGConfig /
// GetConfig pattern of a mutex-guarded package-level singleton: SRS
// generation is pure CPU work, deterministic, and safe to share by
// reference across concurrent builders (spec's "Shared-resource policy").
func Cached(seed string, width int) (*Parameters, error) {
	key := cacheKey{seed, width}

	paramsCacheMu.Lock()
	defer paramsCacheMu.Unlock()

	if p, ok := paramsCache[key]; ok {
		return p, nil
	}
	p, err := Setup(seed, width)
	if err != nil {
		return nil, err
	}
	paramsCache[key] = p
	return p, nil
}
