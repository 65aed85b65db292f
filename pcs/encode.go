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

import "math/big"

// Encode maps a G1 commitment down into the scalar field, so a parent
// node can embed a child's commitment as one of its own polynomial's
// evaluations. This is the field encoding every level of the tree above
// the leaves commits to: encode(C) = (x(C) + y(C)) mod r.
//
// The reference derivation first takes the little-endian byte
// concatenation of x(C)+y(C) in the base field and reduces it mod r via
// from_le_bytes_mod_order. Reversing a fixed-width big-endian integer's
// bytes and reinterpreting them as little-endian reconstructs the same
// integer, so that two-step byte dance collapses to a direct reduction
// of the base-field sum's integer value mod r — no byte manipulation
// needed here.
func Encode(c Commitment) Fr {
	var sum = c.X
	sum.Add(&sum, &c.Y)

	var bi big.Int
	sum.BigInt(&bi)

	var out Fr
	out.SetBigInt(&bi)
	return out
}

// EncodeBytes returns the canonical compressed encoding of c, used as
// the on-the-wire representation of a commitment inside a proof.
func EncodeBytes(c Commitment) []byte {
	b := c.Bytes()
	return b[:]
}

// FrFromValueBytes lifts a leaf's raw byte value into the scalar field
// at the tree's byte/field boundary: byte mode never exposes Fr to its
// callers, but internally every leaf value still has to become a
// polynomial evaluation like any scalar-mode value does.
func FrFromValueBytes(value []byte) Fr {
	var f Fr
	f.SetBytes(value)
	return f
}
