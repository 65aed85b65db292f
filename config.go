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

// DefaultSeed is the public seed both provers and verifiers derive their
// KZG parameters from when no other seed is supplied. Any fixed string
// works equally well; what matters is that every party uses the same
// one, the same way GetKZGConfig's hardcoded secret used to.
const DefaultSeed = "verkle-tree/reference-instantiation/v1"

// getParameters is the single place a tree or verifier goes to obtain
// its PCS parameters, keyed by the tree's arity. pcs.Cached already
// guards the lazy singleton with its own mutex, so there is nothing
// further to lock here.
func getParameters(width int) (*pcs.Parameters, error) {
	return pcs.Cached(DefaultSeed, width)
}
