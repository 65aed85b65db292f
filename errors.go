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

import "errors"

// ErrEmptyInput is the build error New and NewBytes return when the
// input vector is empty.
var (
	ErrEmptyInput = errors.New("verkle: cannot build a tree from an empty value sequence")
)

// ProofGenerateError wraps a failure surfaced by the PCS while generating
// a proof. The core never retries; the caller decides what to do.
type ProofGenerateError struct {
	Op  string
	Err error
}

func (e *ProofGenerateError) Error() string {
	return "verkle: proof generation failed during " + e.Op + ": " + e.Err.Error()
}

func (e *ProofGenerateError) Unwrap() error {
	return e.Err
}

func proofGenerateError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ProofGenerateError{Op: op, Err: err}
}

var (
	errIndexOutOfRange = errors.New("verkle: index out of range")
	errWidthTooSmall   = errors.New("verkle: width must be at least 2")
	errIndicesEmpty    = errors.New("verkle: batch proof requires at least one index")
	errValuesMismatch  = errors.New("verkle: values length does not match the tree's leaf span")
)
