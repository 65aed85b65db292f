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

// OpeningProof is a single-polynomial, multi-point KZG opening: the
// commitment to Q(X) = (f(X) - R(X)) / Z(X), where R interpolates the
// claimed points and Z is their vanishing polynomial. One proof element
// serves equally for a one-point open (the single-index case) or a
// width-point open (the fully-touched batch case); no Fiat-Shamir
// challenge is needed because there is only one polynomial being opened,
// not several being combined under a shared pairing check.
type OpeningProof struct {
	Q Commitment
}

// Open proves that poly evaluates to each points[i].Y at points[i].X.
// The caller is responsible for ensuring points' X coordinates are a
// subset of the domain poly was interpolated over; Open itself only
// requires that the claimed values actually lie on poly.
func (p *Parameters) Open(poly Polynomial, points []Point) (OpeningProof, error) {
	if len(points) == 0 {
		return OpeningProof{}, errNoPoints
	}
	if err := checkDistinctX(points); err != nil {
		return OpeningProof{}, err
	}

	z := vanishingPolynomial(xsOf(points))
	r := interpolate(points)
	d := polySub(poly, r)

	q, exact := polyDiv(d, z)
	if !exact {
		return OpeningProof{}, errInexactOpening
	}

	commitment, err := p.Commit(q)
	if err != nil {
		return OpeningProof{}, err
	}
	return OpeningProof{Q: commitment}, nil
}

func xsOf(points []Point) []Fr {
	xs := make([]Fr, len(points))
	for i, pt := range points {
		xs[i] = pt.X
	}
	return xs
}

func checkDistinctX(points []Point) error {
	seen := make(map[Fr]struct{}, len(points))
	for _, pt := range points {
		if _, ok := seen[pt.X]; ok {
			return errDuplicatePoint
		}
		seen[pt.X] = struct{}{}
	}
	return nil
}
