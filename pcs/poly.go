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

// domainPoint returns the Fr representation of the i-th point of the
// tree's evaluation domain {0, 1, ..., width-1}.
func domainPoint(i int) Fr {
	var x Fr
	x.SetUint64(uint64(i))
	return x
}

// DomainPoint exposes domainPoint to callers outside the package that
// need to build a Point at a given domain position without reaching
// into Fr arithmetic themselves.
func DomainPoint(i int) Fr {
	return domainPoint(i)
}

// VectorToPolynomial interpolates values at the domain points
// {0, ..., len(values)-1} and returns the result in coefficient form.
// This mirrors ark_poly's DensePolynomial interpolation in the reference
// sources: a plain O(n^2) Lagrange-to-monomial conversion, which is cheap
// enough for the small widths a verkle node fans out to.
func VectorToPolynomial(values []Fr) Polynomial {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: domainPoint(i), Y: v}
	}
	return interpolate(points)
}

// interpolate returns the unique polynomial of degree < len(points) that
// passes through every (X, Y) pair, in coefficient form.
func interpolate(points []Point) Polynomial {
	n := len(points)
	result := make(Polynomial, n)
	if n == 0 {
		return result
	}

	// vanishing is the master polynomial prod_j (X - x_j).
	vanishing := make(Polynomial, 1, n+1)
	vanishing[0] = one()
	for _, p := range points {
		vanishing = polyMulLinear(vanishing, p.X)
	}

	for i, pi := range points {
		// numerator_i = vanishing / (X - x_i), via synthetic division.
		numerator := polyDivLinear(vanishing, pi.X)
		denom := polyEval(numerator, pi.X)
		var invDenom Fr
		invDenom.Inverse(&denom)

		var scale Fr
		scale.Mul(&pi.Y, &invDenom)

		for k, c := range numerator {
			var term Fr
			term.Mul(&c, &scale)
			result[k].Add(&result[k], &term)
		}
	}
	return result
}

// vanishingPolynomial returns prod_i (X - xs[i]), the polynomial whose
// roots are exactly the given points.
func vanishingPolynomial(xs []Fr) Polynomial {
	poly := make(Polynomial, 1, len(xs)+1)
	poly[0] = one()
	for _, x := range xs {
		poly = polyMulLinear(poly, x)
	}
	return poly
}

// polyMulLinear multiplies poly by the monic linear factor (X - root).
func polyMulLinear(poly Polynomial, root Fr) Polynomial {
	out := make(Polynomial, len(poly)+1)
	var negRoot Fr
	negRoot.Neg(&root)
	for i, c := range poly {
		var t Fr
		t.Mul(&c, &negRoot)
		out[i].Add(&out[i], &t)
		out[i+1].Add(&out[i+1], &c)
	}
	return out
}

// polyDivLinear divides poly by the monic linear factor (X - root),
// assuming root is an exact root of poly (the remainder is discarded).
func polyDivLinear(poly Polynomial, root Fr) Polynomial {
	n := len(poly)
	if n == 0 {
		return nil
	}
	quotient := make(Polynomial, n-1)
	if n == 1 {
		return quotient
	}
	quotient[n-2] = poly[n-1]
	for k := n - 2; k >= 1; k-- {
		var t Fr
		t.Mul(&root, &quotient[k])
		quotient[k-1].Add(&poly[k], &t)
	}
	return quotient
}

// polyDiv performs exact polynomial long division: numerator = quotient *
// denominator (remainder must be zero). It reports exact == false when
// the remainder is non-zero (or the denominator is zero) so callers can
// surface that as a proof-generation failure instead of silently
// returning a wrong proof.
func polyDiv(numerator, denominator Polynomial) (quotient Polynomial, exact bool) {
	num := append(Polynomial(nil), numerator...)
	denDeg := degree(denominator)
	numDeg := degree(num)
	if denDeg < 0 {
		return nil, false
	}
	if numDeg < denDeg {
		return Polynomial{}, isZero(num)
	}

	var leadInv Fr
	leadInv.Inverse(&denominator[denDeg])

	qDeg := numDeg - denDeg
	quotient = make(Polynomial, qDeg+1)
	for d := numDeg; d >= denDeg; d-- {
		coeff := num[d]
		if coeff.IsZero() {
			continue
		}
		var qc Fr
		qc.Mul(&coeff, &leadInv)
		quotient[d-denDeg] = qc
		for k := 0; k <= denDeg; k++ {
			var t Fr
			t.Mul(&qc, &denominator[k])
			num[d-denDeg+k].Sub(&num[d-denDeg+k], &t)
		}
	}
	return quotient, isZero(num)
}

// polyEval evaluates poly at x using Horner's method.
func polyEval(poly Polynomial, x Fr) Fr {
	var result Fr
	for i := len(poly) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &poly[i])
	}
	return result
}

// polySub returns a - b, padding the shorter operand with zeros.
func polySub(a, b Polynomial) Polynomial {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var av, bv Fr
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i].Sub(&av, &bv)
	}
	return out
}

func degree(p Polynomial) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

func isZero(p Polynomial) bool {
	return degree(p) < 0
}

func one() Fr {
	var f Fr
	f.SetOne()
	return f
}
