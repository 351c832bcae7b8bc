// Package exactfloat implements binary floating point numbers with an
// unbounded mantissa. Addition, subtraction and multiplication are exact,
// which makes the type suitable for evaluating geometric predicates whose
// sign must be decided without rounding error.
//
// A finite value is stored as sign * bn * 2**bnExp where bn is a
// non-negative integer with no trailing zero bits.
package exactfloat

import (
	"math"
	"math/big"
)

const (
	maxExp             = 200 * 1000 * 1000
	minExp             = -maxExp
	maxPrec            = 64 << 20
	expNaN             = math.MaxInt32
	expInfinity        = math.MaxInt32 - 1
	expZero            = math.MaxInt32 - 2
	doubleMantissaBits = 53
)

// ExactFloat is an immutable arbitrary precision binary float.
// The zero value is not valid; use New or one of the constructors.
type ExactFloat struct {
	sign  int
	bnExp int
	bn    *big.Int
}

// New returns the exact value of v.
func New(v float64) ExactFloat {
	f := ExactFloat{sign: 1, bn: new(big.Int)}
	if math.Signbit(v) {
		f.sign = -1
	}
	switch {
	case math.IsNaN(v):
		f.bnExp = expNaN
	case math.IsInf(v, 0):
		f.bnExp = expInfinity
	case v == 0:
		f.bnExp = expZero
	default:
		frac, exp := math.Frexp(math.Abs(v))
		f.bn.SetUint64(uint64(math.Ldexp(frac, doubleMantissaBits)))
		f.bnExp = exp - doubleMantissaBits
		f.canonicalize()
	}
	return f
}

// SignedZero returns a zero with the given sign.
func SignedZero(sign int) ExactFloat {
	return special(sign, expZero)
}

// Infinity returns an infinity with the given sign.
func Infinity(sign int) ExactFloat {
	return special(sign, expInfinity)
}

// NaN returns a quiet NaN.
func NaN() ExactFloat {
	return special(1, expNaN)
}

func special(sign, exp int) ExactFloat {
	if sign < 0 {
		sign = -1
	} else {
		sign = 1
	}
	return ExactFloat{sign: sign, bnExp: exp, bn: new(big.Int)}
}

func (f ExactFloat) isNaN() bool    { return f.bnExp == expNaN }
func (f ExactFloat) isInf() bool    { return f.bnExp == expInfinity }
func (f ExactFloat) isZero() bool   { return f.bnExp == expZero }
func (f ExactFloat) isNormal() bool { return f.bnExp < expZero }

// IsNaN reports whether f is not a number.
func (f ExactFloat) IsNaN() bool { return f.isNaN() }

// IsInf reports whether f is an infinity of either sign.
func (f ExactFloat) IsInf() bool { return f.isInf() }

// IsZero reports whether f is a zero of either sign.
func (f ExactFloat) IsZero() bool { return f.isZero() }

// Prec returns the number of bits in the mantissa.
func (f ExactFloat) Prec() int { return f.bn.BitLen() }

// exp returns the exponent of the value when written as m * 2**exp with
// 0.5 <= m < 1.
func (f ExactFloat) exp() int { return f.bnExp + f.bn.BitLen() }

// Sgn returns +1 or -1 for positive and negative values and 0 for zero
// (of either sign) and NaN.
func (f ExactFloat) Sgn() int {
	if f.isNaN() || f.isZero() {
		return 0
	}
	return f.sign
}

func (f *ExactFloat) canonicalize() {
	if !f.isNormal() {
		return
	}
	if f.bn.Sign() == 0 {
		f.bnExp = expZero
		f.bn = new(big.Int)
		return
	}
	if shift := f.bn.TrailingZeroBits(); shift > 0 {
		f.bn.Rsh(f.bn, shift)
		f.bnExp += int(shift)
	}
	switch e := f.exp(); {
	case e < minExp:
		f.bnExp = expZero
		f.bn = new(big.Int)
	case e > maxExp:
		f.bnExp = expInfinity
		f.bn = new(big.Int)
	case f.Prec() > maxPrec:
		f.sign = 1
		f.bnExp = expNaN
		f.bn = new(big.Int)
	}
}

// Neg returns -f.
func (f ExactFloat) Neg() ExactFloat {
	return f.withSign(-f.sign)
}

// Abs returns |f|.
func (f ExactFloat) Abs() ExactFloat {
	return f.withSign(1)
}

func (f ExactFloat) withSign(sign int) ExactFloat {
	if f.isNaN() {
		return f
	}
	f.sign = sign
	return f
}

// Add returns f + g exactly.
func (f ExactFloat) Add(g ExactFloat) ExactFloat {
	return signedSum(f.sign, f, g.sign, g)
}

// Sub returns f - g exactly.
func (f ExactFloat) Sub(g ExactFloat) ExactFloat {
	return signedSum(f.sign, f, -g.sign, g)
}

// Mul returns f * g exactly.
func (f ExactFloat) Mul(g ExactFloat) ExactFloat {
	sign := f.sign * g.sign
	if !f.isNormal() || !g.isNormal() {
		switch {
		case f.isNaN():
			return f
		case g.isNaN():
			return g
		case f.isInf():
			if g.isZero() {
				return NaN()
			}
			return Infinity(sign)
		case g.isInf():
			if f.isZero() {
				return NaN()
			}
			return Infinity(sign)
		}
		return SignedZero(sign)
	}
	r := ExactFloat{
		sign:  sign,
		bnExp: f.bnExp + g.bnExp,
		bn:    new(big.Int).Mul(f.bn, g.bn),
	}
	r.canonicalize()
	return r
}

func signedSum(aSign int, a ExactFloat, bSign int, b ExactFloat) ExactFloat {
	if !a.isNormal() || !b.isNormal() {
		switch {
		case a.isNaN():
			return a
		case b.isNaN():
			return b
		case a.isInf():
			if b.isInf() && aSign != bSign {
				return NaN()
			}
			return Infinity(aSign)
		case b.isInf():
			return Infinity(bSign)
		case a.isZero():
			if !b.isZero() {
				return b.withSign(bSign)
			}
			if aSign == bSign {
				return SignedZero(aSign)
			}
			return SignedZero(1)
		}
		return a.withSign(aSign)
	}
	// Make "a" the operand with the larger bnExp and align its mantissa.
	if a.bnExp < b.bnExp {
		aSign, bSign = bSign, aSign
		a, b = b, a
	}
	am := new(big.Int).Lsh(a.bn, uint(a.bnExp-b.bnExp))
	r := ExactFloat{bnExp: b.bnExp, bn: new(big.Int)}
	if aSign == bSign {
		r.bn.Add(am, b.bn)
		r.sign = aSign
	} else {
		r.bn.Sub(am, b.bn)
		switch r.bn.Sign() {
		case 0:
			r.sign = 1
		case -1:
			r.sign = bSign
			r.bn.Neg(r.bn)
		default:
			r.sign = aSign
		}
	}
	r.canonicalize()
	return r
}

// Cmp compares f and g and returns -1, 0 or +1. NaN compares equal to
// nothing; Cmp returns 0 if either operand is NaN, so callers that care
// must check IsNaN first.
func (f ExactFloat) Cmp(g ExactFloat) int {
	if f.isNaN() || g.isNaN() {
		return 0
	}
	return f.Sub(g).Sgn()
}

// Less reports whether f < g.
func (f ExactFloat) Less(g ExactFloat) bool {
	if f.isNaN() || g.isNaN() {
		return false
	}
	return f.Cmp(g) < 0
}

// Equal reports whether f == g. Positive and negative zero are equal.
func (f ExactFloat) Equal(g ExactFloat) bool {
	if f.isNaN() || g.isNaN() {
		return false
	}
	return f.Cmp(g) == 0
}

// Float64 returns the float64 nearest to f, rounding ties to even.
func (f ExactFloat) Float64() float64 {
	if !f.isNormal() {
		switch {
		case f.isZero():
			return math.Copysign(0, float64(f.sign))
		case f.isInf():
			return math.Inf(f.sign)
		}
		return math.NaN()
	}
	r := f.roundToPrec(doubleMantissaBits)
	return float64(r.sign) * math.Ldexp(float64(r.bn.Uint64()), r.bnExp)
}

// roundToPrec rounds a normal value to at most prec mantissa bits using
// round-half-to-even.
func (f ExactFloat) roundToPrec(prec int) ExactFloat {
	shift := f.Prec() - prec
	if shift <= 0 {
		return f
	}
	// Let "w/xyz" denote a mantissa where "w" is the lowest kept bit and
	// "xyz" are the discarded bits:
	//   ./0.*    -> keep (fraction < 1/2)
	//   0/10*    -> keep (fraction = 1/2, kept part even)
	//   1/10*    -> increment (fraction = 1/2, kept part odd)
	//   ./1.*1.* -> increment (fraction > 1/2)
	half := f.bn.Bit(shift-1) != 0
	sticky := int(f.bn.TrailingZeroBits()) < shift-1
	odd := f.bn.Bit(shift) != 0
	r := ExactFloat{
		sign:  f.sign,
		bnExp: f.bnExp + shift,
		bn:    new(big.Int).Rsh(f.bn, uint(shift)),
	}
	if half && (sticky || odd) {
		r.bn.Add(r.bn, big.NewInt(1))
	}
	r.canonicalize()
	return r
}

// String formats f with enough digits to identify it exactly.
func (f ExactFloat) String() string {
	switch {
	case f.isNaN():
		return "nan"
	case f.isInf():
		if f.sign < 0 {
			return "-inf"
		}
		return "inf"
	case f.isZero():
		if f.sign < 0 {
			return "-0"
		}
		return "0"
	}
	m := new(big.Float).SetPrec(uint(f.Prec())).SetInt(f.bn)
	m.SetMantExp(m, f.bnExp)
	if f.sign < 0 {
		m.Neg(m)
	}
	return m.Text('g', significantDigits(f.Prec()))
}

// Numbers are always formatted with at least this many significant digits
// so that small integers are not printed in exponential notation.
const minSignificantDigits = 10

// significantDigits bounds the decimal digits needed to print a mantissa
// of prec bits exactly: d <= 1 + ceil(prec * log10(2)).
func significantDigits(prec int) int {
	d := 1 + int(math.Ceil(float64(prec)*(math.Ln2/math.Ln10)))
	if d < minSignificantDigits {
		return minSignificantDigits
	}
	return d
}
