package rational

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var (
	// ErrZeroDenominator is returned when a fraction with denominator 0
	// would be created, including division by a zero Rational.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrSyntax is returned by Parse for input that is not n, n/d or ±n/d.
	ErrSyntax = errors.New("rational: invalid syntax")
)

// rationalRe matches an optionally signed integer with an optional denominator.
var rationalRe = regexp.MustCompile(`^\s*([+-]?\d+)\s*(?:/\s*(\d+))?\s*$`)

// Rational is an exact reduced fraction. The zero value represents 0.
// Values are immutable: every operation returns a fresh Rational.
type Rational struct {
	v *big.Rat // nil means 0
}

// Zero returns 0.
func Zero() Rational { return Rational{} }

// One returns 1.
func One() Rational { return FromInt(1) }

// FromInt returns n/1.
func FromInt(n int64) Rational {
	if n == 0 {
		return Rational{}
	}

	return Rational{v: new(big.Rat).SetInt64(n)}
}

// New returns num/den reduced to lowest terms with a positive denominator.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	if num == 0 {
		return Rational{}, nil
	}

	return Rational{v: big.NewRat(num, den)}, nil
}

// MustNew is New for constant inputs; it panics on a zero denominator.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("rational: MustNew(%d, %d): %v", num, den, err))
	}

	return r
}

// FromBig copies x into a Rational.
func FromBig(x *big.Rat) Rational {
	if x == nil || x.Sign() == 0 {
		return Rational{}
	}

	return Rational{v: new(big.Rat).Set(x)}
}

// FromBigInt returns the integer x as a Rational.
func FromBigInt(x *big.Int) Rational {
	if x == nil {
		return Rational{}
	}

	return FromBig(new(big.Rat).SetInt(x))
}

// Parse reads "n", "-n", "+n", "n/d" or "-n/d".
func Parse(s string) (Rational, error) {
	m := rationalRe.FindStringSubmatch(s)
	if m == nil {
		return Rational{}, fmt.Errorf("rational: Parse(%q): %w", s, ErrSyntax)
	}

	num, ok := new(big.Int).SetString(strings.TrimPrefix(m[1], "+"), 10)
	if !ok {
		return Rational{}, fmt.Errorf("rational: Parse(%q): %w", s, ErrSyntax)
	}
	den := big.NewInt(1)
	if m[2] != "" {
		den, ok = new(big.Int).SetString(m[2], 10)
		if !ok {
			return Rational{}, fmt.Errorf("rational: Parse(%q): %w", s, ErrSyntax)
		}
	}
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("rational: Parse(%q): %w", s, ErrZeroDenominator)
	}

	return FromBig(new(big.Rat).SetFrac(num, den)), nil
}

// rat returns the backing value, materializing 0 for the zero Rational.
func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}

	return r.v
}

// wrap normalizes a freshly computed result so that zero is stored as nil.
func wrap(x *big.Rat) Rational {
	if x.Sign() == 0 {
		return Rational{}
	}

	return Rational{v: x}
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return wrap(new(big.Rat).Add(r.rat(), o.rat()))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return wrap(new(big.Rat).Sub(r.rat(), o.rat()))
}

// Mul returns r · o.
func (r Rational) Mul(o Rational) Rational {
	return wrap(new(big.Rat).Mul(r.rat(), o.rat()))
}

// MulInt returns r · n.
func (r Rational) MulInt(n int64) Rational {
	return r.Mul(FromInt(n))
}

// Quo returns r / o, or ErrZeroDenominator when o is zero.
func (r Rational) Quo(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, ErrZeroDenominator
	}

	return wrap(new(big.Rat).Quo(r.rat(), o.rat())), nil
}

// QuoInt returns r / n for a nonzero n. Division by zero panics, as the
// callers only divide by counts and factorials.
func (r Rational) QuoInt(n int64) Rational {
	if n == 0 {
		panic("rational: QuoInt: division by zero")
	}

	return wrap(new(big.Rat).Quo(r.rat(), new(big.Rat).SetInt64(n)))
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return wrap(new(big.Rat).Neg(r.rat()))
}

// Inv returns 1/r, or ErrZeroDenominator when r is zero.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, ErrZeroDenominator
	}

	return wrap(new(big.Rat).Inv(r.rat())), nil
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	if r.v == nil {
		return 0
	}

	return r.v.Sign()
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.Sign() == 0 }

// IsOne reports whether r == 1.
func (r Rational) IsOne() bool { return r.v != nil && r.v.IsInt() && r.v.Num().IsInt64() && r.v.Num().Int64() == 1 }

// Cmp compares r and o and returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int { return r.rat().Cmp(o.rat()) }

// Equal reports whether r and o are the same number.
func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

// Num returns a copy of the reduced numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.rat().Num()) }

// Den returns a copy of the (positive) reduced denominator.
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.rat().Denom()) }

// Float64 returns the nearest float64 value; for display only.
func (r Rational) Float64() float64 {
	f, _ := r.rat().Float64()

	return f
}

// Big returns a copy of r as a *big.Rat.
func (r Rational) Big() *big.Rat { return new(big.Rat).Set(r.rat()) }

// String returns "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	x := r.rat()
	if x.IsInt() {
		return x.Num().String()
	}

	return x.Num().String() + "/" + x.Denom().String()
}

// Text renders r as a coefficient in front of a term.
//
//	 1 → ""      (or "+"  with sign)
//	-1 → "-"
//	 n → "n"     (or "+n" with sign)
//	 0 → "0"
func (r Rational) Text(sign bool) string {
	if r.IsZero() {
		return "0"
	}

	var sb strings.Builder
	if sign && r.Sign() > 0 {
		sb.WriteByte('+')
	}
	x := r.rat()
	if x.IsInt() {
		switch {
		case x.Num().IsInt64() && x.Num().Int64() == -1:
			sb.WriteByte('-')
		case x.Num().IsInt64() && x.Num().Int64() == 1:
			// unit coefficient is implicit
		default:
			sb.WriteString(x.Num().String())
		}

		return sb.String()
	}
	sb.WriteString(x.Num().String())
	sb.WriteByte('/')
	sb.WriteString(x.Denom().String())

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r Rational) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rational) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*r = v

	return nil
}
