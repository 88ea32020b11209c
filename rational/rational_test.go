package rational_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/rational"
)

// TestNew_ReducesAndNormalizesSign checks lowest terms and a positive denominator.
func TestNew_ReducesAndNormalizesSign(t *testing.T) {
	r, err := rational.New(6, -8)
	require.NoError(t, err)
	assert.Equal(t, "-3/4", r.String())
	assert.Equal(t, int64(-3), r.Num().Int64())
	assert.Equal(t, int64(4), r.Den().Int64())

	_, err = rational.New(1, 0)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)
}

// TestZeroValue verifies that the zero value behaves as 0 in arithmetic.
func TestZeroValue(t *testing.T) {
	var z rational.Rational
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
	assert.True(t, z.Add(rational.One()).IsOne())
	assert.True(t, z.Mul(rational.FromInt(7)).IsZero())
	assert.True(t, z.Equal(rational.Zero()))
}

// TestArithmetic exercises the four operations and exact cancellation.
func TestArithmetic(t *testing.T) {
	half := rational.MustNew(1, 2)
	third := rational.MustNew(1, 3)

	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "1/6", half.Mul(third).String())

	q, err := half.Quo(third)
	require.NoError(t, err)
	assert.Equal(t, "3/2", q.String())

	_, err = half.Quo(rational.Zero())
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)

	// a sum that is algebraically zero must be exactly zero
	sum := half.Add(third).Sub(rational.MustNew(5, 6))
	assert.True(t, sum.IsZero())
	assert.Equal(t, 0, sum.Sign())

	inv, err := rational.MustNew(-2, 5).Inv()
	require.NoError(t, err)
	assert.Equal(t, "-5/2", inv.String())
	assert.Equal(t, "1/4", rational.One().QuoInt(4).String())
	assert.Equal(t, "-3", rational.FromInt(3).Neg().String())
	assert.Equal(t, "3/2", half.MulInt(3).String())
}

// TestImmutability makes sure operations never alter their receivers.
func TestImmutability(t *testing.T) {
	a := rational.MustNew(1, 2)
	b := a.Add(rational.One())
	_ = b.Mul(rational.FromInt(10))
	assert.Equal(t, "1/2", a.String())
	assert.Equal(t, "3/2", b.String())
}

// TestText covers the coefficient rendering used by expressions.
func TestText(t *testing.T) {
	cases := []struct {
		in   rational.Rational
		sign bool
		want string
	}{
		{rational.One(), false, ""},
		{rational.One(), true, "+"},
		{rational.FromInt(-1), false, "-"},
		{rational.FromInt(-1), true, "-"},
		{rational.FromInt(2), false, "2"},
		{rational.FromInt(2), true, "+2"},
		{rational.MustNew(1, 4), false, "1/4"},
		{rational.MustNew(1, 4), true, "+1/4"},
		{rational.MustNew(-1, 2), true, "-1/2"},
		{rational.Zero(), true, "0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.Text(c.sign), "Text(%s, %v)", c.in, c.sign)
	}
}

// TestParse covers accepted and rejected spellings.
func TestParse(t *testing.T) {
	for in, want := range map[string]string{
		"3":     "3",
		"-1/2":  "-1/2",
		"+4/6":  "2/3",
		" 10 ":  "10",
		"0/5":   "0",
		"-12/4": "-3",
	} {
		r, err := rational.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, r.String(), in)
	}

	for _, bad := range []string{"", "a", "1/", "1/-2", "1.5"} {
		_, err := rational.Parse(bad)
		assert.ErrorIs(t, err, rational.ErrSyntax, bad)
	}
	_, err := rational.Parse("1/0")
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)
}

// TestTextRoundTrip checks the encoding.Text* implementations.
func TestTextRoundTrip(t *testing.T) {
	b, err := rational.MustNew(-7, 3).MarshalText()
	require.NoError(t, err)

	var r rational.Rational
	require.NoError(t, r.UnmarshalText(b))
	assert.True(t, r.Equal(rational.MustNew(-7, 3)))
	assert.InDelta(t, -2.3333, r.Float64(), 1e-4)
}

// TestCmp checks ordering.
func TestCmp(t *testing.T) {
	assert.Equal(t, -1, rational.MustNew(1, 3).Cmp(rational.MustNew(1, 2)))
	assert.Equal(t, 1, rational.FromInt(1).Cmp(rational.MustNew(-5, 2)))
	assert.Equal(t, 0, rational.MustNew(2, 4).Cmp(rational.MustNew(1, 2)))
}
