package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Fraction is the exact value of a decimal fraction suffix such as ".5" or
// ",0625": a numerator over a denominator of 10^Digits. The zero value is
// 0/1.
type Fraction struct {
	value apd.Decimal
}

// ParseFraction parses a decimal fraction suffix: "." or "," followed by one
// or more ASCII digits. The empty string yields 0/1. No rounding occurs; any
// number of digits is kept.
func ParseFraction(src string) (Fraction, error) {
	if src == "" {
		return Fraction{}, nil
	}
	if src[0] != '.' && src[0] != ',' {
		return Fraction{}, fmt.Errorf(
			"%w: %q does not start with a decimal separator",
			ErrInvalidFraction, src,
		)
	}
	digits := src[1:]
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return Fraction{}, fmt.Errorf(
			"%w: %q is not a decimal fraction", ErrInvalidFraction, src,
		)
	}

	d, _, err := apd.NewFromString("0." + digits)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %w", ErrInvalidFraction, err)
	}
	return Fraction{value: *d}, nil
}

// Digits returns the number of decimal digits, so the denominator is
// 10^Digits.
func (f Fraction) Digits() int {
	return int(-f.value.Exponent)
}

// Numerator returns the numerator as a decimal integer string.
func (f Fraction) Numerator() string {
	return f.value.Coeff.String()
}

// Denominator returns the denominator as a decimal integer string.
func (f Fraction) Denominator() string {
	return "1" + strings.Repeat("0", f.Digits())
}

// IsZero returns true if the numerator is zero, whatever the number of
// digits.
func (f Fraction) IsZero() bool {
	return f.value.IsZero()
}

// String returns the fraction as "numerator/denominator".
func (f Fraction) String() string {
	return f.Numerator() + "/" + f.Denominator()
}

// Decimal returns a copy of the exact decimal value of f.
func (f Fraction) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(&f.value)
}

// Of returns f multiplied by unit, truncated to a whole number of microseconds.
// A fraction is always below one, so the result is below unit.
func (f Fraction) Of(unit time.Duration) time.Duration {
	if f.IsZero() {
		return 0
	}
	ctx := decimalContext(f.Digits(), apd.RoundDown)
	micros := apd.New(int64(unit/Tick), 0)
	if _, err := ctx.Mul(micros, micros, &f.value); err != nil {
		panic(err)
	}
	return integral(ctx, micros) * Tick
}

// Precision returns the width of the last digit of f in units of unit, that
// is unit / 10^Digits, rounded half-even to a whole number of microseconds
// and never less than Tick.
func (f Fraction) Precision(unit time.Duration) time.Duration {
	ctx := decimalContext(f.Digits(), apd.RoundHalfEven)
	width := apd.New(int64(unit/Tick), f.value.Exponent)
	if p := integral(ctx, width) * Tick; p > 0 {
		return p
	}
	return Tick
}

// decimalContext returns a context precise enough to hold any product of a
// fraction of digits digits with a microsecond count.
func decimalContext(digits int, rounding apd.Rounder) *apd.Context {
	const headroom = 24
	ctx := apd.BaseContext.WithPrecision(uint32(digits) + headroom)
	ctx.Rounding = rounding
	return ctx
}

// integral rounds d to an integer with the rounding mode of ctx.
func integral(ctx *apd.Context, d *apd.Decimal) time.Duration {
	if _, err := ctx.RoundToIntegralValue(d, d); err != nil {
		panic(err)
	}
	n, err := d.Int64()
	if err != nil {
		panic(err)
	}
	return time.Duration(n)
}
