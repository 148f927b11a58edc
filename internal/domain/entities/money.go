package entities

import (
	"math"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in minor currency units (centavos).
type Cents int64

// BasisPoints is a percentage-like value in hundredths of a percent.
// 2400 means 24.00%.
type BasisPoints int64

// Rate is a decimal fraction per period (0.02 means 2% per period).
// It is only used inside computations; reported rates are BasisPoints.
type Rate float64

const basisPointsPerUnit = 10000

var hundred = decimal.NewFromInt(100)

// Rate converts basis points to a decimal fraction.
func (b BasisPoints) Rate() Rate {
	return Rate(float64(b) / basisPointsPerUnit)
}

// Percent returns the value as a plain percentage (2400 -> 24.0).
func (b BasisPoints) Percent() float64 {
	return float64(b) / 100
}

// BasisPoints rounds the rate to the nearest basis point.
func (r Rate) BasisPoints() BasisPoints {
	return BasisPoints(math.Round(float64(r) * basisPointsPerUnit))
}

// MulRate returns c × r rounded half away from zero to the nearest cent.
func (c Cents) MulRate(r Rate) Cents {
	return c.MulFloat(float64(r))
}

// MulFloat returns c × f rounded half away from zero to the nearest cent.
func (c Cents) MulFloat(f float64) Cents {
	return Cents(decimal.NewFromInt(int64(c)).
		Mul(decimal.NewFromFloat(f)).
		Round(0).
		IntPart())
}

// MulBasisPoints returns c × b/10000 computed exactly and rounded to the cent.
func (c Cents) MulBasisPoints(b BasisPoints) Cents {
	return Cents(decimal.NewFromInt(int64(c)).
		Mul(decimal.NewFromInt(int64(b))).
		Div(decimal.NewFromInt(basisPointsPerUnit)).
		Round(0).
		IntPart())
}

// RatioBasisPoints returns num/den expressed in basis points, rounded.
// A zero denominator yields zero.
func RatioBasisPoints(num, den Cents) BasisPoints {
	if den == 0 {
		return 0
	}
	return BasisPoints(decimal.NewFromInt(int64(num)).
		Mul(decimal.NewFromInt(basisPointsPerUnit)).
		Div(decimal.NewFromInt(int64(den))).
		Round(0).
		IntPart())
}

// PercentOf returns num/den × 100 as a float, or zero for a zero denominator.
func PercentOf(num, den Cents) float64 {
	if den == 0 {
		return 0
	}
	f, _ := decimal.NewFromInt(int64(num)).
		Mul(hundred).
		DivRound(decimal.NewFromInt(int64(den)), 8).
		Float64()
	return f
}
