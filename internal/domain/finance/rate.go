// Package finance is the deterministic modeling engine: rate conversion, IRR,
// amortization schedules, 60-month viability projections, scenarios, indicators and risk.
//
// Every function here is pure. Inputs arrive already validated and already converted to
// Cents/BasisPoints; nothing in this package returns an error.
package finance

import (
	"math"
	"simulador_tokenizacao/internal/domain/entities"
)

const monthsPerYear = 12

// MonthlyRate converts a nominal annual rate into the effective monthly rate.
//
//	simple:   annual / 12
//	compound: (1 + annual)^(1/12) - 1
//
// Unknown capitalization kinds fall back to simple.
func MonthlyRate(annual entities.BasisPoints, kind entities.Capitalization) entities.Rate {
	a := float64(annual.Rate())
	if kind == entities.CapitalizationCompound {
		return entities.Rate(math.Pow(1+a, 1.0/monthsPerYear) - 1)
	}
	return entities.Rate(a / monthsPerYear)
}

// MonthlyRateBasisPoints is MonthlyRate rounded for reporting.
func MonthlyRateBasisPoints(annual entities.BasisPoints, kind entities.Capitalization) entities.BasisPoints {
	return MonthlyRate(annual, kind).BasisPoints()
}

// AnnualFromMonthly compounds a monthly rate over twelve months.
func AnnualFromMonthly(monthly entities.Rate) entities.Rate {
	return entities.Rate(math.Pow(1+float64(monthly), monthsPerYear) - 1)
}
