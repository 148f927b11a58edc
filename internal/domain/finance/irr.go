package finance

import (
	"math"
	"simulador_tokenizacao/internal/domain/entities"
)

const (
	DefaultIRRGuess         = 0.01
	DefaultIRRMaxIterations = 100
	DefaultIRRTolerance     = 1e-4

	irrFloor           = -0.99
	irrDerivativeFloor = 1e-15
)

// IRRSolver finds the periodic rate that zeroes the NPV of a cash-flow series
// using Newton-Raphson. Tolerance bounds |NPV| relative to the outlay, so it holds for any
// principal size.
type IRRSolver struct {
	Guess         float64
	MaxIterations int
	Tolerance     float64
}

// DefaultIRRSolver starts at 1%/period, iterates up to 100 times and accepts
// |NPV| / |flows[0]| < 1e-4.
func DefaultIRRSolver() IRRSolver {
	return IRRSolver{
		Guess:         DefaultIRRGuess,
		MaxIterations: DefaultIRRMaxIterations,
		Tolerance:     DefaultIRRTolerance,
	}
}

func (s IRRSolver) withDefaults() IRRSolver {
	if s.MaxIterations <= 0 {
		s.MaxIterations = DefaultIRRMaxIterations
	}
	if s.Tolerance <= 0 {
		s.Tolerance = DefaultIRRTolerance
	}
	if s.Guess == 0 || s.Guess <= irrFloor {
		s.Guess = DefaultIRRGuess
	}
	return s
}

// Solve returns the periodic IRR of flows, where flows[0] is the outlay.
// ok is false when the solver does not converge within MaxIterations, or when flows has no
// sign change and therefore no IRR.
func (s IRRSolver) Solve(flows []entities.Cents) (rate entities.Rate, ok bool) {
	if len(flows) < 2 || !hasSignChange(flows) {
		return 0, false
	}
	s = s.withDefaults()
	scale := npvScale(flows)

	r := s.Guess
	for iter := 0; iter < s.MaxIterations; iter++ {
		npv, dnpv := npvAndDeriv(r, flows)
		if math.IsNaN(npv) || math.IsInf(npv, 0) {
			return 0, false
		}
		if math.Abs(dnpv) < irrDerivativeFloor {
			if math.Abs(npv)/scale < s.Tolerance {
				return entities.Rate(r), true
			}
			return 0, false
		}
		if math.Abs(npv)/scale < s.Tolerance {
			// one more step refines the accepted rate
			return entities.Rate(r - npv/dnpv), true
		}

		r -= npv / dnpv
		if r <= irrFloor {
			r = irrFloor + 1e-6
		}
	}
	return 0, false
}

// npvScale is |flows[0]|, or the largest flow when the series does not open with an outlay.
func npvScale(flows []entities.Cents) float64 {
	scale := math.Abs(float64(flows[0]))
	if scale == 0 {
		for _, cf := range flows {
			scale = math.Max(scale, math.Abs(float64(cf)))
		}
	}
	return scale
}

func hasSignChange(flows []entities.Cents) bool {
	var neg, pos bool
	for _, cf := range flows {
		neg = neg || cf < 0
		pos = pos || cf > 0
	}
	return neg && pos
}

// npvAndDeriv returns NPV(r) and dNPV/dr.
//
//	NPV   = Σ CF_t / (1+r)^t
//	dNPV  = Σ -t · CF_t / (1+r)^(t+1)
func npvAndDeriv(r float64, flows []entities.Cents) (float64, float64) {
	var npv, deriv float64
	base := 1 + r
	disc := 1.0
	for t, cf := range flows {
		amt := float64(cf)
		npv += amt / disc
		if t > 0 {
			deriv += -float64(t) * amt / (disc * base)
		}
		disc *= base
	}
	return npv, deriv
}
