package finance

import (
	"math"
	"simulador_tokenizacao/internal/domain/entities"
	"strings"
)

const (
	noteInterestCapitalized = "carência de juros, capitalizado"
	noteInterestDeferred    = "carência de juros, não pago"
	notePrincipalGrace      = "carência de principal"
	noteFinalPayment        = "liquidação final"
)

// DebtTerms describes a debt whose monthly service is built by BuildDebtSchedule.
// It is shared by the investor schedule and by the viability debt service.
type DebtTerms struct {
	Principal      entities.Cents
	MonthlyRate    entities.Rate
	TermMonths     int
	InterestGrace  int
	PrincipalGrace int
	// CapitalizeGrace adds interest accrued inside the interest grace window to the balance.
	// When false that interest is deferred and never paid.
	CapitalizeGrace bool
	Method          entities.AmortizationMethod
}

// debtState is the value carried between months by the schedule fold.
type debtState struct {
	balance     entities.Cents
	installment entities.Cents // PRICE
	quota       entities.Cents // SAC
	windowOpen  bool
}

// BuildDebtSchedule returns TermMonths rows. The last row always amortizes the remaining balance.
// A non-positive term yields no rows. Amortization starts after the longer of the two grace
// windows.
//
// Unknown methods are amortized as PRICE.
func BuildDebtSchedule(t DebtTerms) []entities.ScheduleRow {
	if t.TermMonths <= 0 {
		return nil
	}
	t.Method = t.Method.Normalize()

	rows := make([]entities.ScheduleRow, 0, t.TermMonths)
	st := debtState{balance: t.Principal}
	for m := 1; m <= t.TermMonths; m++ {
		var row entities.ScheduleRow
		row, st = t.step(m, st)
		rows = append(rows, row)
	}
	return rows
}

func (t DebtTerms) step(m int, st debtState) (entities.ScheduleRow, debtState) {
	row := entities.ScheduleRow{Mes: m, SaldoInicial: st.balance}
	var notes []string

	interest := st.balance.MulRate(t.MonthlyRate)
	row.Juros = interest
	balance := st.balance

	inInterestGrace := m <= t.InterestGrace
	// No principal is repaid while interest is still being capitalized or deferred.
	holdPrincipal := inInterestGrace || m <= t.PrincipalGrace
	last := m == t.TermMonths

	switch {
	case inInterestGrace && t.CapitalizeGrace:
		row.JurosCapitalizados = interest
		balance += interest
		notes = append(notes, noteInterestCapitalized)
	case inInterestGrace:
		notes = append(notes, noteInterestDeferred)
	default:
		row.JurosPagos = interest
	}

	if !holdPrincipal && !st.windowOpen {
		st = t.openWindow(st, balance, t.TermMonths-m+1)
	}

	var amort entities.Cents
	switch {
	case last:
		amort = balance
		if t.Method == entities.MethodBullet || holdPrincipal {
			notes = append(notes, noteFinalPayment)
		}
	case holdPrincipal:
		if m <= t.PrincipalGrace {
			notes = append(notes, notePrincipalGrace)
		}
	case t.Method == entities.MethodBullet:
	case t.Method == entities.MethodSAC:
		amort = st.quota
	default:
		amort = st.installment - interest
	}
	amort = clampCents(amort, 0, balance)
	balance -= amort

	row.Amortizacao = amort
	row.Parcela = row.JurosPagos + amort
	row.SaldoFinal = balance
	row.Observacoes = strings.Join(notes, "; ")

	st.balance = balance
	return row, st
}

// openWindow fixes the PRICE installment and the SAC quota on the balance at the first
// amortization month (capitalized interest included), spread over the remaining periods.
func (t DebtTerms) openWindow(st debtState, base entities.Cents, periods int) debtState {
	st.windowOpen = true
	if periods <= 0 {
		return st
	}
	st.installment = Installment(base, t.MonthlyRate, periods)
	st.quota = entities.Cents(math.Round(float64(base) / float64(periods)))
	return st
}

// Installment is the constant PRICE payment that repays principal over n periods at rate r.
//
//	PMT = P · r / (1 − (1+r)^−n)
func Installment(principal entities.Cents, r entities.Rate, n int) entities.Cents {
	if n <= 0 {
		return principal
	}
	rate := float64(r)
	if rate == 0 {
		return entities.Cents(math.Round(float64(principal) / float64(n)))
	}
	factor := rate / (1 - math.Pow(1+rate, -float64(n)))
	return principal.MulFloat(factor)
}

func clampCents(v, lo, hi entities.Cents) entities.Cents {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
