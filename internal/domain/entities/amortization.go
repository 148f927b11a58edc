package entities

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Capitalization is how a nominal annual rate becomes a monthly rate.
type Capitalization string

const (
	CapitalizationSimple   Capitalization = "simple"
	CapitalizationCompound Capitalization = "compound"
)

// AmortizationMethod selects how principal is repaid.
type AmortizationMethod string

const (
	MethodPrice  AmortizationMethod = "PRICE"
	MethodSAC    AmortizationMethod = "SAC"
	MethodBullet AmortizationMethod = "bullet"
)

// CalendarConvention is recorded with the request. Monthly accrual does not depend on it.
type CalendarConvention string

const (
	Calendar30360  CalendarConvention = "30/360"
	CalendarACT365 CalendarConvention = "ACT/365"
	CalendarACT360 CalendarConvention = "ACT/360"
)

// Periodicity of interest or amortization payments. Informational: the schedule is monthly.
type Periodicity string

const (
	PeriodicityMonthly    Periodicity = "mensal"
	PeriodicityQuarterly  Periodicity = "trimestral"
	PeriodicitySemiannual Periodicity = "semestral"
	PeriodicityAnnual     Periodicity = "anual"
	PeriodicityAtMaturity Periodicity = "vencimento"
)

// AmortizationRequest describes one loan-like investment in a tokenized offering.
//
// Monetary representation:
//   - every amount is in Cents
//   - every rate/percentage is in BasisPoints
//
// Cost fields are annotations only; they never reduce the investor cash flow.
type AmortizationRequest struct {
	ValorInvestido           Cents              `json:"valorInvestido"`
	ValorTotalOferta         Cents              `json:"valorTotalOferta"`
	DataInicio               *civil.Date        `json:"dataInicio,omitempty"`
	PrazoMeses               int                `json:"prazoMeses"`
	TaxaAnual                BasisPoints        `json:"taxaAnual"`
	ConvencaoCalendario      CalendarConvention `json:"convencaoCalendario,omitempty"`
	Capitalizacao            Capitalization     `json:"capitalizacao"`
	PeriodicidadeJuros       Periodicity        `json:"periodicidadeJuros,omitempty"`
	PeriodicidadeAmortizacao Periodicity        `json:"periodicidadeAmortizacao,omitempty"`
	CarenciaJurosMeses       int                `json:"carenciaJurosMeses"`
	CarenciaPrincipalMeses   int                `json:"carenciaPrincipalMeses"`
	CapitalizarJurosCarencia bool               `json:"capitalizarJurosCarencia"`
	Metodo                   AmortizationMethod `json:"metodo"`
	TaxaSetup                Cents              `json:"taxaSetup"`
	SuccessFeePct            BasisPoints        `json:"successFeePct"`
	TaxaManutencaoMensal     Cents              `json:"taxaManutencaoMensal"`
}

// ScheduleRow is one month of the investor schedule.
//
// Juros is the interest accrued on SaldoInicial. JurosPagos is the part actually paid this
// month: zero inside the interest grace window, where Juros is either capitalized or deferred.
//
// Invariant: SaldoFinal = SaldoInicial + JurosCapitalizados - Amortizacao.
type ScheduleRow struct {
	Mes                int         `json:"mes"`
	DataVencimento     *civil.Date `json:"dataVencimento,omitempty"`
	SaldoInicial       Cents       `json:"saldoInicial"`
	Juros              Cents       `json:"juros"`
	JurosCapitalizados Cents       `json:"jurosCapitalizados"`
	JurosPagos         Cents       `json:"jurosPagos"`
	Amortizacao        Cents       `json:"amortizacao"`
	Parcela            Cents       `json:"parcela"`
	CustosFixos        Cents       `json:"custosFixos"`
	SaldoFinal         Cents       `json:"saldoFinal"`
	Observacoes        string      `json:"observacoes,omitempty"`
}

// AmortizationSummary aggregates a schedule from the investor's perspective.
// TIRMensal/TIRAnual are nil when the IRR is not computable.
type AmortizationSummary struct {
	TotalJuros         Cents        `json:"totalJuros"`
	TotalAmortizado    Cents        `json:"totalAmortizado"`
	TotalRecebido      Cents        `json:"totalRecebido"`
	JurosCapitalizados Cents        `json:"jurosCapitalizados"`
	TotalCustos        Cents        `json:"totalCustos"`
	TaxaMensal         BasisPoints  `json:"taxaMensal"`
	TIRMensal          *BasisPoints `json:"tirMensal"`
	TIRAnual           *BasisPoints `json:"tirAnual"`
	PercentualOferta   BasisPoints  `json:"percentualOferta"`
}

// SimulationResult is the engine output for one AmortizationRequest.
type SimulationResult struct {
	Cronograma []ScheduleRow       `json:"cronograma"`
	Resumo     AmortizationSummary `json:"resumo"`
}

// Simulation is a SimulationResult stamped by the use case layer.
type Simulation struct {
	ID        string              `json:"id"`
	Request   AmortizationRequest `json:"request"`
	Result    SimulationResult    `json:"result"`
	CreatedAt time.Time           `json:"created_at"`
}

// Normalize maps accepted spellings ("price", "sac", "BULLET") to the canonical method.
// Unknown values are returned unchanged.
func (m AmortizationMethod) Normalize() AmortizationMethod {
	switch strings.ToUpper(strings.TrimSpace(string(m))) {
	case "PRICE":
		return MethodPrice
	case "SAC":
		return MethodSAC
	case "BULLET":
		return MethodBullet
	}
	return m
}

// IsValid reports whether m is a known method after normalization.
func (m AmortizationMethod) IsValid() bool {
	switch m.Normalize() {
	case MethodPrice, MethodSAC, MethodBullet:
		return true
	}
	return false
}
