package entities

import (
	"math"
	"time"
)

// ProjectionMonths is the fixed horizon of every viability projection.
const ProjectionMonths = 60

// Default scenario names.
const (
	ScenarioBase        = "Base"
	ScenarioConservador = "Conservador"
	ScenarioOtimista    = "Otimista"
)

// CapexBuckets groups the up-front investment of the issuer.
type CapexBuckets struct {
	Obras        Cents `json:"obras"`
	Equipamentos Cents `json:"equipamentos"`
	Instalacoes  Cents `json:"instalacoes"`
	CapitalGiro  Cents `json:"capitalGiro"`
	Outros       Cents `json:"outros"`
}

func (c CapexBuckets) Total() Cents {
	return c.Obras + c.Equipamentos + c.Instalacoes + c.CapitalGiro + c.Outros
}

// LegacyOpex holds the eight fixed monthly OPEX buckets of the legacy model.
type LegacyOpex struct {
	Aluguel        Cents `json:"aluguel"`
	Pessoal        Cents `json:"pessoal"`
	Energia        Cents `json:"energia"`
	Manutencao     Cents `json:"manutencao"`
	Marketing      Cents `json:"marketing"`
	Administrativo Cents `json:"administrativo"`
	Seguros        Cents `json:"seguros"`
	Outros         Cents `json:"outros"`
}

func (o LegacyOpex) Total() Cents {
	return o.Aluguel + o.Pessoal + o.Energia + o.Manutencao +
		o.Marketing + o.Administrativo + o.Seguros + o.Outros
}

// CustomerRamp drives the legacy "customers × ticket" revenue model.
type CustomerRamp struct {
	ClientesInicio      int64       `json:"clientesInicio"`
	MesAbertura         int         `json:"mesAbertura"`
	TaxaCrescimento     BasisPoints `json:"taxaCrescimento"`
	MesEstabilizacao    int         `json:"mesEstabilizacao"`
	ClientesSteadyState int64       `json:"clientesSteadyState"`
	CapacidadeMaxima    int64       `json:"capacidadeMaxima"`
}

// RevenueItem is one revenue stream of the generic model.
// CustoVariavelPct overrides the input-wide variable cost when set.
type RevenueItem struct {
	Nome                 string       `json:"nome"`
	PrecoUnitario        Cents        `json:"precoUnitario"`
	QuantidadeMensal     int64        `json:"quantidadeMensal"`
	CrescimentoMensalPct BasisPoints  `json:"crescimentoMensalPct"`
	CustoVariavelPct     *BasisPoints `json:"custoVariavelPct,omitempty"`
}

// Revenue is PrecoUnitario × QuantidadeMensal × (1+CrescimentoMensalPct)^(month-1).
func (r RevenueItem) Revenue(month int) Cents {
	base := r.PrecoUnitario * Cents(r.QuantidadeMensal)
	if r.CrescimentoMensalPct == 0 || month <= 1 {
		return base
	}
	return base.MulFloat(math.Pow(1+float64(r.CrescimentoMensalPct.Rate()), float64(month-1)))
}

// FixedCostItem is one fixed monthly cost of the generic model, readjusted once per
// completed 12-month block.
type FixedCostItem struct {
	Nome             string      `json:"nome"`
	ValorMensal      Cents       `json:"valorMensal"`
	ReajusteAnualPct BasisPoints `json:"reajusteAnualPct"`
}

// Cost is ValorMensal readjusted by ReajusteAnualPct once per completed 12-month block:
// months 1-12 pay the base value and month 13 is the first adjusted one.
func (f FixedCostItem) Cost(month int) Cents {
	blocks := (month - 1) / 12
	if f.ReajusteAnualPct == 0 || blocks <= 0 {
		return f.ValorMensal
	}
	return f.ValorMensal.MulFloat(math.Pow(1+float64(f.ReajusteAnualPct.Rate()), float64(blocks)))
}

// ViabilityInput describes an issuer raise and its operating model.
//
// Exactly one revenue model applies: when Receitas or CustosFixos are present the generic
// model is used, otherwise the legacy Opex + Rampa + TicketMedio model.
type ViabilityInput struct {
	// Captação
	ValorCaptado      Cents       `json:"valorCaptado"`
	CoInvestimentoPct BasisPoints `json:"coInvestimentoPct"`
	TaxaFixa          Cents       `json:"taxaFixa"`
	SuccessFeePct     BasisPoints `json:"successFeePct"`

	// Remuneração
	TaxaMensal    BasisPoints        `json:"taxaMensal"`
	PrazoMeses    int                `json:"prazoMeses"`
	CarenciaMeses int                `json:"carenciaMeses"`
	Metodo        AmortizationMethod `json:"metodo"`

	Capex CapexBuckets `json:"capex"`

	// Modelo legado
	Opex        *LegacyOpex   `json:"opex,omitempty"`
	Rampa       *CustomerRamp `json:"rampa,omitempty"`
	TicketMedio Cents         `json:"ticketMedio,omitempty"`

	// Modelo genérico
	Receitas         []RevenueItem   `json:"receitas,omitempty"`
	CustosFixos      []FixedCostItem `json:"custosFixos,omitempty"`
	CustoVariavelPct *BasisPoints    `json:"custoVariavelPct,omitempty"`
}

// IsGeneric reports whether the generic revenue model applies.
func (in ViabilityInput) IsGeneric() bool {
	return len(in.Receitas) > 0 || len(in.CustosFixos) > 0
}

// InvestorPrincipal is the investor-funded share of the raise.
func (in ViabilityInput) InvestorPrincipal() Cents {
	return in.ValorCaptado - in.ValorCaptado.MulBasisPoints(in.CoInvestimentoPct)
}

// MonthlyFlow is one projected month (1..60).
//
// Clientes is only set by the legacy model. CustoVariavel, ReceitaLiquida and
// MargemBrutaPct are only set by the generic model.
type MonthlyFlow struct {
	Mes            int      `json:"mes"`
	Clientes       *int64   `json:"clientes,omitempty"`
	ReceitaBruta   Cents    `json:"receitaBruta"`
	CustoVariavel  *Cents   `json:"custoVariavel,omitempty"`
	ReceitaLiquida *Cents   `json:"receitaLiquida,omitempty"`
	MargemBrutaPct *float64 `json:"margemBrutaPct,omitempty"`
	Opex           Cents    `json:"opex"`
	Ebitda         Cents    `json:"ebitda"`
	Amortizacao    Cents    `json:"amortizacao"`
	Juros          Cents    `json:"juros"`
	FluxoLivre     Cents    `json:"fluxoLivre"`
	SaldoAcumulado Cents    `json:"saldoAcumulado"`
}

// Indicators summarizes a projection.
type Indicators struct {
	CapexTotal        Cents   `json:"capexTotal"`
	ValorInvestidor   Cents   `json:"valorInvestidor"`
	ValorCoInvestidor Cents   `json:"valorCoInvestidor"`
	SuccessFee        Cents   `json:"successFee"`
	TaxaFixa          Cents   `json:"taxaFixa"`
	TotalJuros        Cents   `json:"totalJuros"`
	MesBreakeven      int     `json:"mesBreakeven"`
	MesPayback        int     `json:"mesPayback"`
	MargemEbitdaMedia float64 `json:"margemEbitdaMedia"`
	SaldoFinal        Cents   `json:"saldoFinal"`
	Viavel            bool    `json:"viavel"`
}

// ViabilityAnalysis is the single-scenario output.
type ViabilityAnalysis struct {
	FluxoCaixa  []MonthlyFlow `json:"fluxoCaixa"`
	Indicadores Indicators    `json:"indicadores"`
}

// ScenarioConfig scales revenue, variable cost and OPEX of the generic model.
type ScenarioConfig struct {
	Nome              string  `json:"nome" yaml:"nome"`
	MultReceita       float64 `json:"multReceita" yaml:"multReceita"`
	MultCustoVariavel float64 `json:"multCustoVariavel" yaml:"multCustoVariavel"`
	MultOpex          float64 `json:"multOpex" yaml:"multOpex"`
}

// ScenarioResult bundles a scenario name with its projection.
type ScenarioResult struct {
	Cenario     string        `json:"cenario"`
	FluxoCaixa  []MonthlyFlow `json:"fluxoCaixa"`
	Indicadores Indicators    `json:"indicadores"`
}

// ViabilityReport is every scenario plus the risk computed from Conservador.
type ViabilityReport struct {
	ID        string             `json:"id"`
	Cenarios  []ScenarioResult   `json:"cenarios"`
	Risco     RiskClassification `json:"risco"`
	CreatedAt time.Time          `json:"created_at"`
}
