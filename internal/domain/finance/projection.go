package finance

import (
	"math"
	"simulador_tokenizacao/internal/domain/entities"
)

const fullMarginPct = 100.0

// RevenueModel produces the operating lines (revenue, costs, EBITDA) of one projected month.
// It is resolved once per projection by ResolveRevenueModel.
type RevenueModel interface {
	Operating(month int, scenario entities.ScenarioConfig) OperatingMonth
}

// OperatingMonth holds the operating lines of a MonthlyFlow. Pointer fields stay nil
// when the model does not define them.
type OperatingMonth struct {
	Clientes       *int64
	ReceitaBruta   entities.Cents
	CustoVariavel  *entities.Cents
	ReceitaLiquida *entities.Cents
	MargemBrutaPct *float64
	Opex           entities.Cents
	Ebitda         entities.Cents
}

// LegacyModel is the customer-ramp × ticket model with eight fixed OPEX buckets.
// Scenario multipliers do not apply to it.
type LegacyModel struct {
	Opex        entities.LegacyOpex
	Rampa       entities.CustomerRamp
	TicketMedio entities.Cents
}

// GenericModel sums arbitrary revenue streams and fixed costs.
type GenericModel struct {
	Receitas         []entities.RevenueItem
	CustosFixos      []entities.FixedCostItem
	CustoVariavelPct *entities.BasisPoints
}

var (
	_ RevenueModel = LegacyModel{}
	_ RevenueModel = GenericModel{}
)

// ResolveRevenueModel picks the generic model when revenue items or fixed costs are present,
// the legacy model otherwise.
func ResolveRevenueModel(in entities.ViabilityInput) RevenueModel {
	if in.IsGeneric() {
		return GenericModel{
			Receitas:         in.Receitas,
			CustosFixos:      in.CustosFixos,
			CustoVariavelPct: in.CustoVariavelPct,
		}
	}
	m := LegacyModel{TicketMedio: in.TicketMedio}
	if in.Opex != nil {
		m.Opex = *in.Opex
	}
	if in.Rampa != nil {
		m.Rampa = *in.Rampa
	}
	return m
}

func (m LegacyModel) Operating(month int, _ entities.ScenarioConfig) OperatingMonth {
	clientes := m.customers(month)
	op := OperatingMonth{Clientes: &clientes}
	if month < m.opening() {
		return op
	}
	op.ReceitaBruta = entities.Cents(clientes) * m.TicketMedio
	op.Opex = m.Opex.Total()
	op.Ebitda = op.ReceitaBruta - op.Opex
	return op
}

func (m LegacyModel) opening() int {
	if m.Rampa.MesAbertura < 1 {
		return 1
	}
	return m.Rampa.MesAbertura
}

// customers is zero before opening, grows exponentially capped at the steady state until
// stabilization, is flat afterwards, and never exceeds the maximum capacity.
func (m LegacyModel) customers(month int) int64 {
	r := m.Rampa
	opening := m.opening()
	if month < opening {
		return 0
	}

	var c int64
	if r.MesEstabilizacao > 0 && month >= r.MesEstabilizacao {
		c = r.ClientesSteadyState
	} else {
		growth := math.Pow(1+float64(r.TaxaCrescimento.Rate()), float64(month-opening))
		c = int64(math.Round(float64(r.ClientesInicio) * growth))
		if r.ClientesSteadyState > 0 && c > r.ClientesSteadyState {
			c = r.ClientesSteadyState
		}
	}
	if r.CapacidadeMaxima > 0 && c > r.CapacidadeMaxima {
		c = r.CapacidadeMaxima
	}
	return c
}

func (m GenericModel) Operating(month int, sc entities.ScenarioConfig) OperatingMonth {
	var gross, variable entities.Cents
	for _, item := range m.Receitas {
		revenue := item.Revenue(month)
		if sc.MultReceita != 1 {
			revenue = revenue.MulFloat(sc.MultReceita)
		}
		cost := revenue.MulBasisPoints(m.variableCostPct(item))
		if sc.MultCustoVariavel != 1 {
			cost = cost.MulFloat(sc.MultCustoVariavel)
		}
		gross += revenue
		variable += cost
	}

	var opex entities.Cents
	for _, item := range m.CustosFixos {
		opex += item.Cost(month)
	}
	if sc.MultOpex != 1 {
		opex = opex.MulFloat(sc.MultOpex)
	}

	net := gross - variable
	margin := fullMarginPct
	if variable != 0 {
		margin = entities.PercentOf(net, gross)
	}
	return OperatingMonth{
		ReceitaBruta:   gross,
		CustoVariavel:  &variable,
		ReceitaLiquida: &net,
		MargemBrutaPct: &margin,
		Opex:           opex,
		Ebitda:         net - opex,
	}
}

func (m GenericModel) variableCostPct(item entities.RevenueItem) entities.BasisPoints {
	if item.CustoVariavelPct != nil {
		return *item.CustoVariavelPct
	}
	if m.CustoVariavelPct != nil {
		return *m.CustoVariavelPct
	}
	return 0
}

// CalculateCashFlow projects ProjectionMonths months of in without scenario scaling.
func (e Engine) CalculateCashFlow(in entities.ViabilityInput) []entities.MonthlyFlow {
	return e.project(in, ResolveRevenueModel(in), BaseScenario())
}

// project folds the operating lines and the debt service into the cumulative balance,
// which starts at ValorCaptado minus total CAPEX. Months past the debt term carry no service.
func (e Engine) project(in entities.ViabilityInput, model RevenueModel, sc entities.ScenarioConfig) []entities.MonthlyFlow {
	debt := BuildDebtSchedule(DebtTerms{
		Principal:      in.InvestorPrincipal(),
		MonthlyRate:    in.TaxaMensal.Rate(),
		TermMonths:     in.PrazoMeses,
		PrincipalGrace: in.CarenciaMeses,
		Method:         in.Metodo,
	})

	flows := make([]entities.MonthlyFlow, 0, entities.ProjectionMonths)
	balance := in.ValorCaptado - in.Capex.Total()
	for month := 1; month <= entities.ProjectionMonths; month++ {
		op := model.Operating(month, sc)
		f := entities.MonthlyFlow{
			Mes:            month,
			Clientes:       op.Clientes,
			ReceitaBruta:   op.ReceitaBruta,
			CustoVariavel:  op.CustoVariavel,
			ReceitaLiquida: op.ReceitaLiquida,
			MargemBrutaPct: op.MargemBrutaPct,
			Opex:           op.Opex,
			Ebitda:         op.Ebitda,
		}
		if month <= len(debt) {
			f.Amortizacao = debt[month-1].Amortizacao
			f.Juros = debt[month-1].JurosPagos
		}
		f.FluxoLivre = f.Ebitda - f.Amortizacao - f.Juros
		balance += f.FluxoLivre
		f.SaldoAcumulado = balance
		flows = append(flows, f)
	}
	return flows
}
