package finance

import "simulador_tokenizacao/internal/domain/entities"

// ViabilityPaybackLimit is the payback month a viable projection must stay below.
const ViabilityPaybackLimit = 48

// ComputeIndicators summarizes a projection of in.
//
// Breakeven is the first month with positive EBITDA and payback the first with a positive
// cumulative balance; both fall back to the last projected month. MargemEbitdaMedia is the
// mean EBITDA/revenue percentage over months with revenue.
func ComputeIndicators(in entities.ViabilityInput, flows []entities.MonthlyFlow) entities.Indicators {
	investor := in.InvestorPrincipal()
	ind := entities.Indicators{
		CapexTotal:        in.Capex.Total(),
		ValorInvestidor:   investor,
		ValorCoInvestidor: in.ValorCaptado - investor,
		SuccessFee:        in.ValorCaptado.MulBasisPoints(in.SuccessFeePct),
		TaxaFixa:          in.TaxaFixa,
		MesBreakeven:      entities.ProjectionMonths,
		MesPayback:        entities.ProjectionMonths,
	}

	breakeven, payback := false, false
	var marginSum float64
	var marginMonths int
	for _, f := range flows {
		ind.TotalJuros += f.Juros
		if !breakeven && f.Ebitda > 0 {
			ind.MesBreakeven, breakeven = f.Mes, true
		}
		if !payback && f.SaldoAcumulado > 0 {
			ind.MesPayback, payback = f.Mes, true
		}
		if f.ReceitaBruta != 0 {
			marginSum += entities.PercentOf(f.Ebitda, f.ReceitaBruta)
			marginMonths++
		}
	}
	if marginMonths > 0 {
		ind.MargemEbitdaMedia = marginSum / float64(marginMonths)
	}
	if len(flows) > 0 {
		ind.SaldoFinal = flows[len(flows)-1].SaldoAcumulado
	}
	ind.Viavel = ind.MesPayback < ViabilityPaybackLimit && ind.SaldoFinal > 0
	return ind
}

// AnalyzeViability projects in and computes its indicators.
func (e Engine) AnalyzeViability(in entities.ViabilityInput) entities.ViabilityAnalysis {
	flows := e.CalculateCashFlow(in)
	return entities.ViabilityAnalysis{
		FluxoCaixa:  flows,
		Indicadores: ComputeIndicators(in, flows),
	}
}
