package finance

import "simulador_tokenizacao/internal/domain/entities"

const (
	riskHighPaybackMonths   = 48
	riskMediumPaybackMonths = 36
	riskMinGrossMarginPct   = 40.0

	RecommendationPricing   = "Margem bruta abaixo de 40% no mês 12: revisar preços e custos variáveis."
	RecommendationPayback   = "Payback acima de 36 meses: reduzir OPEX ou acelerar o crescimento de receita."
	RecommendationResilient = "Operação resiliente no cenário conservador: indicadores dentro dos limites."
)

// ExtractRiskMetrics reads the month-12 and month-24 figures of a projection.
func ExtractRiskMetrics(flows []entities.MonthlyFlow) entities.RiskMetrics {
	var m entities.RiskMetrics
	if f, ok := flowAt(flows, 12); ok {
		m.EbitdaMes12 = f.Ebitda
		if f.MargemBrutaPct != nil {
			margin := *f.MargemBrutaPct
			m.MargemBrutaMes12 = &margin
		}
	}
	if f, ok := flowAt(flows, 24); ok {
		m.EbitdaMes24 = f.Ebitda
	}
	return m
}

func flowAt(flows []entities.MonthlyFlow, month int) (entities.MonthlyFlow, bool) {
	for _, f := range flows {
		if f.Mes == month {
			return f, true
		}
	}
	return entities.MonthlyFlow{}, false
}

// ClassifyRisk maps Conservador indicators and metrics to a tier plus recommendations.
//
//	alto:  payback > 48 or EBITDA at month 24 < 0
//	medio: payback > 36
//	baixo: otherwise
func ClassifyRisk(in entities.RiskInput) entities.RiskClassification {
	payback := in.Indicadores.MesPayback

	level := entities.RiskBaixo
	switch {
	case payback > riskHighPaybackMonths || in.Metricas.EbitdaMes24 < 0:
		level = entities.RiskAlto
	case payback > riskMediumPaybackMonths:
		level = entities.RiskMedio
	}

	var recs []string
	if m := in.Metricas.MargemBrutaMes12; m != nil && *m < riskMinGrossMarginPct {
		recs = append(recs, RecommendationPricing)
	}
	if payback > riskMediumPaybackMonths {
		recs = append(recs, RecommendationPayback)
	}
	if len(recs) == 0 {
		recs = append(recs, RecommendationResilient)
	}

	return entities.RiskClassification{
		Nivel:         level,
		Cenario:       entities.ScenarioConservador,
		Recomendacoes: recs,
	}
}
