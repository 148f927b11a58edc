package response

import (
	"simulador_tokenizacao/internal/domain/entities"
	"time"
)

type CashFlowResponse struct {
	Meses      int                    `json:"meses"`
	FluxoCaixa []entities.MonthlyFlow `json:"fluxoCaixa"`
}

type ViabilityAnalysisResponse struct {
	FluxoCaixa  []entities.MonthlyFlow `json:"fluxoCaixa"`
	Indicadores entities.Indicators    `json:"indicadores"`
}

type ScenariosResponse struct {
	Cenarios []entities.ScenarioResult `json:"cenarios"`
}

type RiskResponse struct {
	Nivel         string   `json:"nivel"`
	Cenario       string   `json:"cenario"`
	Recomendacoes []string `json:"recomendacoes"`
}

type ViabilityReportResponse struct {
	ID        string                    `json:"id"`
	Cenarios  []entities.ScenarioResult `json:"cenarios"`
	Risco     RiskResponse              `json:"risco"`
	CreatedAt time.Time                 `json:"created_at"`
}

func FromCashFlow(flows []entities.MonthlyFlow) CashFlowResponse {
	return CashFlowResponse{Meses: len(flows), FluxoCaixa: flows}
}

func FromViabilityAnalysis(a entities.ViabilityAnalysis) ViabilityAnalysisResponse {
	return ViabilityAnalysisResponse{FluxoCaixa: a.FluxoCaixa, Indicadores: a.Indicadores}
}

func FromScenarioResults(results []entities.ScenarioResult) ScenariosResponse {
	if results == nil {
		results = []entities.ScenarioResult{}
	}
	return ScenariosResponse{Cenarios: results}
}

func FromRiskClassification(r entities.RiskClassification) RiskResponse {
	recs := r.Recomendacoes
	if recs == nil {
		recs = []string{}
	}
	return RiskResponse{Nivel: string(r.Nivel), Cenario: r.Cenario, Recomendacoes: recs}
}

func FromViabilityReport(r entities.ViabilityReport) ViabilityReportResponse {
	return ViabilityReportResponse{
		ID:        r.ID,
		Cenarios:  FromScenarioResults(r.Cenarios).Cenarios,
		Risco:     FromRiskClassification(r.Risco),
		CreatedAt: r.CreatedAt,
	}
}
