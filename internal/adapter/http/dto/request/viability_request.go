package request

import (
	"simulador_tokenizacao/internal/domain/entities"
)

// ViabilityRequest is the issuer payload. It carries the engine input as-is: money in
// cents, percentages in basis points. Sending receitas or custosFixos selects the generic
// model, otherwise opex/rampa/ticketMedio are used.
type ViabilityRequest struct {
	entities.ViabilityInput
}

// ScenarioRequest describes one scenario. Missing multipliers default to 1.
type ScenarioRequest struct {
	Nome              string   `json:"nome" binding:"required"`
	MultReceita       *float64 `json:"multReceita"`
	MultCustoVariavel *float64 `json:"multCustoVariavel"`
	MultOpex          *float64 `json:"multOpex"`
}

// ScenariosRequest is a ViabilityRequest plus an optional scenario set. An empty set uses
// the server presets.
type ScenariosRequest struct {
	entities.ViabilityInput
	Cenarios []ScenarioRequest `json:"cenarios"`
}

// RiskRequest carries Conservador indicators and month-12/24 metrics.
type RiskRequest struct {
	Indicadores entities.Indicators  `json:"indicadores"`
	Metricas    entities.RiskMetrics `json:"metricas"`
}

func (r ScenarioRequest) ToScenarioConfig() entities.ScenarioConfig {
	return entities.ScenarioConfig{
		Nome:              r.Nome,
		MultReceita:       multiplierOrOne(r.MultReceita),
		MultCustoVariavel: multiplierOrOne(r.MultCustoVariavel),
		MultOpex:          multiplierOrOne(r.MultOpex),
	}
}

func (r ScenariosRequest) ScenarioConfigs() []entities.ScenarioConfig {
	if len(r.Cenarios) == 0 {
		return nil
	}
	out := make([]entities.ScenarioConfig, 0, len(r.Cenarios))
	for _, c := range r.Cenarios {
		out = append(out, c.ToScenarioConfig())
	}
	return out
}

func (r RiskRequest) ToRiskInput() entities.RiskInput {
	return entities.RiskInput{Indicadores: r.Indicadores, Metricas: r.Metricas}
}

func multiplierOrOne(v *float64) float64 {
	if v == nil {
		return 1
	}
	return *v
}
