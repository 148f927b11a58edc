package finance

import (
	"simulador_tokenizacao/internal/domain/entities"

	"golang.org/x/sync/errgroup"
)

// BaseScenario leaves every figure unscaled.
func BaseScenario() entities.ScenarioConfig {
	return entities.ScenarioConfig{Nome: entities.ScenarioBase, MultReceita: 1, MultCustoVariavel: 1, MultOpex: 1}
}

// DefaultScenarios is the Base/Conservador/Otimista preset.
func DefaultScenarios() []entities.ScenarioConfig {
	return []entities.ScenarioConfig{
		BaseScenario(),
		{Nome: entities.ScenarioConservador, MultReceita: 0.85, MultCustoVariavel: 1.1, MultOpex: 1.1},
		{Nome: entities.ScenarioOtimista, MultReceita: 1.15, MultCustoVariavel: 0.9, MultOpex: 0.95},
	}
}

// AnalyzeScenarios projects in once per config, in parallel, and returns the results in
// config order. An empty cfgs uses the engine presets.
//
// Legacy inputs ignore the multipliers, so every scenario returns the same flows.
func (e Engine) AnalyzeScenarios(in entities.ViabilityInput, cfgs []entities.ScenarioConfig) []entities.ScenarioResult {
	if len(cfgs) == 0 {
		cfgs = e.Presets()
	}
	model := ResolveRevenueModel(in)
	results := make([]entities.ScenarioResult, len(cfgs))

	var g errgroup.Group
	g.SetLimit(e.workers())
	for i, cfg := range cfgs {
		g.Go(func() error {
			flows := e.project(in, model, cfg)
			results[i] = entities.ScenarioResult{
				Cenario:     cfg.Nome,
				FluxoCaixa:  flows,
				Indicadores: ComputeIndicators(in, flows),
			}
			return nil
		})
	}
	// The workers never return an error; Wait only bounds the fan-out.
	_ = g.Wait()
	return results
}

// conservativeScenario returns the Conservador entry of cfgs, falling back to the engine presets
// and then to the built-in default.
func (e Engine) conservativeScenario(cfgs []entities.ScenarioConfig) (entities.ScenarioConfig, bool) {
	for _, cfg := range cfgs {
		if cfg.Nome == entities.ScenarioConservador {
			return cfg, true
		}
	}
	for _, set := range [][]entities.ScenarioConfig{e.Presets(), DefaultScenarios()} {
		for _, cfg := range set {
			if cfg.Nome == entities.ScenarioConservador {
				return cfg, false
			}
		}
	}
	return entities.ScenarioConfig{}, false
}
