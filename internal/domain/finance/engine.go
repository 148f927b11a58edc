package finance

import (
	"runtime"
	"simulador_tokenizacao/internal/domain/entities"
)

// Engine bundles the tunable parts of the calculations. The zero value is usable and behaves
// like DefaultEngine.
type Engine struct {
	IRR       IRRSolver
	Scenarios []entities.ScenarioConfig
	// Workers bounds the scenarios evaluated in parallel.
	Workers int
}

func DefaultEngine() Engine {
	return Engine{
		IRR:       DefaultIRRSolver(),
		Scenarios: DefaultScenarios(),
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// Presets is the scenario set used when a caller supplies none.
func (e Engine) Presets() []entities.ScenarioConfig {
	if len(e.Scenarios) == 0 {
		return DefaultScenarios()
	}
	return e.Scenarios
}

func (e Engine) workers() int {
	if e.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return e.Workers
}

// RiskReport runs every scenario and classifies risk from Conservador. When cfgs has no
// Conservador entry the preset is evaluated for classification only.
func (e Engine) RiskReport(in entities.ViabilityInput, cfgs []entities.ScenarioConfig) ([]entities.ScenarioResult, entities.RiskClassification) {
	if len(cfgs) == 0 {
		cfgs = e.Presets()
	}
	results := e.AnalyzeScenarios(in, cfgs)

	conservative, listed := e.conservativeScenario(cfgs)
	var flows []entities.MonthlyFlow
	var ind entities.Indicators
	if listed {
		for _, r := range results {
			if r.Cenario == entities.ScenarioConservador {
				flows, ind = r.FluxoCaixa, r.Indicadores
				break
			}
		}
	} else {
		flows = e.project(in, ResolveRevenueModel(in), conservative)
		ind = ComputeIndicators(in, flows)
	}

	risk := ClassifyRisk(entities.RiskInput{
		Indicadores: ind,
		Metricas:    ExtractRiskMetrics(flows),
	})
	return results, risk
}

func CalculateSimulation(req entities.AmortizationRequest) entities.SimulationResult {
	return DefaultEngine().CalculateSimulation(req)
}

func CalculateCashFlow(in entities.ViabilityInput) []entities.MonthlyFlow {
	return DefaultEngine().CalculateCashFlow(in)
}

func AnalyzeViability(in entities.ViabilityInput) entities.ViabilityAnalysis {
	return DefaultEngine().AnalyzeViability(in)
}

func AnalyzeScenarios(in entities.ViabilityInput, cfgs []entities.ScenarioConfig) []entities.ScenarioResult {
	return DefaultEngine().AnalyzeScenarios(in, cfgs)
}
