package usecase

import (
	"context"
	"errors"
	"log"
	"simulador_tokenizacao/internal/domain/entities"
	"simulador_tokenizacao/internal/domain/finance"
	"simulador_tokenizacao/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	cacheKindCashFlow  = "cash-flow"
	cacheKindAnalysis  = "viability"
	cacheKindScenarios = "scenarios"
	cacheKindReport    = "report"

	maxBasisPoints = 10000
)

var (
	ErrInvalidViabilityInput = errors.New("invalid viability input")
	ErrInvalidScenario       = errors.New("invalid scenario")
)

// IViabilityUseCase exposes the issuer viability projections.
//
//   - CashFlow         => 60-month projection, no scenario scaling
//   - Analyze          => projection + indicators
//   - AnalyzeScenarios => one projection per scenario, caller order
//   - ClassifyRisk     => tier + recommendations from Conservador figures
//   - Report           => every scenario + Conservador risk, stamped with an id

type IViabilityUseCase interface {
	CashFlow(ctx context.Context, in entities.ViabilityInput) ([]entities.MonthlyFlow, error)
	Analyze(ctx context.Context, in entities.ViabilityInput) (entities.ViabilityAnalysis, error)
	AnalyzeScenarios(ctx context.Context, in entities.ViabilityInput, cfgs []entities.ScenarioConfig) ([]entities.ScenarioResult, error)
	ClassifyRisk(ctx context.Context, in entities.RiskInput) (entities.RiskClassification, error)
	Report(ctx context.Context, in entities.ViabilityInput, cfgs []entities.ScenarioConfig) (entities.ViabilityReport, error)
}

type ViabilityUseCase struct {
	engine finance.Engine
	cache  interfaces.ISimulationCache
}

var _ IViabilityUseCase = (*ViabilityUseCase)(nil)

// NewViabilityUseCase builds the use case. cache may be nil.
func NewViabilityUseCase(engine finance.Engine, cache interfaces.ISimulationCache) *ViabilityUseCase {
	return &ViabilityUseCase{engine: engine, cache: cache}
}

func (u *ViabilityUseCase) CashFlow(ctx context.Context, in entities.ViabilityInput) ([]entities.MonthlyFlow, error) {
	in, err := normalizeViabilityInput(in)
	if err != nil {
		log.Printf("[viability][usecase] cash-flow rejected err=%v", err)
		return nil, err
	}
	flows := memoize(ctx, u.cache, cacheKindCashFlow, in, func() []entities.MonthlyFlow {
		return u.engine.CalculateCashFlow(in)
	})
	log.Printf("[viability][usecase] cash-flow done generic=%t months=%d", in.IsGeneric(), len(flows))
	return flows, nil
}

func (u *ViabilityUseCase) Analyze(ctx context.Context, in entities.ViabilityInput) (entities.ViabilityAnalysis, error) {
	in, err := normalizeViabilityInput(in)
	if err != nil {
		log.Printf("[viability][usecase] analysis rejected err=%v", err)
		return entities.ViabilityAnalysis{}, err
	}
	res := memoize(ctx, u.cache, cacheKindAnalysis, in, func() entities.ViabilityAnalysis {
		return u.engine.AnalyzeViability(in)
	})
	log.Printf("[viability][usecase] analysis done payback=%d breakeven=%d viavel=%t",
		res.Indicadores.MesPayback, res.Indicadores.MesBreakeven, res.Indicadores.Viavel)
	return res, nil
}

// scenariosKey holds the effective scenario set. Presets is only set for reports, whose risk
// falls back to the preset Conservador.
type scenariosKey struct {
	Input    entities.ViabilityInput   `json:"input"`
	Cenarios []entities.ScenarioConfig `json:"cenarios"`
	Presets  []entities.ScenarioConfig `json:"presets,omitempty"`
}

func (u *ViabilityUseCase) AnalyzeScenarios(ctx context.Context, in entities.ViabilityInput, cfgs []entities.ScenarioConfig) ([]entities.ScenarioResult, error) {
	in, cfgs, err := normalizeScenarioRequest(in, cfgs)
	if err != nil {
		log.Printf("[viability][usecase] scenarios rejected err=%v", err)
		return nil, err
	}
	if len(cfgs) == 0 {
		cfgs = u.engine.Presets()
	}
	results := memoize(ctx, u.cache, cacheKindScenarios, scenariosKey{Input: in, Cenarios: cfgs}, func() []entities.ScenarioResult {
		return u.engine.AnalyzeScenarios(in, cfgs)
	})
	log.Printf("[viability][usecase] scenarios done count=%d", len(results))
	return results, nil
}

func (u *ViabilityUseCase) ClassifyRisk(_ context.Context, in entities.RiskInput) (entities.RiskClassification, error) {
	if in.Indicadores.MesPayback < 0 || in.Indicadores.MesBreakeven < 0 {
		log.Printf("[risk][usecase] rejected payback=%d breakeven=%d", in.Indicadores.MesPayback, in.Indicadores.MesBreakeven)
		return entities.RiskClassification{}, ErrInvalidViabilityInput
	}
	risk := finance.ClassifyRisk(in)
	log.Printf("[risk][usecase] classified nivel=%s recomendacoes=%d", risk.Nivel, len(risk.Recomendacoes))
	return risk, nil
}

type reportResult struct {
	Cenarios []entities.ScenarioResult   `json:"cenarios"`
	Risco    entities.RiskClassification `json:"risco"`
}

func (u *ViabilityUseCase) Report(ctx context.Context, in entities.ViabilityInput, cfgs []entities.ScenarioConfig) (entities.ViabilityReport, error) {
	in, cfgs, err := normalizeScenarioRequest(in, cfgs)
	if err != nil {
		log.Printf("[viability][usecase] report rejected err=%v", err)
		return entities.ViabilityReport{}, err
	}
	presets := u.engine.Presets()
	if len(cfgs) == 0 {
		cfgs = presets
	}
	key := scenariosKey{Input: in, Cenarios: cfgs, Presets: presets}
	res := memoize(ctx, u.cache, cacheKindReport, key, func() reportResult {
		results, risk := u.engine.RiskReport(in, cfgs)
		return reportResult{Cenarios: results, Risco: risk}
	})

	report := entities.ViabilityReport{
		ID:        uuid.NewString(),
		Cenarios:  res.Cenarios,
		Risco:     res.Risco,
		CreatedAt: time.Now().UTC(),
	}
	log.Printf("[viability][usecase] report done id=%s cenarios=%d nivel=%s", report.ID, len(report.Cenarios), report.Risco.Nivel)
	return report, nil
}

func normalizeViabilityInput(in entities.ViabilityInput) (entities.ViabilityInput, error) {
	if in.ValorCaptado < 0 || in.TaxaFixa < 0 {
		return in, ErrInvalidViabilityInput
	}
	if in.CoInvestimentoPct < 0 || in.CoInvestimentoPct > maxBasisPoints || in.SuccessFeePct < 0 {
		return in, ErrInvalidViabilityInput
	}
	if in.TaxaMensal < 0 {
		return in, ErrInvalidRate
	}
	if in.PrazoMeses < 0 || in.PrazoMeses > MaxTermMonths {
		return in, ErrInvalidTerm
	}
	if in.CarenciaMeses < 0 {
		return in, ErrInvalidGrace
	}
	if in.PrazoMeses > 0 {
		if in.Metodo == "" {
			in.Metodo = entities.MethodSAC
		}
		if !in.Metodo.IsValid() {
			return in, ErrInvalidMethod
		}
		in.Metodo = in.Metodo.Normalize()
	}

	c := in.Capex
	if c.Obras < 0 || c.Equipamentos < 0 || c.Instalacoes < 0 || c.CapitalGiro < 0 || c.Outros < 0 {
		return in, ErrInvalidViabilityInput
	}
	if in.CustoVariavelPct != nil && !validPct(*in.CustoVariavelPct) {
		return in, ErrInvalidViabilityInput
	}
	for _, r := range in.Receitas {
		if r.PrecoUnitario < 0 || r.QuantidadeMensal < 0 {
			return in, ErrInvalidViabilityInput
		}
		if r.CustoVariavelPct != nil && !validPct(*r.CustoVariavelPct) {
			return in, ErrInvalidViabilityInput
		}
	}
	for _, f := range in.CustosFixos {
		if f.ValorMensal < 0 {
			return in, ErrInvalidViabilityInput
		}
	}
	if !in.IsGeneric() {
		if in.TicketMedio < 0 {
			return in, ErrInvalidViabilityInput
		}
		if r := in.Rampa; r != nil && (r.ClientesInicio < 0 || r.ClientesSteadyState < 0 || r.CapacidadeMaxima < 0) {
			return in, ErrInvalidViabilityInput
		}
	}
	return in, nil
}

func normalizeScenarioRequest(in entities.ViabilityInput, cfgs []entities.ScenarioConfig) (entities.ViabilityInput, []entities.ScenarioConfig, error) {
	in, err := normalizeViabilityInput(in)
	if err != nil {
		return in, nil, err
	}
	out := make([]entities.ScenarioConfig, 0, len(cfgs))
	for _, cfg := range cfgs {
		cfg.Nome = strings.TrimSpace(cfg.Nome)
		if cfg.Nome == "" || cfg.MultReceita < 0 || cfg.MultCustoVariavel < 0 || cfg.MultOpex < 0 {
			return in, nil, ErrInvalidScenario
		}
		out = append(out, cfg)
	}
	return in, out, nil
}

func validPct(b entities.BasisPoints) bool {
	return b >= 0 && b <= maxBasisPoints
}
