package finance

import (
	"reflect"
	"testing"

	"simulador_tokenizacao/internal/domain/entities"
)

func scenarioInput() entities.ViabilityInput {
	in := genericInput()
	in.CustosFixos = []entities.FixedCostItem{{Nome: "pessoal", ValorMensal: 2000}}
	return in
}

func TestAnalyzeScenarios(t *testing.T) {
	t.Run("default presets order ebitda", func(t *testing.T) {
		results := AnalyzeScenarios(scenarioInput(), nil)
		if len(results) != 3 {
			t.Fatalf("expected 3 scenarios, got %d", len(results))
		}
		byName := map[string]entities.ScenarioResult{}
		for _, r := range results {
			byName[r.Cenario] = r
		}
		cons := byName[entities.ScenarioConservador].FluxoCaixa[11].Ebitda
		base := byName[entities.ScenarioBase].FluxoCaixa[11].Ebitda
		opt := byName[entities.ScenarioOtimista].FluxoCaixa[11].Ebitda
		if !(cons <= base && base <= opt) {
			t.Fatalf("expected conservador <= base <= otimista, got %d %d %d", cons, base, opt)
		}
	})

	t.Run("base scenario matches the unscaled projection", func(t *testing.T) {
		in := scenarioInput()
		results := AnalyzeScenarios(in, []entities.ScenarioConfig{BaseScenario()})
		if !reflect.DeepEqual(results[0].FluxoCaixa, CalculateCashFlow(in)) {
			t.Fatalf("base scenario should equal the plain cash flow")
		}
	})

	t.Run("multipliers scale revenue variable cost and opex", func(t *testing.T) {
		cfg := entities.ScenarioConfig{Nome: "x", MultReceita: 2, MultCustoVariavel: 0.5, MultOpex: 3}
		f := AnalyzeScenarios(scenarioInput(), []entities.ScenarioConfig{cfg})[0].FluxoCaixa[0]
		if f.ReceitaBruta != 20000 {
			t.Fatalf("expected revenue 20000, got %d", f.ReceitaBruta)
		}
		if *f.CustoVariavel != 3500 {
			t.Fatalf("expected variable cost 3500, got %d", *f.CustoVariavel)
		}
		if f.Opex != 6000 {
			t.Fatalf("expected opex 6000, got %d", f.Opex)
		}
	})

	t.Run("caller order is preserved", func(t *testing.T) {
		cfgs := []entities.ScenarioConfig{
			{Nome: "c", MultReceita: 1, MultCustoVariavel: 1, MultOpex: 1},
			{Nome: "a", MultReceita: 0.5, MultCustoVariavel: 1, MultOpex: 1},
			{Nome: "b", MultReceita: 1.5, MultCustoVariavel: 1, MultOpex: 1},
		}
		e := DefaultEngine()
		e.Workers = 1
		results := e.AnalyzeScenarios(scenarioInput(), cfgs)
		for i, cfg := range cfgs {
			if results[i].Cenario != cfg.Nome {
				t.Fatalf("position %d: expected %s, got %s", i, cfg.Nome, results[i].Cenario)
			}
		}
	})

	t.Run("legacy flows are identical across scenarios", func(t *testing.T) {
		results := AnalyzeScenarios(legacyInput(), DefaultScenarios())
		for _, r := range results[1:] {
			if !reflect.DeepEqual(r.FluxoCaixa, results[0].FluxoCaixa) {
				t.Fatalf("scenario %s differs from %s in legacy mode", r.Cenario, results[0].Cenario)
			}
		}
	})

	t.Run("engine presets replace the defaults", func(t *testing.T) {
		e := Engine{Scenarios: []entities.ScenarioConfig{BaseScenario()}}
		if got := len(e.AnalyzeScenarios(scenarioInput(), nil)); got != 1 {
			t.Fatalf("expected 1 scenario, got %d", got)
		}
	})
}

func TestComputeIndicators(t *testing.T) {
	in := entities.ViabilityInput{
		ValorCaptado:      1000000,
		CoInvestimentoPct: 2500,
		SuccessFeePct:     300,
		TaxaFixa:          15000,
		Capex:             entities.CapexBuckets{Obras: 600000, Outros: 50000},
	}

	t.Run("split and fees", func(t *testing.T) {
		ind := ComputeIndicators(in, nil)
		if ind.CapexTotal != 650000 || ind.ValorInvestidor != 750000 || ind.ValorCoInvestidor != 250000 {
			t.Fatalf("unexpected split: %+v", ind)
		}
		if ind.SuccessFee != 30000 || ind.TaxaFixa != 15000 {
			t.Fatalf("unexpected fees: %+v", ind)
		}
	})

	t.Run("never positive falls back to horizon", func(t *testing.T) {
		flows := make([]entities.MonthlyFlow, entities.ProjectionMonths)
		for i := range flows {
			flows[i] = entities.MonthlyFlow{Mes: i + 1, ReceitaBruta: 100, Ebitda: -10, SaldoAcumulado: -1000}
		}
		ind := ComputeIndicators(in, flows)
		if ind.MesBreakeven != 60 || ind.MesPayback != 60 {
			t.Fatalf("expected fallbacks of 60, got %d/%d", ind.MesBreakeven, ind.MesPayback)
		}
		if ind.Viavel {
			t.Fatalf("expected not viable")
		}
		if ind.MargemEbitdaMedia != -10 {
			t.Fatalf("expected average margin -10, got %v", ind.MargemEbitdaMedia)
		}
	})

	t.Run("breakeven payback and viability", func(t *testing.T) {
		flows := []entities.MonthlyFlow{
			{Mes: 1, ReceitaBruta: 0, Ebitda: -50, SaldoAcumulado: -50, Juros: 5},
			{Mes: 2, ReceitaBruta: 100, Ebitda: 20, SaldoAcumulado: -30, Juros: 5},
			{Mes: 3, ReceitaBruta: 100, Ebitda: 40, SaldoAcumulado: 10},
		}
		ind := ComputeIndicators(in, flows)
		if ind.MesBreakeven != 2 || ind.MesPayback != 3 {
			t.Fatalf("expected breakeven 2 and payback 3, got %d/%d", ind.MesBreakeven, ind.MesPayback)
		}
		if ind.MargemEbitdaMedia != 30 {
			t.Fatalf("expected average margin 30 over revenue months, got %v", ind.MargemEbitdaMedia)
		}
		if ind.TotalJuros != 10 || ind.SaldoFinal != 10 || !ind.Viavel {
			t.Fatalf("unexpected indicators: %+v", ind)
		}
	})
}

func TestAnalyzeViability(t *testing.T) {
	in := scenarioInput()
	res := AnalyzeViability(in)
	if len(res.FluxoCaixa) != entities.ProjectionMonths {
		t.Fatalf("expected %d months", entities.ProjectionMonths)
	}
	if !reflect.DeepEqual(res.Indicadores, ComputeIndicators(in, res.FluxoCaixa)) {
		t.Fatalf("indicators must be computed from the returned flows")
	}
}
