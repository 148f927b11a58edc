package request

import (
	"encoding/json"
	"errors"
	"testing"

	"simulador_tokenizacao/internal/domain/entities"

	"cloud.google.com/go/civil"
)

func TestSimulationRequest_ToAmortizationRequest(t *testing.T) {
	t.Run("converts units and date", func(t *testing.T) {
		r := SimulationRequest{
			ValorInvestido: 10000000,
			PrazoMeses:     24,
			TaxaAnual:      2400,
			Capitalizacao:  " Compound ",
			Metodo:         "PRICE",
			DataInicio:     "2025-03-15",
		}
		req, err := r.ToAmortizationRequest()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.ValorInvestido != 10000000 || req.TaxaAnual != 2400 || req.Capitalizacao != entities.CapitalizationCompound {
			t.Fatalf("unexpected request %+v", req)
		}
		if req.DataInicio == nil || *req.DataInicio != (civil.Date{Year: 2025, Month: 3, Day: 15}) {
			t.Fatalf("unexpected start date %v", req.DataInicio)
		}
	})

	t.Run("empty date", func(t *testing.T) {
		req, err := SimulationRequest{PrazoMeses: 1}.ToAmortizationRequest()
		if err != nil || req.DataInicio != nil {
			t.Fatalf("expected no start date, got %v err=%v", req.DataInicio, err)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := SimulationRequest{DataInicio: "15/03/2025"}.ToAmortizationRequest()
		if !errors.Is(err, ErrInvalidStartDate) {
			t.Fatalf("expected ErrInvalidStartDate, got %v", err)
		}
	})
}

func TestScenariosRequest(t *testing.T) {
	t.Run("multipliers default to one", func(t *testing.T) {
		half := 0.5
		r := ScenariosRequest{Cenarios: []ScenarioRequest{{Nome: "Estresse", MultReceita: &half}}}
		cfgs := r.ScenarioConfigs()
		if len(cfgs) != 1 {
			t.Fatalf("expected 1 config")
		}
		c := cfgs[0]
		if c.Nome != "Estresse" || c.MultReceita != 0.5 || c.MultCustoVariavel != 1 || c.MultOpex != 1 {
			t.Fatalf("unexpected config %+v", c)
		}
	})

	t.Run("empty set", func(t *testing.T) {
		if cfgs := (ScenariosRequest{}).ScenarioConfigs(); cfgs != nil {
			t.Fatalf("expected nil configs, got %v", cfgs)
		}
	})

	t.Run("flattened viability input", func(t *testing.T) {
		var r ScenariosRequest
		body := `{"valorCaptado":100,"receitas":[{"nome":"a","precoUnitario":10,"quantidadeMensal":1}],"cenarios":[{"nome":"Base"}]}`
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ValorCaptado != 100 || !r.IsGeneric() || len(r.Cenarios) != 1 {
			t.Fatalf("unexpected request %+v", r)
		}
	})
}

func TestRiskRequest_ToRiskInput(t *testing.T) {
	r := RiskRequest{Indicadores: entities.Indicators{MesPayback: 40}, Metricas: entities.RiskMetrics{EbitdaMes24: -1}}
	in := r.ToRiskInput()
	if in.Indicadores.MesPayback != 40 || in.Metricas.EbitdaMes24 != -1 {
		t.Fatalf("unexpected input %+v", in)
	}
}
