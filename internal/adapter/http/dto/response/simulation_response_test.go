package response

import (
	"testing"
	"time"

	"simulador_tokenizacao/internal/domain/entities"
)

func TestFromSimulation(t *testing.T) {
	now := time.Now().UTC()
	tir := entities.BasisPoints(181)
	s := entities.Simulation{
		ID: "sim-1",
		Result: entities.SimulationResult{
			Cronograma: []entities.ScheduleRow{{Mes: 1}},
			Resumo:     entities.AmortizationSummary{TaxaMensal: 200, TIRMensal: &tir, PercentualOferta: 1000},
		},
		CreatedAt: now,
	}

	r := FromSimulation(s)
	if r.ID != "sim-1" || !r.CreatedAt.Equal(now) || len(r.Cronograma) != 1 {
		t.Fatalf("unexpected response %+v", r)
	}
	if r.Resumo.TaxaMensalPct != 2 || r.Resumo.PercentualOfertaPct != 10 {
		t.Fatalf("unexpected percentages %+v", r.Resumo)
	}
	if r.Resumo.TIRMensalPct == nil || *r.Resumo.TIRMensalPct != 1.81 {
		t.Fatalf("unexpected tir %v", r.Resumo.TIRMensalPct)
	}
	if r.Resumo.TIRAnualPct != nil {
		t.Fatalf("expected nil annual tir")
	}
}
