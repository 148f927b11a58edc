package response

import (
	"simulador_tokenizacao/internal/domain/entities"
	"time"
)

type SimulationResponse struct {
	ID         string                       `json:"id"`
	Request    entities.AmortizationRequest `json:"request"`
	Cronograma []entities.ScheduleRow       `json:"cronograma"`
	Resumo     SummaryResponse              `json:"resumo"`
	CreatedAt  time.Time                    `json:"created_at"`
}

// SummaryResponse adds percentage renderings of the basis-point fields.
type SummaryResponse struct {
	entities.AmortizationSummary
	TaxaMensalPct       float64  `json:"taxaMensalPct"`
	TIRMensalPct        *float64 `json:"tirMensalPct"`
	TIRAnualPct         *float64 `json:"tirAnualPct"`
	PercentualOfertaPct float64  `json:"percentualOfertaPct"`
}

func FromSimulation(s entities.Simulation) SimulationResponse {
	r := s.Result.Resumo
	return SimulationResponse{
		ID:         s.ID,
		Request:    s.Request,
		Cronograma: s.Result.Cronograma,
		Resumo: SummaryResponse{
			AmortizationSummary: r,
			TaxaMensalPct:       r.TaxaMensal.Percent(),
			TIRMensalPct:        percentOrNil(r.TIRMensal),
			TIRAnualPct:         percentOrNil(r.TIRAnual),
			PercentualOfertaPct: r.PercentualOferta.Percent(),
		},
		CreatedAt: s.CreatedAt,
	}
}

func percentOrNil(b *entities.BasisPoints) *float64 {
	if b == nil {
		return nil
	}
	p := b.Percent()
	return &p
}
