package request

import (
	"errors"
	"simulador_tokenizacao/internal/domain/entities"
	"strings"

	"cloud.google.com/go/civil"
)

var (
	ErrInvalidStartDate = errors.New("invalid dataInicio")
)

// SimulationRequest is the investor simulation payload. Money is in cents and rates in
// basis points (2400 = 24.00% a.a.); dataInicio is an ISO date (YYYY-MM-DD).
type SimulationRequest struct {
	ValorInvestido           int64  `json:"valorInvestido" binding:"required"`
	ValorTotalOferta         int64  `json:"valorTotalOferta"`
	DataInicio               string `json:"dataInicio"`
	PrazoMeses               int    `json:"prazoMeses" binding:"required"`
	TaxaAnual                int64  `json:"taxaAnual"`
	ConvencaoCalendario      string `json:"convencaoCalendario"`
	Capitalizacao            string `json:"capitalizacao"`
	PeriodicidadeJuros       string `json:"periodicidadeJuros"`
	PeriodicidadeAmortizacao string `json:"periodicidadeAmortizacao"`
	CarenciaJurosMeses       int    `json:"carenciaJurosMeses"`
	CarenciaPrincipalMeses   int    `json:"carenciaPrincipalMeses"`
	CapitalizarJurosCarencia bool   `json:"capitalizarJurosCarencia"`
	Metodo                   string `json:"metodo" binding:"required"`
	TaxaSetup                int64  `json:"taxaSetup"`
	SuccessFeePct            int64  `json:"successFeePct"`
	TaxaManutencaoMensal     int64  `json:"taxaManutencaoMensal"`
}

func (r SimulationRequest) ToAmortizationRequest() (entities.AmortizationRequest, error) {
	req := entities.AmortizationRequest{
		ValorInvestido:           entities.Cents(r.ValorInvestido),
		ValorTotalOferta:         entities.Cents(r.ValorTotalOferta),
		PrazoMeses:               r.PrazoMeses,
		TaxaAnual:                entities.BasisPoints(r.TaxaAnual),
		ConvencaoCalendario:      entities.CalendarConvention(strings.TrimSpace(r.ConvencaoCalendario)),
		Capitalizacao:            entities.Capitalization(strings.ToLower(strings.TrimSpace(r.Capitalizacao))),
		PeriodicidadeJuros:       entities.Periodicity(strings.TrimSpace(r.PeriodicidadeJuros)),
		PeriodicidadeAmortizacao: entities.Periodicity(strings.TrimSpace(r.PeriodicidadeAmortizacao)),
		CarenciaJurosMeses:       r.CarenciaJurosMeses,
		CarenciaPrincipalMeses:   r.CarenciaPrincipalMeses,
		CapitalizarJurosCarencia: r.CapitalizarJurosCarencia,
		Metodo:                   entities.AmortizationMethod(r.Metodo),
		TaxaSetup:                entities.Cents(r.TaxaSetup),
		SuccessFeePct:            entities.BasisPoints(r.SuccessFeePct),
		TaxaManutencaoMensal:     entities.Cents(r.TaxaManutencaoMensal),
	}

	if v := strings.TrimSpace(r.DataInicio); v != "" {
		d, err := civil.ParseDate(v)
		if err != nil {
			return entities.AmortizationRequest{}, ErrInvalidStartDate
		}
		req.DataInicio = &d
	}
	return req, nil
}
