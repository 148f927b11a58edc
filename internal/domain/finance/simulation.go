package finance

import (
	"simulador_tokenizacao/internal/domain/entities"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	noteSetupFee   = "taxa de setup"
	noteSuccessFee = "success fee"
)

// CalculateSimulation builds the investor schedule for req and summarizes it.
// Costs are annotated on the rows but never enter the investor cash flow.
func (e Engine) CalculateSimulation(req entities.AmortizationRequest) entities.SimulationResult {
	rate := MonthlyRate(req.TaxaAnual, req.Capitalizacao)
	rows := BuildDebtSchedule(DebtTerms{
		Principal:       req.ValorInvestido,
		MonthlyRate:     rate,
		TermMonths:      req.PrazoMeses,
		InterestGrace:   req.CarenciaJurosMeses,
		PrincipalGrace:  req.CarenciaPrincipalMeses,
		CapitalizeGrace: req.CapitalizarJurosCarencia,
		Method:          req.Metodo,
	})
	rows = annotateCosts(rows, req)

	summary := summarize(rows)
	summary.TaxaMensal = rate.BasisPoints()
	summary.PercentualOferta = entities.RatioBasisPoints(req.ValorInvestido, req.ValorTotalOferta)

	if irr, ok := e.IRR.Solve(investorFlows(req.ValorInvestido, rows)); ok {
		monthly := irr.BasisPoints()
		annual := AnnualFromMonthly(irr).BasisPoints()
		summary.TIRMensal = &monthly
		summary.TIRAnual = &annual
	}

	if rows == nil {
		rows = []entities.ScheduleRow{}
	}
	return entities.SimulationResult{Cronograma: rows, Resumo: summary}
}

// annotateCosts returns a copy of rows with due dates and informational costs filled in.
func annotateCosts(rows []entities.ScheduleRow, req entities.AmortizationRequest) []entities.ScheduleRow {
	if len(rows) == 0 {
		return rows
	}
	successFee := req.ValorInvestido.MulBasisPoints(req.SuccessFeePct)
	out := make([]entities.ScheduleRow, len(rows))
	for i, row := range rows {
		var notes []string
		if row.Observacoes != "" {
			notes = append(notes, row.Observacoes)
		}
		if i == 0 && req.TaxaSetup > 0 {
			row.CustosFixos += req.TaxaSetup
			notes = append(notes, noteSetupFee)
		}
		if i == len(rows)-1 && successFee > 0 {
			row.CustosFixos += successFee
			notes = append(notes, noteSuccessFee)
		}
		if req.TaxaManutencaoMensal > 0 {
			row.CustosFixos += req.TaxaManutencaoMensal
		}
		if req.DataInicio != nil {
			due := addMonths(*req.DataInicio, row.Mes)
			row.DataVencimento = &due
		}
		row.Observacoes = strings.Join(notes, "; ")
		out[i] = row
	}
	return out
}

func summarize(rows []entities.ScheduleRow) entities.AmortizationSummary {
	var s entities.AmortizationSummary
	for _, row := range rows {
		s.TotalJuros += row.JurosPagos
		s.TotalAmortizado += row.Amortizacao
		s.JurosCapitalizados += row.JurosCapitalizados
		s.TotalCustos += row.CustosFixos
	}
	s.TotalRecebido = s.TotalJuros + s.TotalAmortizado
	return s
}

// investorFlows is [-principal, parcela_1, ..., parcela_n].
func investorFlows(principal entities.Cents, rows []entities.ScheduleRow) []entities.Cents {
	flows := make([]entities.Cents, 0, len(rows)+1)
	flows = append(flows, -principal)
	for _, row := range rows {
		flows = append(flows, row.Parcela)
	}
	return flows
}

// addMonths moves d by months, clamping the day to the end of the target month.
func addMonths(d civil.Date, months int) civil.Date {
	first := time.Date(d.Year, d.Month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	return civil.Date{Year: first.Year(), Month: first.Month(), Day: min(d.Day, lastDay)}
}
