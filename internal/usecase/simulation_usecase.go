package usecase

import (
	"context"
	"errors"
	"log"
	"simulador_tokenizacao/internal/domain/entities"
	"simulador_tokenizacao/internal/domain/finance"
	"simulador_tokenizacao/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

const (
	cacheKindSimulation = "simulation"

	// MaxTermMonths bounds the schedule length accepted from callers.
	MaxTermMonths = 600
)

var (
	ErrInvalidTerm           = errors.New("invalid term")
	ErrInvalidPrincipal      = errors.New("invalid principal")
	ErrInvalidRate           = errors.New("invalid rate")
	ErrInvalidGrace          = errors.New("invalid grace period")
	ErrInvalidMethod         = errors.New("invalid amortization method")
	ErrInvalidCapitalization = errors.New("invalid capitalization")
	ErrInvalidCost           = errors.New("invalid cost")
)

// ISimulationUseCase exposes the investor amortization simulator.
//
// The engine itself accepts any numeric input; this layer is where malformed requests
// (non-positive term or principal, negative rates, unknown methods) are rejected.

type ISimulationUseCase interface {
	Simulate(ctx context.Context, req entities.AmortizationRequest) (entities.Simulation, error)
}

type SimulationUseCase struct {
	engine finance.Engine
	cache  interfaces.ISimulationCache
}

var _ ISimulationUseCase = (*SimulationUseCase)(nil)

// NewSimulationUseCase builds the use case. cache may be nil.
func NewSimulationUseCase(engine finance.Engine, cache interfaces.ISimulationCache) *SimulationUseCase {
	return &SimulationUseCase{engine: engine, cache: cache}
}

// simulationKey carries the solver settings too: they change the reported IRR.
type simulationKey struct {
	Request entities.AmortizationRequest `json:"request"`
	IRR     finance.IRRSolver            `json:"irr"`
}

func (u *SimulationUseCase) Simulate(ctx context.Context, req entities.AmortizationRequest) (entities.Simulation, error) {
	req, err := normalizeAmortizationRequest(req)
	if err != nil {
		log.Printf("[simulation][usecase] rejected request prazo=%d valor=%d err=%v", req.PrazoMeses, req.ValorInvestido, err)
		return entities.Simulation{}, err
	}

	log.Printf("[simulation][usecase] simulate start metodo=%s prazo=%d taxa_anual=%d", req.Metodo, req.PrazoMeses, req.TaxaAnual)
	key := simulationKey{Request: req, IRR: u.engine.IRR}
	result := memoize(ctx, u.cache, cacheKindSimulation, key, func() entities.SimulationResult {
		return u.engine.CalculateSimulation(req)
	})

	sim := entities.Simulation{
		ID:        uuid.NewString(),
		Request:   req,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	log.Printf("[simulation][usecase] simulate done id=%s rows=%d total_recebido=%d", sim.ID, len(result.Cronograma), result.Resumo.TotalRecebido)
	return sim, nil
}

// normalizeAmortizationRequest validates req and returns it with canonical method and
// capitalization values.
func normalizeAmortizationRequest(req entities.AmortizationRequest) (entities.AmortizationRequest, error) {
	if req.PrazoMeses <= 0 || req.PrazoMeses > MaxTermMonths {
		return req, ErrInvalidTerm
	}
	if req.ValorInvestido <= 0 || req.ValorTotalOferta < 0 {
		return req, ErrInvalidPrincipal
	}
	if req.TaxaAnual < 0 {
		return req, ErrInvalidRate
	}
	if req.CarenciaJurosMeses < 0 || req.CarenciaPrincipalMeses < 0 {
		return req, ErrInvalidGrace
	}
	if req.TaxaSetup < 0 || req.SuccessFeePct < 0 || req.TaxaManutencaoMensal < 0 {
		return req, ErrInvalidCost
	}

	if !req.Metodo.IsValid() {
		return req, ErrInvalidMethod
	}
	req.Metodo = req.Metodo.Normalize()

	switch req.Capitalizacao {
	case "":
		req.Capitalizacao = entities.CapitalizationSimple
	case entities.CapitalizationSimple, entities.CapitalizationCompound:
	default:
		return req, ErrInvalidCapitalization
	}

	if req.PeriodicidadeJuros == "" {
		req.PeriodicidadeJuros = entities.PeriodicityMonthly
	}
	if req.PeriodicidadeAmortizacao == "" {
		req.PeriodicidadeAmortizacao = entities.PeriodicityMonthly
	}
	return req, nil
}
