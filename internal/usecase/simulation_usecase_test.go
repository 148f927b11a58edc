package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"simulador_tokenizacao/internal/adapter/persistence/repository"
	"simulador_tokenizacao/internal/domain/entities"
	"simulador_tokenizacao/internal/domain/finance"
	mock_interfaces "simulador_tokenizacao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validAmortizationRequest() entities.AmortizationRequest {
	return entities.AmortizationRequest{
		ValorInvestido:   10000000,
		ValorTotalOferta: 100000000,
		PrazoMeses:       24,
		TaxaAnual:        2400,
		Capitalizacao:    entities.CapitalizationCompound,
		Metodo:           "price",
	}
}

func TestSimulationUseCase_Simulate(t *testing.T) {
	invalid := []struct {
		name   string
		mutate func(*entities.AmortizationRequest)
		want   error
	}{
		{"zero term", func(r *entities.AmortizationRequest) { r.PrazoMeses = 0 }, ErrInvalidTerm},
		{"huge term", func(r *entities.AmortizationRequest) { r.PrazoMeses = MaxTermMonths + 1 }, ErrInvalidTerm},
		{"zero principal", func(r *entities.AmortizationRequest) { r.ValorInvestido = 0 }, ErrInvalidPrincipal},
		{"negative offer", func(r *entities.AmortizationRequest) { r.ValorTotalOferta = -1 }, ErrInvalidPrincipal},
		{"negative rate", func(r *entities.AmortizationRequest) { r.TaxaAnual = -1 }, ErrInvalidRate},
		{"negative grace", func(r *entities.AmortizationRequest) { r.CarenciaJurosMeses = -1 }, ErrInvalidGrace},
		{"negative cost", func(r *entities.AmortizationRequest) { r.TaxaSetup = -1 }, ErrInvalidCost},
		{"unknown method", func(r *entities.AmortizationRequest) { r.Metodo = "germano" }, ErrInvalidMethod},
		{"unknown capitalization", func(r *entities.AmortizationRequest) { r.Capitalizacao = "daily" }, ErrInvalidCapitalization},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSimulationUseCase(finance.DefaultEngine(), nil)
			req := validAmortizationRequest()
			tt.mutate(&req)
			_, err := uc.Simulate(context.Background(), req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("success without cache", func(t *testing.T) {
		uc := NewSimulationUseCase(finance.DefaultEngine(), nil)
		req := validAmortizationRequest()
		req.Capitalizacao = ""

		sim, err := uc.Simulate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sim.ID == "" || sim.CreatedAt.IsZero() {
			t.Fatalf("expected id and created_at, got %+v", sim)
		}
		if sim.Request.Metodo != entities.MethodPrice || sim.Request.Capitalizacao != entities.CapitalizationSimple {
			t.Fatalf("expected normalized request, got %+v", sim.Request)
		}
		if sim.Request.PeriodicidadeJuros != entities.PeriodicityMonthly {
			t.Fatalf("expected default periodicity")
		}
		if len(sim.Result.Cronograma) != 24 {
			t.Fatalf("expected 24 rows, got %d", len(sim.Result.Cronograma))
		}
	})

	t.Run("cache miss stores the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockISimulationCache(ctrl)
		uc := NewSimulationUseCase(finance.DefaultEngine(), cache)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string, value []byte) error {
				if !strings.HasPrefix(key, cacheKindSimulation+":") {
					t.Fatalf("unexpected key %q", key)
				}
				var res entities.SimulationResult
				if err := json.Unmarshal(value, &res); err != nil || len(res.Cronograma) != 24 {
					t.Fatalf("unexpected cached value err=%v", err)
				}
				return nil
			},
		)

		if _, err := uc.Simulate(context.Background(), validAmortizationRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cache hit skips the engine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockISimulationCache(ctrl)
		uc := NewSimulationUseCase(finance.DefaultEngine(), cache)

		cached, _ := json.Marshal(entities.SimulationResult{
			Cronograma: []entities.ScheduleRow{{Mes: 1}},
			Resumo:     entities.AmortizationSummary{TotalRecebido: 42},
		})
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, true, nil)

		sim, err := uc.Simulate(context.Background(), validAmortizationRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sim.Result.Resumo.TotalRecebido != 42 || len(sim.Result.Cronograma) != 1 {
			t.Fatalf("expected cached result, got %+v", sim.Result.Resumo)
		}
	})

	t.Run("cache failures are bypassed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockISimulationCache(ctrl)
		uc := NewSimulationUseCase(finance.DefaultEngine(), cache)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		sim, err := uc.Simulate(context.Background(), validAmortizationRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sim.Result.Cronograma) != 24 {
			t.Fatalf("expected a computed schedule")
		}
	})

	t.Run("unreadable cache entry is recomputed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockISimulationCache(ctrl)
		uc := NewSimulationUseCase(finance.DefaultEngine(), cache)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte("{"), true, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		sim, err := uc.Simulate(context.Background(), validAmortizationRequest())
		if err != nil || len(sim.Result.Cronograma) != 24 {
			t.Fatalf("expected recomputed schedule, err=%v", err)
		}
	})
}

func TestCacheKey(t *testing.T) {
	a, _ := cacheKey("k", validAmortizationRequest())
	b, _ := cacheKey("k", validAmortizationRequest())
	other := validAmortizationRequest()
	other.PrazoMeses = 12
	c, _ := cacheKey("k", other)

	if a != b {
		t.Fatalf("expected stable keys")
	}
	if a == c {
		t.Fatalf("expected different keys for different inputs")
	}
}

func TestSimulationUseCase_SharedCacheAcrossSolvers(t *testing.T) {
	shared := repository.NewMemoryCache(0)
	ctx := context.Background()

	strict := finance.DefaultEngine()
	strict.IRR = finance.IRRSolver{Guess: 0.5, MaxIterations: 1, Tolerance: 1e-12}

	first, err := NewSimulationUseCase(finance.DefaultEngine(), shared).Simulate(ctx, validAmortizationRequest())
	if err != nil || first.Result.Resumo.TIRMensal == nil {
		t.Fatalf("expected an IRR from the default solver, err=%v", err)
	}

	second, err := NewSimulationUseCase(strict, shared).Simulate(ctx, validAmortizationRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Result.Resumo.TIRMensal != nil {
		t.Fatalf("expected the single-iteration solver to report no IRR, got %d", *second.Result.Resumo.TIRMensal)
	}
}
