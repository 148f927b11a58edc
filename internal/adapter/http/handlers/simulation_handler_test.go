package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"simulador_tokenizacao/internal/adapter/http/handlers/mocks"
	"simulador_tokenizacao/internal/domain/entities"
	"simulador_tokenizacao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validSimulationBody = `{"valorInvestido":10000000,"valorTotalOferta":100000000,"prazoMeses":24,"taxaAnual":2400,"capitalizacao":"compound","metodo":"PRICE","dataInicio":"2025-01-10"}`

func newSimulationRouter(h *SimulationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/simulations", h.CreateSimulation)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSimulationHandler_CreateSimulation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSimulationHandler(mocks.NewMockISimulationUseCase(ctrl))

		w := postJSON(newSimulationRouter(h), "/v1/simulations", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSimulationHandler(mocks.NewMockISimulationUseCase(ctrl))

		w := postJSON(newSimulationRouter(h), "/v1/simulations", `{"valorInvestido":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSimulationHandler(mocks.NewMockISimulationUseCase(ctrl))

		body := `{"valorInvestido":100,"prazoMeses":12,"metodo":"SAC","dataInicio":"10/01/2025"}`
		w := postJSON(newSimulationRouter(h), "/v1/simulations", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["code"] != "INVALID_START_DATE" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISimulationUseCase(ctrl)
		h := NewSimulationHandler(uc)

		uc.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(entities.Simulation{}, usecase.ErrInvalidMethod)

		w := postJSON(newSimulationRouter(h), "/v1/simulations", validSimulationBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISimulationUseCase(ctrl)
		h := NewSimulationHandler(uc)

		uc.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(entities.Simulation{}, errors.New("boom"))

		w := postJSON(newSimulationRouter(h), "/v1/simulations", validSimulationBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISimulationUseCase(ctrl)
		h := NewSimulationHandler(uc)

		uc.EXPECT().Simulate(gomock.Any(), gomock.AssignableToTypeOf(entities.AmortizationRequest{})).DoAndReturn(
			func(_ any, req entities.AmortizationRequest) (entities.Simulation, error) {
				if req.ValorInvestido != 10000000 || req.TaxaAnual != 2400 || req.DataInicio == nil {
					t.Fatalf("unexpected request %+v", req)
				}
				return entities.Simulation{ID: "sim-1", Request: req, CreatedAt: time.Now().UTC()}, nil
			},
		)

		w := postJSON(newSimulationRouter(h), "/v1/simulations", validSimulationBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["id"] != "sim-1" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestMapSimulationError(t *testing.T) {
	cases := map[error]int{
		usecase.ErrInvalidTerm:           http.StatusBadRequest,
		usecase.ErrInvalidPrincipal:      http.StatusBadRequest,
		usecase.ErrInvalidRate:           http.StatusBadRequest,
		usecase.ErrInvalidGrace:          http.StatusBadRequest,
		usecase.ErrInvalidCapitalization: http.StatusBadRequest,
		usecase.ErrInvalidCost:           http.StatusBadRequest,
		errors.New("x"):                  http.StatusInternalServerError,
	}
	for err, status := range cases {
		if got := mapSimulationError(err).HTTPStatus; got != status {
			t.Fatalf("%v: expected %d, got %d", err, status, got)
		}
	}
}
