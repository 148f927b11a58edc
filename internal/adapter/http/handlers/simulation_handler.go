package handlers

import (
	"errors"
	"net/http"
	request "simulador_tokenizacao/internal/adapter/http/dto/request"
	response "simulador_tokenizacao/internal/adapter/http/dto/response"
	"simulador_tokenizacao/internal/usecase"
	"simulador_tokenizacao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSimulationPayload = pkg.NewDomainErrorSimple("INVALID_SIMULATION_INPUT", "Invalid simulation payload", http.StatusBadRequest)
)

// SimulationHandler handles investor amortization simulations.
type SimulationHandler struct {
	usecase usecase.ISimulationUseCase
}

func NewSimulationHandler(uc usecase.ISimulationUseCase) *SimulationHandler {
	return &SimulationHandler{usecase: uc}
}

// CreateSimulation godoc
// @Summary      Simulate an investment
// @Description  Builds the monthly amortization schedule, totals and IRR. Money in cents, rates in basis points.
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SimulationRequest  true  "Simulation input"
// @Success      201      {object}  response.SimulationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /simulations [post]
func (h *SimulationHandler) CreateSimulation(c *gin.Context) {
	var payload request.SimulationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSimulationPayload.HTTPStatus, errInvalidSimulationPayload.ToHTTPError())
		return
	}

	req, err := payload.ToAmortizationRequest()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_START_DATE", "dataInicio must be YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sim, err := h.usecase.Simulate(c.Request.Context(), req)
	if err != nil {
		appErr := mapSimulationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSimulation(sim))
}

func mapSimulationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTerm):
		return pkg.NewDomainErrorSimple("INVALID_TERM", "prazoMeses must be between 1 and 600", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPrincipal):
		return pkg.NewDomainErrorSimple("INVALID_PRINCIPAL", "Invalid invested or offer amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRate):
		return pkg.NewDomainErrorSimple("INVALID_RATE", "Rates must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGrace):
		return pkg.NewDomainErrorSimple("INVALID_GRACE", "Grace periods must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMethod):
		return pkg.NewDomainErrorSimple("INVALID_METHOD", "metodo must be PRICE, SAC or bullet", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCapitalization):
		return pkg.NewDomainErrorSimple("INVALID_CAPITALIZATION", "capitalizacao must be simple or compound", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCost):
		return pkg.NewDomainErrorSimple("INVALID_COST", "Costs must not be negative", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
