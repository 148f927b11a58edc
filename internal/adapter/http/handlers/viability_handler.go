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
	errInvalidViabilityPayload = pkg.NewDomainErrorSimple("INVALID_VIABILITY_INPUT", "Invalid viability payload", http.StatusBadRequest)
)

// ViabilityHandler handles issuer cash-flow projections, scenarios and risk.
type ViabilityHandler struct {
	usecase usecase.IViabilityUseCase
}

func NewViabilityHandler(uc usecase.IViabilityUseCase) *ViabilityHandler {
	return &ViabilityHandler{usecase: uc}
}

// CashFlow godoc
// @Summary  60-month cash-flow projection
// @Tags     viability
// @Accept   json
// @Produce  json
// @Param    payload  body      request.ViabilityRequest  true  "Viability input"
// @Success  200      {object}  response.CashFlowResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /viability/cash-flow [post]
func (h *ViabilityHandler) CashFlow(c *gin.Context) {
	var payload request.ViabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidViabilityPayload.HTTPStatus, errInvalidViabilityPayload.ToHTTPError())
		return
	}

	flows, err := h.usecase.CashFlow(c.Request.Context(), payload.ViabilityInput)
	if err != nil {
		appErr := mapViabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCashFlow(flows))
}

// Analysis godoc
// @Summary  Projection plus indicators (payback, breakeven, viability)
// @Tags     viability
// @Accept   json
// @Produce  json
// @Param    payload  body      request.ViabilityRequest  true  "Viability input"
// @Success  200      {object}  response.ViabilityAnalysisResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /viability/analysis [post]
func (h *ViabilityHandler) Analysis(c *gin.Context) {
	var payload request.ViabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidViabilityPayload.HTTPStatus, errInvalidViabilityPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Analyze(c.Request.Context(), payload.ViabilityInput)
	if err != nil {
		appErr := mapViabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromViabilityAnalysis(res))
}

// Scenarios godoc
// @Summary  One projection per scenario, in request order
// @Tags     viability
// @Accept   json
// @Produce  json
// @Param    payload  body      request.ScenariosRequest  true  "Viability input and scenarios"
// @Success  200      {object}  response.ScenariosResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /viability/scenarios [post]
func (h *ViabilityHandler) Scenarios(c *gin.Context) {
	var payload request.ScenariosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidViabilityPayload.HTTPStatus, errInvalidViabilityPayload.ToHTTPError())
		return
	}

	results, err := h.usecase.AnalyzeScenarios(c.Request.Context(), payload.ViabilityInput, payload.ScenarioConfigs())
	if err != nil {
		appErr := mapViabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromScenarioResults(results))
}

// Risk godoc
// @Summary  Risk tier from Conservador indicators
// @Tags     viability
// @Accept   json
// @Produce  json
// @Param    payload  body      request.RiskRequest  true  "Indicators and metrics"
// @Success  200      {object}  response.RiskResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /viability/risk [post]
func (h *ViabilityHandler) Risk(c *gin.Context) {
	var payload request.RiskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidViabilityPayload.HTTPStatus, errInvalidViabilityPayload.ToHTTPError())
		return
	}

	risk, err := h.usecase.ClassifyRisk(c.Request.Context(), payload.ToRiskInput())
	if err != nil {
		appErr := mapViabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRiskClassification(risk))
}

// Report godoc
// @Summary  Every scenario plus the Conservador risk classification
// @Tags     viability
// @Accept   json
// @Produce  json
// @Param    payload  body      request.ScenariosRequest  true  "Viability input and scenarios"
// @Success  201      {object}  response.ViabilityReportResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /viability/report [post]
func (h *ViabilityHandler) Report(c *gin.Context) {
	var payload request.ScenariosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidViabilityPayload.HTTPStatus, errInvalidViabilityPayload.ToHTTPError())
		return
	}

	rep, err := h.usecase.Report(c.Request.Context(), payload.ViabilityInput, payload.ScenarioConfigs())
	if err != nil {
		appErr := mapViabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromViabilityReport(rep))
}

func mapViabilityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidScenario):
		return pkg.NewDomainErrorSimple("INVALID_SCENARIO", "Scenarios need a name and non-negative multipliers", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidViabilityInput),
		errors.Is(err, usecase.ErrInvalidRate),
		errors.Is(err, usecase.ErrInvalidTerm),
		errors.Is(err, usecase.ErrInvalidGrace),
		errors.Is(err, usecase.ErrInvalidMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
