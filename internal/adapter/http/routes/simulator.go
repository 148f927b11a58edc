package routes

import (
	"simulador_tokenizacao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSimulations = "/simulations"
	PathViability   = "/viability"
)

func addSimulatorRoutes(rg *gin.RouterGroup, simulationHandler *handlers.SimulationHandler, viabilityHandler *handlers.ViabilityHandler) {
	rg.POST(PathSimulations, simulationHandler.CreateSimulation)

	viability := rg.Group(PathViability)
	{
		viability.POST("/cash-flow", viabilityHandler.CashFlow)
		viability.POST("/analysis", viabilityHandler.Analysis)
		viability.POST("/scenarios", viabilityHandler.Scenarios)
		viability.POST("/risk", viabilityHandler.Risk)
		viability.POST("/report", viabilityHandler.Report)
	}
}
