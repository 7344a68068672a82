package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/http/handlers"
)

type UnitRouteConfig struct {
	UnitHandler *handlers.UnitHandler
}

func SetupUnitRoutes(api *gin.RouterGroup, config *UnitRouteConfig) {
	units := api.Group("/units")
	{
		units.GET("/:id",
			config.UnitHandler.Get)
		units.PUT("/:id/arrears",
			config.UnitHandler.UpdateArrears)
	}
}
