// Package routes wires handlers onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/http/handlers"
)

type RegistrationRouteConfig struct {
	RegistrationHandler *handlers.RegistrationHandler
	ParkingHandler      *handlers.ParkingHandler
	// SubmitRateLimit is optional; nil disables submission throttling.
	SubmitRateLimit gin.HandlerFunc
}

func SetupRegistrationRoutes(api *gin.RouterGroup, config *RegistrationRouteConfig) {
	registrations := api.Group("/registrations")
	{
		submitHandlers := []gin.HandlerFunc{config.RegistrationHandler.Submit}
		if config.SubmitRateLimit != nil {
			submitHandlers = append([]gin.HandlerFunc{config.SubmitRateLimit}, submitHandlers...)
		}
		registrations.POST("", submitHandlers...)
		registrations.GET("",
			config.RegistrationHandler.List)

		// Specific action endpoints before generic parameterized routes
		registrations.POST("/:id/lot",
			config.RegistrationHandler.AssignLot)
	}

	parking := api.Group("/parking")
	{
		parking.GET("/quote",
			config.ParkingHandler.Quote)
	}
}
