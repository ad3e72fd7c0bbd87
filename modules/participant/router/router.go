package router

import (
	"github.com/labstack/echo/v4"

	"yakjeong/core/middleware"
	"yakjeong/modules/participant/controller"
)

// ParticipantRouter handles participant routes
type ParticipantRouter struct {
	ParticipantController *controller.ParticipantController
}

func NewParticipantRouter(participantController *controller.ParticipantController) *ParticipantRouter {
	return &ParticipantRouter{
		ParticipantController: participantController,
	}
}

// Setup registers participant routes
func (r *ParticipantRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	participantRoutes := v1.Group("/participants")
	participantRoutes.POST("", r.ParticipantController.JoinRoom)
	participantRoutes.GET("/room/:room_id", r.ParticipantController.GetParticipantsByRoom)
	participantRoutes.GET("/:id", r.ParticipantController.GetParticipant)
}
