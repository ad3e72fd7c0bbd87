package router

import (
	"github.com/labstack/echo/v4"

	"yakjeong/core/middleware"
	"yakjeong/modules/response/controller"
)

// ResponseRouter handles response routes
type ResponseRouter struct {
	ResponseController *controller.ResponseController
}

func NewResponseRouter(responseController *controller.ResponseController) *ResponseRouter {
	return &ResponseRouter{
		ResponseController: responseController,
	}
}

// Setup registers response routes
func (r *ResponseRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	responseRoutes := v1.Group("/responses")
	responseRoutes.POST("", r.ResponseController.SubmitResponse)
	responseRoutes.GET("/participant/:participant_id", r.ResponseController.GetResponsesByParticipant)
	responseRoutes.GET("/room/:room_id/history/:name", r.ResponseController.GetHistoryByName)
	responseRoutes.GET("/:id", r.ResponseController.GetResponse)
	responseRoutes.PUT("/:id/activate", r.ResponseController.ActivateResponse)
}
