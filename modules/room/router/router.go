package router

import (
	"github.com/labstack/echo/v4"

	"yakjeong/core/middleware"
	"yakjeong/modules/room/controller"
)

// RoomRouter handles room routes
type RoomRouter struct {
	RoomController *controller.RoomController
}

func NewRoomRouter(roomController *controller.RoomController) *RoomRouter {
	return &RoomRouter{
		RoomController: roomController,
	}
}

// Setup registers room routes
func (r *RoomRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	roomRoutes := v1.Group("/rooms")
	roomRoutes.POST("", r.RoomController.CreateRoom)
	roomRoutes.GET("", r.RoomController.GetRooms)
	roomRoutes.GET("/slug/:slug", r.RoomController.GetRoomBySlug)
	roomRoutes.GET("/:id", r.RoomController.GetRoom)
	roomRoutes.PUT("/:id", r.RoomController.UpdateRoom)
	roomRoutes.DELETE("/:id", r.RoomController.DeleteRoom)
	roomRoutes.GET("/:id/optimal-times", r.RoomController.GetOptimalTimes)
}
