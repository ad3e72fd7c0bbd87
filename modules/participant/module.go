package participant

import (
	"github.com/labstack/echo/v4"

	"yakjeong/core/database"
	"yakjeong/core/middleware"
	"yakjeong/modules/participant/controller"
	"yakjeong/modules/participant/repository"
	"yakjeong/modules/participant/router"
	"yakjeong/modules/participant/service"
	responseRepository "yakjeong/modules/response/repository"
	roomRepository "yakjeong/modules/room/repository"
)

// Init initializes the participant module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewParticipantRepository(db)
	roomRepo := roomRepository.NewRoomRepository(db)
	respRepo := responseRepository.NewResponseRepository(db)

	svc := service.NewParticipantService(repo, roomRepo, respRepo)
	ctrl := controller.NewParticipantController(svc)
	router.NewParticipantRouter(ctrl).Setup(e, mw)
}
