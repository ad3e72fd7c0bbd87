package response

import (
	"github.com/labstack/echo/v4"

	"yakjeong/core/cache"
	"yakjeong/core/database"
	"yakjeong/core/middleware"
	participantRepository "yakjeong/modules/participant/repository"
	"yakjeong/modules/response/controller"
	"yakjeong/modules/response/repository"
	"yakjeong/modules/response/router"
	"yakjeong/modules/response/service"
	roomRepository "yakjeong/modules/room/repository"
)

// Init initializes the response module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, c cache.Cache) {
	repo := repository.NewResponseRepository(db)
	partRepo := participantRepository.NewParticipantRepository(db)
	roomRepo := roomRepository.NewRoomRepository(db)

	svc := service.NewResponseService(repo, partRepo, roomRepo, c)
	ctrl := controller.NewResponseController(svc)
	router.NewResponseRouter(ctrl).Setup(e, mw)
}
