package room

import (
	"time"

	"github.com/labstack/echo/v4"

	"yakjeong/core/cache"
	"yakjeong/core/database"
	"yakjeong/core/middleware"
	"yakjeong/core/worker"
	participantRepository "yakjeong/modules/participant/repository"
	responseRepository "yakjeong/modules/response/repository"
	"yakjeong/modules/room/controller"
	"yakjeong/modules/room/repository"
	"yakjeong/modules/room/router"
	"yakjeong/modules/room/service"
)

// Init initializes the room module and registers routes. The returned
// service is also the retention worker's deactivation callback.
func Init(
	e *echo.Echo,
	db database.IDatabase,
	mw *middleware.Middleware,
	c cache.Cache,
	scheduler worker.RetentionScheduler,
	retention time.Duration,
	cacheTTL time.Duration,
) service.RoomServiceInterface {
	repo := repository.NewRoomRepository(db)
	respRepo := responseRepository.NewResponseRepository(db)
	partRepo := participantRepository.NewParticipantRepository(db)

	svc := service.NewRoomService(repo, respRepo, partRepo, c, scheduler, retention, cacheTTL)
	ctrl := controller.NewRoomController(svc)
	router.NewRoomRouter(ctrl).Setup(e, mw)

	return svc
}
