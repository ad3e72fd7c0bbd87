package controller

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"yakjeong/core/controller"
	"yakjeong/core/errors"
	"yakjeong/modules/room/dto"
	"yakjeong/modules/room/service"
)

// RoomController handles room HTTP requests
type RoomController struct {
	controller.BaseController
	RoomService service.RoomServiceInterface
}

func NewRoomController(svc service.RoomServiceInterface) *RoomController {
	return &RoomController{
		BaseController: controller.NewBaseController(),
		RoomService:    svc,
	}
}

// CreateRoom handles POST /rooms
// @Summary Create a scheduling room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room definition"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} errors.AppError
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx echo.Context) error {
	var req dto.CreateRoomRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.RoomService.CreateRoom(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Room created successfully")
}

// GetRooms handles GET /rooms
// @Summary List active rooms
// @Tags Room
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} dto.RoomResponse
// @Router /rooms [get]
func (c *RoomController) GetRooms(ctx echo.Context) error {
	skip, _ := strconv.Atoi(ctx.QueryParam("skip"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	result, appErr := c.RoomService.GetRooms(ctx.Request().Context(), skip, limit)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetRoom handles GET /rooms/:id
// @Summary Get a room with its participants
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomWithParticipantsResponse
// @Failure 404 {object} errors.AppError
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom(ctx echo.Context) error {
	roomID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}

	result, appErr := c.RoomService.GetRoomByID(ctx.Request().Context(), roomID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetRoomBySlug handles GET /rooms/slug/:slug
// @Summary Resolve a share link
// @Tags Room
// @Produce json
// @Param slug path string true "Share slug"
// @Success 200 {object} dto.RoomWithParticipantsResponse
// @Failure 404 {object} errors.AppError
// @Router /rooms/slug/{slug} [get]
func (c *RoomController) GetRoomBySlug(ctx echo.Context) error {
	slug := ctx.Param("slug")
	if slug == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid slug")
	}

	result, appErr := c.RoomService.GetRoomBySlug(ctx.Request().Context(), slug)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateRoom handles PUT /rooms/:id
// @Summary Update title, description or deadline
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} errors.AppError
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom(ctx echo.Context) error {
	roomID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}

	var req dto.UpdateRoomRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.RoomService.UpdateRoom(ctx.Request().Context(), roomID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Room updated successfully")
}

// DeleteRoom handles DELETE /rooms/:id
// @Summary Deactivate a room
// @Tags Room
// @Param id path string true "Room ID"
// @Success 204
// @Failure 404 {object} errors.AppError
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom(ctx echo.Context) error {
	roomID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}

	if appErr := c.RoomService.DeleteRoom(ctx.Request().Context(), roomID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.NoContentResponse(ctx)
}

// GetOptimalTimes handles GET /rooms/:id/optimal-times
// @Summary Ranked slots by participant coverage
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} dto.OptimalTimeSlot
// @Failure 404 {object} errors.AppError
// @Router /rooms/{id}/optimal-times [get]
func (c *RoomController) GetOptimalTimes(ctx echo.Context) error {
	roomID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}

	result, appErr := c.RoomService.GetOptimalTimes(ctx.Request().Context(), roomID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
