package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"yakjeong/core/controller"
	"yakjeong/core/errors"
	"yakjeong/modules/response/dto"
	"yakjeong/modules/response/service"
)

// ResponseController handles response HTTP requests
type ResponseController struct {
	controller.BaseController
	ResponseService service.ResponseServiceInterface
}

func NewResponseController(svc service.ResponseServiceInterface) *ResponseController {
	return &ResponseController{
		BaseController:  controller.NewBaseController(),
		ResponseService: svc,
	}
}

// SubmitResponse handles POST /responses
// @Summary Submit availability
// @Description First submission under a name starts at version 1; repeats become the next active version.
// @Tags Response
// @Accept json
// @Produce json
// @Param request body dto.CreateResponseRequest true "Participant and selection"
// @Success 201 {object} dto.ResponseDTO
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /responses [post]
func (c *ResponseController) SubmitResponse(ctx echo.Context) error {
	var req dto.CreateResponseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.ResponseService.SubmitResponse(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Response created successfully")
}

// ActivateResponse handles PUT /responses/:id/activate
// @Summary Make a past version the active one
// @Tags Response
// @Produce json
// @Param id path string true "Response ID"
// @Success 200 {object} dto.ResponseDTO
// @Failure 404 {object} errors.AppError
// @Router /responses/{id}/activate [put]
func (c *ResponseController) ActivateResponse(ctx echo.Context) error {
	responseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid response ID")
	}

	result, appErr := c.ResponseService.ActivateResponse(ctx.Request().Context(), responseID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Response activated successfully")
}

// GetResponse handles GET /responses/:id
// @Summary Get a single response version
// @Tags Response
// @Produce json
// @Param id path string true "Response ID"
// @Success 200 {object} dto.ResponseDTO
// @Failure 404 {object} errors.AppError
// @Router /responses/{id} [get]
func (c *ResponseController) GetResponse(ctx echo.Context) error {
	responseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid response ID")
	}

	result, appErr := c.ResponseService.GetResponseByID(ctx.Request().Context(), responseID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetResponsesByParticipant handles GET /responses/participant/:participant_id
// @Summary Versions submitted through one participant row
// @Tags Response
// @Produce json
// @Param participant_id path string true "Participant ID"
// @Success 200 {array} dto.ResponseDTO
// @Failure 404 {object} errors.AppError
// @Router /responses/participant/{participant_id} [get]
func (c *ResponseController) GetResponsesByParticipant(ctx echo.Context) error {
	participantID, err := uuid.Parse(ctx.Param("participant_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	result, appErr := c.ResponseService.GetResponsesByParticipant(ctx.Request().Context(), participantID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetHistoryByName handles GET /responses/room/:room_id/history/:name
// @Summary Full version lineage for a name within a room
// @Tags Response
// @Produce json
// @Param room_id path string true "Room ID"
// @Param name path string true "Participant name"
// @Success 200 {array} dto.ResponseDTO
// @Failure 404 {object} errors.AppError
// @Router /responses/room/{room_id}/history/{name} [get]
func (c *ResponseController) GetHistoryByName(ctx echo.Context) error {
	roomID, err := uuid.Parse(ctx.Param("room_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}
	name := ctx.Param("name")
	if name == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Name is required")
	}

	result, appErr := c.ResponseService.GetHistoryByName(ctx.Request().Context(), roomID, name)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
