package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"yakjeong/core/controller"
	"yakjeong/core/errors"
	"yakjeong/modules/participant/dto"
	"yakjeong/modules/participant/service"
)

// ParticipantController handles participant HTTP requests
type ParticipantController struct {
	controller.BaseController
	ParticipantService service.ParticipantServiceInterface
}

func NewParticipantController(svc service.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		BaseController:     controller.NewBaseController(),
		ParticipantService: svc,
	}
}

// JoinRoom handles POST /participants
// @Summary Join a room under a name
// @Tags Participant
// @Accept json
// @Produce json
// @Param request body dto.CreateParticipantRequest true "Room and name"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /participants [post]
func (c *ParticipantController) JoinRoom(ctx echo.Context) error {
	var req dto.CreateParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.ParticipantService.JoinRoom(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Participant created successfully")
}

// GetParticipantsByRoom handles GET /participants/room/:room_id
// @Summary List a room's participants grouped by name
// @Tags Participant
// @Produce json
// @Param room_id path string true "Room ID"
// @Success 200 {array} entity.GroupedParticipant
// @Failure 404 {object} errors.AppError
// @Router /participants/room/{room_id} [get]
func (c *ParticipantController) GetParticipantsByRoom(ctx echo.Context) error {
	roomID, err := uuid.Parse(ctx.Param("room_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}

	result, appErr := c.ParticipantService.GetParticipantsByRoom(ctx.Request().Context(), roomID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetParticipant handles GET /participants/:id
// @Summary Get a participant with their responses
// @Tags Participant
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} dto.ParticipantWithResponses
// @Failure 404 {object} errors.AppError
// @Router /participants/{id} [get]
func (c *ParticipantController) GetParticipant(ctx echo.Context) error {
	participantID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	result, appErr := c.ParticipantService.GetParticipant(ctx.Request().Context(), participantID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
