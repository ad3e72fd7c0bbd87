package dto

import (
	"time"

	"yakjeong/modules/participant/entity"
	responseDto "yakjeong/modules/response/dto"
)

// ===================== Request DTOs =====================

// CreateParticipantRequest joins a room under a free-text name. Repeat
// names are allowed; each submission attempt gets its own participant row.
type CreateParticipantRequest struct {
	RoomID string `json:"room_id" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

// ===================== Response DTOs =====================

// ParticipantResponse for participant details
type ParticipantResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ParticipantWithResponses includes the version history of this
// participant row.
type ParticipantWithResponses struct {
	ParticipantResponse
	Responses []responseDto.ResponseDTO `json:"responses"`
}

// ===================== Mapper Functions =====================

func ToParticipantResponse(p *entity.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:        p.ID.String(),
		RoomID:    p.RoomID.String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}
