package dto

import (
	"time"

	"yakjeong/modules/response/entity"
)

// ===================== Request DTOs =====================

// CreateResponseRequest submits availability for a participant. Whether it
// starts a lineage or adds a version is decided server-side.
type CreateResponseRequest struct {
	ParticipantID string         `json:"participant_id" validate:"required"`
	ResponseData  entity.Payload `json:"response_data" validate:"required"`
}

// ===================== Response DTOs =====================

// ResponseDTO for a single response version
type ResponseDTO struct {
	ID            string         `json:"id"`
	ParticipantID string         `json:"participant_id"`
	ResponseData  entity.Payload `json:"response_data"`
	Version       int            `json:"version"`
	IsActive      bool           `json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ===================== Mapper Functions =====================

// ToResponseDTO maps entity to DTO; an undecodable stored payload is
// rendered as an empty selection rather than failing the read.
func ToResponseDTO(r *entity.Response) *ResponseDTO {
	resp := &ResponseDTO{
		ID:            r.ID.String(),
		ParticipantID: r.ParticipantID.String(),
		Version:       r.Version,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if payload, err := r.Payload(); err == nil && payload != nil {
		resp.ResponseData = *payload
	}
	return resp
}

func ToResponseDTOs(responses []entity.Response) []ResponseDTO {
	result := make([]ResponseDTO, 0, len(responses))
	for i := range responses {
		result = append(result, *ToResponseDTO(&responses[i]))
	}
	return result
}
