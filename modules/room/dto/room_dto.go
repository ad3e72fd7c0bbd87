package dto

import (
	"time"

	participantEntity "yakjeong/modules/participant/entity"
	"yakjeong/modules/room/entity"
)

// ===================== Request DTOs =====================

// CreateRoomRequest for creating a new room
type CreateRoomRequest struct {
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description"`
	RoomType    entity.RoomType      `json:"room_type" validate:"required"`
	CreatorName string               `json:"creator_name" validate:"required"`
	Deadline    *time.Time           `json:"deadline"`
	Settings    *entity.RoomSettings `json:"settings"`
}

// UpdateRoomRequest for updating mutable room fields. Room type and
// settings are immutable after creation.
type UpdateRoomRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

// ===================== Response DTOs =====================

// RoomResponse for room details
type RoomResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	RoomType    entity.RoomType      `json:"room_type"`
	CreatorName string               `json:"creator_name"`
	Slug        string               `json:"slug"`
	Deadline    *time.Time           `json:"deadline,omitempty"`
	Settings    *entity.RoomSettings `json:"settings,omitempty"`
	IsActive    bool                 `json:"is_active"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// RoomWithParticipantsResponse adds the grouped participant view: one entry
// per distinct name.
type RoomWithParticipantsResponse struct {
	RoomResponse
	Participants []participantEntity.GroupedParticipant `json:"participants"`
}

// OptimalTimeSlot is one entry of the ranked aggregation result.
type OptimalTimeSlot struct {
	TimeSlot              string   `json:"time_slot"`
	AvailableParticipants []string `json:"available_participants"`
	ParticipantCount      int      `json:"participant_count"`
	AvailabilityRate      float64  `json:"availability_rate"`
}

// ===================== Mapper Functions =====================

// ToRoomResponse maps entity to DTO. An undecodable settings blob is
// returned as absent rather than failing the read.
func ToRoomResponse(r *entity.Room) *RoomResponse {
	resp := &RoomResponse{
		ID:          r.ID.String(),
		Title:       r.Title,
		RoomType:    r.RoomType,
		CreatorName: r.CreatorName,
		Slug:        r.Slug,
		Deadline:    r.Deadline,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Description != nil {
		resp.Description = *r.Description
	}
	if settings, err := r.ParseSettings(); err == nil {
		resp.Settings = settings
	}
	return resp
}
