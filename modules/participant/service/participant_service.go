package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"yakjeong/core/errors"
	"yakjeong/core/logger"
	"yakjeong/modules/participant/dto"
	"yakjeong/modules/participant/entity"
	"yakjeong/modules/participant/repository"
	responseDto "yakjeong/modules/response/dto"
	responseRepository "yakjeong/modules/response/repository"
	roomRepository "yakjeong/modules/room/repository"
)

// ParticipantService handles joining rooms. A repeat name deliberately
// creates a new participant row: each submission attempt is its own row
// and the shared name ties them into one lineage.
type ParticipantService struct {
	repo     repository.ParticipantRepositoryInterface
	roomRepo roomRepository.RoomRepositoryInterface
	respRepo responseRepository.ResponseRepositoryInterface
}

// ParticipantServiceInterface defines the service contract
type ParticipantServiceInterface interface {
	JoinRoom(ctx context.Context, req *dto.CreateParticipantRequest) (*dto.ParticipantResponse, *errors.AppError)
	GetParticipant(ctx context.Context, id uuid.UUID) (*dto.ParticipantWithResponses, *errors.AppError)
	GetParticipantsByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.GroupedParticipant, *errors.AppError)
}

func NewParticipantService(
	repo repository.ParticipantRepositoryInterface,
	roomRepo roomRepository.RoomRepositoryInterface,
	respRepo responseRepository.ResponseRepositoryInterface,
) ParticipantServiceInterface {
	return &ParticipantService{
		repo:     repo,
		roomRepo: roomRepo,
		respRepo: respRepo,
	}
}

func (s *ParticipantService) JoinRoom(ctx context.Context, req *dto.CreateParticipantRequest) (*dto.ParticipantResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid room ID", err)
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}
	if room.DeadlinePassed(time.Now()) {
		return nil, errors.NewAppError(errors.ErrDeadlinePassed, "Room deadline has passed", nil)
	}

	participant, err := s.repo.Create(ctx, roomID, name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create participant", err)
	}

	logger.Info("participant joined", "room_id", roomID.String(), "name", name)
	return dto.ToParticipantResponse(participant), nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id uuid.UUID) (*dto.ParticipantWithResponses, *errors.AppError) {
	participant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	responses, err := s.respRepo.ListByParticipant(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list responses", err)
	}

	return &dto.ParticipantWithResponses{
		ParticipantResponse: *dto.ToParticipantResponse(participant),
		Responses:           responseDto.ToResponseDTOs(responses),
	}, nil
}

func (s *ParticipantService) GetParticipantsByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.GroupedParticipant, *errors.AppError) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	grouped, err := s.repo.ListGroupedByRoom(ctx, roomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list participants", err)
	}
	return grouped, nil
}
