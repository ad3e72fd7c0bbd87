package service

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"time"

	"github.com/google/uuid"

	"yakjeong/core/cache"
	"yakjeong/core/errors"
	"yakjeong/core/logger"
	participantRepository "yakjeong/modules/participant/repository"
	"yakjeong/modules/response/dto"
	"yakjeong/modules/response/repository"
	roomRepository "yakjeong/modules/room/repository"
)

// ResponseService implements the versioning policy: a submission under a
// name with no prior responses starts a lineage at version 1; any later
// submission under the same name becomes the next version and the active
// response, atomically. Past versions can be reactivated while the room
// deadline has not passed.
type ResponseService struct {
	repo     repository.ResponseRepositoryInterface
	partRepo participantRepository.ParticipantRepositoryInterface
	roomRepo roomRepository.RoomRepositoryInterface
	cache    cache.Cache
}

// ResponseServiceInterface defines the service contract
type ResponseServiceInterface interface {
	SubmitResponse(ctx context.Context, req *dto.CreateResponseRequest) (*dto.ResponseDTO, *errors.AppError)
	ActivateResponse(ctx context.Context, responseID uuid.UUID) (*dto.ResponseDTO, *errors.AppError)
	GetResponseByID(ctx context.Context, id uuid.UUID) (*dto.ResponseDTO, *errors.AppError)
	GetResponsesByParticipant(ctx context.Context, participantID uuid.UUID) ([]dto.ResponseDTO, *errors.AppError)
	GetHistoryByName(ctx context.Context, roomID uuid.UUID, name string) ([]dto.ResponseDTO, *errors.AppError)
}

func NewResponseService(
	repo repository.ResponseRepositoryInterface,
	partRepo participantRepository.ParticipantRepositoryInterface,
	roomRepo roomRepository.RoomRepositoryInterface,
	c cache.Cache,
) ResponseServiceInterface {
	return &ResponseService{
		repo:     repo,
		partRepo: partRepo,
		roomRepo: roomRepo,
		cache:    c,
	}
}

// SubmitResponse validates the submission and appends the next version of
// the name's lineage; a fresh name starts at version 1, so callers never
// have to branch themselves.
func (s *ResponseService) SubmitResponse(ctx context.Context, req *dto.CreateResponseRequest) (*dto.ResponseDTO, *errors.AppError) {
	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid participant ID", err)
	}

	participant, err := s.partRepo.GetByID(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	room, err := s.roomRepo.GetByID(ctx, participant.RoomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}
	if room.DeadlinePassed(time.Now()) {
		return nil, errors.NewAppError(errors.ErrDeadlinePassed, "Room deadline has passed", nil)
	}

	if req.ResponseData.EmptyFor(room.RoomType) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "No slots selected", nil)
	}

	data, err := json.Marshal(req.ResponseData)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid response data", err)
	}

	created, err := s.repo.CreateVersion(ctx, room.ID, participant.Name, participant.ID, string(data))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create response", err)
	}

	s.invalidateOptimalTimes(ctx, room.ID)

	logger.Info("response submitted",
		"room_id", room.ID.String(),
		"participant", participant.Name,
		"version", created.Version,
	)
	return dto.ToResponseDTO(created), nil
}

// ActivateResponse moves the active designation to the given version
// without creating a new one. Idempotent for an already-active response.
// Like submission, it is refused once the room deadline has passed.
func (s *ResponseService) ActivateResponse(ctx context.Context, responseID uuid.UUID) (*dto.ResponseDTO, *errors.AppError) {
	response, err := s.repo.GetByID(ctx, responseID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get response", err)
	}
	if response == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Response not found", nil)
	}

	participant, err := s.partRepo.GetByID(ctx, response.ParticipantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	room, err := s.roomRepo.GetByID(ctx, participant.RoomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}
	if room.DeadlinePassed(time.Now()) {
		return nil, errors.NewAppError(errors.ErrDeadlinePassed, "Room deadline has passed", nil)
	}

	activated, err := s.repo.ActivateResponse(ctx, responseID)
	if err != nil {
		if goerrors.Is(err, repository.ErrResponseNotFound) {
			return nil, errors.NewAppError(errors.ErrNotFound, "Response not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to activate response", err)
	}

	s.invalidateOptimalTimes(ctx, participant.RoomID)
	return dto.ToResponseDTO(activated), nil
}

func (s *ResponseService) GetResponseByID(ctx context.Context, id uuid.UUID) (*dto.ResponseDTO, *errors.AppError) {
	response, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get response", err)
	}
	if response == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Response not found", nil)
	}
	return dto.ToResponseDTO(response), nil
}

func (s *ResponseService) GetResponsesByParticipant(ctx context.Context, participantID uuid.UUID) ([]dto.ResponseDTO, *errors.AppError) {
	participant, err := s.partRepo.GetByID(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	responses, err := s.repo.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list responses", err)
	}
	return dto.ToResponseDTOs(responses), nil
}

// GetHistoryByName returns the whole lineage for a name in a room, across
// all its participant rows, newest version first.
func (s *ResponseService) GetHistoryByName(ctx context.Context, roomID uuid.UUID, name string) ([]dto.ResponseDTO, *errors.AppError) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	responses, err := s.repo.ListByRoomAndName(ctx, roomID, name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list response history", err)
	}
	return dto.ToResponseDTOs(responses), nil
}

func (s *ResponseService) invalidateOptimalTimes(ctx context.Context, roomID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.OptimalTimesKey(roomID.String())); err != nil {
		logger.Warn("ResponseService: cache invalidation failed", "room_id", roomID.String(), "error", err)
	}
}
