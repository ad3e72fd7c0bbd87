package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"yakjeong/core/cache"
	"yakjeong/core/errors"
	"yakjeong/core/logger"
	"yakjeong/core/utils"
	"yakjeong/core/worker"
	participantRepository "yakjeong/modules/participant/repository"
	responseRepository "yakjeong/modules/response/repository"
	"yakjeong/modules/room/dto"
	"yakjeong/modules/room/entity"
	"yakjeong/modules/room/repository"
)

// RoomService handles room business logic and the optimal-times query.
type RoomService struct {
	repo      repository.RoomRepositoryInterface
	respRepo  responseRepository.ResponseRepositoryInterface
	partRepo  participantRepository.ParticipantRepositoryInterface
	cache     cache.Cache
	scheduler worker.RetentionScheduler
	retention time.Duration
	cacheTTL  time.Duration
}

// RoomServiceInterface defines the service contract
type RoomServiceInterface interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, *errors.AppError)
	GetRoomByID(ctx context.Context, id uuid.UUID) (*dto.RoomWithParticipantsResponse, *errors.AppError)
	GetRoomBySlug(ctx context.Context, slug string) (*dto.RoomWithParticipantsResponse, *errors.AppError)
	GetRooms(ctx context.Context, skip, limit int) ([]dto.RoomResponse, *errors.AppError)
	UpdateRoom(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, *errors.AppError)
	DeleteRoom(ctx context.Context, id uuid.UUID) *errors.AppError
	GetOptimalTimes(ctx context.Context, roomID uuid.UUID) ([]dto.OptimalTimeSlot, *errors.AppError)
	DeactivateRoom(ctx context.Context, roomID string) error
}

func NewRoomService(
	repo repository.RoomRepositoryInterface,
	respRepo responseRepository.ResponseRepositoryInterface,
	partRepo participantRepository.ParticipantRepositoryInterface,
	c cache.Cache,
	scheduler worker.RetentionScheduler,
	retention time.Duration,
	cacheTTL time.Duration,
) RoomServiceInterface {
	return &RoomService{
		repo:      repo,
		respRepo:  respRepo,
		partRepo:  partRepo,
		cache:     c,
		scheduler: scheduler,
		retention: retention,
		cacheTTL:  cacheTTL,
	}
}

// CreateRoom validates type-specific settings, persists the room and
// schedules its retention-window deactivation.
func (s *RoomService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, *errors.AppError) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title is required", nil)
	}
	if strings.TrimSpace(req.CreatorName) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Creator name is required", nil)
	}
	if !req.RoomType.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid room type", nil)
	}

	if appErr := validateSettings(req.RoomType, req.Settings); appErr != nil {
		return nil, appErr
	}

	room := &entity.Room{
		Title:       strings.TrimSpace(req.Title),
		RoomType:    req.RoomType,
		CreatorName: strings.TrimSpace(req.CreatorName),
		Slug:        utils.ShareSlug(req.Title),
		Deadline:    req.Deadline,
	}
	if req.Description != "" {
		desc := req.Description
		room.Description = &desc
	}
	if req.Settings != nil {
		jsonBytes, err := json.Marshal(req.Settings)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid settings", err)
		}
		jsonStr := string(jsonBytes)
		room.Settings = &jsonStr
	}

	created, err := s.repo.Create(ctx, room)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create room", err)
	}

	if s.scheduler != nil && s.retention > 0 {
		if err := s.scheduler.ScheduleRoomDeactivation(created.ID.String(), s.retention); err != nil {
			// The room is usable without the cleanup task; log and move on.
			logger.Error("RoomService:CreateRoom schedule deactivation", err)
		}
	}

	return dto.ToRoomResponse(created), nil
}

// validateSettings enforces the room-configuration rules: BLOCK rooms need
// complete block definitions and referentially consistent block slots;
// HOURLY rooms need a slot universe. The selected_dates check for HOURLY
// rooms is advisory only.
func validateSettings(roomType entity.RoomType, settings *entity.RoomSettings) *errors.AppError {
	switch roomType {
	case entity.RoomTypeBlock:
		if settings == nil || len(settings.TimeBlocks) == 0 {
			return errors.NewAppError(errors.ErrInvalidInput, "Block rooms require time blocks", nil)
		}
		ids := make(map[string]bool, len(settings.TimeBlocks))
		for _, b := range settings.TimeBlocks {
			if strings.TrimSpace(b.ID) == "" || strings.TrimSpace(b.Name) == "" || strings.TrimSpace(b.TimeRange) == "" {
				return errors.NewAppError(errors.ErrInvalidInput, "Every time block needs an id, name and time range", nil)
			}
			if ids[b.ID] {
				return errors.NewAppError(errors.ErrInvalidInput, "Duplicate time block id: "+b.ID, nil)
			}
			ids[b.ID] = true
		}
		for date, blockIDs := range settings.BlockSlotsByDate {
			if !entity.IsDateString(date) {
				return errors.NewAppError(errors.ErrInvalidInput, "Invalid date in block slots: "+date, nil)
			}
			for _, id := range blockIDs {
				if !ids[id] {
					return errors.NewAppError(errors.ErrInvalidInput, "Block slots reference unknown block: "+id, nil)
				}
			}
		}

	case entity.RoomTypeHourly:
		if settings == nil || len(settings.TimeSlotsByDate) == 0 {
			return errors.NewAppError(errors.ErrInvalidInput, "Hourly rooms require time slots per date", nil)
		}
		selected := make(map[string]bool, len(settings.SelectedDates))
		for _, d := range settings.SelectedDates {
			selected[d] = true
		}
		for date := range settings.TimeSlotsByDate {
			if !entity.IsDateString(date) {
				return errors.NewAppError(errors.ErrInvalidInput, "Invalid date in time slots: "+date, nil)
			}
			if len(selected) > 0 && !selected[date] {
				logger.Warn("hourly room has time slots for a date outside selected_dates", "date", date)
			}
		}
	}
	return nil
}

func (s *RoomService) GetRoomByID(ctx context.Context, id uuid.UUID) (*dto.RoomWithParticipantsResponse, *errors.AppError) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}
	return s.withParticipants(ctx, room)
}

func (s *RoomService) GetRoomBySlug(ctx context.Context, slug string) (*dto.RoomWithParticipantsResponse, *errors.AppError) {
	room, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}
	return s.withParticipants(ctx, room)
}

func (s *RoomService) withParticipants(ctx context.Context, room *entity.Room) (*dto.RoomWithParticipantsResponse, *errors.AppError) {
	grouped, err := s.partRepo.ListGroupedByRoom(ctx, room.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list participants", err)
	}
	return &dto.RoomWithParticipantsResponse{
		RoomResponse: *dto.ToRoomResponse(room),
		Participants: grouped,
	}, nil
}

func (s *RoomService) GetRooms(ctx context.Context, skip, limit int) ([]dto.RoomResponse, *errors.AppError) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	rooms, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list rooms", err)
	}

	result := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		result = append(result, *dto.ToRoomResponse(&rooms[i]))
	}
	return result, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, *errors.AppError) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	if req.Title != "" {
		room.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		desc := req.Description
		room.Description = &desc
	}
	if req.Deadline != nil {
		room.Deadline = req.Deadline
	}

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update room", err)
	}

	s.invalidateOptimalTimes(ctx, room.ID)
	return dto.ToRoomResponse(room), nil
}

// DeleteRoom soft-deactivates; responses stay queryable internally but the
// room disappears from all read paths.
func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) *errors.AppError {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "Failed to get room", err)
	}
	if room == nil {
		return errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Failed to deactivate room", err)
	}

	s.invalidateOptimalTimes(ctx, id)
	return nil
}

// GetOptimalTimes returns the ranked slot list, served from cache when a
// recent computation exists. A room with no active responses returns an
// empty list.
func (s *RoomService) GetOptimalTimes(ctx context.Context, roomID uuid.UUID) ([]dto.OptimalTimeSlot, *errors.AppError) {
	room, err := s.repo.GetByID(ctx, roomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	cacheKey := cache.OptimalTimesKey(roomID.String())
	if s.cache != nil {
		var cached []dto.OptimalTimeSlot
		if hit, cacheErr := s.cache.Get(ctx, cacheKey, &cached); cacheErr == nil && hit {
			return cached, nil
		}
	}

	activeResponses, err := s.respRepo.ListActiveByRoom(ctx, roomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list active responses", err)
	}

	optimizer := NewScheduleOptimizer(room)
	result := optimizer.FindOptimalTimes(activeResponses)

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); cacheErr != nil {
			logger.Warn("RoomService:GetOptimalTimes cache set failed", "error", cacheErr)
		}
	}

	return result, nil
}

// DeactivateRoom is the retention worker callback. A room that is already
// gone is not an error.
func (s *RoomService) DeactivateRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		logger.Error("RoomService:DeactivateRoom invalid id", "room_id", roomID, "error", err)
		return nil
	}
	return s.repo.Deactivate(ctx, id)
}

func (s *RoomService) invalidateOptimalTimes(ctx context.Context, roomID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.OptimalTimesKey(roomID.String())); err != nil {
		logger.Warn("RoomService: cache invalidation failed", "room_id", roomID.String(), "error", err)
	}
}
