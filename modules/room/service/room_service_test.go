package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yakjeong/core/errors"
	respEntity "yakjeong/modules/response/entity"
	"yakjeong/modules/room/dto"
	"yakjeong/modules/room/entity"
)

// ===================== hand mocks =====================

type mockRoomRepo struct {
	createFn     func(ctx context.Context, room *entity.Room) (*entity.Room, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	deactivated  []uuid.UUID
	deactivateFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRoomRepo) Create(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	if m.createFn != nil {
		return m.createFn(ctx, room)
	}
	created := *room
	created.ID = uuid.New()
	created.IsActive = true
	return &created, nil
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockRoomRepo) GetBySlug(ctx context.Context, slug string) (*entity.Room, error) {
	return nil, nil
}

func (m *mockRoomRepo) List(ctx context.Context, skip, limit int) ([]entity.Room, error) {
	return nil, nil
}

func (m *mockRoomRepo) Update(ctx context.Context, room *entity.Room) error { return nil }

func (m *mockRoomRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	m.deactivated = append(m.deactivated, id)
	if m.deactivateFn != nil {
		return m.deactivateFn(ctx, id)
	}
	return nil
}

type mockResponseRepo struct {
	listActiveFn func(ctx context.Context, roomID uuid.UUID) ([]respEntity.ActiveResponse, error)
}

func (m *mockResponseRepo) CreateVersion(ctx context.Context, roomID uuid.UUID, name string, participantID uuid.UUID, responseData string) (*respEntity.Response, error) {
	return nil, nil
}

func (m *mockResponseRepo) ActivateResponse(ctx context.Context, responseID uuid.UUID) (*respEntity.Response, error) {
	return nil, nil
}

func (m *mockResponseRepo) GetByID(ctx context.Context, id uuid.UUID) (*respEntity.Response, error) {
	return nil, nil
}

func (m *mockResponseRepo) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]respEntity.Response, error) {
	return nil, nil
}

func (m *mockResponseRepo) ListByRoomAndName(ctx context.Context, roomID uuid.UUID, name string) ([]respEntity.Response, error) {
	return nil, nil
}

func (m *mockResponseRepo) ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]respEntity.ActiveResponse, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx, roomID)
	}
	return nil, nil
}

type fakeCache struct {
	entries map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func (c *fakeCache) Close() error { return nil }

type mockScheduler struct {
	scheduled []string
}

func (m *mockScheduler) ScheduleRoomDeactivation(roomID string, after time.Duration) error {
	m.scheduled = append(m.scheduled, roomID)
	return nil
}

// ===================== tests =====================

func TestCreateRoomValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateRoomRequest
		wantErr errors.ErrorCode
	}{
		{
			name:    "missing title",
			req:     dto.CreateRoomRequest{CreatorName: "alice", RoomType: entity.RoomTypeDaily},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "missing creator",
			req:     dto.CreateRoomRequest{Title: "Team offsite", RoomType: entity.RoomTypeDaily},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "unknown room type",
			req:     dto.CreateRoomRequest{Title: "Team offsite", CreatorName: "alice", RoomType: "weekly"},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "block room without blocks",
			req:     dto.CreateRoomRequest{Title: "Movie night", CreatorName: "alice", RoomType: entity.RoomTypeBlock},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name: "block with incomplete definition",
			req: dto.CreateRoomRequest{
				Title: "Movie night", CreatorName: "alice", RoomType: entity.RoomTypeBlock,
				Settings: &entity.RoomSettings{
					TimeBlocks: []entity.TimeBlock{{ID: "b1", Name: "Movie A"}},
				},
			},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name: "block with duplicate ids",
			req: dto.CreateRoomRequest{
				Title: "Movie night", CreatorName: "alice", RoomType: entity.RoomTypeBlock,
				Settings: &entity.RoomSettings{
					TimeBlocks: []entity.TimeBlock{
						{ID: "b1", Name: "Movie A", TimeRange: "11:00-13:00"},
						{ID: "b1", Name: "Movie B", TimeRange: "14:00-16:00"},
					},
				},
			},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name: "block slots referencing unknown block",
			req: dto.CreateRoomRequest{
				Title: "Movie night", CreatorName: "alice", RoomType: entity.RoomTypeBlock,
				Settings: &entity.RoomSettings{
					TimeBlocks: []entity.TimeBlock{
						{ID: "b1", Name: "Movie A", TimeRange: "11:00-13:00"},
					},
					BlockSlotsByDate: map[string][]string{"2025-08-09": {"b9"}},
				},
			},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "hourly without slot universe",
			req:     dto.CreateRoomRequest{Title: "Standup", CreatorName: "alice", RoomType: entity.RoomTypeHourly},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name: "hourly with malformed date",
			req: dto.CreateRoomRequest{
				Title: "Standup", CreatorName: "alice", RoomType: entity.RoomTypeHourly,
				Settings: &entity.RoomSettings{
					TimeSlotsByDate: map[string][]string{"aug 9": {"09:00"}},
				},
			},
			wantErr: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewRoomService(&mockRoomRepo{}, &mockResponseRepo{}, nil, nil, nil, 0, 0)
			_, appErr := svc.CreateRoom(context.Background(), &tt.req)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantErr, appErr.Code)
		})
	}
}

func TestCreateRoomSchedulesRetention(t *testing.T) {
	repo := &mockRoomRepo{}
	scheduler := &mockScheduler{}
	svc := NewRoomService(repo, &mockResponseRepo{}, nil, nil, scheduler, 90*24*time.Hour, 0)

	created, appErr := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		Title:       "Team offsite",
		CreatorName: "alice",
		RoomType:    entity.RoomTypeDaily,
	})
	require.Nil(t, appErr)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.Slug)
	require.Len(t, scheduler.scheduled, 1)
	assert.Equal(t, created.ID, scheduler.scheduled[0])
}

func TestGetOptimalTimesCaches(t *testing.T) {
	room := newTestRoom(t, entity.RoomTypeDaily, nil)
	repo := &mockRoomRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
			return room, nil
		},
	}

	calls := 0
	respRepo := &mockResponseRepo{
		listActiveFn: func(ctx context.Context, roomID uuid.UUID) ([]respEntity.ActiveResponse, error) {
			calls++
			return []respEntity.ActiveResponse{
				activeResponse(t, "alice", respEntity.Payload{AvailableDates: []string{"2025-08-09"}}),
			}, nil
		},
	}

	c := newFakeCache()
	svc := NewRoomService(repo, respRepo, nil, c, nil, 0, time.Minute)

	first, appErr := svc.GetOptimalTimes(context.Background(), room.ID)
	require.Nil(t, appErr)
	require.Len(t, first, 1)

	second, appErr := svc.GetOptimalTimes(context.Background(), room.ID)
	require.Nil(t, appErr)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second read should come from cache")
}

func TestGetOptimalTimesRoomNotFound(t *testing.T) {
	svc := NewRoomService(&mockRoomRepo{}, &mockResponseRepo{}, nil, nil, nil, 0, 0)

	_, appErr := svc.GetOptimalTimes(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestDeleteRoomInvalidatesCache(t *testing.T) {
	room := newTestRoom(t, entity.RoomTypeDaily, nil)
	repo := &mockRoomRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
			return room, nil
		},
	}

	c := newFakeCache()
	svc := NewRoomService(repo, &mockResponseRepo{}, nil, c, nil, 0, 0)

	appErr := svc.DeleteRoom(context.Background(), room.ID)
	require.Nil(t, appErr)

	assert.Equal(t, []uuid.UUID{room.ID}, repo.deactivated)
	assert.Contains(t, c.deleted, "optimal:"+room.ID.String())
}

func TestDeactivateRoomIgnoresBadID(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewRoomService(repo, &mockResponseRepo{}, nil, nil, nil, 0, 0)

	require.NoError(t, svc.DeactivateRoom(context.Background(), "not-a-uuid"))
	assert.Empty(t, repo.deactivated)

	id := uuid.New()
	require.NoError(t, svc.DeactivateRoom(context.Background(), id.String()))
	assert.Equal(t, []uuid.UUID{id}, repo.deactivated)
}
