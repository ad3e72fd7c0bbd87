package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yakjeong/core/errors"
	"yakjeong/modules/participant/dto"
	"yakjeong/modules/participant/entity"
	respEntity "yakjeong/modules/response/entity"
	roomEntity "yakjeong/modules/room/entity"
)

// ===================== hand mocks =====================

type mockParticipantRepo struct {
	created []string
}

func (m *mockParticipantRepo) Create(ctx context.Context, roomID uuid.UUID, name string) (*entity.Participant, error) {
	m.created = append(m.created, name)
	return &entity.Participant{ID: uuid.New(), RoomID: roomID, Name: name, CreatedAt: time.Now()}, nil
}

func (m *mockParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	return nil, nil
}

func (m *mockParticipantRepo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.Participant, error) {
	return nil, nil
}

func (m *mockParticipantRepo) ListGroupedByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.GroupedParticipant, error) {
	return nil, nil
}

type mockRoomRepo struct {
	rooms map[uuid.UUID]*roomEntity.Room
}

func (m *mockRoomRepo) Create(ctx context.Context, room *roomEntity.Room) (*roomEntity.Room, error) {
	return nil, nil
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*roomEntity.Room, error) {
	return m.rooms[id], nil
}

func (m *mockRoomRepo) GetBySlug(ctx context.Context, slug string) (*roomEntity.Room, error) {
	return nil, nil
}

func (m *mockRoomRepo) List(ctx context.Context, skip, limit int) ([]roomEntity.Room, error) {
	return nil, nil
}

func (m *mockRoomRepo) Update(ctx context.Context, room *roomEntity.Room) error { return nil }

func (m *mockRoomRepo) Deactivate(ctx context.Context, id uuid.UUID) error { return nil }

type mockResponseRepo struct{}

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
	return nil, nil
}

// ===================== tests =====================

func TestJoinRoom(t *testing.T) {
	room := &roomEntity.Room{ID: uuid.New(), RoomType: roomEntity.RoomTypeDaily, IsActive: true}
	repo := &mockParticipantRepo{}
	roomRepo := &mockRoomRepo{rooms: map[uuid.UUID]*roomEntity.Room{room.ID: room}}
	svc := NewParticipantService(repo, roomRepo, &mockResponseRepo{})

	joined, appErr := svc.JoinRoom(context.Background(), &dto.CreateParticipantRequest{
		RoomID: room.ID.String(),
		Name:   "  alice  ",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "alice", joined.Name)

	// The same name joins again: a second row, same lineage.
	_, appErr = svc.JoinRoom(context.Background(), &dto.CreateParticipantRequest{
		RoomID: room.ID.String(),
		Name:   "alice",
	})
	require.Nil(t, appErr)
	assert.Equal(t, []string{"alice", "alice"}, repo.created)
}

func TestJoinRoomValidation(t *testing.T) {
	room := &roomEntity.Room{ID: uuid.New(), RoomType: roomEntity.RoomTypeDaily, IsActive: true}
	past := time.Now().Add(-time.Hour)
	closed := &roomEntity.Room{ID: uuid.New(), RoomType: roomEntity.RoomTypeDaily, Deadline: &past, IsActive: true}
	roomRepo := &mockRoomRepo{rooms: map[uuid.UUID]*roomEntity.Room{
		room.ID:   room,
		closed.ID: closed,
	}}

	tests := []struct {
		name    string
		req     dto.CreateParticipantRequest
		wantErr errors.ErrorCode
	}{
		{"blank name", dto.CreateParticipantRequest{RoomID: room.ID.String(), Name: "   "}, errors.ErrInvalidInput},
		{"bad room id", dto.CreateParticipantRequest{RoomID: "nope", Name: "alice"}, errors.ErrInvalidInput},
		{"unknown room", dto.CreateParticipantRequest{RoomID: uuid.New().String(), Name: "alice"}, errors.ErrNotFound},
		{"deadline passed", dto.CreateParticipantRequest{RoomID: closed.ID.String(), Name: "alice"}, errors.ErrDeadlinePassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewParticipantService(&mockParticipantRepo{}, roomRepo, &mockResponseRepo{})
			_, appErr := svc.JoinRoom(context.Background(), &tt.req)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantErr, appErr.Code)
		})
	}
}
