package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"yakjeong/core/database"
	"yakjeong/core/logger"
	"yakjeong/modules/room/entity"
)

// RoomRepository handles room database operations
type RoomRepository struct {
	DB database.IDatabase
}

func NewRoomRepository(db database.IDatabase) *RoomRepository {
	return &RoomRepository{DB: db}
}

// RoomRepositoryInterface defines the repository contract
type RoomRepositoryInterface interface {
	Create(ctx context.Context, room *entity.Room) (*entity.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Room, error)
	List(ctx context.Context, skip, limit int) ([]entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

const roomColumns = `id, title, description, room_type, creator_name, slug, deadline, settings, is_active, created_at, updated_at`

func (r *RoomRepository) Create(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	query := `
		INSERT INTO rooms (title, description, room_type, creator_name, slug, deadline, settings)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + roomColumns

	var created entity.Room
	err := r.DB.GetContext(ctx, &created, query,
		room.Title, room.Description, room.RoomType, room.CreatorName,
		room.Slug, room.Deadline, room.Settings)
	if err != nil {
		logger.Error("RoomRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

// GetByID returns active rooms only; deactivated rooms read as missing.
func (r *RoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 AND is_active = true`

	var room entity.Room
	err := r.DB.GetContext(ctx, &room, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:GetByID", err)
		return nil, err
	}

	return &room, nil
}

func (r *RoomRepository) GetBySlug(ctx context.Context, slug string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE slug = $1 AND is_active = true`

	var room entity.Room
	err := r.DB.GetContext(ctx, &room, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:GetBySlug", err)
		return nil, err
	}

	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, skip, limit int) ([]entity.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE is_active = true
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	var rooms []entity.Room
	err := r.DB.SelectContext(ctx, &rooms, query, skip, limit)
	if err != nil {
		logger.Error("RoomRepository:List", err)
		return nil, err
	}

	return rooms, nil
}

// Update touches the mutable fields only; room_type and settings are fixed
// at creation.
func (r *RoomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET title = $2, description = $3, deadline = $4, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query, room.ID, room.Title, room.Description, room.Deadline)
	if err != nil {
		logger.Error("RoomRepository:Update", err)
		return err
	}

	return nil
}

func (r *RoomRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE rooms SET is_active = false, updated_at = NOW() WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("RoomRepository:Deactivate", err)
		return err
	}
	return nil
}
