package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"yakjeong/core/database"
	"yakjeong/core/logger"
	"yakjeong/modules/participant/entity"
)

// ParticipantRepository handles participant database operations
type ParticipantRepository struct {
	DB database.IDatabase
}

func NewParticipantRepository(db database.IDatabase) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

// ParticipantRepositoryInterface defines the repository contract
type ParticipantRepositoryInterface interface {
	Create(ctx context.Context, roomID uuid.UUID, name string) (*entity.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.Participant, error)
	ListGroupedByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.GroupedParticipant, error)
}

func (r *ParticipantRepository) Create(ctx context.Context, roomID uuid.UUID, name string) (*entity.Participant, error) {
	query := `
		INSERT INTO participants (room_id, name)
		VALUES ($1, $2)
		RETURNING id, room_id, name, created_at
	`

	var created entity.Participant
	err := r.DB.GetContext(ctx, &created, query, roomID, name)
	if err != nil {
		logger.Error("ParticipantRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	query := `SELECT id, room_id, name, created_at FROM participants WHERE id = $1`

	var participant entity.Participant
	err := r.DB.GetContext(ctx, &participant, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ParticipantRepository:GetByID", err)
		return nil, err
	}

	return &participant, nil
}

func (r *ParticipantRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.Participant, error) {
	query := `
		SELECT id, room_id, name, created_at
		FROM participants
		WHERE room_id = $1
		ORDER BY created_at
	`

	var participants []entity.Participant
	err := r.DB.SelectContext(ctx, &participants, query, roomID)
	if err != nil {
		logger.Error("ParticipantRepository:ListByRoom", err)
		return nil, err
	}

	return participants, nil
}

// ListGroupedByRoom collapses participant rows to one logical participant
// per name, ordered by first participation time.
func (r *ParticipantRepository) ListGroupedByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.GroupedParticipant, error) {
	query := `
		SELECT room_id, name,
		       MIN(created_at) AS first_participation_at,
		       COUNT(*)        AS submissions
		FROM participants
		WHERE room_id = $1
		GROUP BY room_id, name
		ORDER BY first_participation_at
	`

	var grouped []entity.GroupedParticipant
	err := r.DB.SelectContext(ctx, &grouped, query, roomID)
	if err != nil {
		logger.Error("ParticipantRepository:ListGroupedByRoom", err)
		return nil, err
	}

	return grouped, nil
}
