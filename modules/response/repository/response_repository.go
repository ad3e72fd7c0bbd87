package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"yakjeong/core/database"
	"yakjeong/core/logger"
	"yakjeong/modules/response/entity"
)

// Sentinel error translated to an AppError code by the service layer.
var ErrResponseNotFound = errors.New("response not found")

// ResponseRepository handles response database operations. Versions are
// immutable rows; only the is_active flag flips, and every flip runs in a
// transaction so a lineage never has two active rows.
type ResponseRepository struct {
	DB database.IDatabase
}

func NewResponseRepository(db database.IDatabase) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

// ResponseRepositoryInterface defines the repository contract
type ResponseRepositoryInterface interface {
	CreateVersion(ctx context.Context, roomID uuid.UUID, name string, participantID uuid.UUID, responseData string) (*entity.Response, error)
	ActivateResponse(ctx context.Context, responseID uuid.UUID) (*entity.Response, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Response, error)
	ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]entity.Response, error)
	ListByRoomAndName(ctx context.Context, roomID uuid.UUID, name string) ([]entity.Response, error)
	ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.ActiveResponse, error)
}

const responseColumns = `id, participant_id, response_data, version, is_active, created_at, updated_at`

// lineageFilter selects all responses belonging to a (room, name) lineage.
const lineageFilter = `
	participant_id IN (
		SELECT id FROM participants WHERE room_id = $1 AND name = $2
	)`

// CreateVersion inserts the next version for the (room, name) lineage and
// deactivates its siblings, atomically. The lineage's participant rows are
// locked first so racing submissions serialize: version numbers stay unique
// and at most one row ends up active. A fresh lineage starts at version 1.
func (r *ResponseRepository) CreateVersion(ctx context.Context, roomID uuid.UUID, name string, participantID uuid.UUID, responseData string) (*entity.Response, error) {
	var created entity.Response

	err := r.DB.WithinTx(ctx, func(tx *sqlx.Tx) error {
		lock := `SELECT id FROM participants WHERE room_id = $1 AND name = $2 FOR UPDATE`
		var lineageIDs []uuid.UUID
		if err := tx.SelectContext(ctx, &lineageIDs, lock, roomID, name); err != nil {
			return err
		}

		var maxVersion int
		maxQuery := `
			SELECT COALESCE(MAX(r.version), 0)
			FROM responses r
			JOIN participants p ON p.id = r.participant_id
			WHERE p.room_id = $1 AND p.name = $2
		`
		if err := tx.GetContext(ctx, &maxVersion, maxQuery, roomID, name); err != nil {
			return err
		}

		if maxVersion > 0 {
			deactivate := `
				UPDATE responses SET is_active = false, updated_at = NOW()
				WHERE is_active = true AND ` + lineageFilter
			if _, err := tx.ExecContext(ctx, deactivate, roomID, name); err != nil {
				return err
			}
		}

		insert := `
			INSERT INTO responses (participant_id, response_data, version, is_active)
			VALUES ($1, $2, $3, true)
			RETURNING ` + responseColumns
		return tx.GetContext(ctx, &created, insert, participantID, responseData, maxVersion+1)
	})
	if err != nil {
		logger.Error("ResponseRepository:CreateVersion", err)
		return nil, err
	}

	return &created, nil
}

// ActivateResponse makes the given response the lineage's active one and
// deactivates the rest, atomically. Idempotent when already active.
func (r *ResponseRepository) ActivateResponse(ctx context.Context, responseID uuid.UUID) (*entity.Response, error) {
	var activated entity.Response

	err := r.DB.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var lineage struct {
			RoomID uuid.UUID `db:"room_id"`
			Name   string    `db:"name"`
		}
		lookup := `
			SELECT p.room_id, p.name
			FROM responses r
			JOIN participants p ON p.id = r.participant_id
			WHERE r.id = $1
		`
		if err := tx.GetContext(ctx, &lineage, lookup, responseID); err != nil {
			if err == sql.ErrNoRows {
				return ErrResponseNotFound
			}
			return err
		}

		deactivate := `
			UPDATE responses SET is_active = false, updated_at = NOW()
			WHERE id <> $3 AND is_active = true AND ` + lineageFilter
		if _, err := tx.ExecContext(ctx, deactivate, lineage.RoomID, lineage.Name, responseID); err != nil {
			return err
		}

		activate := `
			UPDATE responses
			SET is_active = true, updated_at = NOW()
			WHERE id = $1
			RETURNING ` + responseColumns
		return tx.GetContext(ctx, &activated, activate, responseID)
	})
	if err != nil {
		if !errors.Is(err, ErrResponseNotFound) {
			logger.Error("ResponseRepository:ActivateResponse", err)
		}
		return nil, err
	}

	return &activated, nil
}

func (r *ResponseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Response, error) {
	query := `SELECT ` + responseColumns + ` FROM responses WHERE id = $1`

	var response entity.Response
	err := r.DB.GetContext(ctx, &response, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ResponseRepository:GetByID", err)
		return nil, err
	}

	return &response, nil
}

func (r *ResponseRepository) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]entity.Response, error) {
	query := `
		SELECT ` + responseColumns + `
		FROM responses
		WHERE participant_id = $1
		ORDER BY version DESC
	`

	var responses []entity.Response
	err := r.DB.SelectContext(ctx, &responses, query, participantID)
	if err != nil {
		logger.Error("ResponseRepository:ListByParticipant", err)
		return nil, err
	}

	return responses, nil
}

// ListByRoomAndName returns the full lineage history across all participant
// rows sharing the name, newest version first.
func (r *ResponseRepository) ListByRoomAndName(ctx context.Context, roomID uuid.UUID, name string) ([]entity.Response, error) {
	query := `
		SELECT ` + responseColumns + `
		FROM responses
		WHERE ` + lineageFilter + `
		ORDER BY version DESC
	`

	var responses []entity.Response
	err := r.DB.SelectContext(ctx, &responses, query, roomID, name)
	if err != nil {
		logger.Error("ResponseRepository:ListByRoomAndName", err)
		return nil, err
	}

	return responses, nil
}

// ListActiveByRoom returns one row per distinct participant name: the
// lineage's active response, ordered by first participation time. This is
// the aggregation engine's input.
func (r *ResponseRepository) ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.ActiveResponse, error) {
	query := `
		SELECT r.id, r.participant_id, r.response_data, r.version, r.is_active,
		       r.created_at, r.updated_at,
		       p.name AS participant_name,
		       fp.first_participation_at
		FROM responses r
		JOIN participants p ON p.id = r.participant_id
		JOIN (
			SELECT room_id, name, MIN(created_at) AS first_participation_at
			FROM participants
			GROUP BY room_id, name
		) fp ON fp.room_id = p.room_id AND fp.name = p.name
		WHERE p.room_id = $1 AND r.is_active = true
		ORDER BY fp.first_participation_at, p.name
	`

	var active []entity.ActiveResponse
	err := r.DB.SelectContext(ctx, &active, query, roomID)
	if err != nil {
		logger.Error("ResponseRepository:ListActiveByRoom", err)
		return nil, err
	}

	return active, nil
}
