package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	roomEntity "yakjeong/modules/room/entity"
)

// Response is one immutable submission version. Only is_active and
// updated_at ever change after insert; revisions insert a new row with the
// next version number for the participant-name lineage.
type Response struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ParticipantID uuid.UUID `db:"participant_id" json:"participant_id"`
	ResponseData  string    `db:"response_data" json:"response_data"` // JSONB as string
	Version       int       `db:"version" json:"version"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// ActiveResponse is the aggregation input row: the single active response
// of a name lineage, joined with the name and its first participation time.
type ActiveResponse struct {
	Response
	ParticipantName      string    `db:"participant_name" json:"participant_name"`
	FirstParticipationAt time.Time `db:"first_participation_at" json:"first_participation_at"`
}

// Payload is the decoded response_data. Exactly one field is meaningful
// per room type; the others stay empty.
type Payload struct {
	AvailableTimes  []string `json:"available_times,omitempty"`  // HOURLY "<date>|<time>" keys
	AvailableDates  []string `json:"available_dates,omitempty"`  // DAILY date strings
	AvailableBlocks []string `json:"available_blocks,omitempty"` // BLOCK "<date>-<block_id>" keys
}

func ParsePayload(data string) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SlotKeys returns the slot keys relevant to the room type. A payload
// encoded for a different type contributes nothing.
func (p *Payload) SlotKeys(roomType roomEntity.RoomType) []string {
	if p == nil {
		return nil
	}
	switch roomType {
	case roomEntity.RoomTypeHourly:
		return p.AvailableTimes
	case roomEntity.RoomTypeDaily:
		return p.AvailableDates
	case roomEntity.RoomTypeBlock:
		return p.AvailableBlocks
	}
	return nil
}

// EmptyFor reports whether the payload selects no slots for the room type.
func (p *Payload) EmptyFor(roomType roomEntity.RoomType) bool {
	return len(p.SlotKeys(roomType)) == 0
}

func (r *Response) Payload() (*Payload, error) {
	return ParsePayload(r.ResponseData)
}
