package entity

import (
	"time"

	"github.com/google/uuid"
)

// Participant is one submission identity. Names are free text with no
// authentication; within a room the same name may appear on multiple rows,
// one per submission attempt. All rows sharing a name form one lineage.
type Participant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	RoomID    uuid.UUID `db:"room_id" json:"room_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GroupedParticipant is the logical participant the UI shows: one entry per
// distinct name, ordered by when the name first joined.
type GroupedParticipant struct {
	RoomID               uuid.UUID `db:"room_id" json:"room_id"`
	Name                 string    `db:"name" json:"name"`
	FirstParticipationAt time.Time `db:"first_participation_at" json:"first_participation_at"`
	Submissions          int       `db:"submissions" json:"submissions"`
}
