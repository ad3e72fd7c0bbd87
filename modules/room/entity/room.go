package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RoomType determines how participants express availability: whole days,
// half-hour slots, or creator-defined named blocks.
type RoomType string

const (
	RoomTypeHourly RoomType = "hourly"
	RoomTypeBlock  RoomType = "block"
	RoomTypeDaily  RoomType = "daily"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeHourly, RoomTypeBlock, RoomTypeDaily:
		return true
	}
	return false
}

// Room is a scheduling poll. Type and settings are fixed at creation;
// only title, description and deadline may change afterwards.
type Room struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	RoomType    RoomType   `db:"room_type" json:"room_type"`
	CreatorName string     `db:"creator_name" json:"creator_name"`
	Slug        string     `db:"slug" json:"slug"`
	Deadline    *time.Time `db:"deadline" json:"deadline,omitempty"`
	Settings    *string    `db:"settings" json:"settings,omitempty"` // JSONB as string
	IsActive    bool       `db:"is_active" json:"is_active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// DeadlinePassed reports whether submissions are closed. Rooms without a
// deadline never close.
func (r *Room) DeadlinePassed(now time.Time) bool {
	return r.Deadline != nil && now.After(*r.Deadline)
}

// ParseSettings decodes the stored settings blob. A room with no settings
// yields nil, which IsLegalSlot treats as "daily only".
func (r *Room) ParseSettings() (*RoomSettings, error) {
	if r.Settings == nil || *r.Settings == "" {
		return nil, nil
	}
	var s RoomSettings
	if err := json.Unmarshal([]byte(*r.Settings), &s); err != nil {
		return nil, err
	}
	return &s, nil
}
