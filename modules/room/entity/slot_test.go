package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotKey(t *testing.T) {
	tests := []struct {
		name     string
		roomType RoomType
		key      string
		wantDate string
		wantDet  string
		wantOK   bool
	}{
		{"hourly basic", RoomTypeHourly, "2025-08-09|09:00", "2025-08-09", "09:00", true},
		{"hourly missing separator", RoomTypeHourly, "2025-08-09 09:00", "", "", false},
		{"hourly bad date", RoomTypeHourly, "2025-13-40|09:00", "", "", false},
		{"hourly empty time", RoomTypeHourly, "2025-08-09|", "", "", false},
		{"block simple id", RoomTypeBlock, "2025-08-09-lunch", "2025-08-09", "lunch", true},
		{"block hyphenated id", RoomTypeBlock, "2025-08-09-movie-a-2", "2025-08-09", "movie-a-2", true},
		{"block missing id", RoomTypeBlock, "2025-08-09-", "", "", false},
		{"block bad date prefix", RoomTypeBlock, "2025-99-09-lunch", "", "", false},
		{"block no separator after date", RoomTypeBlock, "2025-08-09lunch", "", "", false},
		{"block too short", RoomTypeBlock, "2025-08", "", "", false},
		{"daily basic", RoomTypeDaily, "2025-08-09", "2025-08-09", "", true},
		{"daily not a date", RoomTypeDaily, "next tuesday", "", "", false},
		{"daily with trailing junk", RoomTypeDaily, "2025-08-09|09:00", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, detail, ok := ParseSlotKey(tt.roomType, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDate, date)
			assert.Equal(t, tt.wantDet, detail)
		})
	}
}

func TestSlotKeyRoundTrip(t *testing.T) {
	tests := []struct {
		roomType RoomType
		date     string
		detail   string
	}{
		{RoomTypeHourly, "2025-08-09", "09:00"},
		{RoomTypeBlock, "2025-08-09", "movie-a-2"},
		{RoomTypeBlock, "2025-08-09", "b1"},
		{RoomTypeDaily, "2025-08-09", ""},
	}

	for _, tt := range tests {
		key := MakeSlotKey(tt.roomType, tt.date, tt.detail)
		date, detail, ok := ParseSlotKey(tt.roomType, key)
		require.True(t, ok, "key %q", key)
		assert.Equal(t, tt.date, date)
		assert.Equal(t, tt.detail, detail)
	}
}

func TestIsLegalSlot(t *testing.T) {
	settings := &RoomSettings{
		TimeSlotsByDate: map[string][]string{
			"2025-08-09": {"09:00", "09:30"},
		},
		TimeBlocks: []TimeBlock{
			{ID: "movie-a-2", Name: "Movie A-2", TimeRange: "11:30-13:00"},
		},
		BlockSlotsByDate: map[string][]string{
			"2025-08-09": {"movie-a-2"},
		},
	}

	assert.True(t, settings.IsLegalSlot(RoomTypeHourly, "2025-08-09", "09:00"))
	assert.False(t, settings.IsLegalSlot(RoomTypeHourly, "2025-08-09", "10:00"))
	assert.False(t, settings.IsLegalSlot(RoomTypeHourly, "2025-08-10", "09:00"))

	assert.True(t, settings.IsLegalSlot(RoomTypeBlock, "2025-08-09", "movie-a-2"))
	assert.False(t, settings.IsLegalSlot(RoomTypeBlock, "2025-08-09", "movie-b"))

	// Daily rooms have no restricting universe.
	assert.True(t, settings.IsLegalSlot(RoomTypeDaily, "2025-12-31", ""))

	var nilSettings *RoomSettings
	assert.True(t, nilSettings.IsLegalSlot(RoomTypeDaily, "2025-08-09", ""))
	assert.False(t, nilSettings.IsLegalSlot(RoomTypeHourly, "2025-08-09", "09:00"))
	assert.False(t, nilSettings.IsLegalSlot(RoomTypeBlock, "2025-08-09", "movie-a-2"))
}

func TestBlockByID(t *testing.T) {
	settings := &RoomSettings{
		TimeBlocks: []TimeBlock{
			{ID: "b1", Name: "Lunch", TimeRange: "12:00-13:00"},
			{ID: "b2", Name: "Dinner", TimeRange: "18:00-19:00"},
		},
	}

	block, idx, ok := settings.BlockByID("b2")
	require.True(t, ok)
	assert.Equal(t, "Dinner", block.Name)
	assert.Equal(t, 1, idx)

	_, _, ok = settings.BlockByID("b3")
	assert.False(t, ok)
}
