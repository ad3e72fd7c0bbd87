package service

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	respEntity "yakjeong/modules/response/entity"
	"yakjeong/modules/room/entity"
)

func newTestRoom(t *testing.T, roomType entity.RoomType, settings *entity.RoomSettings) *entity.Room {
	t.Helper()
	room := &entity.Room{ID: uuid.New(), RoomType: roomType, IsActive: true}
	if settings != nil {
		data, err := json.Marshal(settings)
		require.NoError(t, err)
		s := string(data)
		room.Settings = &s
	}
	return room
}

func activeResponse(t *testing.T, name string, payload respEntity.Payload) respEntity.ActiveResponse {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return respEntity.ActiveResponse{
		Response: respEntity.Response{
			ID:           uuid.New(),
			ResponseData: string(data),
			Version:      1,
			IsActive:     true,
		},
		ParticipantName: name,
	}
}

func TestFindOptimalTimesNoResponses(t *testing.T) {
	room := newTestRoom(t, entity.RoomTypeDaily, nil)
	result := NewScheduleOptimizer(room).FindOptimalTimes(nil)

	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFindOptimalTimesHourlyRanking(t *testing.T) {
	room := newTestRoom(t, entity.RoomTypeHourly, &entity.RoomSettings{
		TimeSlotsByDate: map[string][]string{
			"2025-08-09": {"09:00", "09:30", "10:00"},
		},
	})

	responses := []respEntity.ActiveResponse{
		activeResponse(t, "alice", respEntity.Payload{AvailableTimes: []string{"2025-08-09|09:00", "2025-08-09|10:00"}}),
		activeResponse(t, "bob", respEntity.Payload{AvailableTimes: []string{"2025-08-09|09:00"}}),
		activeResponse(t, "carol", respEntity.Payload{AvailableTimes: []string{"2025-08-09|09:00", "2025-08-09|09:30"}}),
	}

	result := NewScheduleOptimizer(room).FindOptimalTimes(responses)
	require.Len(t, result, 3)

	assert.Equal(t, "2025-08-09 09:00", result[0].TimeSlot)
	assert.Equal(t, 3, result[0].ParticipantCount)
	assert.Equal(t, []string{"alice", "bob", "carol"}, result[0].AvailableParticipants)
	assert.InDelta(t, 1.0, result[0].AvailabilityRate, 1e-9)

	// Equal counts rank chronologically.
	assert.Equal(t, "2025-08-09 09:30", result[1].TimeSlot)
	assert.Equal(t, "2025-08-09 10:00", result[2].TimeSlot)
	assert.InDelta(t, 1.0/3.0, result[1].AvailabilityRate, 1e-9)
}

func TestFindOptimalTimesDropsBadSlots(t *testing.T) {
	room := newTestRoom(t, entity.RoomTypeHourly, &entity.RoomSettings{
		TimeSlotsByDate: map[string][]string{
			"2025-08-09": {"09:00"},
		},
	})

	responses := []respEntity.ActiveResponse{
		activeResponse(t, "alice", respEntity.Payload{AvailableTimes: []string{
			"2025-08-09|09:00",
			"2025-08-09|09:00", // duplicate within one response
			"2025-08-09|23:00", // outside the room's universe
			"not-a-slot",       // malformed
		}}),
	}

	result := NewScheduleOptimizer(room).FindOptimalTimes(responses)
	require.Len(t, result, 1)
	assert.Equal(t, "2025-08-09 09:00", result[0].TimeSlot)
	assert.Equal(t, 1, result[0].ParticipantCount)
}

func TestFindOptimalTimesBlockOrderAndLabels(t *testing.T) {
	room := newTestRoom(t, entity.RoomTypeBlock, &entity.RoomSettings{
		TimeBlocks: []entity.TimeBlock{
			{ID: "movie-a-2", Name: "Movie A-2", TimeRange: "11:30-13:00"},
			{ID: "dinner", Name: "Dinner", TimeRange: "18:00-19:30"},
		},
		BlockSlotsByDate: map[string][]string{
			"2025-08-09": {"movie-a-2", "dinner"},
		},
	})

	responses := []respEntity.ActiveResponse{
		activeResponse(t, "alice", respEntity.Payload{AvailableBlocks: []string{"2025-08-09-dinner"}}),
		activeResponse(t, "bob", respEntity.Payload{AvailableBlocks: []string{"2025-08-09-movie-a-2"}}),
	}

	result := NewScheduleOptimizer(room).FindOptimalTimes(responses)
	require.Len(t, result, 2)

	// Equal counts rank by block declaration order, and ids with hyphens
	// resolve to their block definitions.
	assert.Equal(t, "2025-08-09 Movie A-2 (11:30-13:00)", result[0].TimeSlot)
	assert.Equal(t, []string{"bob"}, result[0].AvailableParticipants)
	assert.Equal(t, "2025-08-09 Dinner (18:00-19:30)", result[1].TimeSlot)
}

func TestFindOptimalTimesDaily(t *testing.T) {
	room := newTestRoom(t, entity.RoomTypeDaily, nil)

	responses := []respEntity.ActiveResponse{
		activeResponse(t, "alice", respEntity.Payload{AvailableDates: []string{"2025-08-10", "2025-08-09"}}),
		activeResponse(t, "bob", respEntity.Payload{AvailableDates: []string{"2025-08-10", "someday"}}),
	}

	result := NewScheduleOptimizer(room).FindOptimalTimes(responses)
	require.Len(t, result, 2)

	assert.Equal(t, "2025-08-10", result[0].TimeSlot)
	assert.Equal(t, 2, result[0].ParticipantCount)
	assert.Equal(t, "2025-08-09", result[1].TimeSlot)
}

func TestFindOptimalTimesUndecodableResponseStillCounts(t *testing.T) {
	room := newTestRoom(t, entity.RoomTypeDaily, nil)

	corrupt := respEntity.ActiveResponse{
		Response:        respEntity.Response{ID: uuid.New(), ResponseData: "{not json"},
		ParticipantName: "mallory",
	}
	responses := []respEntity.ActiveResponse{
		activeResponse(t, "alice", respEntity.Payload{AvailableDates: []string{"2025-08-09"}}),
		corrupt,
	}

	result := NewScheduleOptimizer(room).FindOptimalTimes(responses)
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ParticipantCount)
	// The corrupt response still counts toward the denominator.
	assert.InDelta(t, 0.5, result[0].AvailabilityRate, 1e-9)
}
