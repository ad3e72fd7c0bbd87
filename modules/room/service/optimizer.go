package service

import (
	"sort"

	"yakjeong/core/logger"
	"yakjeong/modules/response/entity"
	"yakjeong/modules/room/dto"
	roomEntity "yakjeong/modules/room/entity"
)

// ScheduleOptimizer computes the ranked optimal-time-slot list for a room
// from the active responses (one per distinct participant name). It is a
// pure read: malformed or out-of-universe slot keys are dropped and logged,
// never surfaced as errors.
type ScheduleOptimizer struct {
	roomType   roomEntity.RoomType
	settings   *roomEntity.RoomSettings
	blockIndex map[string]int
}

func NewScheduleOptimizer(room *roomEntity.Room) *ScheduleOptimizer {
	settings, err := room.ParseSettings()
	if err != nil {
		logger.Warn("ScheduleOptimizer: undecodable room settings, universe is empty",
			"room_id", room.ID.String(), "error", err)
		settings = &roomEntity.RoomSettings{}
	}

	o := &ScheduleOptimizer{
		roomType: room.RoomType,
		settings: settings,
	}

	if settings != nil {
		o.blockIndex = make(map[string]int, len(settings.TimeBlocks))
		for i, b := range settings.TimeBlocks {
			o.blockIndex[b.ID] = i
		}
	}

	return o
}

type slotTally struct {
	key    string
	date   string
	detail string
	names  []string
}

// FindOptimalTimes tallies per-slot participant coverage and returns the
// full ranked list. Zero active responses yield an empty list.
func (o *ScheduleOptimizer) FindOptimalTimes(activeResponses []entity.ActiveResponse) []dto.OptimalTimeSlot {
	total := len(activeResponses)
	if total == 0 {
		return []dto.OptimalTimeSlot{}
	}

	tallies := make(map[string]*slotTally)
	var keyOrder []string

	for i := range activeResponses {
		resp := &activeResponses[i]

		payload, err := resp.Payload()
		if err != nil {
			logger.Warn("ScheduleOptimizer: undecodable response dropped",
				"response_id", resp.ID.String(), "error", err)
			continue
		}

		seen := make(map[string]bool)
		for _, key := range payload.SlotKeys(o.roomType) {
			if seen[key] {
				continue
			}

			date, detail, ok := roomEntity.ParseSlotKey(o.roomType, key)
			if !ok {
				logger.Warn("ScheduleOptimizer: malformed slot key dropped",
					"response_id", resp.ID.String(), "key", key)
				continue
			}
			if !o.settings.IsLegalSlot(o.roomType, date, detail) {
				logger.Warn("ScheduleOptimizer: slot outside room universe dropped",
					"response_id", resp.ID.String(), "key", key)
				continue
			}

			seen[key] = true
			t := tallies[key]
			if t == nil {
				t = &slotTally{key: key, date: date, detail: detail}
				tallies[key] = t
				keyOrder = append(keyOrder, key)
			}
			t.names = append(t.names, resp.ParticipantName)
		}
	}

	ranked := make([]*slotTally, 0, len(keyOrder))
	for _, key := range keyOrder {
		ranked = append(ranked, tallies[key])
	}

	// Participant count descending; ties in chronological slot order so the
	// ranking is deterministic.
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if len(a.names) != len(b.names) {
			return len(a.names) > len(b.names)
		}
		return o.slotBefore(a, b)
	})

	result := make([]dto.OptimalTimeSlot, 0, len(ranked))
	for _, t := range ranked {
		result = append(result, dto.OptimalTimeSlot{
			TimeSlot:              o.label(t),
			AvailableParticipants: t.names,
			ParticipantCount:      len(t.names),
			AvailabilityRate:      float64(len(t.names)) / float64(total),
		})
	}

	return result
}

// slotBefore orders slots chronologically: date, then time of day for
// hourly rooms, then block declaration order for block rooms.
func (o *ScheduleOptimizer) slotBefore(a, b *slotTally) bool {
	if a.date != b.date {
		return a.date < b.date
	}
	switch o.roomType {
	case roomEntity.RoomTypeHourly:
		return a.detail < b.detail
	case roomEntity.RoomTypeBlock:
		return o.blockIndex[a.detail] < o.blockIndex[b.detail]
	}
	return false
}

func (o *ScheduleOptimizer) label(t *slotTally) string {
	switch o.roomType {
	case roomEntity.RoomTypeHourly:
		return t.date + " " + t.detail
	case roomEntity.RoomTypeBlock:
		if block, _, ok := o.settings.BlockByID(t.detail); ok {
			return t.date + " " + block.Name + " (" + block.TimeRange + ")"
		}
		return t.date + " " + t.detail
	default:
		return t.date
	}
}
