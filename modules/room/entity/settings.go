package entity

// TimeBlock is a creator-defined named block, e.g. "Movie A-2, 11:30-13:00".
// IDs are free text and may themselves contain hyphens.
type TimeBlock struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TimeRange string `json:"time_range"`
	Memo      string `json:"memo,omitempty"`
}

// RoomSettings is the room-type-specific configuration blob. For HOURLY
// rooms TimeSlotsByDate is the legal (date, time) universe; for BLOCK rooms
// TimeBlocks plus BlockSlotsByDate define the legal (date, block) universe.
// DAILY rooms carry no restricting universe: SelectedDates is advisory.
type RoomSettings struct {
	SelectedDates    []string            `json:"selected_dates,omitempty"`
	TimeSlotsByDate  map[string][]string `json:"time_slots_by_date,omitempty"`
	TimeBlocks       []TimeBlock         `json:"time_blocks,omitempty"`
	BlockSlotsByDate map[string][]string `json:"block_slots_by_date,omitempty"`
}

// IsLegalSlot reports whether (date, detail) belongs to the configured
// universe. Always true for DAILY rooms.
func (s *RoomSettings) IsLegalSlot(roomType RoomType, date, detail string) bool {
	if roomType == RoomTypeDaily {
		return true
	}
	if s == nil {
		return false
	}

	var allowed []string
	switch roomType {
	case RoomTypeHourly:
		allowed = s.TimeSlotsByDate[date]
	case RoomTypeBlock:
		allowed = s.BlockSlotsByDate[date]
	default:
		return false
	}

	for _, v := range allowed {
		if v == detail {
			return true
		}
	}
	return false
}

// BlockByID returns the block definition and its declaration index, which
// drives the tie-break order in the optimal-times ranking.
func (s *RoomSettings) BlockByID(id string) (TimeBlock, int, bool) {
	if s == nil {
		return TimeBlock{}, 0, false
	}
	for i, b := range s.TimeBlocks {
		if b.ID == id {
			return b, i, true
		}
	}
	return TimeBlock{}, 0, false
}
