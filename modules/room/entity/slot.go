package entity

import (
	"strings"
	"time"

	"yakjeong/core/constants"
)

// Slot keys are the canonical string identity of a selectable unit:
//
//	HOURLY: "<date>|<time>"      e.g. "2025-08-09|09:00"
//	BLOCK:  "<date>-<block_id>"  e.g. "2025-08-09-movie-a-2"
//	DAILY:  "<date>"
//
// Block ids are user-supplied and may contain hyphens, but dates are always
// fixed-width YYYY-MM-DD, so the block key is parsed by validating the
// 10-character date prefix instead of searching for a separator.

const dateLen = 10 // len("2006-01-02")

func IsDateString(s string) bool {
	if len(s) != dateLen {
		return false
	}
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

func MakeSlotKey(roomType RoomType, date, detail string) string {
	switch roomType {
	case RoomTypeHourly:
		return date + "|" + detail
	case RoomTypeBlock:
		return date + "-" + detail
	default:
		return date
	}
}

// ParseSlotKey is the inverse of MakeSlotKey. ok is false for keys that are
// malformed for the given room type; callers drop those defensively.
func ParseSlotKey(roomType RoomType, key string) (date string, detail string, ok bool) {
	switch roomType {
	case RoomTypeHourly:
		idx := strings.Index(key, "|")
		if idx < 0 {
			return "", "", false
		}
		date, detail = key[:idx], key[idx+1:]
		if !IsDateString(date) || detail == "" {
			return "", "", false
		}
		return date, detail, true

	case RoomTypeBlock:
		if len(key) < dateLen+2 || key[dateLen] != '-' {
			return "", "", false
		}
		date, detail = key[:dateLen], key[dateLen+1:]
		if !IsDateString(date) {
			return "", "", false
		}
		return date, detail, true

	case RoomTypeDaily:
		if !IsDateString(key) {
			return "", "", false
		}
		return key, "", true
	}
	return "", "", false
}
