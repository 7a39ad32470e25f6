// Package dto holds the response shapes that form the client contract.
// Field names here are fixed: the Android client binds to them verbatim.
package dto

// FreeSlot is one free interval rendered as HH:MM strings.
type FreeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlotsResponse reports a room's free slots keyed by the Korean weekday
// labels (월..금).
type FreeSlotsResponse struct {
	BuildingCode   string                `json:"building_code"`
	RoomNumber     string                `json:"room_number"`
	FreeSlotsByDay map[string][]FreeSlot `json:"free_slots_by_day"`
}

// AvailableRoom is a room whose timetable leaves every requested slot free.
type AvailableRoom struct {
	RoomID       int64  `json:"room_id"`
	BuildingCode string `json:"building_code"`
	RoomNumber   string `json:"room_number"`
}
