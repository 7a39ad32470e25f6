package models

// Alert announces that a favorited room is about to become free. Field names
// are part of the client contract.
type Alert struct {
	RoomID      int64  `json:"room_id"`
	RoomName    string `json:"room_name"`
	TargetTime  string `json:"target_time"`
	MinutesLeft int    `json:"minutes_left"`
	Message     string `json:"message"`
}
