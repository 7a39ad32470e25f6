package models

// Room is a classroom. Rooms belong to exactly one building and are
// addressed either by surrogate id or by the (building_code, room_number)
// pair. BuildingCode and BuildingName are flattened from the joined building
// row for the client contract.
type Room struct {
	ID           int64  `db:"id" json:"id"`
	BuildingID   int64  `db:"building_id" json:"building_id"`
	RoomNumber   string `db:"room_number" json:"room_number"`
	Capacity     int    `db:"capacity" json:"capacity"`
	BuildingCode string `db:"building_code" json:"building_code"`
	BuildingName string `db:"building_name" json:"building_name,omitempty"`
}
