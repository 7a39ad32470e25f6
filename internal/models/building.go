package models

import "time"

// Building represents a campus building. Codes are unique and are what
// clients use to address buildings (e.g. "310").
type Building struct {
	ID        int64     `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
