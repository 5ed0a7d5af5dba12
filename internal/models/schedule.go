package models

import "time"

type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ChamberID uint `json:"chamber_id"`

	// Opaque slot template. By convention an object with "weekday", "weekend"
	// and "exceptions" keys, but no shape is enforced on write.
	TimeSlots JSONValue `gorm:"type:text" json:"time_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
