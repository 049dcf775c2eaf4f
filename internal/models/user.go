package models

import "time"

// User is opaque to the reservation engine; it exists so bookings can hold a
// referential check and preload the guest record. Authentication lives elsewhere.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
