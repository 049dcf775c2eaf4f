package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidRoomType   = errors.New("invalid room type")
	ErrInvalidRoomStatus = errors.New("invalid room status")
)

type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomSuite  RoomType = "Suite"
)

type RoomStatus string

const (
	RoomAvailable RoomStatus = "Available"
	RoomBooked    RoomStatus = "Booked"
)

type Room struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Number        string     `gorm:"uniqueIndex;not null" json:"number"`
	Type          RoomType   `gorm:"type:varchar(20);not null" json:"type"`
	PricePerNight float64    `gorm:"not null" json:"price_per_night"`
	Status        RoomStatus `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ParseRoomType canonicalizes a case-insensitive room type string.
func ParseRoomType(s string) (RoomType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return RoomSingle, nil
	case "double":
		return RoomDouble, nil
	case "suite":
		return RoomSuite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRoomType, s)
}

// ParseRoomStatus canonicalizes a case-insensitive room status string.
// The status is informational only; conflict detection reads the booking table.
func ParseRoomStatus(s string) (RoomStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available":
		return RoomAvailable, nil
	case "booked":
		return RoomBooked, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRoomStatus, s)
}
