package models

import "time"

type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	RoomID       uint          `gorm:"not null;index" json:"room_id"`
	UserID       uint          `gorm:"not null;index" json:"user_id"`
	CheckInDate  time.Time     `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate time.Time     `gorm:"type:date;not null" json:"check_out_date"`
	TotalPrice   float64       `gorm:"not null" json:"total_price"`
	Status       BookingStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Range returns the booking's stay interval.
func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: toDate(b.CheckInDate), CheckOut: toDate(b.CheckOutDate)}
}
