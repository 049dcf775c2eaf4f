package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPaymentStatus = errors.New("invalid payment status")

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

type Payment struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	BookingID   uint          `gorm:"not null;index" json:"booking_id"`
	Amount      float64       `gorm:"not null" json:"amount"`
	PaymentDate time.Time     `gorm:"type:date;not null" json:"payment_date"`
	Status      PaymentStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

// ParsePaymentStatus canonicalizes a case-insensitive payment status string.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return PaymentPending, nil
	case "completed":
		return PaymentCompleted, nil
	case "failed":
		return PaymentFailed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, s)
}
