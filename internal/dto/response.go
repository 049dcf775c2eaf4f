package dto

import (
	"time"

	"github.com/hotelhub/reservation-service/internal/models"
)

type RoomResponse struct {
	ID            uint              `json:"id"`
	Number        string            `json:"number"`
	Type          models.RoomType   `json:"type"`
	PricePerNight float64           `json:"price_per_night"`
	Status        models.RoomStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

type BookingResponse struct {
	ID           uint                 `json:"id"`
	RoomID       uint                 `json:"room_id"`
	UserID       uint                 `json:"user_id"`
	CheckInDate  string               `json:"check_in_date"`
	CheckOutDate string               `json:"check_out_date"`
	TotalPrice   float64              `json:"total_price"`
	Status       models.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`

	Room *RoomResponse `json:"room,omitempty"`
	User *UserResponse `json:"user,omitempty"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PaymentResponse struct {
	ID          uint                 `json:"id"`
	BookingID   uint                 `json:"booking_id"`
	Amount      float64              `json:"amount"`
	PaymentDate string               `json:"payment_date"`
	Status      models.PaymentStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`

	Booking *BookingResponse `json:"booking,omitempty"`
}

type AvailabilityResponse struct {
	RoomID       uint   `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		Number:        r.Number,
		Type:          r.Type,
		PricePerNight: r.PricePerNight,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID,
		RoomID:       b.RoomID,
		UserID:       b.UserID,
		CheckInDate:  b.CheckInDate.Format(DateFormat),
		CheckOutDate: b.CheckOutDate.Format(DateFormat),
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
	if b.Room != nil {
		room := ToRoomResponse(b.Room)
		resp.Room = &room
	}
	if b.User != nil {
		resp.User = &UserResponse{ID: b.User.ID, Name: b.User.Name, Email: b.User.Email}
	}
	return resp
}

func ToPaymentResponse(p *models.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:          p.ID,
		BookingID:   p.BookingID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Format(DateFormat),
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
	if p.Booking != nil {
		booking := ToBookingResponse(p.Booking)
		resp.Booking = &booking
	}
	return resp
}
