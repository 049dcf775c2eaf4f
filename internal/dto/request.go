package dto

// Dates travel as "YYYY-MM-DD" strings on the wire, matching the calendar-day
// granularity of stays; handlers parse them with DateFormat.

const DateFormat = "2006-01-02"

type CreateBookingRequest struct {
	RoomID       uint    `json:"room_id"`
	UserID       uint    `json:"user_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalPrice   float64 `json:"total_price"`
}

type UpdateBookingRequest struct {
	RoomID       *uint    `json:"room_id"`
	CheckInDate  *string  `json:"check_in_date"`
	CheckOutDate *string  `json:"check_out_date"`
	TotalPrice   *float64 `json:"total_price"`
}

type CreateRoomRequest struct {
	Number        string  `json:"number"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Status        string  `json:"status"`
}

type UpdateRoomRequest struct {
	Number        *string  `json:"number"`
	Type          *string  `json:"type"`
	PricePerNight *float64 `json:"price_per_night"`
	Status        *string  `json:"status"`
}

type CreatePaymentRequest struct {
	BookingID   uint    `json:"booking_id"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
	Status      string  `json:"status"`
}

type UpdatePaymentRequest struct {
	Amount      *float64 `json:"amount"`
	PaymentDate *string  `json:"payment_date"`
	Status      *string  `json:"status"`
}
