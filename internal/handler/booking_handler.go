package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hotelhub/reservation-service/internal/dto"
	"github.com/hotelhub/reservation-service/internal/models"
	"github.com/hotelhub/reservation-service/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/api/v1/bookings")
	bookings.GET("", h.ListBookings)
	bookings.POST("", h.CreateBooking)
	bookings.GET("/:id", h.GetBooking)
	bookings.PUT("/:id", h.UpdateBooking)
	bookings.DELETE("/:id", h.DeleteBooking)
	bookings.POST("/:id/cancel", h.CancelBooking)

	e.GET("/api/v1/rooms/:id/availability", h.GetRoomAvailability)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RoomID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "room_id is required")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_in_date must be a valid YYYY-MM-DD date")
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_out_date must be a valid YYYY-MM-DD date")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		RoomID:     req.RoomID,
		UserID:     req.UserID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		return bookingErrorToHTTP(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), id)
	if err != nil {
		return bookingErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	var roomID uint
	if s := c.QueryParam("room_id"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid room_id")
		}
		roomID = uint(v)
	}

	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		if bs != models.StatusActive && bs != models.StatusCancelled {
			return echo.NewHTTPError(http.StatusBadRequest, "status must be active or cancelled")
		}
		status = &bs
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), roomID, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	in := service.UpdateBookingInput{
		RoomID:     req.RoomID,
		TotalPrice: req.TotalPrice,
	}
	if req.CheckInDate != nil {
		checkIn, err := parseDate(*req.CheckInDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "check_in_date must be a valid YYYY-MM-DD date")
		}
		in.CheckIn = &checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, err := parseDate(*req.CheckOutDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "check_out_date must be a valid YYYY-MM-DD date")
		}
		in.CheckOut = &checkOut
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), id, in)
	if err != nil {
		return bookingErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), id)
	if err != nil {
		return bookingErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	if err := h.svc.DeleteBooking(c.Request().Context(), id); err != nil {
		return bookingErrorToHTTP(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *BookingHandler) GetRoomAvailability(c echo.Context) error {
	roomID, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}
	checkIn, err := parseDate(c.QueryParam("check_in"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_in must be a valid YYYY-MM-DD date")
	}
	checkOut, err := parseDate(c.QueryParam("check_out"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_out must be a valid YYYY-MM-DD date")
	}
	rng, err := models.NewDateRange(checkIn, checkOut)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	available, err := h.svc.IsRoomAvailable(c.Request().Context(), roomID, rng, 0)
	if err != nil {
		return bookingErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, dto.AvailabilityResponse{
		RoomID:       roomID,
		CheckInDate:  rng.CheckIn.Format(dto.DateFormat),
		CheckOutDate: rng.CheckOut.Format(dto.DateFormat),
		Available:    available,
	})
}

// bookingErrorToHTTP maps service sentinels onto transport codes: rejected
// input is 400, missing records 404, overlapping dates 409, anything else a
// generic 500.
func bookingErrorToHTTP(err error) error {
	switch {
	case errors.Is(err, service.ErrRoomUnavailable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNegativePrice),
		errors.Is(err, service.ErrBookingNotActive),
		errors.Is(err, models.ErrInvalidDateRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dto.DateFormat, s)
}
