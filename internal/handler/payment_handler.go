package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hotelhub/reservation-service/internal/dto"
	"github.com/hotelhub/reservation-service/internal/models"
	"github.com/hotelhub/reservation-service/internal/service"
	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	payments := e.Group("/api/v1/payments")
	payments.GET("", h.ListPayments)
	payments.POST("", h.CreatePayment)
	payments.GET("/:id", h.GetPayment)
	payments.PUT("/:id", h.UpdatePayment)
	payments.DELETE("/:id", h.DeletePayment)
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req dto.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.BookingID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "booking_id is required")
	}
	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payment_date must be a valid YYYY-MM-DD date")
	}

	payment, err := h.svc.CreatePayment(c.Request().Context(), service.CreatePaymentInput{
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		Status:      req.Status,
	})
	if err != nil {
		return paymentErrorToHTTP(err)
	}

	return c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payment id")
	}

	payment, err := h.svc.GetPayment(c.Request().Context(), id)
	if err != nil {
		return paymentErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	var bookingID uint
	if s := c.QueryParam("booking_id"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid booking_id")
		}
		bookingID = uint(v)
	}

	payments, err := h.svc.ListPayments(c.Request().Context(), bookingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.PaymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = dto.ToPaymentResponse(&p)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payment id")
	}

	var req dto.UpdatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	in := service.UpdatePaymentInput{
		Amount: req.Amount,
		Status: req.Status,
	}
	if req.PaymentDate != nil {
		paymentDate, err := parseDate(*req.PaymentDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "payment_date must be a valid YYYY-MM-DD date")
		}
		in.PaymentDate = &paymentDate
	}

	payment, err := h.svc.UpdatePayment(c.Request().Context(), id, in)
	if err != nil {
		return paymentErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payment id")
	}

	if err := h.svc.DeletePayment(c.Request().Context(), id); err != nil {
		return paymentErrorToHTTP(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func paymentErrorToHTTP(err error) error {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrNegativeAmount),
		errors.Is(err, models.ErrInvalidPaymentStatus):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
