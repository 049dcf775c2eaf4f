package handler

import (
	"errors"
	"net/http"

	"github.com/hotelhub/reservation-service/internal/dto"
	"github.com/hotelhub/reservation-service/internal/models"
	"github.com/hotelhub/reservation-service/internal/service"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	svc service.RoomService
}

func NewRoomHandler(svc service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

func (h *RoomHandler) RegisterRoutes(e *echo.Echo) {
	rooms := e.Group("/api/v1/rooms")
	rooms.GET("", h.ListRooms)
	rooms.POST("", h.CreateRoom)
	rooms.GET("/:id", h.GetRoom)
	rooms.PUT("/:id", h.UpdateRoom)
	rooms.DELETE("/:id", h.DeleteRoom)
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Number == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "number is required")
	}

	room, err := h.svc.CreateRoom(c.Request().Context(), service.CreateRoomInput{
		Number:        req.Number,
		Type:          req.Type,
		PricePerNight: req.PricePerNight,
		Status:        req.Status,
	})
	if err != nil {
		return roomErrorToHTTP(err)
	}

	return c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	room, err := h.svc.GetRoom(c.Request().Context(), id)
	if err != nil {
		return roomErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.svc.ListRooms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = dto.ToRoomResponse(&r)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	var req dto.UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	room, err := h.svc.UpdateRoom(c.Request().Context(), id, service.UpdateRoomInput{
		Number:        req.Number,
		Type:          req.Type,
		PricePerNight: req.PricePerNight,
		Status:        req.Status,
	})
	if err != nil {
		return roomErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	if err := h.svc.DeleteRoom(c.Request().Context(), id); err != nil {
		return roomErrorToHTTP(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func roomErrorToHTTP(err error) error {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRoomNumberTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNegativeNightly),
		errors.Is(err, models.ErrInvalidRoomType),
		errors.Is(err, models.ErrInvalidRoomStatus):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
