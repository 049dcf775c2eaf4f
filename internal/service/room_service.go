package service

import (
	"context"
	"errors"

	"github.com/hotelhub/reservation-service/internal/models"
	"github.com/hotelhub/reservation-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrRoomNumberTaken = errors.New("room number is already taken")
	ErrNegativeNightly = errors.New("price_per_night must not be negative")
)

// CreateRoomInput carries the fields required to create a room. Type and
// Status are raw strings, canonicalized case-insensitively.
type CreateRoomInput struct {
	Number        string
	Type          string
	PricePerNight float64
	Status        string
}

// UpdateRoomInput carries a partial set of room fields; nil means keep the
// current value.
type UpdateRoomInput struct {
	Number        *string
	Type          *string
	PricePerNight *float64
	Status        *string
}

type RoomService interface {
	CreateRoom(ctx context.Context, in CreateRoomInput) (*models.Room, error)
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	UpdateRoom(ctx context.Context, id uint, in UpdateRoomInput) (*models.Room, error)
	DeleteRoom(ctx context.Context, id uint) error
}

type roomService struct {
	roomRepo repository.RoomRepository
}

func NewRoomService(roomRepo repository.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

func (s *roomService) CreateRoom(ctx context.Context, in CreateRoomInput) (*models.Room, error) {
	roomType, err := models.ParseRoomType(in.Type)
	if err != nil {
		return nil, err
	}
	status := models.RoomAvailable
	if in.Status != "" {
		status, err = models.ParseRoomStatus(in.Status)
		if err != nil {
			return nil, err
		}
	}
	if in.PricePerNight < 0 {
		return nil, ErrNegativeNightly
	}

	room := &models.Room{
		Number:        in.Number,
		Type:          roomType,
		PricePerNight: in.PricePerNight,
		Status:        status,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrRoomNumberTaken
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.roomRepo.FindAll(ctx)
}

func (s *roomService) UpdateRoom(ctx context.Context, id uint, in UpdateRoomInput) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if in.Number != nil {
		room.Number = *in.Number
	}
	if in.Type != nil {
		roomType, err := models.ParseRoomType(*in.Type)
		if err != nil {
			return nil, err
		}
		room.Type = roomType
	}
	if in.PricePerNight != nil {
		if *in.PricePerNight < 0 {
			return nil, ErrNegativeNightly
		}
		room.PricePerNight = *in.PricePerNight
	}
	if in.Status != nil {
		status, err := models.ParseRoomStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		room.Status = status
	}

	if err := s.roomRepo.Save(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrRoomNumberTaken
		}
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes the room without cascading; bookings referencing it
// keep their rows.
func (s *roomService) DeleteRoom(ctx context.Context, id uint) error {
	deleted, err := s.roomRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRoomNotFound
	}
	return nil
}
