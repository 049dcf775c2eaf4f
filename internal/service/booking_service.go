package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/hotelhub/reservation-service/internal/models"
	"github.com/hotelhub/reservation-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrRoomUnavailable  = errors.New("room is not available for the selected dates")
	ErrNegativePrice    = errors.New("total_price must not be negative")
	ErrBookingNotActive = errors.New("booking is already cancelled")
)

// RoutingKeyBookingCreated is the routing key for booking-created events on
// the bookings exchange.
const RoutingKeyBookingCreated = "booking.created"

// Notifier publishes booking lifecycle events. Publishing is best-effort:
// callers log failures and move on, they never fail the request over one.
type Notifier interface {
	Publish(routingKey string, payload any) error
}

// CreateBookingInput carries the fields required to create a booking. Dates
// are calendar days; time-of-day is ignored.
type CreateBookingInput struct {
	RoomID     uint
	UserID     uint
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice float64
}

// UpdateBookingInput carries a partial set of booking fields; nil means keep
// the current value.
type UpdateBookingInput struct {
	RoomID     *uint
	CheckIn    *time.Time
	CheckOut   *time.Time
	TotalPrice *float64
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, roomID uint, status *models.BookingStatus) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id uint, in UpdateBookingInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, id uint) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id uint) error
	IsRoomAvailable(ctx context.Context, roomID uint, rng models.DateRange, excludingBookingID uint) (bool, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	userRepo    repository.UserRepository
	notifier    Notifier
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	rng, err := models.NewDateRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if in.TotalPrice < 0 {
		return nil, ErrNegativePrice
	}
	if _, err := s.roomRepo.FindByID(ctx, in.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	ok, err := s.userRepo.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	var result *models.Booking

	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the room row — serializes concurrent check-and-insert per room
		if _, err := s.roomRepo.FindByIDForUpdate(ctx, tx, in.RoomID); err != nil {
			return ErrRoomNotFound
		}

		// 2. Availability pre-check
		overlapping, err := s.bookingRepo.CountOverlapping(ctx, tx, in.RoomID, rng, 0)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrRoomUnavailable
		}

		// 3. Insert; the exclusion constraint is the final arbiter under races
		booking := &models.Booking{
			RoomID:       in.RoomID,
			UserID:       in.UserID,
			CheckInDate:  rng.CheckIn,
			CheckOutDate: rng.CheckOut,
			TotalPrice:   in.TotalPrice,
			Status:       models.StatusActive,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			if errors.Is(err, repository.ErrOverlap) {
				return ErrRoomUnavailable
			}
			return err
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishBookingCreated(result)
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, roomID uint, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx, roomID, status)
}

func (s *bookingService) UpdateBooking(ctx context.Context, id uint, in UpdateBookingInput) (*models.Booking, error) {
	current, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	// Merge supplied fields over the current record
	merged := *current
	merged.Room = nil
	merged.User = nil
	if in.RoomID != nil {
		merged.RoomID = *in.RoomID
	}
	if in.CheckIn != nil {
		merged.CheckInDate = *in.CheckIn
	}
	if in.CheckOut != nil {
		merged.CheckOutDate = *in.CheckOut
	}
	if in.TotalPrice != nil {
		merged.TotalPrice = *in.TotalPrice
	}

	rng, err := models.NewDateRange(merged.CheckInDate, merged.CheckOutDate)
	if err != nil {
		return nil, err
	}
	merged.CheckInDate = rng.CheckIn
	merged.CheckOutDate = rng.CheckOut
	if merged.TotalPrice < 0 {
		return nil, ErrNegativePrice
	}
	if in.RoomID != nil {
		if _, err := s.roomRepo.FindByID(ctx, merged.RoomID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, err
		}
	}

	datesChanged := in.RoomID != nil || in.CheckIn != nil || in.CheckOut != nil
	if !datesChanged {
		if err := s.bookingRepo.Save(ctx, s.bookingRepo.GetDB(), &merged); err != nil {
			return nil, err
		}
		return s.bookingRepo.FindByID(ctx, id)
	}

	// Re-validate availability against the merged range, excluding this
	// booking's own row, under the same per-room lock as creation.
	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.roomRepo.FindByIDForUpdate(ctx, tx, merged.RoomID); err != nil {
			return ErrRoomNotFound
		}
		if merged.Status == models.StatusActive {
			overlapping, err := s.bookingRepo.CountOverlapping(ctx, tx, merged.RoomID, rng, merged.ID)
			if err != nil {
				return err
			}
			if overlapping > 0 {
				return ErrRoomUnavailable
			}
		}
		if err := s.bookingRepo.Save(ctx, tx, &merged); err != nil {
			if errors.Is(err, repository.ErrOverlap) {
				return ErrRoomUnavailable
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.bookingRepo.FindByID(ctx, id)
}

// CancelBooking marks the booking cancelled, freeing its date range while
// keeping the record for history. Hard deletion is DeleteBooking.
func (s *bookingService) CancelBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.Status == models.StatusCancelled {
		return nil, ErrBookingNotActive
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, models.StatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.StatusCancelled
	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id uint) error {
	deleted, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}
	return nil
}

// IsRoomAvailable is a point-in-time read; creation and update re-run the
// same check under a per-room lock before committing.
func (s *bookingService) IsRoomAvailable(ctx context.Context, roomID uint, rng models.DateRange, excludingBookingID uint) (bool, error) {
	if _, err := s.roomRepo.FindByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRoomNotFound
		}
		return false, err
	}
	overlapping, err := s.bookingRepo.CountOverlapping(ctx, s.bookingRepo.GetDB(), roomID, rng, excludingBookingID)
	if err != nil {
		return false, err
	}
	return overlapping == 0, nil
}

func (s *bookingService) publishBookingCreated(booking *models.Booking) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(RoutingKeyBookingCreated, booking); err != nil {
		log.Printf("[BookingService] failed to publish %s for booking %d: %v",
			RoutingKeyBookingCreated, booking.ID, err)
	}
}
