package repository

import (
	"context"

	"github.com/hotelhub/reservation-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindAll(ctx context.Context, roomID uint, status *models.BookingStatus) ([]models.Booking, error)
	CountOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, rng models.DateRange, excludingID uint) (int64, error)
	Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) error
	Delete(ctx context.Context, id uint) (bool, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	if err := tx.WithContext(ctx).Create(booking).Error; err != nil {
		return translatePgError(err)
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("User").
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, roomID uint, status *models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Preload("Room").Preload("User")
	if roomID != 0 {
		q = q.Where("room_id = ?", roomID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountOverlapping counts active bookings for the room whose stay shares at
// least one calendar day with rng. Endpoint-inclusive: an existing booking
// conflicts iff existing.check_in <= rng.check_out AND existing.check_out >=
// rng.check_in. Pass excludingID to leave a booking's own row out of the count
// when re-validating an update.
func (r *bookingRepository) CountOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, rng models.DateRange, excludingID uint) (int64, error) {
	var count int64
	q := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ? AND status = ?", roomID, models.StatusActive).
		Where("check_in_date <= ? AND check_out_date >= ?", rng.CheckOut, rng.CheckIn)
	if excludingID != 0 {
		q = q.Where("id <> ?", excludingID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *bookingRepository) Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	if err := tx.WithContext(ctx).Save(booking).Error; err != nil {
		return translatePgError(err)
	}
	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

func (r *bookingRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
