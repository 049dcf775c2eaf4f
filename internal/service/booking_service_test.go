package service

import (
	"context"
	"testing"
	"time"

	"github.com/hotelhub/reservation-service/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Fakes cover the validation paths that run before any transaction; the
// transactional paths are covered by the integration suite against a real
// database.

type fakeRoomRepo struct {
	rooms map[uint]*models.Room
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *models.Room) error { return nil }
func (f *fakeRoomRepo) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	if r, ok := f.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	return f.FindByID(ctx, id)
}
func (f *fakeRoomRepo) FindAll(ctx context.Context) ([]models.Room, error) { return nil, nil }
func (f *fakeRoomRepo) Save(ctx context.Context, room *models.Room) error  { return nil }
func (f *fakeRoomRepo) Delete(ctx context.Context, id uint) (bool, error)  { return false, nil }

type fakeUserRepo struct {
	users map[uint]*models.User
}

func (f *fakeUserRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

type fakeBookingRepo struct {
	bookings      map[uint]*models.Booking
	updatedStatus map[uint]models.BookingStatus
	deleted       []uint
}

func (f *fakeBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return nil
}
func (f *fakeBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeBookingRepo) FindAll(ctx context.Context, roomID uint, status *models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) CountOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, rng models.DateRange, excludingID uint) (int64, error) {
	return 0, nil
}
func (f *fakeBookingRepo) Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return nil
}
func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) error {
	if f.updatedStatus == nil {
		f.updatedStatus = map[uint]models.BookingStatus{}
	}
	f.updatedStatus[bookingID] = status
	if b, ok := f.bookings[bookingID]; ok {
		b.Status = status
	}
	return nil
}
func (f *fakeBookingRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := f.bookings[id]; !ok {
		return false, nil
	}
	delete(f.bookings, id)
	f.deleted = append(f.deleted, id)
	return true, nil
}
func (f *fakeBookingRepo) GetDB() *gorm.DB { return nil }

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func newTestService(bookings *fakeBookingRepo) BookingService {
	rooms := &fakeRoomRepo{rooms: map[uint]*models.Room{
		1: {ID: 1, Number: "101", Type: models.RoomDouble, PricePerNight: 100, Status: models.RoomAvailable},
	}}
	users := &fakeUserRepo{users: map[uint]*models.User{
		1: {ID: 1, Name: "Alice", Email: "alice@example.com"},
	}}
	return NewBookingService(bookings, rooms, users, nil)
}

func TestCreateBooking_InvertedRange(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		RoomID:   1,
		UserID:   1,
		CheckIn:  day("2024-06-20"),
		CheckOut: day("2024-06-15"),
	})

	assert.ErrorIs(t, err, models.ErrInvalidDateRange)
}

func TestCreateBooking_ZeroNightStay(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		RoomID:   1,
		UserID:   1,
		CheckIn:  day("2024-06-15"),
		CheckOut: day("2024-06-15"),
	})

	assert.ErrorIs(t, err, models.ErrInvalidDateRange)
}

func TestCreateBooking_NegativePrice(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		RoomID:     1,
		UserID:     1,
		CheckIn:    day("2024-06-15"),
		CheckOut:   day("2024-06-20"),
		TotalPrice: -50,
	})

	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestCreateBooking_UnknownRoom(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		RoomID:   999,
		UserID:   1,
		CheckIn:  day("2024-06-15"),
		CheckOut: day("2024-06-20"),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateBooking_UnknownUser(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		RoomID:   1,
		UserID:   999,
		CheckIn:  day("2024-06-15"),
		CheckOut: day("2024-06-20"),
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetBooking_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{bookings: map[uint]*models.Booking{}})

	_, err := svc.GetBooking(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBooking_MarksCancelled(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[uint]*models.Booking{
		7: {ID: 7, RoomID: 1, UserID: 1, CheckInDate: day("2024-06-15"), CheckOutDate: day("2024-06-20"), Status: models.StatusActive},
	}}
	svc := newTestService(repo)

	booking, err := svc.CancelBooking(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, booking.Status)
	assert.Equal(t, models.StatusCancelled, repo.updatedStatus[7])
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[uint]*models.Booking{
		7: {ID: 7, RoomID: 1, UserID: 1, Status: models.StatusCancelled},
	}}
	svc := newTestService(repo)

	_, err := svc.CancelBooking(context.Background(), 7)

	assert.ErrorIs(t, err, ErrBookingNotActive)
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{bookings: map[uint]*models.Booking{}})

	_, err := svc.CancelBooking(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeleteBooking_RemovesRecord(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[uint]*models.Booking{
		7: {ID: 7, RoomID: 1, UserID: 1, Status: models.StatusActive},
	}}
	svc := newTestService(repo)

	err := svc.DeleteBooking(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, []uint{7}, repo.deleted)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{bookings: map[uint]*models.Booking{}})

	err := svc.DeleteBooking(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateBooking_InvertedMergedRange(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[uint]*models.Booking{
		7: {ID: 7, RoomID: 1, UserID: 1, CheckInDate: day("2024-06-15"), CheckOutDate: day("2024-06-20"), Status: models.StatusActive},
	}}
	svc := newTestService(repo)

	badCheckIn := day("2024-06-25")
	_, err := svc.UpdateBooking(context.Background(), 7, UpdateBookingInput{CheckIn: &badCheckIn})

	assert.ErrorIs(t, err, models.ErrInvalidDateRange)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{bookings: map[uint]*models.Booking{}})

	price := 100.0
	_, err := svc.UpdateBooking(context.Background(), 42, UpdateBookingInput{TotalPrice: &price})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
