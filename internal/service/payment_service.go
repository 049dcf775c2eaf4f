package service

import (
	"context"
	"errors"
	"time"

	"github.com/hotelhub/reservation-service/internal/models"
	"github.com/hotelhub/reservation-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrNegativeAmount  = errors.New("amount must not be negative")
)

type CreatePaymentInput struct {
	BookingID   uint
	Amount      float64
	PaymentDate time.Time
	Status      string
}

type UpdatePaymentInput struct {
	Amount      *float64
	PaymentDate *time.Time
	Status      *string
}

type PaymentService interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (*models.Payment, error)
	GetPayment(ctx context.Context, id uint) (*models.Payment, error)
	ListPayments(ctx context.Context, bookingID uint) ([]models.Payment, error)
	UpdatePayment(ctx context.Context, id uint, in UpdatePaymentInput) (*models.Payment, error)
	DeletePayment(ctx context.Context, id uint) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, bookingRepo repository.BookingRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, bookingRepo: bookingRepo}
}

func (s *paymentService) CreatePayment(ctx context.Context, in CreatePaymentInput) (*models.Payment, error) {
	status, err := models.ParsePaymentStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if in.Amount < 0 {
		return nil, ErrNegativeAmount
	}
	if _, err := s.bookingRepo.FindByID(ctx, in.BookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	payment := &models.Payment{
		BookingID:   in.BookingID,
		Amount:      in.Amount,
		PaymentDate: in.PaymentDate,
		Status:      status,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, bookingID uint) ([]models.Payment, error) {
	return s.paymentRepo.FindAll(ctx, bookingID)
}

func (s *paymentService) UpdatePayment(ctx context.Context, id uint, in UpdatePaymentInput) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	if in.Amount != nil {
		if *in.Amount < 0 {
			return nil, ErrNegativeAmount
		}
		payment.Amount = *in.Amount
	}
	if in.PaymentDate != nil {
		payment.PaymentDate = *in.PaymentDate
	}
	if in.Status != nil {
		status, err := models.ParsePaymentStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		payment.Status = status
	}

	payment.Booking = nil
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id uint) error {
	deleted, err := s.paymentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPaymentNotFound
	}
	return nil
}
