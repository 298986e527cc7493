package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/repository/dao"
)

var (
	ErrBookingNotFound    = dao.ErrBookingNotFound
	ErrBookingAlreadyPaid = dao.ErrBookingAlreadyPaid
)

type BookingDAO interface {
	Insert(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	FindByID(ctx context.Context, id uint) (dao.Booking, error)
	ListByUserID(ctx context.Context, userID uint) ([]dao.Booking, error)
	MarkPaid(ctx context.Context, id uint, at time.Time) error
	Delete(ctx context.Context, id uint) error
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	created, err := r.dao.Insert(ctx, dao.Booking{
		UserID:    booking.UserID,
		PackID:    booking.PackID,
		Date:      booking.Date,
		Payed:     booking.Payed,
		DatePayed: booking.DatePayed,
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return bookingDaoToDomain(created), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uint) (domain.Booking, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return bookingDaoToDomain(found), nil
}

func (r *BookingRepository) ListByUserID(ctx context.Context, userID uint) ([]domain.Booking, error) {
	found, err := r.dao.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByUserID -> %w", err)
	}

	bookings := make([]domain.Booking, 0, len(found))
	for _, b := range found {
		bookings = append(bookings, bookingDaoToDomain(b))
	}

	return bookings, nil
}

// MarkPaid persists the paid state of a booking already moved by domain.Booking.MarkPaid.
func (r *BookingRepository) MarkPaid(ctx context.Context, booking domain.Booking) error {
	if booking.DatePayed == nil {
		return fmt.Errorf("booking %d has no payment date", booking.ID)
	}
	if err := r.dao.MarkPaid(ctx, booking.ID, *booking.DatePayed); err != nil {
		return fmt.Errorf("r.dao.MarkPaid -> %w", err)
	}

	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func bookingDaoToDomain(b dao.Booking) domain.Booking {
	booking := domain.Booking{
		ID:        b.ID,
		UserID:    b.UserID,
		PackID:    b.PackID,
		Date:      b.Date,
		Payed:     b.Payed,
		DatePayed: b.DatePayed,
	}
	if b.Pack.ID != 0 {
		pack := packDaoToDomain(b.Pack)
		booking.Pack = &pack
	}

	return booking
}
