package service

import (
	"context"
	"fmt"

	"github.com/seelv/dancebook/internal/clock"
	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/repository"
)

var (
	ErrBookingNotFound    = repository.ErrBookingNotFound
	ErrBookingAlreadyPaid = repository.ErrBookingAlreadyPaid
)

type BookingRepository interface {
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	FindByID(ctx context.Context, id uint) (domain.Booking, error)
	ListByUserID(ctx context.Context, userID uint) ([]domain.Booking, error)
	MarkPaid(ctx context.Context, booking domain.Booking) error
	Delete(ctx context.Context, id uint) error
}

type PackFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Pack, error)
}

type BookingService struct {
	repo  BookingRepository
	packs PackFinder
	clock clock.Clock
}

func NewBookingService(repo BookingRepository, packs PackFinder, clk clock.Clock) *BookingService {
	return &BookingService{
		repo:  repo,
		packs: packs,
		clock: clk,
	}
}

// CreateBooking books a pack for a user. The booking date is today, and packs
// without events cannot be booked.
func (s *BookingService) CreateBooking(ctx context.Context, userID, packID uint) (domain.Booking, error) {
	pack, err := s.packs.FindByID(ctx, packID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.packs.FindByID -> %w", err)
	}
	if _, err := pack.StartingDate(); err != nil {
		return domain.Booking{}, err
	}

	created, err := s.repo.Create(ctx, domain.Booking{
		UserID: userID,
		PackID: packID,
		Date:   s.clock.Now(),
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	created.Pack = &pack

	return created, nil
}

func (s *BookingService) ListBookingsForUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	bookings, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByUserID -> %w", err)
	}

	return bookings, nil
}

// GetBooking returns a booking owned by userID. Bookings of other users are reported as missing.
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID uint) (domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if booking.UserID != userID {
		return domain.Booking{}, ErrBookingNotFound
	}

	return booking, nil
}

func (s *BookingService) MarkPaid(ctx context.Context, userID, bookingID uint) (domain.Booking, error) {
	booking, err := s.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}

	if err := booking.MarkPaid(s.clock.Now()); err != nil {
		return domain.Booking{}, err
	}
	if err := s.repo.MarkPaid(ctx, booking); err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.MarkPaid -> %w", err)
	}

	return booking, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, userID, bookingID uint) error {
	if _, err := s.GetBooking(ctx, userID, bookingID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
