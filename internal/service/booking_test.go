package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seelv/dancebook/internal/clock"
	"github.com/seelv/dancebook/internal/domain"
)

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("dated from the clock", func(t *testing.T) {
		bookings, packs := new(mockBookingRepo), new(mockPackRepo)
		s := NewBookingService(bookings, packs, clock.NewFixed(testNow))

		packs.On("FindByID", ctx, uint(1)).Return(bounceFactory(), nil)
		bookings.On("Create", ctx, domain.Booking{UserID: 7, PackID: 1, Date: testNow}).
			Return(domain.Booking{ID: 10, UserID: 7, PackID: 1, Date: testNow}, nil)

		booking, err := s.CreateBooking(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(10), booking.ID)
		assert.False(t, booking.Payed)
		assert.Nil(t, booking.DatePayed)
		require.NotNil(t, booking.Pack)
		assert.Equal(t, "Bounce Factory all night", booking.Pack.Name)
	})

	t.Run("empty pack", func(t *testing.T) {
		bookings, packs := new(mockBookingRepo), new(mockPackRepo)
		s := NewBookingService(bookings, packs, clock.NewFixed(testNow))
		packs.On("FindByID", ctx, uint(2)).Return(domain.Pack{ID: 2}, nil)

		_, err := s.CreateBooking(ctx, 7, 2)
		assert.ErrorIs(t, err, domain.ErrEmptyPack)
		bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown pack", func(t *testing.T) {
		bookings, packs := new(mockBookingRepo), new(mockPackRepo)
		s := NewBookingService(bookings, packs, clock.NewFixed(testNow))
		packs.On("FindByID", ctx, uint(3)).Return(domain.Pack{}, ErrPackNotFound)

		_, err := s.CreateBooking(ctx, 7, 3)
		assert.ErrorIs(t, err, ErrPackNotFound)
	})
}

func TestBookingService_MarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("unpaid becomes paid", func(t *testing.T) {
		bookings := new(mockBookingRepo)
		s := NewBookingService(bookings, new(mockPackRepo), clock.NewFixed(testNow))

		bookings.On("FindByID", ctx, uint(10)).Return(domain.Booking{ID: 10, UserID: 7}, nil)
		bookings.On("MarkPaid", ctx, mock.MatchedBy(func(b domain.Booking) bool {
			return b.Payed && b.DatePayed != nil && b.DatePayed.Equal(testNow)
		})).Return(nil)

		booking, err := s.MarkPaid(ctx, 7, 10)
		require.NoError(t, err)
		assert.True(t, booking.Payed)
		bookings.AssertExpectations(t)
	})

	t.Run("already paid", func(t *testing.T) {
		bookings := new(mockBookingRepo)
		s := NewBookingService(bookings, new(mockPackRepo), clock.NewFixed(testNow))
		paidAt := testNow.Add(-24 * time.Hour)
		bookings.On("FindByID", ctx, uint(10)).Return(domain.Booking{ID: 10, UserID: 7, Payed: true, DatePayed: &paidAt}, nil)

		_, err := s.MarkPaid(ctx, 7, 10)
		assert.ErrorIs(t, err, domain.ErrState)
		bookings.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
	})

	t.Run("lost race", func(t *testing.T) {
		bookings := new(mockBookingRepo)
		s := NewBookingService(bookings, new(mockPackRepo), clock.NewFixed(testNow))
		bookings.On("FindByID", ctx, uint(10)).Return(domain.Booking{ID: 10, UserID: 7}, nil)
		bookings.On("MarkPaid", ctx, mock.Anything).Return(ErrBookingAlreadyPaid)

		_, err := s.MarkPaid(ctx, 7, 10)
		assert.ErrorIs(t, err, ErrBookingAlreadyPaid)
	})

	t.Run("booking of another user", func(t *testing.T) {
		bookings := new(mockBookingRepo)
		s := NewBookingService(bookings, new(mockPackRepo), clock.NewFixed(testNow))
		bookings.On("FindByID", ctx, uint(10)).Return(domain.Booking{ID: 10, UserID: 8}, nil)

		_, err := s.MarkPaid(ctx, 7, 10)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingService_DeleteBooking(t *testing.T) {
	ctx := context.Background()
	bookings := new(mockBookingRepo)
	s := NewBookingService(bookings, new(mockPackRepo), clock.NewFixed(testNow))

	bookings.On("FindByID", ctx, uint(10)).Return(domain.Booking{ID: 10, UserID: 7}, nil)
	bookings.On("Delete", ctx, uint(10)).Return(nil)

	assert.ErrorIs(t, s.DeleteBooking(ctx, 8, 10), ErrBookingNotFound)
	require.NoError(t, s.DeleteBooking(ctx, 7, 10))
	bookings.AssertNumberOfCalls(t, "Delete", 1)
}
