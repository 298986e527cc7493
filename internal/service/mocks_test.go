package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/seelv/dancebook/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) CreateWithDetails(ctx context.Context, user domain.User, details domain.UserDetails) (domain.User, error) {
	args := m.Called(ctx, user, details)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) CreateDetails(ctx context.Context, details domain.UserDetails) (domain.UserDetails, error) {
	args := m.Called(ctx, details)
	return args.Get(0).(domain.UserDetails), args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return m.Called(ctx, jti, ttl).Error(0)
}

func (m *mockSessionRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	args := m.Called(ctx, location)
	return args.Get(0).(domain.Location), args.Error(1)
}

func (m *mockCatalogRepo) FindLocationByID(ctx context.Context, id uint) (domain.Location, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Location), args.Error(1)
}

func (m *mockCatalogRepo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *mockCatalogRepo) CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	args := m.Called(ctx, artist)
	return args.Get(0).(domain.Artist), args.Error(1)
}

func (m *mockCatalogRepo) FindArtistByID(ctx context.Context, id uint) (domain.Artist, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Artist), args.Error(1)
}

func (m *mockCatalogRepo) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *mockCatalogRepo) CreateEvent(ctx context.Context, event domain.Event, artistIDs []uint) (domain.Event, error) {
	args := m.Called(ctx, event, artistIDs)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockCatalogRepo) FindEventByID(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockCatalogRepo) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockCatalogRepo) AddEventArtist(ctx context.Context, eventID, artistID uint) error {
	return m.Called(ctx, eventID, artistID).Error(0)
}

func (m *mockCatalogRepo) RemoveEventArtist(ctx context.Context, eventID, artistID uint) error {
	return m.Called(ctx, eventID, artistID).Error(0)
}

func (m *mockCatalogRepo) CreateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	args := m.Called(ctx, discount)
	return args.Get(0).(domain.Discount), args.Error(1)
}

func (m *mockCatalogRepo) ListDiscounts(ctx context.Context) ([]domain.Discount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Discount), args.Error(1)
}

type mockPackRepo struct {
	mock.Mock
}

func (m *mockPackRepo) Create(ctx context.Context, pack domain.Pack, eventIDs, discountIDs []uint) (domain.Pack, error) {
	args := m.Called(ctx, pack, eventIDs, discountIDs)
	return args.Get(0).(domain.Pack), args.Error(1)
}

func (m *mockPackRepo) FindByID(ctx context.Context, id uint) (domain.Pack, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pack), args.Error(1)
}

func (m *mockPackRepo) ListWithEvents(ctx context.Context) ([]domain.Pack, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Pack), args.Error(1)
}

func (m *mockPackRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPackRepo) AddEvent(ctx context.Context, packID, eventID uint) error {
	return m.Called(ctx, packID, eventID).Error(0)
}

func (m *mockPackRepo) RemoveEvent(ctx context.Context, packID, eventID uint) error {
	return m.Called(ctx, packID, eventID).Error(0)
}

func (m *mockPackRepo) AddDiscount(ctx context.Context, packID, discountID uint) error {
	return m.Called(ctx, packID, discountID).Error(0)
}

func (m *mockPackRepo) RemoveDiscount(ctx context.Context, packID, discountID uint) error {
	return m.Called(ctx, packID, discountID).Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (domain.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListByUserID(ctx context.Context, userID uint) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) MarkPaid(ctx context.Context, booking domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
