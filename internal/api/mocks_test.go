package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/seelv/dancebook/internal/domain"
)

type fakeResolver map[string]domain.User

func (f fakeResolver) ResolveToken(_ context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrTokenMissing
	}
	user, ok := f[token]
	if !ok {
		return domain.User{}, domain.ErrTokenInvalid
	}

	return user, nil
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) SignupWithDetails(ctx context.Context, email, password string, details domain.UserDetails) (domain.User, error) {
	args := m.Called(ctx, email, password, details)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) IssueToken(user domain.User, userAgent string) (string, error) {
	args := m.Called(user, userAgent)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserService) AttachDetails(ctx context.Context, userID uint, details domain.UserDetails) (domain.UserDetails, error) {
	args := m.Called(ctx, userID, details)
	return args.Get(0).(domain.UserDetails), args.Error(1)
}

func (m *mockUserService) UpdateMe(ctx context.Context, userID uint, email, password *string) (domain.User, error) {
	args := m.Called(ctx, userID, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	args := m.Called(ctx, location)
	return args.Get(0).(domain.Location), args.Error(1)
}

func (m *mockCatalogService) GetLocation(ctx context.Context, id uint) (domain.Location, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Location), args.Error(1)
}

func (m *mockCatalogService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *mockCatalogService) CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	args := m.Called(ctx, artist)
	return args.Get(0).(domain.Artist), args.Error(1)
}

func (m *mockCatalogService) GetArtist(ctx context.Context, id uint) (domain.Artist, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Artist), args.Error(1)
}

func (m *mockCatalogService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *mockCatalogService) CreateEvent(ctx context.Context, event domain.Event, artistIDs []uint) (domain.Event, error) {
	args := m.Called(ctx, event, artistIDs)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockCatalogService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockCatalogService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockCatalogService) AddArtistToEvent(ctx context.Context, eventID, artistID uint) (domain.Event, error) {
	args := m.Called(ctx, eventID, artistID)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockCatalogService) RemoveArtistFromEvent(ctx context.Context, eventID, artistID uint) (domain.Event, error) {
	args := m.Called(ctx, eventID, artistID)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockCatalogService) CreateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	args := m.Called(ctx, discount)
	return args.Get(0).(domain.Discount), args.Error(1)
}

func (m *mockCatalogService) ListDiscounts(ctx context.Context) ([]domain.Discount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Discount), args.Error(1)
}

type mockPackService struct {
	mock.Mock
}

func (m *mockPackService) CreatePack(ctx context.Context, pack domain.Pack, eventIDs, discountIDs []uint) (domain.Pack, error) {
	args := m.Called(ctx, pack, eventIDs, discountIDs)
	return args.Get(0).(domain.Pack), args.Error(1)
}

func (m *mockPackService) ListPacks(ctx context.Context) ([]domain.PackView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PackView), args.Error(1)
}

func (m *mockPackService) GetPack(ctx context.Context, id uint) (domain.PackView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.PackView), args.Error(1)
}

func (m *mockPackService) DeletePack(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPackService) AddEventToPack(ctx context.Context, packID, eventID uint) (domain.Pack, error) {
	args := m.Called(ctx, packID, eventID)
	return args.Get(0).(domain.Pack), args.Error(1)
}

func (m *mockPackService) RemoveEventFromPack(ctx context.Context, packID, eventID uint) (domain.Pack, error) {
	args := m.Called(ctx, packID, eventID)
	return args.Get(0).(domain.Pack), args.Error(1)
}

func (m *mockPackService) AddDiscountToPack(ctx context.Context, packID, discountID uint) (domain.Pack, error) {
	args := m.Called(ctx, packID, discountID)
	return args.Get(0).(domain.Pack), args.Error(1)
}

func (m *mockPackService) RemoveDiscountFromPack(ctx context.Context, packID, discountID uint) (domain.Pack, error) {
	args := m.Called(ctx, packID, discountID)
	return args.Get(0).(domain.Pack), args.Error(1)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, userID, packID uint) (domain.Booking, error) {
	args := m.Called(ctx, userID, packID)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingService) ListBookingsForUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, userID, bookingID uint) (domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingService) MarkPaid(ctx context.Context, userID, bookingID uint) (domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, userID, bookingID uint) error {
	return m.Called(ctx, userID, bookingID).Error(0)
}
