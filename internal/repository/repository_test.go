package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/repository/dao"
)

type mockBookingDAO struct {
	mock.Mock
}

func (m *mockBookingDAO) Insert(ctx context.Context, booking dao.Booking) (dao.Booking, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(dao.Booking), args.Error(1)
}

func (m *mockBookingDAO) FindByID(ctx context.Context, id uint) (dao.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.Booking), args.Error(1)
}

func (m *mockBookingDAO) ListByUserID(ctx context.Context, userID uint) ([]dao.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]dao.Booking), args.Error(1)
}

func (m *mockBookingDAO) MarkPaid(ctx context.Context, id uint, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *mockBookingDAO) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func weekendPack() dao.Pack {
	savoy := dao.Location{ID: 1, Name: "Savoy Ballroom", Address: "596 Lenox Ave", City: "New York"}

	return dao.Pack{
		ID:    3,
		Name:  "Weekend",
		Price: decimal.RequireFromString("120.5"),
		Events: []dao.Event{{
			ID:         1,
			Name:       "Bounce Factory",
			Date:       domain.NewDate(2026, time.November, 14),
			Time:       domain.TimeOfDay{Hour: 21},
			Price:      decimal.RequireFromString("45"),
			LocationID: savoy.ID,
			Location:   savoy,
			Artists:    []dao.Artist{{ID: 1, Name: "Frankie Manning"}},
		}},
		Discounts: []dao.Discount{{ID: 2, Name: "Early bird", Percentage: decimal.RequireFromString("15")}},
	}
}

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	d := new(mockBookingDAO)
	r := NewBookingRepository(d)

	d.On("FindByID", ctx, uint(9)).Return(dao.Booking{ID: 9, UserID: 1, PackID: 3, Pack: weekendPack()}, nil)
	d.On("FindByID", ctx, uint(10)).Return(dao.Booking{}, dao.ErrBookingNotFound)

	booking, err := r.FindByID(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, booking.Pack)
	assert.Equal(t, "120.50", booking.Pack.Price.String())
	require.Len(t, booking.Pack.Events, 1)
	event := booking.Pack.Events[0]
	require.NotNil(t, event.Location)
	assert.Equal(t, "Savoy Ballroom", event.Location.Name)
	assert.Equal(t, "Frankie Manning", event.Artists[0].Name)
	assert.Equal(t, "15.00", booking.Pack.Discounts[0].Percentage.String())

	_, err = r.FindByID(ctx, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingRepository_MarkPaid(t *testing.T) {
	ctx := context.Background()
	d := new(mockBookingDAO)
	r := NewBookingRepository(d)

	err := r.MarkPaid(ctx, domain.Booking{ID: 9})
	assert.Error(t, err)
	d.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)

	at := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	d.On("MarkPaid", ctx, uint(9), at).Return(dao.ErrBookingAlreadyPaid)
	err = r.MarkPaid(ctx, domain.Booking{ID: 9, Payed: true, DatePayed: &at})
	assert.ErrorIs(t, err, domain.ErrState)
}

func TestBookingRepository_Create_WithoutPack(t *testing.T) {
	ctx := context.Background()
	d := new(mockBookingDAO)
	r := NewBookingRepository(d)

	date := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	d.On("Insert", ctx, dao.Booking{UserID: 1, PackID: 3, Date: date}).Return(dao.Booking{ID: 9, UserID: 1, PackID: 3, Date: date}, nil)

	created, err := r.Create(ctx, domain.Booking{UserID: 1, PackID: 3, Date: date})
	require.NoError(t, err)
	assert.Equal(t, uint(9), created.ID)
	assert.Nil(t, created.Pack)
}

func TestPackDaoToDomain_EmptyRelations(t *testing.T) {
	pack := packDaoToDomain(dao.Pack{ID: 7, Name: "Empty", Price: decimal.Zero})
	assert.NotNil(t, pack.Events)
	assert.NotNil(t, pack.Discounts)

	raw, err := json.Marshal(pack)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"events":[]`)
	assert.Contains(t, string(raw), `"discounts":[]`)

	event := eventDaoToDomain(dao.Event{ID: 1, Name: "Solo practice", Date: domain.NewDate(2026, time.November, 14)})
	assert.NotNil(t, event.Artists)
	assert.Nil(t, event.Location)
}
