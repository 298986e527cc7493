package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{"valid", CreateUserRequest{Email: "alice@example.com", Password: "secret"}, false},
		{"exactly five", CreateUserRequest{Email: "alice@example.com", Password: "12345"}, false},
		{"too short", CreateUserRequest{Email: "alice@example.com", Password: "1234"}, true},
		{"only blanks", CreateUserRequest{Email: "alice@example.com", Password: "      "}, true},
		{"missing password", CreateUserRequest{Email: "alice@example.com"}, true},
		{"bad email", CreateUserRequest{Email: "alice", Password: "secret"}, true},
		{"missing email", CreateUserRequest{Password: "secret"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateMeRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateMeRequest{}).Validate())
	assert.NoError(t, (&UpdateMeRequest{Password: strPtr("new-secret")}).Validate())
	assert.NoError(t, (&UpdateMeRequest{Email: strPtr("bob@example.com")}).Validate())

	assert.Error(t, (&UpdateMeRequest{Password: strPtr("abc")}).Validate())
	assert.Error(t, (&UpdateMeRequest{Password: strPtr("")}).Validate())
	assert.Error(t, (&UpdateMeRequest{Email: strPtr("not-an-email")}).Validate())
}

func TestCreateUserWithDetailsRequest_Validate(t *testing.T) {
	req := CreateUserWithDetailsRequest{
		CreateUserRequest: CreateUserRequest{Email: "norma@example.com", Password: "secret"},
		UserDetails: UserDetailsRequest{
			Name: "Norma", Surname: "Miller", Address: "Lenox Ave", City: "New York", Country: "US", Tel: "+15550100",
		},
	}
	require.NoError(t, req.Validate())

	req.UserDetails.Tel = "+3312345678901"
	assert.Error(t, req.Validate())

	req.UserDetails.Tel = ""
	assert.Error(t, req.Validate())
}

func TestCreateEventRequest(t *testing.T) {
	req := CreateEventRequest{
		Name:       "Bounce Factory",
		Type:       "party",
		Date:       "2026-11-14",
		Time:       "21:00",
		Price:      "45",
		LocationID: 1,
	}
	require.NoError(t, req.Validate())

	event, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "2026-11-14", event.Date.String())
	assert.Equal(t, "21:00:00", event.Time.String())
	assert.Equal(t, "45.00", event.Price.String())

	free := req
	free.Price = ""
	event, err = free.ToDomain()
	require.NoError(t, err)
	assert.True(t, event.Price.IsZero())

	negative := req
	negative.Price = "-1"
	assert.Error(t, negative.Validate())

	overflow := req
	overflow.Price = "123456789012.50"
	assert.Error(t, overflow.Validate())

	ceiling := req
	ceiling.Price = "99999999.99"
	assert.NoError(t, ceiling.Validate())

	badTime := req
	badTime.Time = "9pm"
	assert.Error(t, badTime.Validate())

	noLocation := req
	noLocation.LocationID = 0
	assert.Error(t, noLocation.Validate())
}

func TestCreateDiscountRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateDiscountRequest{Name: "Early bird", Discount: "15"}).Validate())
	assert.NoError(t, (&CreateDiscountRequest{Name: "Free", Discount: "100"}).Validate())
	assert.Error(t, (&CreateDiscountRequest{Name: "Too much", Discount: "100.01"}).Validate())
	assert.Error(t, (&CreateDiscountRequest{Name: "Negative", Discount: "-5"}).Validate())
	assert.Error(t, (&CreateDiscountRequest{Name: "Words", Discount: "ten"}).Validate())
}

func TestCreatePackRequest(t *testing.T) {
	req := CreatePackRequest{Name: "Weekend", Price: "120.5", EventIDs: []uint{1, 2}}
	require.NoError(t, req.Validate())

	pack, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "120.50", pack.Price.String())

	assert.Error(t, (&CreatePackRequest{Price: "10"}).Validate())
	assert.Error(t, (&CreatePackRequest{Name: "Gold", Price: "1e15"}).Validate())
	assert.Error(t, (&CreatePackRequest{Name: "Gold", Price: "100000000"}).Validate())
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateBookingRequest{PackID: 1}).Validate())
	assert.Error(t, (&CreateBookingRequest{}).Validate())
}
