package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the service layer unwraps to exactly one of them.
var (
	ErrValidation           = errors.New("validation error")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrReferentialIntegrity = errors.New("referential integrity error")
	ErrEmptyPack            = errors.New("empty pack")
	ErrState                = errors.New("invalid state transition")
)

// Error identifies the entity and field a failure is about.
type Error struct {
	Kind   error
	Entity string
	Field  string
	Msg    string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Msg)
	}

	return fmt.Sprintf("%s: %s", e.Entity, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewValidationError(entity, field, msg string) *Error {
	return &Error{Kind: ErrValidation, Entity: entity, Field: field, Msg: msg}
}

var (
	ErrUserEmailRequired  = NewValidationError("user", "email", "users must have an email address")
	ErrUserEmailExists    = NewValidationError("user", "email", "user with this email already exists")
	ErrPasswordTooShort   = NewValidationError("user", "password", "ensure this field has at least 5 characters")
	ErrInvalidCredentials = NewValidationError("user", "", "unable to authenticate with provided credentials")
	ErrUserNotFound       = &Error{Kind: ErrNotFound, Entity: "user", Msg: "user not found"}
	ErrUserHasBookings    = &Error{Kind: ErrReferentialIntegrity, Entity: "user", Msg: "user is referenced by existing bookings"}

	ErrDetailsExist    = &Error{Kind: ErrConflict, Entity: "user_details", Field: "user", Msg: "details already attached to this user"}
	ErrDetailsNotFound = &Error{Kind: ErrNotFound, Entity: "user_details", Msg: "user details not found"}

	ErrLocationNotFound = &Error{Kind: ErrNotFound, Entity: "location", Msg: "location not found"}
	ErrArtistNotFound   = &Error{Kind: ErrNotFound, Entity: "artist", Msg: "artist not found"}
	ErrEventNotFound    = &Error{Kind: ErrNotFound, Entity: "event", Msg: "event not found"}
	ErrDiscountNotFound = &Error{Kind: ErrNotFound, Entity: "discount", Msg: "discount not found"}
	ErrNegativePrice    = NewValidationError("event", "price", "price must not be negative")
	ErrPriceTooLarge    = NewValidationError("event", "price", "ensure that there are no more than 10 digits in total")

	ErrPackNotFound    = &Error{Kind: ErrNotFound, Entity: "pack", Msg: "pack not found"}
	ErrPackHasNoEvents = &Error{Kind: ErrEmptyPack, Entity: "pack", Field: "events", Msg: "pack has no events, starting date is undefined"}
	ErrPackHasBookings = &Error{Kind: ErrReferentialIntegrity, Entity: "pack", Msg: "pack is referenced by existing bookings"}
	ErrPackPriceRange  = NewValidationError("pack", "price", "ensure that there are no more than 10 digits in total")

	ErrBookingNotFound    = &Error{Kind: ErrNotFound, Entity: "booking", Msg: "booking not found"}
	ErrBookingAlreadyPaid = &Error{Kind: ErrState, Entity: "booking", Field: "payed", Msg: "booking is already paid"}

	ErrTokenMissing  = &Error{Kind: ErrUnauthorized, Entity: "token", Msg: "authentication credentials were not provided"}
	ErrTokenInvalid  = &Error{Kind: ErrUnauthorized, Entity: "token", Msg: "invalid token"}
	ErrTokenRevoked  = &Error{Kind: ErrUnauthorized, Entity: "token", Msg: "token has been revoked"}
	ErrStaffRequired = &Error{Kind: ErrForbidden, Entity: "user", Field: "is_staff", Msg: "staff privileges are required"}
)
