package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/seelv/dancebook/internal/domain"
)

// At least five characters, at least one of them not blank.
const passwordRegexPattern = `^(?=.*\S).{5,}$`

var passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

var errInvalidPassword = errors.New("ensure this field has at least 5 characters")

// passwordRule plugs the lookahead pattern into ozzo-validation.
var passwordRule = validation.By(func(value interface{}) error {
	value, isNil := validation.Indirect(value)
	password, _ := value.(string)
	if isNil || password == "" {
		return nil
	}

	ok, err := passwordExp.MatchString(password)
	if err != nil {
		return err
	}
	if !ok {
		return errInvalidPassword
	}

	return nil
})

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, passwordRule),
	)
}

type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *TokenRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

// UpdateMeRequest is a partial update, absent fields are left unchanged.
type UpdateMeRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (req *UpdateMeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.NilOrNotEmpty, is.Email),
		validation.Field(&req.Password, validation.NilOrNotEmpty, passwordRule),
	)
}

type UserDetailsRequest struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Tel       string `json:"tel"`
	Privacy   bool   `json:"privacy"`
	Marketing bool   `json:"marketing"`
}

func (req *UserDetailsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Surname, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Address, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.City, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Country, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Tel, validation.Required, validation.Length(1, 13)),
	)
}

func (req *UserDetailsRequest) ToDomain() domain.UserDetails {
	return domain.UserDetails{
		Name:      req.Name,
		Surname:   req.Surname,
		Address:   req.Address,
		City:      req.City,
		Country:   req.Country,
		Tel:       req.Tel,
		Privacy:   req.Privacy,
		Marketing: req.Marketing,
	}
}

type CreateUserWithDetailsRequest struct {
	CreateUserRequest
	UserDetails UserDetailsRequest `json:"user_details"`
}

func (req *CreateUserWithDetailsRequest) Validate() error {
	if err := req.CreateUserRequest.Validate(); err != nil {
		return err
	}

	return req.UserDetails.Validate()
}
