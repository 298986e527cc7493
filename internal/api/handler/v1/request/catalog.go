package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/seelv/dancebook/internal/domain"
)

var (
	errNegativeAmount = errors.New("must not be negative")
	errPriceTooLarge  = errors.New("must be at most " + domain.MaxPrice.String())
)

// nonNegative accepts a decimal string such as "12.50" that is zero or more.
var nonNegative = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	m, err := domain.NewMoney(s)
	if err != nil {
		return errors.New("must be a decimal number")
	}
	if m.IsNegative() {
		return errNegativeAmount
	}

	return nil
})

// priceRange rejects amounts that do not fit the stored price column.
var priceRange = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	m, err := domain.NewMoney(s)
	if err == nil && m.GreaterThan(domain.MaxPrice.Decimal) {
		return errPriceTooLarge
	}

	return nil
})

type CreateLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Room    string `json:"room"`
}

func (req *CreateLocationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Address, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.City, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Room, validation.Length(0, 255)),
	)
}

func (req *CreateLocationRequest) ToDomain() domain.Location {
	return domain.Location{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Room:    req.Room,
	}
}

type CreateArtistRequest struct {
	Name        string `json:"name"`
	Style       string `json:"style"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Country     string `json:"country"`
}

func (req *CreateArtistRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Style, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Type, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Country, validation.Required, validation.Length(1, 50)),
	)
}

func (req *CreateArtistRequest) ToDomain() domain.Artist {
	return domain.Artist{
		Name:        req.Name,
		Style:       req.Style,
		Type:        req.Type,
		Description: req.Description,
		Country:     req.Country,
	}
}

type CreateEventRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Price       string `json:"price"`
	LocationID  uint   `json:"location_id"`
	ArtistIDs   []uint `json:"artist_ids"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Type, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Time, validation.Required, validation.By(func(value interface{}) error {
			_, err := domain.ParseTimeOfDay(value.(string))
			return err
		})),
		validation.Field(&req.Price, is.Float, nonNegative, priceRange),
		validation.Field(&req.LocationID, validation.Required),
	)
}

// ToDomain expects a request that passed Validate.
func (req *CreateEventRequest) ToDomain() (domain.Event, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return domain.Event{}, err
	}
	tod, err := domain.ParseTimeOfDay(req.Time)
	if err != nil {
		return domain.Event{}, err
	}
	price := domain.MustMoney("0")
	if req.Price != "" {
		if price, err = domain.NewMoney(req.Price); err != nil {
			return domain.Event{}, err
		}
	}

	return domain.Event{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Date:        date,
		Time:        tod,
		Price:       price,
		LocationID:  req.LocationID,
	}, nil
}

type CreateDiscountRequest struct {
	Name     string `json:"name"`
	Discount string `json:"discount"`
}

func (req *CreateDiscountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Discount, validation.Required, is.Float, nonNegative, validation.By(func(value interface{}) error {
			m, err := domain.NewMoney(value.(string))
			if err == nil && m.GreaterThan(domain.MustMoney("100").Decimal) {
				return errors.New("must be at most 100")
			}
			return nil
		})),
	)
}

func (req *CreateDiscountRequest) ToDomain() (domain.Discount, error) {
	pct, err := domain.NewMoney(req.Discount)
	if err != nil {
		return domain.Discount{}, err
	}

	return domain.Discount{Name: req.Name, Percentage: pct}, nil
}

type CreatePackRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	EventIDs    []uint `json:"event_ids"`
	DiscountIDs []uint `json:"discount_ids"`
}

func (req *CreatePackRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Price, is.Float, nonNegative, priceRange),
	)
}

func (req *CreatePackRequest) ToDomain() (domain.Pack, error) {
	price := domain.MustMoney("0")
	if req.Price != "" {
		var err error
		if price, err = domain.NewMoney(req.Price); err != nil {
			return domain.Pack{}, err
		}
	}

	return domain.Pack{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
	}, nil
}

type CreateBookingRequest struct {
	PackID uint `json:"pack_id"`
}

func (req *CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PackID, validation.Required),
	)
}
