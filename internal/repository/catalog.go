package repository

import (
	"context"
	"fmt"

	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/repository/dao"
)

var (
	ErrLocationNotFound = dao.ErrLocationNotFound
	ErrArtistNotFound   = dao.ErrArtistNotFound
	ErrEventNotFound    = dao.ErrEventNotFound
	ErrDiscountNotFound = dao.ErrDiscountNotFound
)

type CatalogDAO interface {
	InsertLocation(ctx context.Context, location dao.Location) (dao.Location, error)
	FindLocationByID(ctx context.Context, id uint) (dao.Location, error)
	ListLocations(ctx context.Context) ([]dao.Location, error)
	InsertArtist(ctx context.Context, artist dao.Artist) (dao.Artist, error)
	FindArtistByID(ctx context.Context, id uint) (dao.Artist, error)
	ListArtists(ctx context.Context) ([]dao.Artist, error)
	InsertEvent(ctx context.Context, event dao.Event, artistIDs []uint) (dao.Event, error)
	FindEventByID(ctx context.Context, id uint) (dao.Event, error)
	ListEvents(ctx context.Context) ([]dao.Event, error)
	AppendEventArtist(ctx context.Context, eventID, artistID uint) error
	DeleteEventArtist(ctx context.Context, eventID, artistID uint) error
	InsertDiscount(ctx context.Context, discount dao.Discount) (dao.Discount, error)
	FindDiscountByID(ctx context.Context, id uint) (dao.Discount, error)
	ListDiscounts(ctx context.Context) ([]dao.Discount, error)
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	created, err := r.dao.InsertLocation(ctx, dao.Location{
		Name:    location.Name,
		Address: location.Address,
		City:    location.City,
		Room:    location.Room,
	})
	if err != nil {
		return domain.Location{}, fmt.Errorf("r.dao.InsertLocation -> %w", err)
	}

	return locationDaoToDomain(created), nil
}

func (r *CatalogRepository) FindLocationByID(ctx context.Context, id uint) (domain.Location, error) {
	found, err := r.dao.FindLocationByID(ctx, id)
	if err != nil {
		return domain.Location{}, fmt.Errorf("r.dao.FindLocationByID -> %w", err)
	}

	return locationDaoToDomain(found), nil
}

func (r *CatalogRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	found, err := r.dao.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListLocations -> %w", err)
	}

	locations := make([]domain.Location, 0, len(found))
	for _, l := range found {
		locations = append(locations, locationDaoToDomain(l))
	}

	return locations, nil
}

func (r *CatalogRepository) CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	created, err := r.dao.InsertArtist(ctx, dao.Artist{
		Name:        artist.Name,
		Style:       artist.Style,
		Type:        artist.Type,
		Description: artist.Description,
		Country:     artist.Country,
	})
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.dao.InsertArtist -> %w", err)
	}

	return artistDaoToDomain(created), nil
}

func (r *CatalogRepository) FindArtistByID(ctx context.Context, id uint) (domain.Artist, error) {
	found, err := r.dao.FindArtistByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.dao.FindArtistByID -> %w", err)
	}

	return artistDaoToDomain(found), nil
}

func (r *CatalogRepository) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	found, err := r.dao.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListArtists -> %w", err)
	}

	return artistsDaoToDomain(found), nil
}

func (r *CatalogRepository) CreateEvent(ctx context.Context, event domain.Event, artistIDs []uint) (domain.Event, error) {
	created, err := r.dao.InsertEvent(ctx, dao.Event{
		Name:        event.Name,
		Type:        event.Type,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		Price:       event.Price.Decimal,
		LocationID:  event.LocationID,
	}, artistIDs)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.InsertEvent -> %w", err)
	}

	return eventDaoToDomain(created), nil
}

func (r *CatalogRepository) FindEventByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindEventByID -> %w", err)
	}

	return eventDaoToDomain(found), nil
}

func (r *CatalogRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListEvents -> %w", err)
	}

	return eventsDaoToDomain(found), nil
}

func (r *CatalogRepository) AddEventArtist(ctx context.Context, eventID, artistID uint) error {
	if err := r.dao.AppendEventArtist(ctx, eventID, artistID); err != nil {
		return fmt.Errorf("r.dao.AppendEventArtist -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) RemoveEventArtist(ctx context.Context, eventID, artistID uint) error {
	if err := r.dao.DeleteEventArtist(ctx, eventID, artistID); err != nil {
		return fmt.Errorf("r.dao.DeleteEventArtist -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	created, err := r.dao.InsertDiscount(ctx, dao.Discount{
		Name:       discount.Name,
		Percentage: discount.Percentage.Decimal,
	})
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.InsertDiscount -> %w", err)
	}

	return discountDaoToDomain(created), nil
}

func (r *CatalogRepository) FindDiscountByID(ctx context.Context, id uint) (domain.Discount, error) {
	found, err := r.dao.FindDiscountByID(ctx, id)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.FindDiscountByID -> %w", err)
	}

	return discountDaoToDomain(found), nil
}

func (r *CatalogRepository) ListDiscounts(ctx context.Context) ([]domain.Discount, error) {
	found, err := r.dao.ListDiscounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListDiscounts -> %w", err)
	}

	return discountsDaoToDomain(found), nil
}

func locationDaoToDomain(l dao.Location) domain.Location {
	return domain.Location{
		ID:      l.ID,
		Name:    l.Name,
		Address: l.Address,
		City:    l.City,
		Room:    l.Room,
	}
}

func artistDaoToDomain(a dao.Artist) domain.Artist {
	return domain.Artist{
		ID:          a.ID,
		Name:        a.Name,
		Style:       a.Style,
		Type:        a.Type,
		Description: a.Description,
		Country:     a.Country,
	}
}

func artistsDaoToDomain(daoArtists []dao.Artist) []domain.Artist {
	artists := make([]domain.Artist, 0, len(daoArtists))
	for _, a := range daoArtists {
		artists = append(artists, artistDaoToDomain(a))
	}

	return artists
}

func eventDaoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:          e.ID,
		Name:        e.Name,
		Type:        e.Type,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Price:       domain.MoneyFromDecimal(e.Price),
		LocationID:  e.LocationID,
		Artists:     artistsDaoToDomain(e.Artists),
		CreatedAt:   e.CreatedAt,
	}
	if e.Location.ID != 0 {
		location := locationDaoToDomain(e.Location)
		event.Location = &location
	}

	return event
}

func eventsDaoToDomain(daoEvents []dao.Event) []domain.Event {
	events := make([]domain.Event, 0, len(daoEvents))
	for _, e := range daoEvents {
		events = append(events, eventDaoToDomain(e))
	}

	return events
}

func discountDaoToDomain(d dao.Discount) domain.Discount {
	return domain.Discount{
		ID:         d.ID,
		Name:       d.Name,
		Percentage: domain.MoneyFromDecimal(d.Percentage),
	}
}

func discountsDaoToDomain(daoDiscounts []dao.Discount) []domain.Discount {
	discounts := make([]domain.Discount, 0, len(daoDiscounts))
	for _, d := range daoDiscounts {
		discounts = append(discounts, discountDaoToDomain(d))
	}

	return discounts
}
