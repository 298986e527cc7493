package service

import (
	"context"
	"fmt"

	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/repository"
)

var (
	ErrLocationNotFound = repository.ErrLocationNotFound
	ErrArtistNotFound   = repository.ErrArtistNotFound
	ErrEventNotFound    = repository.ErrEventNotFound
	ErrDiscountNotFound = repository.ErrDiscountNotFound
)

type CatalogRepository interface {
	CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error)
	FindLocationByID(ctx context.Context, id uint) (domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	FindArtistByID(ctx context.Context, id uint) (domain.Artist, error)
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	CreateEvent(ctx context.Context, event domain.Event, artistIDs []uint) (domain.Event, error)
	FindEventByID(ctx context.Context, id uint) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	AddEventArtist(ctx context.Context, eventID, artistID uint) error
	RemoveEventArtist(ctx context.Context, eventID, artistID uint) error
	CreateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	ListDiscounts(ctx context.Context) ([]domain.Discount, error)
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	created, err := s.repo.CreateLocation(ctx, location)
	if err != nil {
		return domain.Location{}, fmt.Errorf("s.repo.CreateLocation -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetLocation(ctx context.Context, id uint) (domain.Location, error) {
	location, err := s.repo.FindLocationByID(ctx, id)
	if err != nil {
		return domain.Location{}, fmt.Errorf("s.repo.FindLocationByID -> %w", err)
	}

	return location, nil
}

func (s *CatalogService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListLocations -> %w", err)
	}

	return locations, nil
}

func (s *CatalogService) CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	created, err := s.repo.CreateArtist(ctx, artist)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.CreateArtist -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetArtist(ctx context.Context, id uint) (domain.Artist, error) {
	artist, err := s.repo.FindArtistByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.FindArtistByID -> %w", err)
	}

	return artist, nil
}

func (s *CatalogService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	artists, err := s.repo.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListArtists -> %w", err)
	}

	return artists, nil
}

// CreateEvent stores an event held at an existing location and performed by existing artists.
func (s *CatalogService) CreateEvent(ctx context.Context, event domain.Event, artistIDs []uint) (domain.Event, error) {
	if event.Price.IsNegative() {
		return domain.Event{}, domain.ErrNegativePrice
	}
	if !event.Price.ValidPrice() {
		return domain.Event{}, domain.ErrPriceTooLarge
	}

	created, err := s.repo.CreateEvent(ctx, event, artistIDs)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.CreateEvent -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindEventByID -> %w", err)
	}

	return event, nil
}

func (s *CatalogService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListEvents -> %w", err)
	}

	return events, nil
}

func (s *CatalogService) AddArtistToEvent(ctx context.Context, eventID, artistID uint) (domain.Event, error) {
	if err := s.repo.AddEventArtist(ctx, eventID, artistID); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.AddEventArtist -> %w", err)
	}

	return s.GetEvent(ctx, eventID)
}

func (s *CatalogService) RemoveArtistFromEvent(ctx context.Context, eventID, artistID uint) (domain.Event, error) {
	if err := s.repo.RemoveEventArtist(ctx, eventID, artistID); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.RemoveEventArtist -> %w", err)
	}

	return s.GetEvent(ctx, eventID)
}

func (s *CatalogService) CreateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	created, err := s.repo.CreateDiscount(ctx, discount)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.repo.CreateDiscount -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) ListDiscounts(ctx context.Context) ([]domain.Discount, error) {
	discounts, err := s.repo.ListDiscounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListDiscounts -> %w", err)
	}

	return discounts, nil
}
