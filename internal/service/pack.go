package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/repository"
)

var (
	ErrPackNotFound    = repository.ErrPackNotFound
	ErrPackHasBookings = repository.ErrPackHasBookings
	ErrPackHasNoEvents = domain.ErrPackHasNoEvents
)

type PackRepository interface {
	Create(ctx context.Context, pack domain.Pack, eventIDs, discountIDs []uint) (domain.Pack, error)
	FindByID(ctx context.Context, id uint) (domain.Pack, error)
	ListWithEvents(ctx context.Context) ([]domain.Pack, error)
	Delete(ctx context.Context, id uint) error
	AddEvent(ctx context.Context, packID, eventID uint) error
	RemoveEvent(ctx context.Context, packID, eventID uint) error
	AddDiscount(ctx context.Context, packID, discountID uint) error
	RemoveDiscount(ctx context.Context, packID, discountID uint) error
}

type PackService struct {
	repo PackRepository
}

func NewPackService(repo PackRepository) *PackService {
	return &PackService{
		repo: repo,
	}
}

func (s *PackService) CreatePack(ctx context.Context, pack domain.Pack, eventIDs, discountIDs []uint) (domain.Pack, error) {
	if pack.Price.IsNegative() {
		return domain.Pack{}, domain.NewValidationError("pack", "price", "price must not be negative")
	}
	if !pack.Price.ValidPrice() {
		return domain.Pack{}, domain.ErrPackPriceRange
	}

	created, err := s.repo.Create(ctx, pack, eventIDs, discountIDs)
	if err != nil {
		return domain.Pack{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListPacks returns the nested view of every bookable pack, ordered by id.
func (s *PackService) ListPacks(ctx context.Context) ([]domain.PackView, error) {
	packs, err := s.repo.ListWithEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListWithEvents -> %w", err)
	}

	views := make([]domain.PackView, 0, len(packs))
	for _, p := range packs {
		view, err := domain.NewPackView(p)
		if err != nil {
			// A pack can lose its last event between the query and this point.
			zap.L().Warn("skipping pack without events", zap.Uint("pack_id", p.ID))
			continue
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *PackService) GetPack(ctx context.Context, id uint) (domain.PackView, error) {
	pack, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.PackView{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	view, err := domain.NewPackView(pack)
	if err != nil {
		return domain.PackView{}, fmt.Errorf("domain.NewPackView -> %w", err)
	}

	return view, nil
}

func (s *PackService) DeletePack(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *PackService) AddEventToPack(ctx context.Context, packID, eventID uint) (domain.Pack, error) {
	if err := s.repo.AddEvent(ctx, packID, eventID); err != nil {
		return domain.Pack{}, fmt.Errorf("s.repo.AddEvent -> %w", err)
	}

	return s.findPack(ctx, packID)
}

func (s *PackService) RemoveEventFromPack(ctx context.Context, packID, eventID uint) (domain.Pack, error) {
	if err := s.repo.RemoveEvent(ctx, packID, eventID); err != nil {
		return domain.Pack{}, fmt.Errorf("s.repo.RemoveEvent -> %w", err)
	}

	return s.findPack(ctx, packID)
}

func (s *PackService) AddDiscountToPack(ctx context.Context, packID, discountID uint) (domain.Pack, error) {
	if err := s.repo.AddDiscount(ctx, packID, discountID); err != nil {
		return domain.Pack{}, fmt.Errorf("s.repo.AddDiscount -> %w", err)
	}

	return s.findPack(ctx, packID)
}

func (s *PackService) RemoveDiscountFromPack(ctx context.Context, packID, discountID uint) (domain.Pack, error) {
	if err := s.repo.RemoveDiscount(ctx, packID, discountID); err != nil {
		return domain.Pack{}, fmt.Errorf("s.repo.RemoveDiscount -> %w", err)
	}

	return s.findPack(ctx, packID)
}

func (s *PackService) findPack(ctx context.Context, id uint) (domain.Pack, error) {
	pack, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Pack{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return pack, nil
}
