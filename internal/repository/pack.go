package repository

import (
	"context"
	"fmt"

	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/repository/dao"
)

var (
	ErrPackNotFound    = dao.ErrPackNotFound
	ErrPackHasBookings = dao.ErrPackHasBookings
)

type PackDAO interface {
	Insert(ctx context.Context, pack dao.Pack, eventIDs, discountIDs []uint) (dao.Pack, error)
	FindByID(ctx context.Context, id uint) (dao.Pack, error)
	ListWithEvents(ctx context.Context) ([]dao.Pack, error)
	Delete(ctx context.Context, id uint) error
	AppendEvent(ctx context.Context, packID, eventID uint) error
	DeleteEvent(ctx context.Context, packID, eventID uint) error
	AppendDiscount(ctx context.Context, packID, discountID uint) error
	DeleteDiscount(ctx context.Context, packID, discountID uint) error
}

type PackRepository struct {
	dao PackDAO
}

func NewPackRepository(dao PackDAO) *PackRepository {
	return &PackRepository{
		dao: dao,
	}
}

func (r *PackRepository) Create(ctx context.Context, pack domain.Pack, eventIDs, discountIDs []uint) (domain.Pack, error) {
	created, err := r.dao.Insert(ctx, dao.Pack{
		Name:        pack.Name,
		Description: pack.Description,
		Price:       pack.Price.Decimal,
	}, eventIDs, discountIDs)
	if err != nil {
		return domain.Pack{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return packDaoToDomain(created), nil
}

func (r *PackRepository) FindByID(ctx context.Context, id uint) (domain.Pack, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Pack{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return packDaoToDomain(found), nil
}

func (r *PackRepository) ListWithEvents(ctx context.Context) ([]domain.Pack, error) {
	found, err := r.dao.ListWithEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListWithEvents -> %w", err)
	}

	packs := make([]domain.Pack, 0, len(found))
	for _, p := range found {
		packs = append(packs, packDaoToDomain(p))
	}

	return packs, nil
}

func (r *PackRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *PackRepository) AddEvent(ctx context.Context, packID, eventID uint) error {
	if err := r.dao.AppendEvent(ctx, packID, eventID); err != nil {
		return fmt.Errorf("r.dao.AppendEvent -> %w", err)
	}

	return nil
}

func (r *PackRepository) RemoveEvent(ctx context.Context, packID, eventID uint) error {
	if err := r.dao.DeleteEvent(ctx, packID, eventID); err != nil {
		return fmt.Errorf("r.dao.DeleteEvent -> %w", err)
	}

	return nil
}

func (r *PackRepository) AddDiscount(ctx context.Context, packID, discountID uint) error {
	if err := r.dao.AppendDiscount(ctx, packID, discountID); err != nil {
		return fmt.Errorf("r.dao.AppendDiscount -> %w", err)
	}

	return nil
}

func (r *PackRepository) RemoveDiscount(ctx context.Context, packID, discountID uint) error {
	if err := r.dao.DeleteDiscount(ctx, packID, discountID); err != nil {
		return fmt.Errorf("r.dao.DeleteDiscount -> %w", err)
	}

	return nil
}

func packDaoToDomain(p dao.Pack) domain.Pack {
	return domain.Pack{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       domain.MoneyFromDecimal(p.Price),
		Events:      eventsDaoToDomain(p.Events),
		Discounts:   discountsDaoToDomain(p.Discounts),
		CreatedAt:   p.CreatedAt,
	}
}
